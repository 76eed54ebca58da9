package scene

import "github.com/go-gl/mathgl/mgl32"

// LitGridOption is a functional option for configuring the lit cube grid.
// Use the With* functions to create options.
type LitGridOption func(s *litGridImpl)

// WithGrid sets the number of rows and columns. Values below 1 are ignored.
//
// Parameters:
//   - rows: number of rows
//   - columns: number of cubes per row
//
// Returns:
//   - LitGridOption: option function to apply
func WithGrid(rows, columns int) LitGridOption {
	return func(s *litGridImpl) {
		if rows >= 1 {
			s.rows = rows
		}
		if columns >= 1 {
			s.columns = columns
		}
	}
}

// WithSpacing sets the distance between neighbouring cube centers.
//
// Parameters:
//   - spacing: world units between cubes
//
// Returns:
//   - LitGridOption: option function to apply
func WithSpacing(spacing float32) LitGridOption {
	return func(s *litGridImpl) {
		s.spacing = spacing
	}
}

// WithSpinRate sets how fast the cubes rotate.
//
// Parameters:
//   - degreesPerSecond: rotation speed (0 disables spinning)
//
// Returns:
//   - LitGridOption: option function to apply
func WithSpinRate(degreesPerSecond float32) LitGridOption {
	return func(s *litGridImpl) {
		s.spinRate = degreesPerSecond
	}
}

// WithStaticLight fixes the light at a position with constant white light instead of
// orbiting and cycling its color.
//
// Parameters:
//   - x, y, z: light position in world space
//
// Returns:
//   - LitGridOption: option function to apply
func WithStaticLight(x, y, z float32) LitGridOption {
	return func(s *litGridImpl) {
		s.animateLight = false
		s.staticLight = mgl32.Vec3{x, y, z}
	}
}

// WithMaterial sets the cubes' surface material.
//
// Parameters:
//   - m: the Phong material
//
// Returns:
//   - LitGridOption: option function to apply
func WithMaterial(m Material) LitGridOption {
	return func(s *litGridImpl) {
		s.material = m
	}
}

// WithPyramidRow draws count pyramids instead of the cube grid. Pyramid i is scaled by i and
// placed at (i+5, 1, 0) in that scaled space. Pyramids do not spin. A count below 1 is ignored.
//
// Parameters:
//   - count: number of pyramids
//
// Returns:
//   - LitGridOption: option function to apply
func WithPyramidRow(count int) LitGridOption {
	return func(s *litGridImpl) {
		if count < 1 {
			return
		}
		s.shape = ShapePyramid
		s.pyramids = count
	}
}
