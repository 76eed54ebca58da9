// Package scene describes what the viewer draws each frame: a grid of spinning lit cubes (or a
// row of growing pyramids) and a lamp cube whose position and color change over time. It holds
// no GPU state.
package scene

import (
	"math"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// cubeBoundingRadius is the bounding sphere radius of a unit cube centered at its origin.
	cubeBoundingRadius float32 = 0.8660254 // sqrt(3)/2
	// pyramidBoundingRadius bounds a unit-base pyramid of height 1 around its base center.
	pyramidBoundingRadius float32 = 1
)

// Shape selects the mesh the scene's instances are drawn with.
type Shape int

const (
	ShapeCube Shape = iota
	ShapePyramid
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapePyramid:
		return "pyramid"
	default:
		return "unknown"
	}
}

// Material holds Phong reflectance terms.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// PointLight holds a light position and its Phong intensity terms.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Frame is the complete draw list for one frame.
// Models aliases a buffer owned by the Scene and is only valid until the next call to Scene.Frame.
type Frame struct {
	View         mgl32.Mat4
	Projection   mgl32.Mat4
	ViewPosition mgl32.Vec3

	Material Material
	Light    PointLight

	// Shape is the mesh every entry of Models is drawn with.
	Shape Shape
	// Models holds the model matrices of the instances that survived frustum culling.
	Models []mgl32.Mat4
	// Culled is how many instances were skipped because they were outside the view frustum.
	Culled int

	// Lamp is the model matrix of the small cube marking the light position.
	Lamp mgl32.Mat4
}

// instance is one drawn shape. Its model matrix is base, followed by a spin around axis when
// spin is set.
type instance struct {
	base   mgl32.Mat4
	center mgl32.Vec3
	radius float32
	axis   mgl32.Vec3
	spin   bool
}

type litGridImpl struct {
	rows     int
	columns  int
	spacing  float32
	spinRate float32 // degrees per second

	animateLight bool
	staticLight  mgl32.Vec3
	lampScale    float32

	material Material

	shape    Shape
	pyramids int

	instances []instance
	visible   []mgl32.Mat4
}

// Scene produces the per-frame draw list.
type Scene interface {
	// Frame builds the draw list at time t.
	//
	// Parameters:
	//   - t: seconds since the scene started
	//   - view: the camera view matrix
	//   - projection: the camera projection matrix
	//   - viewPos: the camera position, used for specular highlights
	//
	// Returns:
	//   - Frame: the draw list
	Frame(t float32, view, projection mgl32.Mat4, viewPos mgl32.Vec3) Frame

	// Len returns the number of instances in the scene, culled or not.
	Len() int

	// LampPosition returns the light position at time t.
	LampPosition(t float32) mgl32.Vec3

	// Light returns the light at time t.
	Light(t float32) PointLight
}

var _ Scene = &litGridImpl{}

// NewLitGrid creates a grid of cubes laid out at ((col+1)*spacing, (row+1)*spacing, 0).
// Cubes in row i spin around the axis (1, i, 0). Defaults are 2 rows of 7 cubes spaced 2.5
// apart spinning at 15°/s, with a coral material and an animated light.
// WithPyramidRow replaces the grid with a row of pyramids.
//
// Parameters:
//   - options: functional options to configure the grid
//
// Returns:
//   - Scene: the newly created scene
func NewLitGrid(options ...LitGridOption) Scene {
	s := &litGridImpl{
		rows:         2,
		columns:      7,
		spacing:      2.5,
		spinRate:     15,
		animateLight: true,
		staticLight:  mgl32.Vec3{1.2, 1.0, 2.0},
		lampScale:    0.2,
		material: Material{
			Ambient:   mgl32.Vec3{1.0, 0.5, 0.31},
			Diffuse:   mgl32.Vec3{1.0, 0.5, 0.31},
			Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
			Shininess: 32,
		},
	}
	for _, option := range options {
		option(s)
	}

	if s.shape == ShapePyramid {
		s.instances = pyramidRow(s.pyramids)
	} else {
		s.instances = cubeGrid(s.rows, s.columns, s.spacing)
	}
	s.visible = make([]mgl32.Mat4, 0, len(s.instances))
	return s
}

func cubeGrid(rows, columns int, spacing float32) []instance {
	instances := make([]instance, 0, rows*columns)
	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			pos := mgl32.Vec3{float32(j+1) * spacing, float32(i+1) * spacing, 0}
			instances = append(instances, instance{
				base:   mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()),
				center: pos,
				radius: cubeBoundingRadius,
				axis:   mgl32.Vec3{1, float32(i), 0}.Normalize(),
				spin:   true,
			})
		}
	}
	return instances
}

// pyramidRow places pyramid i at (i+5, 1, 0) in a space scaled by i, so each pyramid is
// larger and further out than the one before. The first one is scaled to nothing.
func pyramidRow(count int) []instance {
	instances := make([]instance, 0, count)
	for i := 0; i < count; i++ {
		scale := float32(i)
		pos := mgl32.Vec3{float32(i + 5), 1, 0}
		instances = append(instances, instance{
			base:   mgl32.Scale3D(scale, scale, scale).Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())),
			center: pos.Mul(scale),
			radius: pyramidBoundingRadius * scale,
		})
	}
	return instances
}

func (s *litGridImpl) Len() int {
	return len(s.instances)
}

func (s *litGridImpl) Frame(t float32, view, projection mgl32.Mat4, viewPos mgl32.Vec3) Frame {
	frustum := common.ExtractFrustum(projection.Mul4(view))
	angle := t * mgl32.DegToRad(s.spinRate)

	s.visible = s.visible[:0]
	culled := 0
	for _, inst := range s.instances {
		if !frustum.ContainsSphere(inst.center, inst.radius) {
			culled++
			continue
		}
		model := inst.base
		if inst.spin {
			model = model.Mul4(mgl32.HomogRotate3D(angle, inst.axis))
		}
		s.visible = append(s.visible, model)
	}

	light := s.Light(t)
	lamp := mgl32.Translate3D(light.Position.X(), light.Position.Y(), light.Position.Z()).
		Mul4(mgl32.Scale3D(s.lampScale, s.lampScale, s.lampScale))

	return Frame{
		View:         view,
		Projection:   projection,
		ViewPosition: viewPos,
		Material:     s.material,
		Light:        light,
		Shape:        s.shape,
		Models:       s.visible,
		Culled:       culled,
		Lamp:         lamp,
	}
}

func (s *litGridImpl) LampPosition(t float32) mgl32.Vec3 {
	if !s.animateLight {
		return s.staticLight
	}
	return mgl32.Vec3{
		9 + sin(t)*7,
		sin(t / 2),
		s.staticLight.Z(),
	}
}

func (s *litGridImpl) Light(t float32) PointLight {
	light := PointLight{
		Position: s.LampPosition(t),
		Ambient:  mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:  mgl32.Vec3{0.5, 0.5, 0.5},
		Specular: mgl32.Vec3{1, 1, 1},
	}
	if s.animateLight {
		color := mgl32.Vec3{sin(t * 2), sin(t * 0.7), sin(t * 1.3)}
		light.Diffuse = color.Mul(0.5)
		light.Ambient = light.Diffuse.Mul(0.2)
	}
	return light
}

func sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
