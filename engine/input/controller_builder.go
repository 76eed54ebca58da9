package input

import "github.com/Carmen-Shannon/oxy-gl/engine/camera"

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithBindings replaces the default key bindings. Keys bound to an invalid direction are ignored.
//
// Parameters:
//   - bindings: map of virtual key code to movement direction
//
// Returns:
//   - ControllerOption: functional option to set the bindings
func WithBindings(bindings map[uint32]camera.Direction) ControllerOption {
	return func(c *controllerImpl) {
		c.bindings = make(map[uint32]camera.Direction, len(bindings))
		for k, d := range bindings {
			if d.Valid() {
				c.bindings[k] = d
			}
		}
	}
}

// WithInitialCursor seeds the last known pointer position, disabling first-sample suppression.
// Use this when the cursor is known to start at a fixed position such as the window center.
//
// Parameters:
//   - x, y: pointer position in screen pixels
//
// Returns:
//   - ControllerOption: functional option to set the initial cursor position
func WithInitialCursor(x, y float64) ControllerOption {
	return func(c *controllerImpl) {
		c.lastX, c.lastY = x, y
		c.firstSample = false
	}
}
