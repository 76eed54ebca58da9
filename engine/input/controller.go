// Package input translates raw window events into free-fly camera operations.
package input

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
)

// DefaultBindings maps WASD to horizontal movement and E/Q to vertical movement.
var DefaultBindings = map[uint32]camera.Direction{
	common.KeyW: camera.DirectionForward,
	common.KeyS: camera.DirectionBackward,
	common.KeyA: camera.DirectionLeft,
	common.KeyD: camera.DirectionRight,
	common.KeyE: camera.DirectionUp,
	common.KeyQ: camera.DirectionDown,
}

type controllerImpl struct {
	cam camera.Camera

	bindings map[uint32]camera.Direction
	held     map[uint32]bool

	// pointer tracking for mouse look
	lastX, lastY float64
	firstSample  bool

	enabled bool
}

// Controller bridges window input callbacks to a Camera.
// Key state is accumulated from key down/up events and applied once per frame through Update,
// while pointer and scroll events are forwarded to the camera as they arrive.
//
// A Controller is bound to exactly one Camera and is not safe for concurrent use; window
// callbacks and Update must run on the same thread.
type Controller interface {
	// KeyDown records that a key is being held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyDown(keyCode uint32)

	// KeyUp records that a key was released.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// MouseMove handles an absolute pointer position. The first sample after construction
	// (or after ResetMouse) only records the position so it does not cause a jump.
	// Later samples turn the camera by the delta, with the vertical delta inverted because
	// screen Y grows downward while pitch grows upward.
	//
	// Parameters:
	//   - x, y: pointer position in screen pixels
	MouseMove(x, y float64)

	// Scroll forwards a vertical scroll delta to the camera's zoom.
	//
	// Parameters:
	//   - yOffset: scroll wheel delta
	Scroll(yOffset float64)

	// Update moves the camera for every held, bound key.
	// Directions are applied in camera.Directions order.
	//
	// Parameters:
	//   - deltaTime: seconds elapsed since the previous frame
	Update(deltaTime float32)

	// ResetMouse re-arms first-sample suppression, e.g. after the cursor is re-captured.
	ResetMouse()

	// Held reports whether any key bound to the direction is currently held.
	//
	// Parameters:
	//   - direction: the movement direction
	//
	// Returns:
	//   - bool: true if a bound key is held
	Held(direction camera.Direction) bool

	// SetEnabled enables or disables camera updates. Disabled controllers still track key
	// state but do not move or turn the camera.
	//
	// Parameters:
	//   - enabled: whether input drives the camera
	SetEnabled(enabled bool)

	// SetBindings replaces the key bindings. Keys bound to an invalid direction are ignored.
	// Keys already held stay held and move the camera under their new binding.
	//
	// Parameters:
	//   - bindings: map of virtual key code to movement direction
	SetBindings(bindings map[uint32]camera.Direction)

	// Camera returns the camera driven by this controller.
	Camera() camera.Camera
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller driving cam with DefaultBindings.
//
// Parameters:
//   - cam: the camera to drive (must not be nil)
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(cam camera.Camera, options ...ControllerOption) Controller {
	if cam == nil {
		panic("input: NewController requires a non-nil Camera")
	}
	c := &controllerImpl{
		cam:         cam,
		bindings:    make(map[uint32]camera.Direction, len(DefaultBindings)),
		held:        make(map[uint32]bool),
		firstSample: true,
		enabled:     true,
	}
	for k, d := range DefaultBindings {
		c.bindings[k] = d
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controllerImpl) KeyDown(keyCode uint32) {
	c.held[keyCode] = true
}

func (c *controllerImpl) KeyUp(keyCode uint32) {
	delete(c.held, keyCode)
}

func (c *controllerImpl) MouseMove(x, y float64) {
	if c.firstSample {
		c.lastX, c.lastY = x, y
		c.firstSample = false
		return
	}

	xOffset := x - c.lastX
	yOffset := c.lastY - y
	c.lastX, c.lastY = x, y

	if !c.enabled {
		return
	}
	c.cam.ProcessMouseLook(float32(xOffset), float32(yOffset))
}

func (c *controllerImpl) Scroll(yOffset float64) {
	if !c.enabled {
		return
	}
	c.cam.ProcessMouseScroll(float32(yOffset))
}

func (c *controllerImpl) Update(deltaTime float32) {
	if !c.enabled || deltaTime == 0 {
		return
	}
	for _, d := range camera.Directions {
		if c.Held(d) {
			c.cam.ProcessKeyboard(d, deltaTime)
		}
	}
}

func (c *controllerImpl) ResetMouse() {
	c.firstSample = true
}

func (c *controllerImpl) Held(direction camera.Direction) bool {
	for key := range c.held {
		if d, ok := c.bindings[key]; ok && d == direction {
			return true
		}
	}
	return false
}

func (c *controllerImpl) SetEnabled(enabled bool) {
	c.enabled = enabled
	if enabled {
		c.firstSample = true
	}
}

func (c *controllerImpl) SetBindings(bindings map[uint32]camera.Direction) {
	WithBindings(bindings)(c)
}

func (c *controllerImpl) Camera() camera.Camera {
	return c.cam
}
