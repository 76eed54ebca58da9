package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default camera settings.
const (
	DefaultYaw              float32 = -90.0
	DefaultPitch            float32 = 0.0
	DefaultMovementSpeed    float32 = 2.5
	DefaultMouseSensitivity float32 = 0.1
	DefaultZoom             float32 = 45.0
)

// Orientation and field-of-view limits, in degrees.
const (
	MaxPitch float32 = 89.0
	MinPitch float32 = -89.0
	MinZoom  float32 = 1.0
	MaxZoom  float32 = 45.0
)

type cameraImpl struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

// Camera defines a free-fly camera driven by keyboard movement, mouse look and scroll zoom.
// The camera only consumes already-extracted deltas; it has no knowledge of the window or
// input system and performs no timing of its own.
//
// A Camera is not safe for concurrent use. It is meant to be mutated and read from the
// render loop's thread only.
type Camera interface {
	// ViewMatrix returns the look-at transform from Position towards Position+Front using Up.
	// Calling it has no side effects.
	//
	// Returns:
	//   - mgl32.Mat4: the world-to-eye view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns a perspective projection using Zoom as the vertical field of view.
	//
	// Parameters:
	//   - aspect: viewport aspect ratio (width / height)
	//   - near: near clipping plane distance (must be > 0)
	//   - far: far clipping plane distance (must be > near)
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix(aspect, near, far float32) mgl32.Mat4

	// ProcessKeyboard moves the camera one step in the given direction.
	// The step length is MovementSpeed * deltaTime. A deltaTime of 0 leaves the camera unchanged.
	//
	// Parameters:
	//   - direction: the movement direction
	//   - deltaTime: seconds elapsed since the previous frame, must be >= 0 (not validated)
	ProcessKeyboard(direction Direction, deltaTime float32)

	// ProcessMouseMovement turns the camera by the given pointer deltas scaled by MouseSensitivity.
	// yOffset must already be inverted relative to screen coordinates, so positive values look up.
	//
	// Parameters:
	//   - xOffset: horizontal pointer delta in pixels, added to yaw
	//   - yOffset: vertical pointer delta in pixels (up positive), added to pitch
	//   - constrainPitch: if true, pitch is clamped to [MinPitch, MaxPitch]
	ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool)

	// ProcessMouseLook is ProcessMouseMovement with pitch constraint enabled.
	//
	// Parameters:
	//   - xOffset: horizontal pointer delta in pixels
	//   - yOffset: vertical pointer delta in pixels (up positive)
	ProcessMouseLook(xOffset, yOffset float32)

	// ProcessMouseScroll narrows (positive yOffset) or widens the field of view.
	// The resulting zoom is clamped to [MinZoom, MaxZoom].
	//
	// Parameters:
	//   - yOffset: scroll wheel delta
	ProcessMouseScroll(yOffset float32)

	// Position returns the camera's world-space position.
	Position() mgl32.Vec3

	// Front returns the unit vector the camera is looking along.
	Front() mgl32.Vec3

	// Right returns the camera's unit right vector.
	Right() mgl32.Vec3

	// Up returns the camera's unit up vector.
	Up() mgl32.Vec3

	// WorldUp returns the fixed reference up vector.
	WorldUp() mgl32.Vec3

	// Yaw returns the yaw angle in degrees.
	Yaw() float32

	// Pitch returns the pitch angle in degrees.
	Pitch() float32

	// Zoom returns the vertical field of view in degrees.
	Zoom() float32

	// MovementSpeed returns the movement speed in world units per second.
	MovementSpeed() float32

	// MouseSensitivity returns the multiplier applied to pointer deltas.
	MouseSensitivity() float32

	// SetMovementSpeed sets the movement speed in world units per second.
	//
	// Parameters:
	//   - speed: world units per second
	SetMovementSpeed(speed float32)

	// SetMouseSensitivity sets the multiplier applied to pointer deltas.
	//
	// Parameters:
	//   - sensitivity: degrees per pixel
	SetMouseSensitivity(sensitivity float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new free-fly Camera.
// Defaults place the camera at the origin looking down -Z (yaw -90°, pitch 0°) with +Y as world up.
// The orientation basis is computed once all options are applied.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		worldUp:          mgl32.Vec3{0, 1, 0},
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		movementSpeed:    DefaultMovementSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
		zoom:             DefaultZoom,
	}
	for _, option := range options {
		option(c)
	}
	c.pitch = mgl32.Clamp(c.pitch, MinPitch, MaxPitch)
	c.zoom = mgl32.Clamp(c.zoom, MinZoom, MaxZoom)
	c.updateCameraVectors()
	return c
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *cameraImpl) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, near, far)
}

func (c *cameraImpl) ProcessKeyboard(direction Direction, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case DirectionForward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case DirectionBackward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case DirectionLeft:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case DirectionRight:
		c.position = c.position.Add(c.right.Mul(velocity))
	case DirectionUp:
		c.position = c.position.Add(c.worldUp.Mul(velocity))
	case DirectionDown:
		c.position = c.position.Sub(c.worldUp.Mul(velocity))
	}
}

func (c *cameraImpl) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.yaw += xOffset * c.mouseSensitivity
	c.pitch += yOffset * c.mouseSensitivity

	// past ±90° the up vector flips
	if constrainPitch {
		c.pitch = mgl32.Clamp(c.pitch, MinPitch, MaxPitch)
	}

	c.updateCameraVectors()
}

func (c *cameraImpl) ProcessMouseLook(xOffset, yOffset float32) {
	c.ProcessMouseMovement(xOffset, yOffset, true)
}

func (c *cameraImpl) ProcessMouseScroll(yOffset float32) {
	c.zoom = mgl32.Clamp(c.zoom-yOffset, MinZoom, MaxZoom)
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	return c.front
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	return c.right
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	return c.worldUp
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) Zoom() float32 {
	return c.zoom
}

func (c *cameraImpl) MovementSpeed() float32 {
	return c.movementSpeed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	return c.mouseSensitivity
}

func (c *cameraImpl) SetMovementSpeed(speed float32) {
	c.movementSpeed = speed
}

func (c *cameraImpl) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}

// updateCameraVectors recomputes the front, right and up basis from yaw and pitch.
// Must be called after every change to yaw, pitch or worldUp.
func (c *cameraImpl) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
