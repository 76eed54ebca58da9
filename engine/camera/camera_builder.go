package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithWorldUp sets the reference up vector used to derive the camera's right vector.
// The vector is normalized; a zero vector leaves the default (+Y) in place.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the world up vector
func WithWorldUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		up := mgl32.Vec3{x, y, z}
		if up.Len() == 0 {
			return
		}
		c.worldUp = up.Normalize()
	}
}

// WithYaw sets the initial yaw angle.
//
// Parameters:
//   - yaw: angle in degrees around the world up axis (-90 looks down -Z)
//
// Returns:
//   - CameraBuilderOption: a function that sets the yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial pitch angle. The value is clamped to [MinPitch, MaxPitch].
//
// Parameters:
//   - pitch: angle in degrees, positive looks up
//
// Returns:
//   - CameraBuilderOption: a function that sets the pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
	}
}

// WithMovementSpeed sets the keyboard movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraBuilderOption: a function that sets the movement speed
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the multiplier applied to pointer deltas.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - CameraBuilderOption: a function that sets the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}

// WithZoom sets the initial vertical field of view. The value is clamped to [MinZoom, MaxZoom].
//
// Parameters:
//   - zoom: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}
