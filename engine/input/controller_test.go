package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3Near(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

const epsilon = 1e-5

func newTestController(options ...ControllerOption) (Controller, camera.Camera) {
	cam := camera.NewCamera(camera.WithMouseSensitivity(1), camera.WithMovementSpeed(1))
	return NewController(cam, options...), cam
}

func TestFirstMouseSampleIsSuppressed(t *testing.T) {
	c, cam := newTestController()

	c.MouseMove(800, 450)
	assert.Equal(t, camera.DefaultYaw, cam.Yaw())
	assert.Equal(t, camera.DefaultPitch, cam.Pitch())

	c.MouseMove(810, 445)
	assert.InDelta(t, camera.DefaultYaw+10, cam.Yaw(), epsilon)
	// moving the pointer up the screen (smaller y) looks up
	assert.InDelta(t, 5, cam.Pitch(), epsilon)
}

func TestResetMouseRearmsSuppression(t *testing.T) {
	c, cam := newTestController()
	c.MouseMove(0, 0)
	c.MouseMove(10, 0)
	yaw := cam.Yaw()

	c.ResetMouse()
	c.MouseMove(500, 500)
	assert.Equal(t, yaw, cam.Yaw())
	assert.Equal(t, camera.DefaultPitch, cam.Pitch())
}

func TestWithInitialCursor(t *testing.T) {
	c, cam := newTestController(WithInitialCursor(100, 100))
	c.MouseMove(90, 100)
	assert.InDelta(t, camera.DefaultYaw-10, cam.Yaw(), epsilon)
}

func TestScrollZooms(t *testing.T) {
	c, cam := newTestController()
	c.Scroll(5)
	assert.Equal(t, float32(40), cam.Zoom())
	c.Scroll(-100)
	assert.Equal(t, camera.MaxZoom, cam.Zoom())
}

func TestUpdateMovesForHeldKeys(t *testing.T) {
	c, cam := newTestController()

	c.KeyDown(common.KeyW)
	c.KeyDown(common.KeyE)
	c.Update(0.5)
	assertVec3Near(t, mgl32.Vec3{0, 0.5, -0.5}, cam.Position(), epsilon, "position = %v", cam.Position())

	c.KeyUp(common.KeyW)
	c.KeyUp(common.KeyE)
	c.Update(0.5)
	assertVec3Near(t, mgl32.Vec3{0, 0.5, -0.5}, cam.Position(), epsilon)
}

func TestOpposingKeysCancel(t *testing.T) {
	c, cam := newTestController()
	c.KeyDown(common.KeyA)
	c.KeyDown(common.KeyD)
	c.Update(1)
	assertVec3Near(t, mgl32.Vec3{}, cam.Position(), epsilon, "position = %v", cam.Position())
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	c, cam := newTestController()
	c.KeyDown(common.KeySpace)
	c.Update(1)
	assert.Equal(t, mgl32.Vec3{}, cam.Position())
	for _, d := range camera.Directions {
		assert.False(t, c.Held(d))
	}
}

func TestWithBindings(t *testing.T) {
	c, cam := newTestController(WithBindings(map[uint32]camera.Direction{
		common.KeyUp:   camera.DirectionForward,
		common.KeyDown: camera.DirectionBackward,
		common.KeyZ:    camera.Direction(99),
	}))

	c.KeyDown(common.KeyW)
	assert.False(t, c.Held(camera.DirectionForward))

	c.KeyDown(common.KeyUp)
	assert.True(t, c.Held(camera.DirectionForward))
	c.Update(2)
	assertVec3Near(t, mgl32.Vec3{0, 0, -2}, cam.Position(), epsilon, "position = %v", cam.Position())
}

func TestDisabledControllerLeavesCamera(t *testing.T) {
	c, cam := newTestController()
	c.SetEnabled(false)

	c.KeyDown(common.KeyW)
	c.Update(1)
	c.MouseMove(0, 0)
	c.MouseMove(50, 50)
	c.Scroll(10)

	assert.Equal(t, mgl32.Vec3{}, cam.Position())
	assert.Equal(t, camera.DefaultYaw, cam.Yaw())
	assert.Equal(t, camera.DefaultZoom, cam.Zoom())
	assert.True(t, c.Held(camera.DirectionForward))

	// re-enabling must not turn the camera by the distance travelled while disabled
	c.SetEnabled(true)
	c.MouseMove(400, 400)
	assert.Equal(t, camera.DefaultYaw, cam.Yaw())
	c.Update(1)
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, cam.Position(), epsilon)
}

func TestNewControllerRequiresCamera(t *testing.T) {
	assert.Panics(t, func() { NewController(nil) })
	c, cam := newTestController()
	assert.Same(t, cam, c.Camera())
}

func TestSetBindingsKeepsHeldKeys(t *testing.T) {
	c, cam := newTestController()
	c.KeyDown(common.KeyUp)
	c.Update(1)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.Position())

	c.SetBindings(map[uint32]camera.Direction{common.KeyUp: camera.DirectionUp})
	assert.True(t, c.Held(camera.DirectionUp))
	assert.False(t, c.Held(camera.DirectionForward))

	c.Update(1)
	assert.InDelta(t, 1, cam.Position().Y(), epsilon)
}
