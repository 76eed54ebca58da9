package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func assertVec3Near(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

func assertMat4Near(t *testing.T, want, got mgl32.Mat4, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

func assertOrthonormal(t *testing.T, c Camera) {
	t.Helper()
	front, right, up := c.Front(), c.Right(), c.Up()
	assert.InDelta(t, 1, front.Len(), epsilon, "front is not unit length")
	assert.InDelta(t, 1, right.Len(), epsilon, "right is not unit length")
	assert.InDelta(t, 1, up.Len(), epsilon, "up is not unit length")
	assert.InDelta(t, 0, front.Dot(right), epsilon, "front and right are not orthogonal")
	assert.InDelta(t, 0, front.Dot(up), epsilon, "front and up are not orthogonal")
	assert.InDelta(t, 0, right.Dot(up), epsilon, "right and up are not orthogonal")
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, DefaultYaw, c.Yaw())
	assert.Equal(t, DefaultPitch, c.Pitch())
	assert.Equal(t, DefaultZoom, c.Zoom())
	assert.Equal(t, DefaultMovementSpeed, c.MovementSpeed())
	assert.Equal(t, DefaultMouseSensitivity, c.MouseSensitivity())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.WorldUp())
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, c.Front(), epsilon, "front = %v", c.Front())
	assertOrthonormal(t, c)
}

func TestNewCameraClampsInitialValues(t *testing.T) {
	c := NewCamera(WithPitch(120), WithZoom(90))
	assert.Equal(t, MaxPitch, c.Pitch())
	assert.Equal(t, MaxZoom, c.Zoom())

	c = NewCamera(WithPitch(-120), WithZoom(0))
	assert.Equal(t, MinPitch, c.Pitch())
	assert.Equal(t, MinZoom, c.Zoom())
}

func TestWithWorldUpIgnoresZeroVector(t *testing.T) {
	c := NewCamera(WithWorldUp(0, 0, 0))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.WorldUp())

	c = NewCamera(WithWorldUp(0, 2, 0))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.WorldUp())
}

func TestViewMatrixAtStartPosition(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 3))

	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, c.Front(), epsilon)
	expected := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	assertMat4Near(t, expected, c.ViewMatrix(), epsilon, "view = %v", c.ViewMatrix())
}

func TestViewMatrixIsIdempotent(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 3), WithYaw(12), WithPitch(-30))
	first := c.ViewMatrix()
	second := c.ViewMatrix()
	assert.Equal(t, first, second)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		expected  mgl32.Vec3
	}{
		{"forward", DirectionForward, mgl32.Vec3{0, 0, -2}},
		{"backward", DirectionBackward, mgl32.Vec3{0, 0, 2}},
		{"left", DirectionLeft, mgl32.Vec3{-2, 0, 0}},
		{"right", DirectionRight, mgl32.Vec3{2, 0, 0}},
		{"up", DirectionUp, mgl32.Vec3{0, 2, 0}},
		{"down", DirectionDown, mgl32.Vec3{0, -2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(WithMovementSpeed(4))
			c.ProcessKeyboard(tt.direction, 0.5)
			assertVec3Near(t, tt.expected, c.Position(), epsilon, "position = %v", c.Position())
		})
	}
}

func TestProcessKeyboardVerticalIgnoresPitch(t *testing.T) {
	c := NewCamera(WithPitch(45))
	c.ProcessKeyboard(DirectionUp, 1)
	assertVec3Near(t, mgl32.Vec3{0, DefaultMovementSpeed, 0}, c.Position(), epsilon)
}

func TestProcessKeyboardZeroDeltaIsNoOp(t *testing.T) {
	c := NewCamera(WithPosition(1, 1, 1))
	for _, d := range Directions {
		c.ProcessKeyboard(d, 0)
	}
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, c.Position())
}

func TestProcessKeyboardForwardBackwardRoundTrip(t *testing.T) {
	c := NewCamera(WithPosition(0.5, -1, 3), WithYaw(33), WithPitch(17))
	start := c.Position()
	c.ProcessKeyboard(DirectionForward, 0.016)
	require.NotEqual(t, start, c.Position())
	c.ProcessKeyboard(DirectionBackward, 0.016)
	assertVec3Near(t, start, c.Position(), epsilon, "position = %v, start = %v", c.Position(), start)
}

func TestProcessMouseMovementRotatesYaw(t *testing.T) {
	c := NewCamera(WithMouseSensitivity(1))
	c.ProcessMouseMovement(90, 0, true)

	assert.InDelta(t, 0, c.Yaw(), epsilon)
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, c.Front(), epsilon, "front = %v", c.Front())
	assertVec3Near(t, mgl32.Vec3{0, 0, 1}, c.Right(), epsilon, "right = %v", c.Right())
	assertOrthonormal(t, c)
}

func TestProcessMouseMovementAppliesSensitivity(t *testing.T) {
	c := NewCamera(WithMouseSensitivity(0.1))
	c.ProcessMouseLook(100, 50)
	assert.InDelta(t, DefaultYaw+10, c.Yaw(), epsilon)
	assert.InDelta(t, 5, c.Pitch(), epsilon)
}

func TestProcessMouseMovementConstrainsPitch(t *testing.T) {
	c := NewCamera(WithMouseSensitivity(1))
	c.ProcessMouseMovement(0, 500, true)
	assert.Equal(t, MaxPitch, c.Pitch())
	assertOrthonormal(t, c)

	c.ProcessMouseMovement(0, -1000, true)
	assert.Equal(t, MinPitch, c.Pitch())
	assertOrthonormal(t, c)
}

func TestProcessMouseMovementUnconstrained(t *testing.T) {
	c := NewCamera(WithMouseSensitivity(1))
	c.ProcessMouseMovement(0, 120, false)
	assert.Equal(t, float32(120), c.Pitch())
}

func TestPitchInvariantUnderRandomMovement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewCamera(WithMouseSensitivity(0.7))
	for i := 0; i < 1000; i++ {
		x := float32(rng.NormFloat64() * 200)
		y := float32(rng.NormFloat64() * 200)
		c.ProcessMouseLook(x, y)
		require.GreaterOrEqual(t, c.Pitch(), MinPitch)
		require.LessOrEqual(t, c.Pitch(), MaxPitch)
		assertOrthonormal(t, c)
	}
}

func TestProcessMouseScrollClamps(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 10; i++ {
		c.ProcessMouseScroll(10)
		assert.GreaterOrEqual(t, c.Zoom(), MinZoom)
	}
	assert.Equal(t, MinZoom, c.Zoom())

	c.ProcessMouseScroll(-100)
	assert.Equal(t, MaxZoom, c.Zoom())
}

func TestZoomInvariantUnderRandomScroll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCamera()
	for i := 0; i < 500; i++ {
		c.ProcessMouseScroll(float32(rng.NormFloat64() * 20))
		require.GreaterOrEqual(t, c.Zoom(), MinZoom)
		require.LessOrEqual(t, c.Zoom(), MaxZoom)
	}
}

func TestProjectionMatrixUsesZoom(t *testing.T) {
	c := NewCamera()
	expected := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)
	assertMat4Near(t, expected, c.ProjectionMatrix(16.0/9.0, 0.1, 100), epsilon)

	c.ProcessMouseScroll(15)
	expected = mgl32.Perspective(mgl32.DegToRad(30), 16.0/9.0, 0.1, 100)
	assertMat4Near(t, expected, c.ProjectionMatrix(16.0/9.0, 0.1, 100), epsilon)
}

func TestSetters(t *testing.T) {
	c := NewCamera()
	c.SetMovementSpeed(10)
	c.SetMouseSensitivity(0.5)
	assert.Equal(t, float32(10), c.MovementSpeed())
	assert.Equal(t, float32(0.5), c.MouseSensitivity())
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		assert.True(t, d.Valid())
		parsed, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}
	assert.False(t, Direction(200).Valid())
	assert.Equal(t, "unknown", Direction(200).String())

	_, ok := ParseDirection("sideways")
	assert.False(t, ok)
}
