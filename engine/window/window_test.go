package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, 1280, w.Width())
	assert.Equal(t, 720, w.Height())
	assert.Equal(t, 4, w.glMajor)
	assert.Equal(t, 1, w.glMinor)
	assert.True(t, w.vsync)
	assert.True(t, w.cursorCaptured)
	assert.NotNil(t, w.logger)
}

func TestWindowOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("viewer"),
		WithTitle(""),
		WithWidth(800),
		WithHeight(600),
		WithMinWidth(320),
		WithMinHeight(240),
		WithMaxWidth(1920),
		WithMaxHeight(1080),
		WithVSync(false),
		WithCursorCaptured(false),
		WithGLVersion(3, 3),
		WithGLVersion(2, 1),
		WithLogger(nil),
	)
	assert.Equal(t, "viewer", w.title)
	assert.Equal(t, 800, w.width)
	assert.Equal(t, 600, w.height)
	assert.Equal(t, 320, w.minWidth)
	assert.Equal(t, 240, w.minHeight)
	assert.Equal(t, 1920, w.maxWidth)
	assert.Equal(t, 1080, w.maxHeight)
	assert.False(t, w.vsync)
	assert.False(t, w.cursorCaptured)
	assert.Equal(t, 3, w.glMajor)
	assert.Equal(t, 3, w.glMinor)
	assert.NotNil(t, w.logger)
}

func TestAspectAndResize(t *testing.T) {
	w := newEngineWindow(WithWidth(1600), WithHeight(900))
	assert.InDelta(t, 16.0/9.0, w.Aspect(), 1e-6)

	var gotW, gotH int
	w.SetResizeCallback(func(width, height int) {
		gotW, gotH = width, height
	})
	w.handleResize(800, 0)
	assert.Equal(t, 800, gotW)
	assert.Equal(t, 0, gotH)
	assert.Equal(t, float32(1), w.Aspect())
}

func TestUninitializedPlatformWindow(t *testing.T) {
	w := newEngineWindow()
	assert.False(t, w.IsRunning())
	assert.Error(t, w.Close())
	assert.NotPanics(t, func() {
		w.PollEvents()
		w.SwapBuffers()
		w.RequestClose()
		w.SetCursorCaptured(false)
	})
}
