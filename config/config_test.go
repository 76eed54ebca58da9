package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bindings, err := cfg.Controls.Bindings()
	require.NoError(t, err)
	assert.Equal(t, map[uint32]camera.Direction{
		common.KeyW: camera.DirectionForward,
		common.KeyS: camera.DirectionBackward,
		common.KeyA: camera.DirectionLeft,
		common.KeyD: camera.DirectionRight,
		common.KeyE: camera.DirectionUp,
		common.KeyQ: camera.DirectionDown,
	}, bindings)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  title: Fly
camera:
  position: [1, 2, 3]
  movement_speed: 5
controls:
  up: space
  down: left_shift
`))
	require.NoError(t, err)

	assert.Equal(t, "Fly", cfg.Window.Title)
	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, []float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(5), cfg.Camera.MovementSpeed)
	assert.Equal(t, camera.DefaultMouseSensitivity, cfg.Camera.MouseSensitivity)
	assert.Equal(t, float32(100), cfg.Projection.Far)

	bindings, err := cfg.Controls.Bindings()
	require.NoError(t, err)
	assert.Equal(t, camera.DirectionUp, bindings[common.KeySpace])
	assert.Equal(t, camera.DirectionDown, bindings[common.KeyLeftShift])
	assert.Equal(t, camera.DirectionForward, bindings[common.KeyW])
}

func TestParseEmptyDocumentReturnsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsInvalid(t *testing.T) {
	data := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "window: [unterminated"},
		{"zero width", "window: {width: 0}"},
		{"short position", "camera: {position: [1, 2]}"},
		{"negative speed", "camera: {movement_speed: -1}"},
		{"near not positive", "projection: {near: 0}"},
		{"far before near", "projection: {near: 10, far: 5}"},
		{"unknown level", "logging: {level: chatty}"},
		{"unknown key", "controls: {forward: hyper}"},
		{"duplicate key", "controls: {forward: W, up: w}"},
		{"unknown shape", "scene: {shape: torus}"},
		{"no pyramids", "scene: {shape: pyramid, pyramids: 0}"},
		{"escape bound", "controls: {down: Escape}"},
		{"esc bound", "controls: {forward: esc}"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := Parse([]byte(d.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoggingLevelMatchesLogger(t *testing.T) {
	data := []struct {
		name  string
		level zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{" Debug ", zapcore.DebugLevel},
		{"ERROR", zapcore.ErrorLevel},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Level = d.name
			require.NoError(t, cfg.Validate())
			level, err := cfg.Logging.ZapLevel()
			require.NoError(t, err)
			assert.Equal(t, d.level, level)
		})
	}
}

func TestEmptyControlIsUnbound(t *testing.T) {
	cfg, err := Parse([]byte(`controls: {up: "", down: ""}`))
	require.NoError(t, err)
	bindings, err := cfg.Controls.Bindings()
	require.NoError(t, err)
	assert.Len(t, bindings, 4)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "oxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projection: {far: 250}\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(250), cfg.Projection.Far)
}

func TestSceneOptions(t *testing.T) {
	assert.Empty(t, Default().Scene.Options())
	assert.Equal(t, 14, scene.NewLitGrid(Default().Scene.Options()...).Len())

	cfg, err := Parse([]byte(`scene: {shape: Pyramid, pyramids: 5}`))
	require.NoError(t, err)
	assert.Equal(t, 5, scene.NewLitGrid(cfg.Scene.Options()...).Len())
}

func TestCameraOptions(t *testing.T) {
	cfg, err := Parse([]byte(`camera: {position: [4, 5, 6], yaw: 0, pitch: 10, zoom: 30}`))
	require.NoError(t, err)

	cam := camera.NewCamera(cfg.Camera.CameraOptions()...)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cam.Position())
	assert.Equal(t, float32(0), cam.Yaw())
	assert.Equal(t, float32(10), cam.Pitch())
	assert.Equal(t, float32(30), cam.Zoom())
	assert.Equal(t, camera.DefaultMovementSpeed, cam.MovementSpeed())
}
