// Package config loads the viewer configuration from YAML.
// Every field has a default; a configuration file only needs to list what it overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the full viewer configuration.
type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Scene      Scene      `yaml:"scene"`
	Controls   Controls   `yaml:"controls"`
	Logging    Logging    `yaml:"logging"`
	Metrics    Metrics    `yaml:"metrics"`
}

// Window holds the window and context settings.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// Camera holds the initial camera state and its tuning.
type Camera struct {
	// Position is the initial world-space position as [x, y, z].
	Position         []float32 `yaml:"position"`
	Yaw              float32   `yaml:"yaw"`
	Pitch            float32   `yaml:"pitch"`
	MovementSpeed    float32   `yaml:"movement_speed"`
	MouseSensitivity float32   `yaml:"mouse_sensitivity"`
	Zoom             float32   `yaml:"zoom"`
}

// Projection holds the clipping planes of the perspective projection.
type Projection struct {
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// Scene selects what the viewer draws.
type Scene struct {
	// Shape is "cube" for the lit cube grid or "pyramid" for a row of pyramids.
	Shape string `yaml:"shape"`
	// Pyramids is how many pyramids the pyramid row holds.
	Pyramids int `yaml:"pyramids"`
}

// Controls holds the key name bound to each movement direction.
// An empty name leaves the direction unbound.
type Controls struct {
	Forward  string `yaml:"forward"`
	Backward string `yaml:"backward"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
}

// Logging holds the logger settings.
type Logging struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Metrics holds the prometheus endpoint settings.
type Metrics struct {
	// Listen is the address the /metrics endpoint listens on. Empty disables it.
	Listen string `yaml:"listen"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - *Config: a new configuration with every field set to its default
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "LearnOpenGL",
			Width:  1600,
			Height: 900,
			VSync:  true,
		},
		Camera: Camera{
			Position:         []float32{0, 0, 3},
			Yaw:              camera.DefaultYaw,
			Pitch:            camera.DefaultPitch,
			MovementSpeed:    camera.DefaultMovementSpeed,
			MouseSensitivity: camera.DefaultMouseSensitivity,
			Zoom:             camera.DefaultZoom,
		},
		Projection: Projection{
			Near: 0.1,
			Far:  100,
		},
		Scene: Scene{
			Shape:    "cube",
			Pyramids: 25,
		},
		Controls: Controls{
			Forward:  "W",
			Backward: "S",
			Left:     "A",
			Right:    "D",
			Up:       "E",
			Down:     "Q",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads and validates the configuration file at path.
// An empty path returns the defaults.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read, parsed or fails validation
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if the document cannot be decoded or fails validation
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the viewer cannot run with.
// All problems are reported together.
//
// Returns:
//   - error: nil if the configuration is usable
func (c *Config) Validate() error {
	var err error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if len(c.Camera.Position) != 3 {
		err = multierr.Append(err, fmt.Errorf("camera.position must have 3 components, got %d", len(c.Camera.Position)))
	}
	if c.Camera.MovementSpeed < 0 {
		err = multierr.Append(err, fmt.Errorf("camera.movement_speed must not be negative, got %v", c.Camera.MovementSpeed))
	}
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		err = multierr.Append(err, fmt.Errorf("projection requires 0 < near < far, got near=%v far=%v", c.Projection.Near, c.Projection.Far))
	}
	switch strings.ToLower(c.Scene.Shape) {
	case "cube":
	case "pyramid":
		if c.Scene.Pyramids < 1 {
			err = multierr.Append(err, fmt.Errorf("scene.pyramids must be positive, got %d", c.Scene.Pyramids))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown scene.shape %q", c.Scene.Shape))
	}
	if _, lErr := c.Logging.ZapLevel(); lErr != nil {
		err = multierr.Append(err, fmt.Errorf("logging.level: %w", lErr))
	}
	if _, bErr := c.Controls.Bindings(); bErr != nil {
		err = multierr.Append(err, bErr)
	}
	return err
}

// Bindings resolves the control key names into key codes.
//
// Returns:
//   - map[uint32]camera.Direction: key code to direction
//   - error: error if a key name is unknown, reserved or bound twice
func (c Controls) Bindings() (map[uint32]camera.Direction, error) {
	names := map[camera.Direction]string{
		camera.DirectionForward:  c.Forward,
		camera.DirectionBackward: c.Backward,
		camera.DirectionLeft:     c.Left,
		camera.DirectionRight:    c.Right,
		camera.DirectionUp:       c.Up,
		camera.DirectionDown:     c.Down,
	}

	var err error
	bindings := make(map[uint32]camera.Direction, len(names))
	for _, d := range camera.Directions {
		name := names[d]
		if name == "" {
			continue
		}
		code, ok := common.KeyCode(name)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("controls.%s: unknown key %q", d, name))
			continue
		}
		if code == common.KeyEsc {
			err = multierr.Append(err, fmt.Errorf("controls.%s: %q is reserved for closing the window", d, name))
			continue
		}
		if prev, dup := bindings[code]; dup {
			err = multierr.Append(err, fmt.Errorf("controls.%s: key %q already bound to %s", d, name, prev))
			continue
		}
		bindings[code] = d
	}
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

// ZapLevel maps the level name to a zap level.
// Names are case-insensitive; "warning" is accepted for warn and an empty name means info.
//
// Returns:
//   - zapcore.Level: the level
//   - error: error if the name is unknown
func (l Logging) ZapLevel() (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", l.Level)
}

// Options converts the scene section into scene builder options.
//
// Returns:
//   - []scene.LitGridOption: options for scene.NewLitGrid
func (s Scene) Options() []scene.LitGridOption {
	if strings.EqualFold(s.Shape, "pyramid") {
		return []scene.LitGridOption{scene.WithPyramidRow(s.Pyramids)}
	}
	return nil
}

// CameraOptions converts the camera section into camera builder options.
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c Camera) CameraOptions() []camera.CameraBuilderOption {
	opts := []camera.CameraBuilderOption{
		camera.WithYaw(c.Yaw),
		camera.WithPitch(c.Pitch),
		camera.WithMovementSpeed(c.MovementSpeed),
		camera.WithMouseSensitivity(c.MouseSensitivity),
		camera.WithZoom(c.Zoom),
	}
	if len(c.Position) == 3 {
		opts = append(opts, camera.WithPosition(c.Position[0], c.Position[1], c.Position[2]))
	}
	return opts
}
