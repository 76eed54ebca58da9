package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/config"
	"github.com/Carmen-Shannon/oxy-gl/engine/clock"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
// Everything runs on the thread that owns the window's GL context.
type engine struct {
	configChannel chan *config.Config // Pending configuration, applied at the start of the next frame

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	input    input.Controller
	renderer renderer.Renderer
	scene    scene.Scene
	clock    *clock.Clock
	logger   *zap.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	near float32
	far  float32

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the viewer.
// It owns the frame loop: it polls window events, moves the camera from held keys, draws the
// scene from the camera's point of view and presents the frame.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Input returns the controller that drives the camera.
	//
	// Returns:
	//   - input.Controller: the input controller
	Input() input.Controller

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called each frame after input has been applied
	// and before the scene is drawn.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each frame after the scene is drawn
	// and before the buffers are swapped.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetProjection sets the near and far clipping planes.
	//
	// Parameters:
	//   - near: distance to the near plane
	//   - far: distance to the far plane
	SetProjection(near, far float32)

	// ApplyConfig schedules a configuration to be applied at the start of the next frame.
	// Safe to call from any goroutine. If a configuration is already pending it is replaced.
	//
	// Parameters:
	//   - cfg: the configuration to apply
	ApplyConfig(cfg *config.Config)

	// Run runs the frame loop on the calling goroutine until the window closes, Quit is called
	// or ctx is cancelled. Must be called from the goroutine that created the window.
	//
	// Parameters:
	//   - ctx: cancelling ctx stops the loop after the current frame
	//
	// Returns:
	//   - error: error if the engine is misconfigured or a frame panicked
	Run(ctx context.Context) error

	// Quit stops the frame loop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// When both a window and an input controller are supplied, the window's input callbacks are
// bound to the controller and the resize callback is bound to the renderer.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		configChannel: make(chan *config.Config, 1),
		quitChannel:   make(chan struct{}),
		clock:         clock.NewClock(),
		logger:        zap.NewNop(),
		profiler:      profiler.NewProfiler(),
		near:          0.1,
		far:           100,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.bindWindow()
	}

	return e
}

// bindWindow routes window events to the input controller and renderer.
func (e *engine) bindWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		if e.renderer != nil {
			e.renderer.Resize(width, height)
		}
	})
	if e.input == nil {
		return
	}
	e.window.SetKeyDownCallback(e.input.KeyDown)
	e.window.SetKeyUpCallback(e.input.KeyUp)
	e.window.SetMouseMoveCallback(e.input.MouseMove)
	e.window.SetScrollCallback(e.input.Scroll)
	e.window.SetFocusCallback(func(focused bool) {
		e.input.SetEnabled(focused)
		e.window.SetCursorCaptured(focused)
		e.logger.Debug("Focus changed", zap.Bool("focused", focused))
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Input() input.Controller {
	return e.input
}

func (e *engine) Run(ctx context.Context) (err error) {
	if e.window == nil {
		return errors.New("engine has no window")
	}

	// Recover from panics inside the frame loop so the window and renderer can still be closed.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Frame loop recovered from panic", zap.Any("panic", r))
			err = fmt.Errorf("frame loop panic: %v", r)
			e.signalQuit()
		}
	}()

	e.logger.Info("Engine started",
		zap.Float32("near", e.near),
		zap.Float32("far", e.far),
		zap.Duration("frameLimit", e.renderFrameLimit),
	)

	for e.window.IsRunning() {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine stopped", zap.String("reason", ctx.Err().Error()))
			return nil
		case <-e.quitChannel:
			e.logger.Info("Engine stopped", zap.String("reason", "quit"))
			return nil
		default:
		}

		frameStart := time.Now()
		e.frame()

		// Frame rate limiting
		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}

	e.logger.Info("Engine stopped", zap.String("reason", "window closed"), zap.Uint64("frames", e.clock.Ticks()))
	return nil
}

// frame runs one iteration of the loop: apply pending config, advance the clock, poll events,
// move the camera, draw, present.
func (e *engine) frame() {
	e.applyPendingConfig()

	dt := e.clock.Tick()
	e.window.PollEvents()

	if e.input != nil {
		e.input.Update(dt)
	}
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.renderer != nil && e.scene != nil && e.input != nil {
		cam := e.input.Camera()
		view := cam.ViewMatrix()
		projection := cam.ProjectionMatrix(e.window.Aspect(), e.near, e.far)
		e.renderer.Draw(e.scene.Frame(e.clock.Elapsed(), view, projection, cam.Position()))
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	e.window.SwapBuffers()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// Quit signals the frame loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal the loop to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickCallback registers the function called each frame before drawing.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each frame after drawing.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) SetProjection(near, far float32) {
	if near <= 0 || far <= near {
		e.logger.Warn("Ignoring invalid projection", zap.Float32("near", near), zap.Float32("far", far))
		return
	}
	e.near, e.far = near, far
}

// ApplyConfig schedules cfg for the next frame.
// Non-blocking send - if a config is already pending, it is replaced.
func (e *engine) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	select {
	case e.configChannel <- cfg:
	default:
		// Channel has a pending update, drain and send new value
		select {
		case <-e.configChannel:
		default:
		}
		e.configChannel <- cfg
	}
}

// applyPendingConfig applies a scheduled configuration if there is one.
// Only the settings that can change while running are applied: camera tuning, projection
// planes and key bindings. Window and logging settings need a restart.
func (e *engine) applyPendingConfig() {
	var cfg *config.Config
	select {
	case cfg = <-e.configChannel:
	default:
		return
	}

	e.SetProjection(cfg.Projection.Near, cfg.Projection.Far)

	if e.input == nil {
		return
	}
	cam := e.input.Camera()
	cam.SetMovementSpeed(cfg.Camera.MovementSpeed)
	cam.SetMouseSensitivity(cfg.Camera.MouseSensitivity)

	bindings, err := cfg.Controls.Bindings()
	if err != nil {
		e.logger.Warn("Keeping previous key bindings", zap.Error(err))
	} else {
		e.input.SetBindings(bindings)
	}

	e.logger.Info("Configuration applied",
		zap.Float32("movementSpeed", cam.MovementSpeed()),
		zap.Float32("mouseSensitivity", cam.MouseSensitivity()),
		zap.Float32("near", e.near),
		zap.Float32("far", e.far),
	)
}
