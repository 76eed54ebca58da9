// Command oxy-gl opens a window with a grid of lit cubes (or a row of pyramids) and a free-fly camera.
//
// Usage:
//
//	oxy-gl [-config viewer.yaml]
//
// WASD moves, E and Q rise and sink, the mouse looks around and the scroll wheel zooms.
// Escape closes the window. When a configuration file is given it is watched, and camera
// tuning, clipping planes and key bindings are re-applied whenever it changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/Carmen-Shannon/oxy-gl/config"
	"github.com/Carmen-Shannon/oxy-gl/engine"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/Carmen-Shannon/oxy-gl/logging"
	"github.com/Carmen-Shannon/oxy-gl/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

var configPath string

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&configPath, "config", "", "Path to a YAML configuration file (watched for changes)")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		logging.From(context.Background()).Error("Viewer stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session", uuid.New().String()))
	logging.SetRoot(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.Context(ctx, logger)

	bindings, err := cfg.Controls.Bindings()
	if err != nil {
		return err
	}
	cam := camera.NewCamera(cfg.Camera.CameraOptions()...)
	controller := input.NewController(cam, input.WithBindings(bindings))

	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithVSync(cfg.Window.VSync),
		window.WithCursorCaptured(true),
		window.WithLogger(logger.Named("window")),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Close(); err != nil {
			logger.Warn("Failed to close window", zap.Error(err))
		}
	}()

	rend := renderer.NewRenderer(renderer.BackendTypeOpenGL, renderer.WithLogger(logger.Named("renderer")))
	if err := rend.Init(win.Width(), win.Height()); err != nil {
		return err
	}
	defer rend.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	prof := profiler.NewProfiler(
		profiler.WithLogger(logger.Named("profiler")),
		profiler.WithRegisterer(reg),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithInput(controller),
		engine.WithRenderer(rend),
		engine.WithScene(scene.NewLitGrid(cfg.Scene.Options()...)),
		engine.WithProfiler(prof),
		engine.WithProfiling(true),
		engine.WithProjection(cfg.Projection.Near, cfg.Projection.Far),
		engine.WithLogger(logger.Named("engine")),
	)

	var wg sync.WaitGroup
	if cfg.Metrics.Listen != "" {
		srv := metrics.NewServer(cfg.Metrics.Listen, reg)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = srv.Run(ctx)
		}()
	}

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, logger)
		if err != nil {
			logger.Warn("Configuration will not be reloaded", zap.Error(err))
		} else {
			defer func() { _ = watcher.Close() }()
			go forwardConfig(watcher, eng, logger)
		}
	}

	err = eng.Run(ctx)
	stop()
	wg.Wait()
	return err
}

// forwardConfig hands reloaded configurations to the engine until the watcher is closed.
func forwardConfig(w *config.Watcher, eng engine.Engine, logger *zap.Logger) {
	for {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return
			}
			eng.ApplyConfig(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("Ignoring invalid configuration", zap.Error(err))
		}
	}
}
