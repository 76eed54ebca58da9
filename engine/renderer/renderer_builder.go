package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithBackend replaces the backend selected by the backend type.
//
// Parameters:
//   - backend: the RendererBackend to issue graphics calls through
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}

// WithClearColor sets the color the framebuffer is cleared to each frame.
//
// Parameters:
//   - color: the RGBA clear color
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(color mgl32.Vec4) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = color
	}
}

// WithLampColor sets the flat color of the lamp cube.
func WithLampColor(color mgl32.Vec3) RendererBuilderOption {
	return func(r *renderer) {
		r.lampColor = color
	}
}

// WithLogger sets the logger used for renderer lifecycle messages.
//
// Parameters:
//   - logger: the logger (nil keeps the no-op default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option to a renderer
func WithLogger(logger *zap.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
