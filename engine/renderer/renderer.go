package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backendType RendererBackendType
	backend     RendererBackend
	logger      *zap.Logger

	clearColor mgl32.Vec4
	lampColor  mgl32.Vec3

	lit     Program
	lamp    Program
	cube    Mesh
	pyramid Mesh

	initialized bool
}

// Renderer draws scene frames: the lit cubes or pyramids with a Phong program and the lamp cube
// with an unlit program. All methods must be called on the thread that owns the graphics context.
type Renderer interface {
	// Init initializes the backend, compiles both programs and uploads the cube and pyramid meshes.
	// Must be called once after the window's context is current.
	//
	// Parameters:
	//   - width: the initial framebuffer width in pixels
	//   - height: the initial framebuffer height in pixels
	//
	// Returns:
	//   - error: error if the backend, a program, or a mesh cannot be created
	Init(width, height int) error

	// Resize updates the viewport to a new framebuffer size.
	// This should be called when re-sizing the window.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Draw clears the framebuffer and draws one frame. It does nothing before Init.
	//
	// Parameters:
	//   - frame: the draw list produced by the scene
	Draw(frame scene.Frame)

	// Close releases the programs and the meshes.
	Close()

	// BackendType returns the graphics API this renderer uses.
	BackendType() RendererBackendType
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given backend type.
// No graphics calls are made until Init.
//
// Parameters:
//   - backendType: the graphics API to render with
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		backendType: backendType,
		logger:      zap.NewNop(),
		clearColor:  mgl32.Vec4{0.1, 0.1, 0.1, 1.0},
		lampColor:   mgl32.Vec3{1, 1, 1},
	}
	for _, opt := range options {
		opt(r)
	}
	if r.backend == nil {
		r.backend = newBackend(backendType)
	}
	return r
}

func (r *renderer) Init(width, height int) error {
	if r.backend == nil {
		return fmt.Errorf("unsupported renderer backend %s", r.backendType)
	}
	if err := r.backend.Init(); err != nil {
		return err
	}

	lit, err := r.backend.CreateProgram(litVertexShader, litFragmentShader)
	if err != nil {
		return fmt.Errorf("lit program: %w", err)
	}
	lamp, err := r.backend.CreateProgram(lampVertexShader, lampFragmentShader)
	if err != nil {
		lit.Delete()
		return fmt.Errorf("lamp program: %w", err)
	}
	cube, err := r.backend.CreateMesh(CubeVertices)
	if err != nil {
		lit.Delete()
		lamp.Delete()
		return fmt.Errorf("cube mesh: %w", err)
	}
	pyramid, err := r.backend.CreateIndexedMesh(PyramidVertices, PyramidIndices)
	if err != nil {
		lit.Delete()
		lamp.Delete()
		cube.Delete()
		return fmt.Errorf("pyramid mesh: %w", err)
	}

	r.lit, r.lamp, r.cube, r.pyramid = lit, lamp, cube, pyramid
	r.initialized = true
	r.Resize(width, height)

	r.logger.Info("Renderer initialized",
		zap.Stringer("backend", r.backendType),
		zap.String("driver", r.backend.Info()),
		zap.Int("cubeVertices", cube.VertexCount()),
		zap.Int("pyramidIndices", pyramid.VertexCount()),
	)
	return nil
}

func (r *renderer) Resize(width, height int) {
	if !r.initialized || width <= 0 || height <= 0 {
		return
	}
	r.backend.Viewport(width, height)
}

func (r *renderer) Draw(frame scene.Frame) {
	if !r.initialized {
		return
	}
	r.backend.Clear(r.clearColor)

	r.lit.Use()
	r.lit.SetMat4("projection", frame.Projection)
	r.lit.SetMat4("view", frame.View)
	r.lit.SetVec3("viewPos", frame.ViewPosition)
	r.lit.SetVec3("lightPos", frame.Light.Position)

	r.lit.SetVec3("material.ambient", frame.Material.Ambient)
	r.lit.SetVec3("material.diffuse", frame.Material.Diffuse)
	r.lit.SetVec3("material.specular", frame.Material.Specular)
	r.lit.SetFloat("material.shininess", frame.Material.Shininess)

	r.lit.SetVec3("light.ambient", frame.Light.Ambient)
	r.lit.SetVec3("light.diffuse", frame.Light.Diffuse)
	r.lit.SetVec3("light.specular", frame.Light.Specular)

	mesh := r.cube
	if frame.Shape == scene.ShapePyramid {
		mesh = r.pyramid
	}
	for _, model := range frame.Models {
		r.lit.SetMat4("model", model)
		mesh.Draw()
	}

	r.lamp.Use()
	r.lamp.SetMat4("projection", frame.Projection)
	r.lamp.SetMat4("view", frame.View)
	r.lamp.SetMat4("model", frame.Lamp)
	r.lamp.SetVec3("lampColor", r.lampColor)
	r.cube.Draw()
}

func (r *renderer) Close() {
	if !r.initialized {
		return
	}
	r.cube.Delete()
	r.pyramid.Delete()
	r.lit.Delete()
	r.lamp.Delete()
	r.initialized = false
	r.logger.Info("Renderer closed")
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}
