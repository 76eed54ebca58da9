package renderer

import "github.com/go-gl/mathgl/mgl32"

// RendererBackendType identifies a graphics API implementation.
type RendererBackendType int

const (
	// BackendTypeOpenGL renders through an OpenGL 4.1 core profile context.
	BackendTypeOpenGL RendererBackendType = iota
)

func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeOpenGL:
		return "opengl"
	default:
		return "unknown"
	}
}

// RendererBackend abstracts the graphics API calls the Renderer issues.
// Implementations must be used from the thread that owns the graphics context.
type RendererBackend interface {
	// Init loads the API entry points for the current context and sets up fixed state.
	//
	// Returns:
	//   - error: error if the API cannot be initialized
	Init() error

	// Info describes the driver after Init.
	Info() string

	// Viewport maps normalized device coordinates onto a width x height pixel rectangle.
	Viewport(width, height int)

	// Clear clears the color and depth buffers.
	//
	// Parameters:
	//   - color: the RGBA clear color
	Clear(color mgl32.Vec4)

	// CreateProgram compiles and links a vertex and fragment shader pair.
	//
	// Parameters:
	//   - vertexSrc: GLSL vertex shader source
	//   - fragmentSrc: GLSL fragment shader source
	//
	// Returns:
	//   - Program: the linked program
	//   - error: error containing the compile or link log on failure
	CreateProgram(vertexSrc, fragmentSrc string) (Program, error)

	// CreateMesh uploads interleaved position and normal vertices.
	//
	// Parameters:
	//   - vertices: VertexStride floats per vertex
	//
	// Returns:
	//   - Mesh: the uploaded mesh
	//   - error: error if the vertex data is malformed
	CreateMesh(vertices []float32) (Mesh, error)

	// CreateIndexedMesh uploads interleaved vertices together with an index buffer.
	//
	// Parameters:
	//   - vertices: VertexStride floats per vertex
	//   - indices: three indices per triangle, each addressing a vertex
	//
	// Returns:
	//   - Mesh: the uploaded mesh, drawn by index
	//   - error: error if the vertex or index data is malformed
	CreateIndexedMesh(vertices []float32, indices []uint32) (Mesh, error)
}

// Program is a linked shader program.
type Program interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, f float32)
	Delete()
}

// Mesh is a vertex array ready to be drawn as triangles.
type Mesh interface {
	// VertexCount returns the number of vertices drawn by Draw. For indexed meshes this is the
	// number of indices.
	VertexCount() int
	Draw()
	Delete()
}

// newBackend returns the backend implementation for the given type.
func newBackend(backendType RendererBackendType) RendererBackend {
	switch backendType {
	case BackendTypeOpenGL:
		return newGLBackend()
	default:
		return nil
	}
}
