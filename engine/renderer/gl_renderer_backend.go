package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glRendererBackend implements RendererBackend with go-gl OpenGL 4.1 core bindings.
type glRendererBackend struct {
	version  string
	renderer string
}

var _ RendererBackend = &glRendererBackend{}

func newGLBackend() *glRendererBackend {
	return &glRendererBackend{}
}

// Init loads GL function pointers for the context current on this thread and enables depth testing.
func (b *glRendererBackend) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	b.version = gl.GoStr(gl.GetString(gl.VERSION))
	b.renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (b *glRendererBackend) Info() string {
	return fmt.Sprintf("%s (%s)", b.version, b.renderer)
}

func (b *glRendererBackend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *glRendererBackend) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *glRendererBackend) CreateProgram(vertexSrc, fragmentSrc string) (Program, error) {
	prog, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &glProgram{id: prog, locations: make(map[string]int32)}, nil
}

func (b *glRendererBackend) CreateMesh(vertices []float32) (Mesh, error) {
	count, err := vertexCount(vertices)
	if err != nil {
		return nil, err
	}
	m := uploadVertices(vertices)
	m.count = int32(count)
	gl.BindVertexArray(0)
	return m, nil
}

func (b *glRendererBackend) CreateIndexedMesh(vertices []float32, indices []uint32) (Mesh, error) {
	nVertices, err := vertexCount(vertices)
	if err != nil {
		return nil, err
	}
	count, err := indexCount(indices, nVertices)
	if err != nil {
		return nil, err
	}
	m := uploadVertices(vertices)
	m.count = int32(count)

	// the element buffer binding is recorded in the bound VAO
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m, nil
}

// uploadVertices creates a VAO and VBO for the vertices and leaves the VAO bound.
func uploadVertices(vertices []float32) *glMesh {
	m := &glMesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)

	// position
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, VertexStride*4, nil)
	gl.EnableVertexAttribArray(0)
	// normal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, VertexStride*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	return m
}

// glProgram caches uniform locations by name since they are looked up every frame.
type glProgram struct {
	id        uint32
	locations map[string]int32
}

func (p *glProgram) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *glProgram) Use() {
	gl.UseProgram(p.id)
}

func (p *glProgram) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *glProgram) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

func (p *glProgram) SetFloat(name string, f float32) {
	gl.Uniform1f(p.location(name), f)
}

func (p *glProgram) Delete() {
	gl.DeleteProgram(p.id)
}

type glMesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32 // 0 when drawn with DrawArrays
	count int32
}

func (m *glMesh) VertexCount() int {
	return int(m.count)
}

func (m *glMesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
		return
	}
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

func (m *glMesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
