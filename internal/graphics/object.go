package graphics

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex is the attribute layout uploaded to the vertex buffer.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

const vertexStride = int32(unsafe.Sizeof(Vertex{}))

// Object owns a vertex array with its vertex buffer and optional index buffer.
type Object struct {
	vao uint32
	vbo uint32
	ibo uint32
}

// NewObject uploads vertices (and indices, if any) into a new vertex array.
// size is the number of position components read by the shader (2 or 3).
func NewObject(size int32, vertices []Vertex, indices []uint32) *Object {
	o := &Object{}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(PositionLocation, size, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(PositionLocation)
	gl.VertexAttribPointerWithOffset(ColorLocation, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(Vertex{}.Color))
	gl.EnableVertexAttribArray(ColorLocation)

	if len(indices) > 0 {
		gl.GenBuffers(1, &o.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, o.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	// unbind the vertex array first so it keeps its element buffer binding
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return o
}

// Bind makes the vertex array current.
func (o *Object) Bind() {
	gl.BindVertexArray(o.vao)
}

// Dispose cleans up OpenGL resources
func (o *Object) Dispose() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.ibo != 0 {
		gl.DeleteBuffers(1, &o.ibo)
		o.ibo = 0
	}
}
