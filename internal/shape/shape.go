package shape

import (
	"glsample/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shape is geometry uploaded to the GPU together with the draw strategy for its mode.
type Shape struct {
	Name     string
	geometry Geometry
	object   *graphics.Object
}

// New validates g and uploads it. Requires a current GL context.
func New(name string, g Geometry) (*Shape, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Shape{
		Name:     name,
		geometry: g,
		object:   graphics.NewObject(g.Size, g.Vertices, g.Indices),
	}, nil
}

// Draw binds the vertex array and issues the draw call.
func (s *Shape) Draw() {
	s.object.Bind()
	count := s.geometry.Count()
	if s.geometry.Mode.Indexed() {
		gl.DrawElementsWithOffset(s.geometry.Mode.Primitive(), count, gl.UNSIGNED_INT, 0)
		return
	}
	gl.DrawArrays(s.geometry.Mode.Primitive(), 0, count)
}

// Dispose releases the GPU buffers.
func (s *Shape) Dispose() {
	if s.object != nil {
		s.object.Dispose()
		s.object = nil
	}
}
