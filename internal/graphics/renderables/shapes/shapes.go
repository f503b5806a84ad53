package shapes

import (
	"fmt"
	"log"

	"glsample/internal/graphics"
	renderer "glsample/internal/graphics/renderer"
	"glsample/internal/profiling"
	"glsample/internal/shape"
)

// Entry names a geometry to upload.
type Entry struct {
	Name     string
	Geometry shape.Geometry
}

// Shapes draws one selected shape with the sample shader program.
type Shapes struct {
	vertPath, fragPath string
	entries            []Entry

	shader  *graphics.Shader
	shapes  []*shape.Shape
	current int
}

// NewShapes creates the renderable. Nothing touches GL until Init.
func NewShapes(vertPath, fragPath string, entries []Entry) *Shapes {
	return &Shapes{
		vertPath: vertPath,
		fragPath: fragPath,
		entries:  entries,
	}
}

// Init compiles the program and uploads every shape.
func (s *Shapes) Init() error {
	if len(s.entries) == 0 {
		return fmt.Errorf("no shapes to draw")
	}

	var err error
	s.shader, err = graphics.NewShader(s.vertPath, s.fragPath)
	if err != nil {
		return err
	}

	for _, e := range s.entries {
		sh, err := shape.New(e.Name, e.Geometry)
		if err != nil {
			s.Dispose()
			return fmt.Errorf("shape %s: %w", e.Name, err)
		}
		s.shapes = append(s.shapes, sh)
	}
	return nil
}

// Render draws the current shape.
func (s *Shapes) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderShape")()

	s.shader.Use()
	s.shader.SetMatrix("modelview", ctx.ModelView)
	s.shader.SetMatrix("projection", ctx.Projection)
	s.shapes[s.current].Draw()
}

// SetViewport is a no-op; the projection arrives through the render context.
func (s *Shapes) SetViewport(width, height int) {}

// Next selects the following shape and returns its name.
func (s *Shapes) Next() string {
	s.current = (s.current + 1) % len(s.shapes)
	return s.shapes[s.current].Name
}

// ReloadShader rebuilds the program from disk. On failure the previous
// program stays in use.
func (s *Shapes) ReloadShader() error {
	sh, err := graphics.NewShader(s.vertPath, s.fragPath)
	if err != nil {
		return err
	}
	s.shader.Dispose()
	s.shader = sh
	log.Printf("reloaded %s and %s", s.vertPath, s.fragPath)
	return nil
}

// Dispose cleans up OpenGL resources
func (s *Shapes) Dispose() {
	for _, sh := range s.shapes {
		sh.Dispose()
	}
	s.shapes = nil
	if s.shader != nil {
		s.shader.Dispose()
		s.shader = nil
	}
}
