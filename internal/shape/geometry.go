package shape

import (
	"errors"
	"fmt"

	"glsample/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mode selects how a shape's vertices are assembled into primitives.
type Mode int

const (
	Outline        Mode = iota // closed line loop over the vertices
	OutlineIndexed             // line segments over index pairs
	Solid                      // triangles over the vertices
	SolidIndexed               // triangles over index triples
)

var modeNames = map[Mode]string{
	Outline:        "outline",
	OutlineIndexed: "outline-indexed",
	Solid:          "solid",
	SolidIndexed:   "solid-indexed",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidGeometry, s)
}

// Indexed reports whether the mode draws through an index buffer.
func (m Mode) Indexed() bool {
	return m == OutlineIndexed || m == SolidIndexed
}

// Primitive returns the GL primitive type for the mode.
func (m Mode) Primitive() uint32 {
	switch m {
	case OutlineIndexed:
		return gl.LINES
	case Solid, SolidIndexed:
		return gl.TRIANGLES
	default:
		return gl.LINE_LOOP
	}
}

// ErrInvalidGeometry is wrapped by every validation failure.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Geometry is the CPU side description of a shape.
type Geometry struct {
	Size     int32 // position components, 2 or 3
	Vertices []graphics.Vertex
	Indices  []uint32
	Mode     Mode
}

// Count returns the number of elements a draw call consumes.
func (g Geometry) Count() int32 {
	if g.Mode.Indexed() {
		return int32(len(g.Indices))
	}
	return int32(len(g.Vertices))
}

// Validate checks that the geometry can be drawn in its mode.
func (g Geometry) Validate() error {
	if g.Size != 2 && g.Size != 3 {
		return fmt.Errorf("%w: position size %d, want 2 or 3", ErrInvalidGeometry, g.Size)
	}
	if len(g.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidGeometry)
	}
	if _, ok := modeNames[g.Mode]; !ok {
		return fmt.Errorf("%w: %v", ErrInvalidGeometry, g.Mode)
	}
	if g.Mode.Indexed() {
		if len(g.Indices) == 0 {
			return fmt.Errorf("%w: %v without indices", ErrInvalidGeometry, g.Mode)
		}
		for i, idx := range g.Indices {
			if int(idx) >= len(g.Vertices) {
				return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrInvalidGeometry, idx, i, len(g.Vertices))
			}
		}
	}
	n := g.Count()
	switch g.Mode {
	case Solid, SolidIndexed:
		if n%3 != 0 {
			return fmt.Errorf("%w: %d elements is not a whole number of triangles", ErrInvalidGeometry, n)
		}
	case OutlineIndexed:
		if n%2 != 0 {
			return fmt.Errorf("%w: %d indices is not a whole number of lines", ErrInvalidGeometry, n)
		}
	}
	return nil
}

func v(x, y, z, r, g, b float32) graphics.Vertex {
	return graphics.Vertex{Position: [3]float32{x, y, z}, Color: [3]float32{r, g, b}}
}

// Rectangle is a unit square outline in the xy plane.
func Rectangle() Geometry {
	return Geometry{
		Size: 2,
		Vertices: []graphics.Vertex{
			v(-0.5, -0.5, 0, 0, 0, 0),
			v(0.5, -0.5, 0, 0, 0, 0),
			v(0.5, 0.5, 0, 0, 0, 0),
			v(-0.5, 0.5, 0, 0, 0, 0),
		},
		Mode: Outline,
	}
}

// Octahedron is drawn as a single line loop that visits every edge.
func Octahedron() Geometry {
	return Geometry{
		Size: 3,
		Vertices: []graphics.Vertex{
			v(0, 1, 0, 0, 0, 0),
			v(-1, 0, 0, 0, 0, 0),
			v(0, -1, 0, 0, 0, 0),
			v(1, 0, 0, 0, 0, 0),
			v(0, 1, 0, 0, 0, 0),
			v(0, 0, 1, 0, 0, 0),
			v(0, -1, 0, 0, 0, 0),
			v(0, 0, -1, 0, 0, 0),
			v(-1, 0, 0, 0, 0, 0),
			v(0, 0, 1, 0, 0, 0),
			v(1, 0, 0, 0, 0, 0),
			v(0, 0, -1, 0, 0, 0),
		},
		Mode: Outline,
	}
}

// WireCube is the twelve edges of a cube with coloured corners.
func WireCube() Geometry {
	return Geometry{
		Size: 3,
		Vertices: []graphics.Vertex{
			v(-1, -1, -1, 0, 0, 0),
			v(-1, -1, 1, 0, 0, 0.8),
			v(-1, 1, 1, 0, 0.8, 0),
			v(-1, 1, -1, 0, 0.8, 0.8),
			v(1, 1, -1, 0.8, 0, 0),
			v(1, -1, -1, 0.8, 0, 0.8),
			v(1, -1, 1, 0.8, 0.8, 0),
			v(1, 1, 1, 0.8, 0.8, 0.8),
		},
		Indices: []uint32{
			1, 0,
			2, 7,
			3, 0,
			4, 7,
			5, 0,
			6, 7,
			1, 2,
			2, 3,
			3, 4,
			4, 5,
			5, 6,
			6, 1,
		},
		Mode: OutlineIndexed,
	}
}

// SolidCube is a cube with one colour per face, wound counter-clockwise from outside.
func SolidCube() Geometry {
	faces := []struct {
		corners [4][3]float32
		color   [3]float32
	}{
		// left
		{[4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, [3]float32{0.1, 0.8, 0.1}},
		// back
		{[4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, [3]float32{0.8, 0.1, 0.8}},
		// bottom
		{[4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, [3]float32{0.1, 0.8, 0.8}},
		// right
		{[4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}, [3]float32{0.1, 0.1, 0.8}},
		// top
		{[4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, [3]float32{0.8, 0.1, 0.1}},
		// front
		{[4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}, [3]float32{0.8, 0.8, 0.1}},
	}

	g := Geometry{Size: 3, Mode: SolidIndexed}
	for i, f := range faces {
		for _, c := range f.corners {
			g.Vertices = append(g.Vertices, v(c[0], c[1], c[2], f.color[0], f.color[1], f.color[2]))
		}
		base := uint32(i * 4)
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// Builtins maps the names accepted on the command line to geometry constructors.
var Builtins = map[string]func() Geometry{
	"rectangle":  Rectangle,
	"octahedron": Octahedron,
	"wirecube":   WireCube,
	"solidcube":  SolidCube,
}
