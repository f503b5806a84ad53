package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"glsample/internal/graphics"
	"glsample/internal/shape"
)

// ErrCycle is returned when a model is its own ancestor.
var ErrCycle = errors.New("model parent cycle")

type Loader struct {
	assetsPath string
	modelCache map[string]*Model
	loading    map[string]bool
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		modelCache: make(map[string]*Model),
		loading:    make(map[string]bool),
	}
}

// LoadModel reads <assets>/models/<name>.json and resolves its parent chain.
func (l *Loader) LoadModel(name string) (*Model, error) {
	if model, ok := l.modelCache[name]; ok {
		return model, nil
	}
	if l.loading[name] {
		return nil, fmt.Errorf("%w: %s", ErrCycle, name)
	}
	l.loading[name] = true
	defer delete(l.loading, name)

	path := filepath.Join(l.assetsPath, "models", name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("could not unmarshal model json %s: %w", path, err)
	}

	if model.Parent != "" {
		parent, err := l.LoadModel(model.Parent)
		if err != nil {
			return nil, fmt.Errorf("could not load parent model '%s': %w", model.Parent, err)
		}
		model.inherit(parent)
	}

	l.modelCache[name] = &model
	return &model, nil
}

// LoadGeometry loads a model and converts it to validated geometry.
func (l *Loader) LoadGeometry(name string) (shape.Geometry, error) {
	m, err := l.LoadModel(name)
	if err != nil {
		return shape.Geometry{}, err
	}
	g, err := m.Geometry()
	if err != nil {
		return shape.Geometry{}, fmt.Errorf("model %s: %w", name, err)
	}
	return g, nil
}

// Geometry converts the model. Per-vertex colours take precedence over the
// single colour; vertices without either are black.
func (m *Model) Geometry() (shape.Geometry, error) {
	mode := shape.Outline
	if m.Mode != "" {
		var err error
		if mode, err = shape.ParseMode(m.Mode); err != nil {
			return shape.Geometry{}, err
		}
	}
	if len(m.Colors) > 0 && len(m.Colors) != len(m.Vertices) {
		return shape.Geometry{}, fmt.Errorf("%w: %d colours for %d vertices", shape.ErrInvalidGeometry, len(m.Colors), len(m.Vertices))
	}

	size := m.Size
	if size == 0 {
		size = 3
	}
	g := shape.Geometry{
		Size:     size,
		Vertices: make([]graphics.Vertex, len(m.Vertices)),
		Indices:  m.Indices,
		Mode:     mode,
	}
	for i, p := range m.Vertices {
		g.Vertices[i].Position = p
		switch {
		case len(m.Colors) > 0:
			g.Vertices[i].Color = m.Colors[i]
		case m.Color != nil:
			g.Vertices[i].Color = *m.Color
		}
	}
	return g, g.Validate()
}
