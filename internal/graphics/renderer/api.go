package renderer

import (
	"glsample/internal/scene"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	scene.Transforms
	DT   float64
	Time float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
