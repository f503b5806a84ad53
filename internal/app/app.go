package app

import (
	"fmt"
	"log"
	"time"

	"glsample/internal/capture"
	"glsample/internal/config"
	"glsample/internal/graphics"
	"glsample/internal/graphics/renderables/shapes"
	renderer "glsample/internal/graphics/renderer"
	"glsample/internal/input"
	"glsample/internal/profiling"
	"glsample/internal/scene"
	"glsample/internal/shaderwatch"
	"glsample/internal/shape"
	"glsample/internal/window"
	"glsample/pkg/model"

	"github.com/go-gl/mathgl/mgl32"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// App runs the sample: it owns the renderer and drives it from window input.
type App struct {
	window       *window.Window
	inputManager *input.InputManager
	scene        *scene.Scene
	renderer     *renderer.Renderer
	shapes       *shapes.Shapes
	watcher      *shaderwatch.Watcher

	capture    config.CaptureSettings
	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// ResolveShapes maps shape names to geometry. Built-in names win over model files.
func ResolveShapes(names []string, loader *model.Loader) ([]shapes.Entry, error) {
	entries := make([]shapes.Entry, 0, len(names))
	for _, name := range names {
		if build, ok := shape.Builtins[name]; ok {
			entries = append(entries, shapes.Entry{Name: name, Geometry: build()})
			continue
		}
		g, err := loader.LoadGeometry(name)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		entries = append(entries, shapes.Entry{Name: name, Geometry: g})
	}
	return entries, nil
}

// New builds the scene from the process-wide settings. Requires the window's GL context to be current.
func New(win *window.Window, im *input.InputManager) (*App, error) {
	s := config.Get()
	entries, err := ResolveShapes(s.Scene.Shapes, model.NewLoader(s.Scene.ModelsDir))
	if err != nil {
		return nil, err
	}

	shapesRenderer := shapes.NewShapes(s.Shaders.Vertex, s.Shaders.Fragment, entries)
	r, err := renderer.NewRenderer(s.Scene.ClearColor, shapesRenderer)
	if err != nil {
		return nil, err
	}

	camera := graphics.NewCamera(s.Window.Width, s.Window.Height)
	camera.FOV = s.Camera.FOV
	camera.NearPlane = s.Camera.Near
	camera.FarPlane = s.Camera.Far
	camera.Eye = mgl32.Vec3(s.Camera.Eye)
	camera.Target = mgl32.Vec3(s.Camera.Target)
	camera.Up = mgl32.Vec3(s.Camera.Up)
	camera.Orthographic = s.Camera.Orthographic

	a := &App{
		window:       win,
		inputManager: im,
		scene: &scene.Scene{
			Camera:        camera,
			SpinSpeed:     s.Scene.SpinSpeed,
			SpinAxis:      mgl32.Vec3(s.Scene.SpinAxis),
			OrbitPerNotch: s.Scene.OrbitPerNotch,
		},
		renderer:   r,
		shapes:     shapesRenderer,
		capture:    s.Capture,
		fpsLimiter: NewFPSLimiter(),
		lastTime:   time.Now(),
	}

	if s.Scene.SpinSpeed != 0 {
		win.SetAlwaysPoll(true)
	}
	win.OnResize(r.SetViewport)

	if s.Shaders.Watch {
		a.watcher, err = shaderwatch.New(
			[]string{s.Shaders.Vertex, s.Shaders.Fragment},
			shaderwatch.WithNotify(window.Wake),
		)
		if err != nil {
			// hot reload is a convenience; run without it
			log.Printf("shader watcher disabled: %v", err)
		}
	}

	log.Printf("drawing %s", entries[0].Name)
	return a, nil
}

// Run loops until the window should close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	a.handleActions()

	tr := a.scene.Frame(a.window.State(), a.window.Time())
	a.renderer.Render(renderer.RenderContext{Transforms: tr, DT: dt, Time: a.window.Time()})

	if a.inputManager.JustPressed(input.ActionScreenshot) {
		a.screenshot()
	}

	processing := time.Since(now)
	if processing > slowFrame {
		log.Printf("Slow frame: %v (render %v). Top tasks: %s",
			processing, profiling.SumWithPrefix("renderer."), profiling.TopN(5))
	}

	// edges are consumed; the next ones arrive while SwapBuffers collects events
	a.inputManager.PostUpdate()

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.fpsLimiter.Wait()
}

func (a *App) handleActions() {
	if a.inputManager.JustPressed(input.ActionNextShape) {
		log.Printf("drawing %s", a.shapes.Next())
	}
	if a.inputManager.JustPressed(input.ActionToggleProjection) {
		c := a.scene.Camera
		c.Orthographic = !c.Orthographic
		log.Printf("orthographic projection: %v", c.Orthographic)
	}

	reload := a.inputManager.JustPressed(input.ActionReloadShaders)
	if a.watcher != nil {
	drain:
		for {
			select {
			case ev, ok := <-a.watcher.Events():
				if !ok {
					break drain
				}
				log.Printf("shader changed: %s", ev.Path)
				reload = true
			default:
				break drain
			}
		}
	}
	if reload {
		if err := a.shapes.ReloadShader(); err != nil {
			log.Printf("shader reload failed, keeping previous program: %v", err)
		}
	}
}

func (a *App) screenshot() {
	width, height := a.window.FramebufferSize()
	img, err := capture.FromPixels(width, height, graphics.ReadPixels(width, height))
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	path := capture.Name(a.capture.Dir, a.capture.Format, time.Now())
	if err := capture.Save(path, img); err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("saved %s", path)
}

// Close stops the watcher. Safe to call from any goroutine.
func (a *App) Close() {
	if w := a.watcher; w != nil {
		if err := w.Close(); err != nil {
			log.Printf("close shader watcher: %v", err)
		}
	}
}

// Dispose releases GL resources. Must run on the GL thread.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
