package window

import (
	"fmt"

	"glsample/internal/config"
	"glsample/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the glfw window and the GL context made current on it.
// Callbacks are closures over the Window, so no user pointer is needed.
type Window struct {
	handle *glfw.Window
	input  *input.InputManager
	state  State

	alwaysPoll bool
	onResize   func(width, height int)
}

// SetHints applies the context hints for the configured OpenGL version.
// Must be called after glfw.Init and before New.
func SetHints(cfg config.WindowSettings) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
}

// New opens a window, makes its context current and loads the GL entry points.
func New(cfg config.WindowSettings, scale float32, im *input.InputManager) (*Window, error) {
	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("can't create GLFW window: %w", err)
	}
	handle.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		handle.Destroy()
		return nil, fmt.Errorf("can't initialize OpenGL: %w", err)
	}

	glfw.SwapInterval(cfg.SwapInterval)

	w := &Window{
		handle:     handle,
		input:      im,
		state:      NewState(cfg.Width, cfg.Height, scale),
		alwaysPoll: cfg.AlwaysPoll,
	}

	handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.state.Resize(width, height)
	})
	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resizeFramebuffer(width, height)
	})
	handle.SetScrollCallback(func(_ *glfw.Window, _, y float64) {
		w.state.Wheel(y)
	})
	im.SetCallbacks(handle)

	// the callbacks do not fire for the initial size
	w.state.Resize(handle.GetSize())
	w.resizeFramebuffer(handle.GetFramebufferSize())

	return w, nil
}

func (w *Window) resizeFramebuffer(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// OnResize registers a function called with the framebuffer size on every resize.
// It is called once immediately with the current size.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
	if fn != nil {
		fn(w.handle.GetFramebufferSize())
	}
}

// ShouldClose reports whether the window was closed or the quit action is held.
func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose() || w.input.IsActive(input.ActionQuit)
}

// SwapBuffers presents the frame and collects events. It blocks until the next
// event unless an arrow key is held or the window always polls. Held arrows and
// the left mouse button then move the location.
func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()

	if w.alwaysPoll || w.input.ActiveCount(input.MoveActions...) > 0 {
		glfw.PollEvents()
	} else {
		glfw.WaitEvents()
	}

	w.state.Nudge(
		w.input.IsActive(input.ActionMoveLeft),
		w.input.IsActive(input.ActionMoveRight),
		w.input.IsActive(input.ActionMoveUp),
		w.input.IsActive(input.ActionMoveDown),
	)

	if w.input.IsActive(input.ActionDrag) {
		w.state.PointAt(w.handle.GetCursorPos())
	}
}

// SetAlwaysPoll switches between waiting for events and polling every frame.
func (w *Window) SetAlwaysPoll(on bool) {
	w.alwaysPoll = on
}

// State returns a copy of the input-driven state.
func (w *Window) State() State {
	return w.state
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.handle.GetFramebufferSize()
}

// Time returns seconds since glfw was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Destroy closes the window.
func (w *Window) Destroy() {
	w.handle.Destroy()
}

// Wake makes a blocked SwapBuffers return. Safe to call from any goroutine.
func Wake() {
	glfw.PostEmptyEvent()
}
