package main

import (
	"log"
	"runtime"

	"glsample/internal/app"
	"glsample/internal/config"
	"glsample/internal/input"
	"glsample/internal/window"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := pflag.String("config", "glsample.toml", "settings file; a missing file uses the defaults")
	vertex := pflag.String("vertex", "", "vertex shader source (overrides the settings file)")
	fragment := pflag.String("fragment", "", "fragment shader source (overrides the settings file)")
	models := pflag.StringSlice("model", nil, "extra shape names to cycle through, built-in or <models_dir>/models/<name>.json")
	vsync := pflag.Bool("vsync", true, "wait for vertical sync between frames")
	fps := pflag.Int("fps", 0, "frame rate cap, 0 for none (overrides the settings file)")
	pflag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	if *vertex != "" {
		settings.Shaders.Vertex = *vertex
	}
	if *fragment != "" {
		settings.Shaders.Fragment = *fragment
	}
	settings.Scene.Shapes = append(settings.Scene.Shapes, *models...)
	if pflag.CommandLine.Changed("vsync") {
		settings.Window.SwapInterval = 0
		if *vsync {
			settings.Window.SwapInterval = 1
		}
	}
	if err := settings.Validate(); err != nil {
		panic(err)
	}
	config.Set(settings)
	if pflag.CommandLine.Changed("fps") {
		config.SetFPSLimit(*fps)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}

	window.SetHints(settings.Window)
	inputManager := input.NewInputManager()
	win, err := window.New(settings.Window, settings.Camera.Scale, inputManager)
	if err != nil {
		glfw.Terminate()
		panic(err)
	}

	a, err := app.New(win, inputManager)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		panic(err)
	}

	// runs on Ctrl-C as well as on a normal exit; GL is left to process teardown
	closer.Bind(func() {
		a.Close()
		log.Println("glsample: bye")
	})

	a.Run()

	// the watcher wakes glfw, so it must stop before glfw terminates
	a.Close()
	a.Dispose()
	win.Destroy()
	glfw.Terminate()
	closer.Close()
}
