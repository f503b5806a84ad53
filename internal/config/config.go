package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the full sample configuration. Field names double as TOML keys.
type Settings struct {
	Window  WindowSettings  `toml:"window"`
	Shaders ShaderSettings  `toml:"shaders"`
	Camera  CameraSettings  `toml:"camera"`
	Scene   SceneSettings   `toml:"scene"`
	Capture CaptureSettings `toml:"capture"`
}

type WindowSettings struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	GLMajor      int    `toml:"gl_major"`
	GLMinor      int    `toml:"gl_minor"`
	SwapInterval int    `toml:"swap_interval"`
	FPSLimit     int    `toml:"fps_limit"` // 0 disables the limiter
	// AlwaysPoll keeps the loop running without input so animations advance.
	AlwaysPoll bool `toml:"always_poll"`
}

type ShaderSettings struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Watch    bool   `toml:"watch"`
}

type CameraSettings struct {
	FOV          float32    `toml:"fov"`
	Near         float32    `toml:"near"`
	Far          float32    `toml:"far"`
	Eye          [3]float32 `toml:"eye"`
	Target       [3]float32 `toml:"target"`
	Up           [3]float32 `toml:"up"`
	Scale        float32    `toml:"scale"`
	Orthographic bool       `toml:"orthographic"`
}

type SceneSettings struct {
	Shapes        []string   `toml:"shapes"`
	ModelsDir     string     `toml:"models_dir"`
	ClearColor    [4]float32 `toml:"clear_color"`
	SpinSpeed     float32    `toml:"spin_speed"`      // radians per second
	SpinAxis      [3]float32 `toml:"spin_axis"`
	OrbitPerNotch float32    `toml:"orbit_per_notch"` // radians per wheel notch
}

type CaptureSettings struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:        640,
			Height:       480,
			Title:        "Hello!",
			GLMajor:      3,
			GLMinor:      2,
			SwapInterval: 1,
		},
		Shaders: ShaderSettings{
			Vertex:   "assets/shaders/point.vert",
			Fragment: "assets/shaders/point.frag",
		},
		Camera: CameraSettings{
			FOV:   30,
			Near:  1,
			Far:   10,
			Eye:   [3]float32{3, 4, 5},
			Up:    [3]float32{0, 1, 0},
			Scale: 100,
		},
		Scene: SceneSettings{
			Shapes:        []string{"solidcube", "wirecube", "octahedron", "rectangle"},
			ModelsDir:     "assets",
			ClearColor:    [4]float32{1, 1, 1, 0},
			SpinAxis:      [3]float32{0, 1, 0},
			OrbitPerNotch: 0.1,
		},
		Capture: CaptureSettings{
			Dir:    ".",
			Format: "png",
		},
	}
}

// Load reads a TOML file over the defaults. A missing file yields the defaults.
// Unknown keys are rejected.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return s, fmt.Errorf("parse config: %s", strict.String())
		}
		return s, fmt.Errorf("parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the sample cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	case s.Window.GLMajor < 3 || (s.Window.GLMajor == 3 && s.Window.GLMinor < 2):
		return fmt.Errorf("%w: OpenGL %d.%d is older than 3.2", ErrInvalid, s.Window.GLMajor, s.Window.GLMinor)
	case s.Window.FPSLimit < 0:
		return fmt.Errorf("%w: negative fps limit", ErrInvalid)
	case s.Camera.Near >= s.Camera.Far:
		return fmt.Errorf("%w: near plane %v is not in front of far plane %v", ErrInvalid, s.Camera.Near, s.Camera.Far)
	case s.Camera.FOV <= 0 || s.Camera.FOV >= 180:
		return fmt.Errorf("%w: field of view %v", ErrInvalid, s.Camera.FOV)
	case s.Camera.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalid, s.Camera.Scale)
	case len(s.Scene.Shapes) == 0:
		return fmt.Errorf("%w: no shapes", ErrInvalid)
	case !captureFormats[strings.ToLower(s.Capture.Format)]:
		return fmt.Errorf("%w: screenshot format %q, want png, bmp, tif or tiff", ErrInvalid, s.Capture.Format)
	}
	return nil
}

// captureFormats are the extensions capture.Save can encode.
var captureFormats = map[string]bool{"png": true, "bmp": true, "tif": true, "tiff": true}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the process-wide settings.
func Get() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the process-wide settings.
func Set(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	current = s
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited.
func GetFPSLimit() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.Window.FPSLimit
}

// SetFPSLimit clamps and stores the frame cap.
func SetFPSLimit(limit int) {
	mu.Lock()
	defer mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	current.Window.FPSLimit = limit
}
