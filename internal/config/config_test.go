package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"glsample/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := config.Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 640, s.Window.Width)
	assert.Equal(t, 480, s.Window.Height)
	assert.Equal(t, "Hello!", s.Window.Title)
	assert.Equal(t, float32(100), s.Camera.Scale)
}

func TestParseOverridesDefaults(t *testing.T) {
	s, err := config.Parse([]byte(`
[window]
width = 800
title = "cube"
fps_limit = 60

[camera]
eye = [0.0, 0.0, 8.0]
orthographic = true

[scene]
shapes = ["wirecube"]
`))
	require.NoError(t, err)
	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, 480, s.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, "cube", s.Window.Title)
	assert.Equal(t, 60, s.Window.FPSLimit)
	assert.Equal(t, [3]float32{0, 0, 8}, s.Camera.Eye)
	assert.True(t, s.Camera.Orthographic)
	assert.Equal(t, []string{"wirecube"}, s.Scene.Shapes)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte("[window]\nwidht = 800\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"size":   "[window]\nwidth = 0\n",
		"gl":     "[window]\ngl_major = 2\n",
		"fps":    "[window]\nfps_limit = -1\n",
		"planes": "[camera]\nnear = 10.0\nfar = 1.0\n",
		"fov":    "[camera]\nfov = 180.0\n",
		"scale":  "[camera]\nscale = 0.0\n",
		"shapes": "[scene]\nshapes = []\n",
		"format": "[capture]\nformat = \"jpg\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParseCaptureFormats(t *testing.T) {
	for _, format := range []string{"png", "bmp", "tif", "TIFF"} {
		s, err := config.Parse([]byte("[capture]\nformat = \"" + format + "\"\n"))
		require.NoError(t, err, format)
		assert.Equal(t, format, s.Capture.Format)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := config.Parse([]byte("[window\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	s, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)

	s, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)

	path := filepath.Join(t.TempDir(), "glsample.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nheight = 600\n"), 0o644))
	s, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 600, s.Window.Height)
}

func TestShippedConfigLoads(t *testing.T) {
	_, err := config.Load(filepath.Join("..", "..", "glsample.toml"))
	assert.NoError(t, err)
}

func TestGlobalSettings(t *testing.T) {
	defer config.Set(config.Default())

	s := config.Default()
	s.Window.Title = "changed"
	config.Set(s)
	assert.Equal(t, "changed", config.Get().Window.Title)

	config.SetFPSLimit(-5)
	assert.Equal(t, 0, config.GetFPSLimit())
	config.SetFPSLimit(5000)
	assert.Equal(t, 1000, config.GetFPSLimit())
	config.SetFPSLimit(144)
	assert.Equal(t, 144, config.GetFPSLimit())
}
