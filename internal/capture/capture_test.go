package capture_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"glsample/internal/capture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// two rows, bottom row red, top row blue, as GL returns them
func glPixels() []uint8 {
	return []uint8{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
}

func TestFromPixelsFlips(t *testing.T) {
	img, err := capture.FromPixels(2, 2, glPixels())
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 1))
}

func TestFromPixelsShortBuffer(t *testing.T) {
	_, err := capture.FromPixels(2, 2, make([]uint8, 15))
	assert.Error(t, err)
	_, err = capture.FromPixels(0, 2, nil)
	assert.Error(t, err)
}

func TestSaveFormats(t *testing.T) {
	img, err := capture.FromPixels(2, 2, glPixels())
	require.NoError(t, err)
	dir := t.TempDir()

	decoders := map[string]func(*os.File) (image.Image, error){
		"shot.png":  func(f *os.File) (image.Image, error) { m, _, err := image.Decode(f); return m, err },
		"shot.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"shot.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, capture.Save(path, img))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()
			got, err := decode(f)
			require.NoError(t, err)

			r, g, b, _ := got.At(0, 0).RGBA()
			assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
		})
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	err := capture.Save(filepath.Join(t.TempDir(), "shot.gif"), img)
	assert.ErrorContains(t, err, "unsupported")
}

func TestName(t *testing.T) {
	ts := time.Date(2026, 10, 18, 9, 30, 15, 250_000_000, time.UTC)
	assert.Equal(t, filepath.Join("shots", "glsample-20261018-093015.250.bmp"), capture.Name("shots", "bmp", ts))
}
