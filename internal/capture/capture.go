package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FromPixels converts a bottom-up RGBA buffer, as returned by glReadPixels,
// into a top-down image.
func FromPixels(width, height int, pix []uint8) (*image.RGBA, error) {
	stride := width * 4
	if width <= 0 || height <= 0 || len(pix) < stride*height {
		return nil, fmt.Errorf("pixel buffer of %d bytes does not hold %dx%d RGBA", len(pix), width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img, nil
}

// Name returns a timestamped file name in dir with the given format extension.
func Name(dir, format string, t time.Time) string {
	return filepath.Join(dir, "glsample-"+t.Format("20060102-150405.000")+"."+format)
}

// Save encodes img according to the extension of path.
func Save(path string, img image.Image) (err error) {
	var encode func(*os.File, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File, m image.Image) error { return png.Encode(f, m) }
	case ".bmp":
		encode = func(f *os.File, m image.Image) error { return bmp.Encode(f, m) }
	case ".tif", ".tiff":
		encode = func(f *os.File, m image.Image) error {
			return tiff.Encode(f, m, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("unsupported screenshot format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
