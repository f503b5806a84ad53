package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadPixels returns the RGBA contents of the current read framebuffer,
// bottom row first.
func ReadPixels(width, height int) []uint8 {
	pix := make([]uint8, width*height*4)
	if len(pix) == 0 {
		return pix
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}
