package graphics

import (
	"glsample/internal/transform"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices
type Camera struct {
	Width, Height float32
	FOV           float32 // vertical, degrees
	NearPlane     float32
	FarPlane      float32

	// Orthographic switches the projection to a box whose half extents are
	// the window size divided by the world-to-device scale.
	Orthographic bool

	Eye, Target, Up mgl32.Vec3
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Width:     float32(width),
		Height:    float32(height),
		FOV:       30.0,
		NearPlane: 1.0,
		FarPlane:  10.0,
		Eye:       mgl32.Vec3{3, 4, 5},
		Up:        mgl32.Vec3{0, 1, 0},
	}
}

// SetViewport records a new framebuffer size.
func (c *Camera) SetViewport(width, height int) {
	c.Width = float32(width)
	c.Height = float32(height)
}

// AspectRatio returns width/height, or 0 before the first resize.
func (c *Camera) AspectRatio() float32 {
	if c.Height == 0 {
		return 0
	}
	return c.Width / c.Height
}

// ProjectionMatrix returns the current projection. scale is only used by the
// orthographic projection.
func (c *Camera) ProjectionMatrix(scale float32) transform.Matrix {
	if c.Orthographic {
		if scale == 0 {
			return transform.Identity()
		}
		w := c.Width / scale
		h := c.Height / scale
		return transform.Orthogonal(-w, w, -h, h, c.NearPlane, c.FarPlane)
	}
	return transform.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio(), c.NearPlane, c.FarPlane)
}

// ViewMatrix looks from Eye toward Target with the scene turned by orbit radians about the up axis.
func (c *Camera) ViewMatrix(orbit float32) transform.Matrix {
	view := transform.LookAt(c.Eye, c.Target, c.Up)
	if orbit == 0 {
		return view
	}
	return view.Mul(transform.Rotate(orbit, c.Up[0], c.Up[1], c.Up[2]))
}
