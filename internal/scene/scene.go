package scene

import (
	"glsample/internal/graphics"
	"glsample/internal/transform"
	"glsample/internal/window"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transforms are the per-frame matrices uploaded to the shaders.
type Transforms struct {
	Model      transform.Matrix
	View       transform.Matrix
	ModelView  transform.Matrix
	Projection transform.Matrix
}

// Scene turns window state and time into transforms. Nothing is cached; every
// frame is computed from scratch.
type Scene struct {
	Camera *graphics.Camera

	SpinSpeed     float32 // radians per second
	SpinAxis      mgl32.Vec3
	OrbitPerNotch float32 // radians per wheel notch
}

// Frame computes the transforms for window state st at time t seconds.
// The shape's centre is drawn under st.Location in normalized device coordinates.
func (s *Scene) Frame(st window.State, t float64) Transforms {
	s.Camera.SetViewport(int(st.Size[0]), int(st.Size[1]))

	angle := s.SpinSpeed * float32(t)
	model := transform.Rotate(angle, s.SpinAxis[0], s.SpinAxis[1], s.SpinAxis[2])
	view := s.Camera.ViewMatrix(s.OrbitPerNotch * float32(st.WheelRotation))

	hx, hy := s.halfExtents(st.Scale)
	shift := transform.Translate(st.Location[0]*hx, st.Location[1]*hy, 0)

	return Transforms{
		Model:      model,
		View:       view,
		ModelView:  shift.Mul(view).Mul(model),
		Projection: s.Camera.ProjectionMatrix(st.Scale),
	}
}

// halfExtents returns the view-space half width and height of the visible
// region in the plane of the target.
func (s *Scene) halfExtents(scale float32) (float32, float32) {
	c := s.Camera
	if c.Orthographic {
		if scale == 0 {
			return 1, 1
		}
		return c.Width / scale, c.Height / scale
	}
	d := c.Eye.Sub(c.Target).Len()
	hy := d * math32.Tan(mgl32.DegToRad(c.FOV)*0.5)
	return hy * c.AspectRatio(), hy
}
