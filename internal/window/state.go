package window

// MinScale keeps the world-to-device scale positive when the wheel is spun down.
const MinScale = 1

// State is the input-driven part of a window, kept apart from glfw so it can be
// exercised without a display.
type State struct {
	// Size is the window size in screen coordinates.
	Size [2]float32
	// Scale is the world-to-device magnification, changed by the wheel.
	Scale float32
	// Location is the shape position in normalized device coordinates.
	Location [2]float32
	// WheelRotation accumulates vertical scroll offsets.
	WheelRotation float64
}

// NewState returns the state of a freshly opened window.
func NewState(width, height int, scale float32) State {
	return State{
		Size:  [2]float32{float32(width), float32(height)},
		Scale: scale,
	}
}

// Resize records the new window size.
func (s *State) Resize(width, height int) {
	s.Size = [2]float32{float32(width), float32(height)}
}

// Wheel applies a vertical scroll offset.
func (s *State) Wheel(y float64) {
	s.Scale += float32(y)
	if s.Scale < MinScale {
		s.Scale = MinScale
	}
	s.WheelRotation += y
}

// Nudge moves the location by one pixel's worth of NDC per held direction.
func (s *State) Nudge(left, right, up, down bool) {
	if s.Size[0] == 0 || s.Size[1] == 0 {
		return
	}
	if left {
		s.Location[0] -= 2 / s.Size[0]
	}
	if right {
		s.Location[0] += 2 / s.Size[0]
	}
	if up {
		s.Location[1] += 2 / s.Size[1]
	}
	if down {
		s.Location[1] -= 2 / s.Size[1]
	}
}

// PointAt moves the location under the cursor. Cursor coordinates have their
// origin at the top-left corner and y growing downward.
func (s *State) PointAt(x, y float64) {
	if s.Size[0] == 0 || s.Size[1] == 0 {
		return
	}
	s.Location[0] = float32(x)*2/s.Size[0] - 1
	s.Location[1] = 1 - float32(y)*2/s.Size[1]
}
