package camera

import "github.com/go-gl/mathgl/mgl32"

// FocusRig orbits a moving body. It borrows yaw and pitch from the orbit rig
// and keeps its own distance and target.
type FocusRig struct {
	// Targets are scene body indices in cycling order.
	Targets []int
	Index   int

	Distance    float32
	MinDistance float32
	MaxDistance float32
	ZoomStep    float32 // distance per wheel notch or key press

	angles *OrbitRig
}

// NewFocusRig returns a focus rig cycling over targets.
func NewFocusRig(targets []int, angles *OrbitRig) *FocusRig {
	return &FocusRig{
		Targets:     targets,
		Distance:    12,
		MinDistance: 3,
		MaxDistance: 400,
		ZoomStep:    2,
		angles:      angles,
	}
}

// Mode implements Rig.
func (f *FocusRig) Mode() Mode { return ModeFocus }

// Target returns the scene index of the focused body, or -1 with no targets.
func (f *FocusRig) Target() int {
	if len(f.Targets) == 0 {
		return -1
	}
	return f.Targets[f.Index]
}

// View implements Rig.
func (f *FocusRig) View(loc Locator) View {
	var p mgl32.Vec3
	if t := f.Target(); t >= 0 && loc != nil {
		p = loc.Position(t)
	}
	return View{
		Eye:    p.Add(f.angles.Direction().Mul(f.Distance)),
		Target: p,
		Up:     WorldUp,
	}
}

// Next focuses the following body, wrapping to the first.
func (f *FocusRig) Next() {
	if n := len(f.Targets); n > 0 {
		f.Index = (f.Index + 1) % n
	}
}

// Prev focuses the preceding body, wrapping to the last.
func (f *FocusRig) Prev() {
	if n := len(f.Targets); n > 0 {
		f.Index = (f.Index + n - 1) % n
	}
}

// Zoom moves towards the focused body by wheel notches.
func (f *FocusRig) Zoom(wheel float32) {
	f.Adjust(-wheel * f.ZoomStep)
}

// Adjust changes the focus distance by delta, clamped.
func (f *FocusRig) Adjust(delta float32) {
	f.Distance = clamp(f.Distance+delta, f.MinDistance, f.MaxDistance)
}

// Select focuses the target whose scene index is body. It reports false if
// body is not a focus target.
func (f *FocusRig) Select(body int) bool {
	for i, t := range f.Targets {
		if t == body {
			f.Index = i
			return true
		}
	}
	return false
}
