// Package camera provides the three viewing modes of the viewer and the
// controller that switches between them.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode identifies a camera rig.
type Mode int

const (
	ModeOrbit Mode = iota
	ModeFree
	ModeFocus
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "Orbit"
	case ModeFree:
		return "Free"
	case ModeFocus:
		return "Focus"
	default:
		return "Unknown"
	}
}

// WorldUp is the up vector every rig reports.
var WorldUp = mgl32.Vec3{0, 1, 0}

// View is the eye/target/up triple a rig produces each frame.
type View struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// Matrix returns the look-at view matrix.
func (v View) Matrix() mgl32.Mat4 {
	return mgl32.LookAtV(v.Eye, v.Target, v.Up)
}

// Locator reports the current world position of a scene body.
type Locator interface {
	Position(i int) mgl32.Vec3
}

// Rig computes a view for one camera mode.
type Rig interface {
	Mode() Mode
	View(loc Locator) View
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sincos(a float32) (float32, float32) {
	s, c := gomath.Sincos(float64(a))
	return float32(s), float32(c)
}
