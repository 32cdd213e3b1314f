package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitPitchLimit keeps the orbit camera away from the poles where the
// look-at basis flips.
var OrbitPitchLimit = mgl32.DegToRad(89)

// OrbitRig circles the world origin at a fixed distance.
type OrbitRig struct {
	Yaw      float32 // radians
	Pitch    float32 // radians
	Distance float32

	MinDistance float32
	MaxDistance float32

	DragSensitivity float32 // radians per pixel
	ZoomStep        float32 // distance per wheel notch
}

// NewOrbitRig returns an orbit rig slightly above the ecliptic.
func NewOrbitRig() *OrbitRig {
	return &OrbitRig{
		Yaw:             0,
		Pitch:           mgl32.DegToRad(15),
		Distance:        45,
		MinDistance:     5,
		MaxDistance:     400,
		DragSensitivity: 0.005,
		ZoomStep:        2,
	}
}

// Mode implements Rig.
func (o *OrbitRig) Mode() Mode { return ModeOrbit }

// Direction is the unit vector from the target towards the eye.
func (o *OrbitRig) Direction() mgl32.Vec3 {
	sp, cp := sincos(o.Pitch)
	sy, cy := sincos(o.Yaw)
	return mgl32.Vec3{cp * sy, sp, cp * cy}
}

// View implements Rig.
func (o *OrbitRig) View(Locator) View {
	return View{
		Eye:    o.Direction().Mul(o.Distance),
		Target: mgl32.Vec3{},
		Up:     WorldUp,
	}
}

// Drag applies a mouse drag in pixels.
func (o *OrbitRig) Drag(dx, dy float32) {
	o.Rotate(dx*o.DragSensitivity, -dy*o.DragSensitivity)
}

// Rotate adds yaw and pitch in radians, clamping pitch.
func (o *OrbitRig) Rotate(dyaw, dpitch float32) {
	o.Yaw += dyaw
	o.Pitch = clamp(o.Pitch+dpitch, -OrbitPitchLimit, OrbitPitchLimit)
}

// Zoom moves the eye towards the target by wheel notches.
func (o *OrbitRig) Zoom(wheel float32) {
	o.Distance = clamp(o.Distance-wheel*o.ZoomStep, o.MinDistance, o.MaxDistance)
}
