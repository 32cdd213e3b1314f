package camera

import "github.com/go-gl/mathgl/mgl32"

// FreePitchLimit bounds the free camera's look pitch.
var FreePitchLimit = mgl32.DegToRad(85)

// Movement is the per-frame keyboard intent, each axis in [-1, 1].
type Movement struct {
	Forward float32
	Right   float32
	Up      float32
}

// FreeRig flies through the scene with its own position and look direction.
type FreeRig struct {
	Position mgl32.Vec3
	Yaw      float32 // radians, 0 looks down -Z
	Pitch    float32 // radians

	LookSensitivity float32 // radians per pixel
	Speed           float32 // units per second
	SprintSpeed     float32 // units per second while the look button is held
}

// NewFreeRig returns a free rig behind and above the sun.
func NewFreeRig() *FreeRig {
	return &FreeRig{
		Position:        mgl32.Vec3{0, 10, 60},
		LookSensitivity: 0.002,
		Speed:           8,
		SprintSpeed:     25,
	}
}

// Mode implements Rig.
func (f *FreeRig) Mode() Mode { return ModeFree }

// Forward is the horizontal movement direction.
func (f *FreeRig) Forward() mgl32.Vec3 {
	s, c := sincos(f.Yaw)
	return mgl32.Vec3{s, 0, -c}
}

// Right is the horizontal strafe direction.
func (f *FreeRig) Right() mgl32.Vec3 {
	return f.Forward().Cross(WorldUp).Normalize()
}

// LookDirection is the unit vector the camera faces.
func (f *FreeRig) LookDirection() mgl32.Vec3 {
	sp, cp := sincos(f.Pitch)
	sy, cy := sincos(f.Yaw)
	return mgl32.Vec3{cp * sy, sp, -cp * cy}
}

// View implements Rig.
func (f *FreeRig) View(Locator) View {
	return View{
		Eye:    f.Position,
		Target: f.Position.Add(f.LookDirection()),
		Up:     WorldUp,
	}
}

// Look applies a mouse drag in pixels.
func (f *FreeRig) Look(dx, dy float32) {
	f.Yaw += dx * f.LookSensitivity
	f.Pitch = clamp(f.Pitch-dy*f.LookSensitivity, -FreePitchLimit, FreePitchLimit)
}

// Move advances the position along the forward/right/up basis for dt seconds.
func (f *FreeRig) Move(m Movement, dt float32, sprint bool) {
	speed := f.Speed
	if sprint {
		speed = f.SprintSpeed
	}
	step := speed * dt

	delta := f.Forward().Mul(m.Forward).
		Add(f.Right().Mul(m.Right)).
		Add(WorldUp.Mul(m.Up))
	f.Position = f.Position.Add(delta.Mul(step))
}
