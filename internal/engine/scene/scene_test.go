package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testBodies() []Body {
	return []Body{
		{Name: "sun", Parent: NoParent, SpinSpeed: 10},
		{Name: "earth", Parent: NoParent, OrbitRadius: 12, OrbitSpeed: 30, SpinSpeed: 50},
		{Name: "moon", Parent: 1, OrbitRadius: 2, OrbitSpeed: 80, SpinSpeed: 20},
		{Name: "saturn", Parent: NoParent, OrbitRadius: 26, OrbitSpeed: 10, SpinSpeed: 70},
		{Name: "ring", Parent: 3, Attach: Rigid, TiltX: 27},
	}
}

func mustScene(t *testing.T) *Scene {
	t.Helper()
	s, err := New(testBodies())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		bodies []Body
	}{
		{"empty name", []Body{{Parent: NoParent}}},
		{"duplicate", []Body{{Name: "a", Parent: NoParent}, {Name: "a", Parent: NoParent}}},
		{"forward parent", []Body{{Name: "a", Parent: 1}, {Name: "b", Parent: NoParent}}},
		{"self parent", []Body{{Name: "a", Parent: 0}}},
		{"rigid root", []Body{{Name: "a", Parent: NoParent, Attach: Rigid}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.bodies); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEffectiveDelta(t *testing.T) {
	tests := []struct {
		elapsed   float64
		paused    bool
		timeScale float64
		want      float64
	}{
		{1, false, 1, 1},
		{0.5, false, 2, 1},
		{0.016, false, 0, 0},
		{1, true, 1, 0},
		{1, true, 4, 0},
		{1, false, -1, 0},
	}

	for _, tt := range tests {
		if got := EffectiveDelta(tt.elapsed, tt.paused, tt.timeScale); got != tt.want {
			t.Errorf("EffectiveDelta(%v, %v, %v) = %v, want %v", tt.elapsed, tt.paused, tt.timeScale, got, tt.want)
		}
	}
}

func TestAdvanceOneSecond(t *testing.T) {
	s := mustScene(t)
	earth, _ := s.Index("earth")
	before := s.Body(earth).OrbitAngle

	s.Advance(1.0, false, 1)

	if got, want := s.Body(earth).OrbitAngle, before+30; got != want {
		t.Errorf("orbit angle = %v, want %v", got, want)
	}
	if got := s.Body(earth).SpinAngle; got != 50 {
		t.Errorf("spin angle = %v, want 50", got)
	}
}

func TestAdvancePausedFreezesAngles(t *testing.T) {
	s := mustScene(t)
	s.Advance(0.7, false, 1)
	snapshot := append([]Body(nil), s.Bodies()...)

	for range make([]struct{}, 5) {
		s.Advance(1.0, true, 3)
		s.Advance(1.0, false, 0)
	}

	for i, b := range s.Bodies() {
		if b.OrbitAngle != snapshot[i].OrbitAngle || b.SpinAngle != snapshot[i].SpinAngle {
			t.Errorf("%s moved while paused: %+v -> %+v", b.Name, snapshot[i], b)
		}
	}
}

func TestAdvanceScalesBySpeed(t *testing.T) {
	s := mustScene(t)
	s.Advance(0.5, false, 2)

	for _, b := range s.Bodies() {
		if b.OrbitAngle != b.OrbitSpeed || b.SpinAngle != b.SpinSpeed {
			t.Errorf("%s advanced to (%v, %v), want (%v, %v)", b.Name, b.OrbitAngle, b.SpinAngle, b.OrbitSpeed, b.SpinSpeed)
		}
	}
}

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func TestPositionsFollowHierarchy(t *testing.T) {
	s := mustScene(t)
	earth, _ := s.Index("earth")
	moon, _ := s.Index("moon")

	if got := s.Position(earth); !vecNear(got, mgl32.Vec3{12, 0, 0}) {
		t.Errorf("earth at %v, want (12,0,0)", got)
	}
	if got := s.Position(moon); !vecNear(got, mgl32.Vec3{14, 0, 0}) {
		t.Errorf("moon at %v, want (14,0,0)", got)
	}

	// Quarter orbit for earth; moon rides along and adds its own offset.
	s.Advance(3, false, 1)
	ep := s.Position(earth)
	if d := ep.Len(); math.Abs(float64(d-12)) > 1e-4 || math.Abs(float64(ep.Y())) > 1e-5 {
		t.Errorf("earth left its orbit: %v", ep)
	}
	if !vecNear(ep, mgl32.Vec3{0, 0, -12}) {
		t.Errorf("earth at %v after 90 degrees, want (0,0,-12)", ep)
	}
	if d := s.Position(moon).Sub(ep).Len(); math.Abs(float64(d-2)) > 1e-4 {
		t.Errorf("moon %v from earth, want 2", d)
	}
}

func TestChildIgnoresParentSpin(t *testing.T) {
	a := mustScene(t)
	b, err := New(func() []Body {
		bodies := testBodies()
		bodies[1].SpinAngle = 123
		return bodies
	}())
	if err != nil {
		t.Fatal(err)
	}

	if !vecNear(a.Position(2), b.Position(2)) {
		t.Errorf("moon position depends on earth spin: %v vs %v", a.Position(2), b.Position(2))
	}
}

func TestRigidAttachmentTilt(t *testing.T) {
	s := mustScene(t)
	saturn, _ := s.Index("saturn")
	ring, _ := s.Index("ring")

	s.Advance(2, false, 1)
	if !vecNear(s.Position(ring), s.Position(saturn)) {
		t.Errorf("ring at %v, saturn at %v", s.Position(ring), s.Position(saturn))
	}

	// The ring plane normal is +Y tilted 27 degrees about X, independent of spin.
	n := s.Model(ring).Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	if got := float64(n.Y()); math.Abs(got-math.Cos(27*math.Pi/180)) > 1e-4 {
		t.Errorf("ring normal %v, want y=cos(27deg)", n)
	}
	if b := s.Body(ring); b.OrbitAngle != 0 || b.SpinAngle != 0 {
		t.Errorf("rigid body angles advanced: %+v", b)
	}
}

func TestWorldTransformsIsCopy(t *testing.T) {
	s := mustScene(t)
	s.Advance(1, false, 1)

	got := s.WorldTransforms()
	if len(got) != s.Len() {
		t.Fatalf("len = %d, want %d", len(got), s.Len())
	}
	for i := range got {
		if got[i] != s.Model(i) {
			t.Errorf("transform %d differs from Model", i)
		}
	}

	got[0] = mgl32.Ident4().Mul(2)
	if s.Model(0) == got[0] {
		t.Error("WorldTransforms aliases the scene's matrices")
	}
}
