package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/mesh"
)

func TestDrawOrderPutsTranslucentLast(t *testing.T) {
	ring := lighting.Material{Translucent: true}
	items := []Item{
		{Name: "sun"},
		{Name: "saturn_ring", Material: ring},
		{Name: "earth"},
		{Name: "glass", Material: ring},
		{Name: "neptune"},
	}

	got := DrawOrder(items)
	want := []string{"sun", "earth", "neptune", "saturn_ring", "glass"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d = %s, want %s", i, got[i].Name, name)
		}
	}
	if items[1].Name != "saturn_ring" {
		t.Error("DrawOrder must not reorder its input")
	}
}

func TestHUDMatrixPlacesCircle(t *testing.T) {
	const w, h = 1280, 720
	m := HUDMatrix(w, h, mgl32.Vec2{100, 100}, 80)

	// Centre of the unit circle lands at pixel (100, h-100).
	toPixels := func(p mgl32.Vec4) mgl32.Vec2 {
		return mgl32.Vec2{(p[0] + 1) / 2 * w, (p[1] + 1) / 2 * h}
	}

	centre := toPixels(m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}))
	if !centre.ApproxEqualThreshold(mgl32.Vec2{100, 620}, 1e-3) {
		t.Errorf("centre = %v, want (100, 620)", centre)
	}
	edge := toPixels(m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}))
	if !edge.ApproxEqualThreshold(mgl32.Vec2{180, 620}, 1e-3) {
		t.Errorf("edge = %v, want (180, 620)", edge)
	}
	// The circle mesh lies in XZ; its +Z point must land 80 px off the
	// centre row, not on it.
	top := toPixels(m.Mul4x1(mgl32.Vec4{0, 0, 1, 1}))
	if !top.ApproxEqualThreshold(mgl32.Vec2{100, 700}, 1e-3) {
		t.Errorf("+Z point = %v, want (100, 700)", top)
	}
}

func TestHUDMatrixKeepsCircleRound(t *testing.T) {
	const w, h = 1280, 720
	m := HUDMatrix(w, h, mgl32.Vec2{100, 100}, 80)
	ring, err := mesh.OrbitLine(128, 1)
	if err != nil {
		t.Fatal(err)
	}

	minX, maxX := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	minY, maxY := minX, maxX
	for _, v := range ring.Vertices {
		p := m.Mul4x1(v.Position.Vec4(1))
		x, y := (p[0]+1)/2*w, (p[1]+1)/2*h
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	for _, tt := range []struct {
		name      string
		got, want float32
	}{
		{"width", maxX - minX, 160},
		{"height", maxY - minY, 160},
	} {
		if !mgl32.FloatEqualThreshold(tt.got, tt.want, 0.5) {
			t.Errorf("%s = %.2f px, want %.0f", tt.name, tt.got, tt.want)
		}
	}
}

func TestSkyModelFollowsEye(t *testing.T) {
	eye := mgl32.Vec3{3, 10, 60}
	p := SkyModel(eye).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if p != eye {
		t.Errorf("sky centre = %v, want %v", p, eye)
	}
}

func TestProjectionMatchesPerspective(t *testing.T) {
	got := Projection(45, 16.0/9.0, 0.1, 1000)
	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 1000)
	if !got.ApproxEqual(want) {
		t.Errorf("Projection = %v, want %v", got, want)
	}
}

func TestPrimitive(t *testing.T) {
	if Primitive(mesh.Lines) == Primitive(mesh.Triangles) {
		t.Error("lines and triangles must map to different GL modes")
	}
}
