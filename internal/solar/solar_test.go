package solar

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLoadBuiltin(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(c.Focus); got != 9 {
		t.Errorf("focus list has %d bodies, want sun + 8 planets", got)
	}
	if c.Focus[0] != "sun" || c.Focus[8] != "neptune" {
		t.Errorf("focus order = %v", c.Focus)
	}
	if got := len(c.Orbits.Radii); got != 8 {
		t.Errorf("orbit guides = %d, want 8", got)
	}

	for key, spec := range c.Meshes {
		if _, err := spec.Build(); err != nil {
			t.Errorf("mesh %s: %v", key, err)
		}
	}
}

func TestSharedMoonTexture(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	tex := map[string]string{}
	for _, b := range c.Bodies {
		tex[b.Name] = b.Texture
	}
	if tex["europa"] != "moon" || tex["moon"] != "moon" {
		t.Errorf("europa texture = %q, moon texture = %q; want both %q", tex["europa"], tex["moon"], "moon")
	}
}

func TestSceneFromCatalogue(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Scene()
	if err != nil {
		t.Fatalf("Scene: %v", err)
	}

	earth, ok := s.Index("earth")
	if !ok {
		t.Fatal("earth missing")
	}
	moon, _ := s.Index("moon")
	if s.Body(moon).Parent != earth {
		t.Errorf("moon parent = %d, want %d", s.Body(moon).Parent, earth)
	}
	if got := s.Body(earth).OrbitSpeed; got != 30 {
		t.Errorf("earth orbit speed = %v, want 30", got)
	}

	// One second at unit time scale moves earth 30 degrees along its orbit.
	s.Advance(1, false, 1)
	if got := s.Body(earth).OrbitAngle; got != 30 {
		t.Errorf("earth orbit angle = %v, want 30", got)
	}

	targets, err := c.FocusTargets(s)
	if err != nil {
		t.Fatalf("FocusTargets: %v", err)
	}
	if len(targets) != 9 || targets[0] != 0 {
		t.Errorf("targets = %v", targets)
	}
	for _, i := range targets {
		if s.Body(i).Parent != -1 {
			t.Errorf("focus target %s is not a root body", s.Body(i).Name)
		}
	}
}

func TestMaterials(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	sun := c.Materials["sun"].Material()
	if sun.Emissive[0] != 2.2 || sun.Specular != 0 {
		t.Errorf("sun material = %+v", sun)
	}
	if !c.Materials["ring"].Material().Translucent {
		t.Error("ring material should be translucent")
	}
	if c.Materials["rocky"].Material().Translucent {
		t.Error("rocky material should be opaque")
	}
}

func TestParseRejectsBadReferences(t *testing.T) {
	base := `
meshes: {s: {kind: sphere, stacks: 2, slices: 2, radius: 1}, h: {kind: orbit, segments: 8, radius: 1}}
textures: {t: t.png}
materials: {m: {shininess: 1}}
sky: {mesh: s, texture: t, material: m}
hud: {mesh: h}
`
	tests := []struct {
		name   string
		bodies string
		want   string
	}{
		{"no bodies", "bodies: []", "no bodies"},
		{"unknown mesh", "bodies: [{name: a, mesh: x, material: m}]", "unknown mesh"},
		{"unknown texture", "bodies: [{name: a, mesh: s, texture: x, material: m}]", "unknown texture"},
		{"unknown material", "bodies: [{name: a, mesh: s, material: x}]", "unknown material"},
		{"late parent", "bodies: [{name: a, mesh: s, material: m, parent: b}, {name: b, mesh: s, material: m}]", "listed before"},
		{"bad attach", "bodies: [{name: a, mesh: s, material: m, attach: glued}]", "attachment"},
		{"unknown focus", "bodies: [{name: a, mesh: s, material: m}]\nfocus: [z]", "focus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(base + tt.bodies))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestMeshSpecUnknownKind(t *testing.T) {
	if _, err := (MeshSpec{Kind: "cube"}).Build(); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestLights(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	l := c.Light.PointLight()
	if l.Position != (mgl32.Vec3{}) {
		t.Errorf("light position = %v, want origin", l.Position)
	}
	if l.Color != (mgl32.Vec3{7, 7, 7}) {
		t.Errorf("light color = %v, want (7,7,7)", l.Color)
	}
	if c.Sky.Light != [3]float32{1, 1, 1} {
		t.Errorf("sky light = %v, want (1,1,1)", c.Sky.Light)
	}
}
