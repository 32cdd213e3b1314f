// Package solar describes the fixed Solar System scene: which meshes,
// textures and materials exist and how the bodies are arranged.
package solar

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/scene"
)

//go:embed bodies.yaml
var bodiesYAML []byte

// MeshSpec parameterises one of the mesh generators.
type MeshSpec struct {
	Kind     string  `yaml:"kind"` // sphere, ring or orbit
	Stacks   int     `yaml:"stacks"`
	Slices   int     `yaml:"slices"`
	Segments int     `yaml:"segments"`
	Radius   float32 `yaml:"radius"`
	Inner    float32 `yaml:"inner"`
	Outer    float32 `yaml:"outer"`
}

// Build runs the generator.
func (m MeshSpec) Build() (mesh.Mesh, error) {
	switch m.Kind {
	case "sphere":
		return mesh.Sphere(m.Stacks, m.Slices, m.Radius)
	case "ring":
		return mesh.Ring(m.Segments, m.Inner, m.Outer)
	case "orbit":
		return mesh.OrbitLine(m.Segments, m.Radius)
	default:
		return mesh.Mesh{}, fmt.Errorf("unknown mesh kind %q", m.Kind)
	}
}

// MaterialSpec is the YAML form of lighting.Material.
type MaterialSpec struct {
	Base        [3]float32 `yaml:"base"`
	Emissive    [3]float32 `yaml:"emissive"`
	Shininess   float32    `yaml:"shininess"`
	Specular    float32    `yaml:"ks"`
	Translucent bool       `yaml:"translucent"`
}

// Material converts the YAML form.
func (m MaterialSpec) Material() lighting.Material {
	return lighting.Material{
		BaseColor:   mgl32.Vec3(m.Base),
		Emissive:    mgl32.Vec3(m.Emissive),
		Shininess:   m.Shininess,
		Specular:    m.Specular,
		Translucent: m.Translucent,
	}
}

// BodySpec is one row of the body table.
type BodySpec struct {
	Name        string  `yaml:"name"`
	Parent      string  `yaml:"parent"`
	Attach      string  `yaml:"attach"` // orbit (default) or rigid
	Mesh        string  `yaml:"mesh"`
	Texture     string  `yaml:"texture"`
	Material    string  `yaml:"material"`
	OrbitRadius float32 `yaml:"orbit_radius"`
	OrbitSpeed  float32 `yaml:"orbit_speed"`
	SpinSpeed   float32 `yaml:"spin_speed"`
	TiltX       float32 `yaml:"tilt_x"`
}

// OrbitSpec describes the orbit guide lines.
type OrbitSpec struct {
	Segments int        `yaml:"segments"`
	Radii    []float32  `yaml:"radii"`
	Color    [3]float32 `yaml:"color"`
}

// SkySpec describes the starfield sphere. Light replaces the scene light
// colour while the sky is drawn so the stars are not washed out.
type SkySpec struct {
	Mesh     string     `yaml:"mesh"`
	Texture  string     `yaml:"texture"`
	Material string     `yaml:"material"`
	Light    [3]float32 `yaml:"light"`
}

// LightSpec is the single point light.
type LightSpec struct {
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
}

// PointLight converts the YAML form.
func (l LightSpec) PointLight() lighting.PointLight {
	return lighting.PointLight{Position: mgl32.Vec3(l.Position), Color: mgl32.Vec3(l.Color)}
}

// HUDSpec places the screen-space circle. Inset is measured from the
// top-left corner in pixels.
type HUDSpec struct {
	Mesh   string     `yaml:"mesh"`
	Inset  [2]float32 `yaml:"inset"`
	Radius float32    `yaml:"radius"`
	Color  [3]float32 `yaml:"color"`
}

// Catalogue is the whole scene description.
type Catalogue struct {
	Meshes    map[string]MeshSpec     `yaml:"meshes"`
	Textures  map[string]string       `yaml:"textures"`
	Materials map[string]MaterialSpec `yaml:"materials"`
	Bodies    []BodySpec              `yaml:"bodies"`
	Light     LightSpec               `yaml:"light"`
	Orbits    OrbitSpec               `yaml:"orbits"`
	Sky       SkySpec                 `yaml:"sky"`
	HUD       HUDSpec                 `yaml:"hud"`
	Focus     []string                `yaml:"focus"`
}

// Load parses the built-in catalogue.
func Load() (*Catalogue, error) {
	return Parse(bodiesYAML)
}

// Parse decodes and validates a catalogue.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalogue: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every reference resolves.
func (c *Catalogue) Validate() error {
	if len(c.Bodies) == 0 {
		return fmt.Errorf("catalogue has no bodies")
	}

	seen := make(map[string]bool, len(c.Bodies))
	for _, b := range c.Bodies {
		if err := c.checkRefs("body "+b.Name, b.Mesh, b.Texture, b.Material); err != nil {
			return err
		}
		if b.Parent != "" && !seen[b.Parent] {
			return fmt.Errorf("body %s: parent %q must be listed before it", b.Name, b.Parent)
		}
		if _, err := attachment(b.Attach); err != nil {
			return fmt.Errorf("body %s: %w", b.Name, err)
		}
		seen[b.Name] = true
	}

	if err := c.checkRefs("sky", c.Sky.Mesh, c.Sky.Texture, c.Sky.Material); err != nil {
		return err
	}
	if _, ok := c.Meshes[c.HUD.Mesh]; !ok {
		return fmt.Errorf("hud: unknown mesh %q", c.HUD.Mesh)
	}
	for _, name := range c.Focus {
		if !seen[name] {
			return fmt.Errorf("focus: unknown body %q", name)
		}
	}
	return nil
}

func (c *Catalogue) checkRefs(what, meshKey, texKey, matKey string) error {
	if _, ok := c.Meshes[meshKey]; !ok {
		return fmt.Errorf("%s: unknown mesh %q", what, meshKey)
	}
	if _, ok := c.Textures[texKey]; texKey != "" && !ok {
		return fmt.Errorf("%s: unknown texture %q", what, texKey)
	}
	if _, ok := c.Materials[matKey]; !ok {
		return fmt.Errorf("%s: unknown material %q", what, matKey)
	}
	return nil
}

func attachment(s string) (scene.Attachment, error) {
	switch s {
	case "", "orbit":
		return scene.Orbit, nil
	case "rigid":
		return scene.Rigid, nil
	default:
		return 0, fmt.Errorf("unknown attachment %q", s)
	}
}

// Scene builds the mutable body table with all angles at zero.
func (c *Catalogue) Scene() (*scene.Scene, error) {
	index := make(map[string]int, len(c.Bodies))
	bodies := make([]scene.Body, 0, len(c.Bodies))

	for i, b := range c.Bodies {
		parent := scene.NoParent
		if b.Parent != "" {
			parent = index[b.Parent]
		}
		attach, err := attachment(b.Attach)
		if err != nil {
			return nil, fmt.Errorf("body %s: %w", b.Name, err)
		}
		bodies = append(bodies, scene.Body{
			Name:        b.Name,
			Parent:      parent,
			Attach:      attach,
			Mesh:        b.Mesh,
			Texture:     b.Texture,
			Material:    b.Material,
			OrbitRadius: b.OrbitRadius,
			OrbitSpeed:  b.OrbitSpeed,
			SpinSpeed:   b.SpinSpeed,
			TiltX:       b.TiltX,
		})
		index[b.Name] = i
	}

	return scene.New(bodies)
}

// FocusTargets resolves the focus order to scene indices.
func (c *Catalogue) FocusTargets(s *scene.Scene) ([]int, error) {
	targets := make([]int, 0, len(c.Focus))
	for _, name := range c.Focus {
		i, ok := s.Index(name)
		if !ok {
			return nil, fmt.Errorf("focus target %q not in scene", name)
		}
		targets = append(targets, i)
	}
	return targets, nil
}
