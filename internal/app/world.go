package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/picking"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/scene"
	"github.com/Faultbox/orrery/internal/solar"
)

// MeshUploader moves a CPU mesh to the GPU.
type MeshUploader func(mesh.Mesh) *renderer.GPUMesh

// TextureSource resolves a texture file name to a handle, 0 if unavailable.
type TextureSource func(file string) uint32

// World is the catalogue bound to GPU resources plus the live scene.
type World struct {
	Scene *scene.Scene
	// Targets are the focusable bodies in cycling order.
	Targets []int

	light  lighting.PointLight
	meshes map[string]*renderer.GPUMesh
	items  []renderer.Item
	radii  []float32 // pick radius per body, 0 unless focusable
	sky    renderer.Sky
	orbits renderer.Lines
	hud    renderer.HUD
}

// NewWorld builds every mesh once, resolves textures and materials and
// creates the scene.
func NewWorld(cat *solar.Catalogue, upload MeshUploader, textures TextureSource) (*World, error) {
	sc, err := cat.Scene()
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	targets, err := cat.FocusTargets(sc)
	if err != nil {
		return nil, err
	}

	w := &World{
		Scene:   sc,
		Targets: targets,
		light:   cat.Light.PointLight(),
		meshes:  make(map[string]*renderer.GPUMesh, len(cat.Meshes)),
	}
	for key, spec := range cat.Meshes {
		m, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("mesh %s: %w", key, err)
		}
		w.meshes[key] = upload(m)
	}

	tex := func(key string) uint32 {
		if key == "" {
			return 0
		}
		return textures(cat.Textures[key])
	}

	w.items = make([]renderer.Item, sc.Len())
	w.radii = make([]float32, sc.Len())
	for _, i := range targets {
		if spec := cat.Meshes[sc.Body(i).Mesh]; spec.Kind == "sphere" {
			w.radii[i] = spec.Radius
		}
	}
	for i, b := range sc.Bodies() {
		w.items[i] = renderer.Item{
			Name:     b.Name,
			Mesh:     w.meshes[b.Mesh],
			Texture:  tex(b.Texture),
			Material: cat.Materials[b.Material].Material(),
		}
	}

	w.sky = renderer.Sky{
		Mesh:       w.meshes[cat.Sky.Mesh],
		Texture:    tex(cat.Sky.Texture),
		Material:   cat.Materials[cat.Sky.Material].Material(),
		LightColor: mgl32.Vec3(cat.Sky.Light),
	}

	w.orbits.Color = mgl32.Vec3(cat.Orbits.Color)
	for _, r := range cat.Orbits.Radii {
		m, err := mesh.OrbitLine(cat.Orbits.Segments, r)
		if err != nil {
			return nil, fmt.Errorf("orbit line r=%v: %w", r, err)
		}
		w.orbits.Meshes = append(w.orbits.Meshes, upload(m))
	}

	w.hud = renderer.HUD{
		Mesh:   w.meshes[cat.HUD.Mesh],
		Inset:  mgl32.Vec2(cat.HUD.Inset),
		Radius: cat.HUD.Radius,
		Color:  mgl32.Vec3(cat.HUD.Color),
	}
	return w, nil
}

// View holds what the frame needs from the controls.
type View struct {
	Camera     camera.View
	Projection mgl32.Mat4
	ShowStars  bool
	ShowOrbits bool
}

// Frame assembles the draw list from the current scene transforms.
func (w *World) Frame(v View) *renderer.Frame {
	for i, m := range w.Scene.WorldTransforms() {
		w.items[i].Model = m
	}

	f := &renderer.Frame{
		Eye:        v.Camera.Eye,
		View:       v.Camera.Matrix(),
		Projection: v.Projection,
		Light:      w.light,
		Items:      w.items,
		HUD:        &w.hud,
	}
	if v.ShowStars {
		f.Sky = &w.sky
	}
	if v.ShowOrbits {
		f.Orbits = &w.orbits
	}
	return f
}

// Pick returns the scene index of the nearest focusable body under the
// viewport pixel (x, y), measured from the top-left of a width x height
// viewport. Other bodies do not block the ray.
func (w *World) Pick(x, y float32, width, height int, v View) (int, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	inv := v.Projection.Mul4(v.Camera.Matrix()).Inv()
	ray := picking.ScreenToRay(x, y, float32(width), float32(height), inv)

	spheres := make([]picking.Sphere, len(w.radii))
	for i, r := range w.radii {
		spheres[i] = picking.Sphere{Center: w.Scene.Position(i), Radius: r}
	}
	return picking.Nearest(ray, spheres)
}

// Meshes returns every uploaded mesh for cleanup.
func (w *World) Meshes() []*renderer.GPUMesh {
	out := make([]*renderer.GPUMesh, 0, len(w.meshes)+len(w.orbits.Meshes))
	for _, m := range w.meshes {
		out = append(out, m)
	}
	return append(out, w.orbits.Meshes...)
}
