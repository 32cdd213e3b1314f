package renderer

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orrery/internal/engine/lighting"
)

// Item is one lit, textured draw.
type Item struct {
	Name     string
	Mesh     *GPUMesh
	Texture  uint32 // 0 draws the material base colour
	Model    mgl32.Mat4
	Material lighting.Material
}

// Sky is the starfield sphere, centred on the eye every frame.
type Sky struct {
	Mesh       *GPUMesh
	Texture    uint32
	Material   lighting.Material
	LightColor mgl32.Vec3
}

// Lines is a set of unlit line meshes sharing one colour.
type Lines struct {
	Meshes []*GPUMesh
	Color  mgl32.Vec3
}

// HUD is the screen-space circle, placed Inset pixels from the top-left.
type HUD struct {
	Mesh   *GPUMesh
	Inset  mgl32.Vec2
	Radius float32
	Color  mgl32.Vec3
}

// Frame is everything needed to draw one image.
type Frame struct {
	Eye        mgl32.Vec3
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Light      lighting.PointLight

	Sky    *Sky // nil when stars are hidden
	Items  []Item
	Orbits *Lines // nil when orbit lines are hidden
	HUD    *HUD
}

// Projection returns the perspective matrix for a vertical fov in degrees.
func Projection(fovDeg, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}

// SkyModel centres the sky sphere on the eye so it never gets closer.
func SkyModel(eye mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(eye[0], eye[1], eye[2])
}

// HUDMatrix maps the unit circle to a circle of radius px centred inset
// pixels from the top-left corner of a width x height viewport. The circle
// mesh lies in the XZ plane like the orbit lines, so it is first turned
// into the screen's XY plane (+Z becomes +Y).
func HUDMatrix(width, height int, inset mgl32.Vec2, radius float32) mgl32.Mat4 {
	w, h := float32(width), float32(height)
	ortho := mgl32.Ortho2D(0, w, 0, h)
	place := mgl32.Translate3D(inset[0], h-inset[1], 0)
	scale := mgl32.Scale3D(radius, radius, 1)
	upright := mgl32.HomogRotate3DX(-math.Pi / 2)
	return ortho.Mul4(place).Mul4(scale).Mul4(upright)
}

// DrawOrder returns items with opaque ones first and translucent ones last,
// keeping the input order within each group.
func DrawOrder(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Material.Translucent && out[j].Material.Translucent
	})
	return out
}
