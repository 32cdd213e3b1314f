// Package lighting describes the point light and Blinn-Phong materials used
// to shade bodies, plus a CPU version of the shading formula for reference.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AmbientFactor scales the light colour into the ambient term.
const AmbientFactor = 0.05

// PointLight is an omnidirectional light without falloff.
type PointLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Material holds the fixed per-body-type shading constants.
type Material struct {
	BaseColor mgl32.Vec3
	Emissive  mgl32.Vec3
	Shininess float32
	// Specular is the reflectance scalar (ks).
	Specular float32
	// Translucent surfaces are drawn after opaque ones with alpha blending
	// and without back-face culling.
	Translucent bool
}

// Shade evaluates
//
//	(ambient + diffuse + specular) * base + emissive * base
//
// for a surface point, exactly as the fragment shader does.
func Shade(light PointLight, m Material, base, pos, normal, eye mgl32.Vec3) mgl32.Vec3 {
	n := unit(normal)
	l := unit(light.Position.Sub(pos))
	v := unit(eye.Sub(pos))
	h := unit(l.Add(v))

	diff := max32(n.Dot(l), 0)
	spec := float32(math.Pow(float64(max32(n.Dot(h), 0)), float64(max32(m.Shininess, 1))))

	ambient := light.Color.Mul(AmbientFactor)
	diffuse := light.Color.Mul(diff)
	specular := light.Color.Mul(m.Specular * spec)

	lit := mulVec(ambient.Add(diffuse).Add(specular), base)
	return lit.Add(mulVec(m.Emissive, base))
}

func unit(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
