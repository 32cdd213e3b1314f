// Package picking casts rays from the screen into the scene to find which
// body lies under the cursor.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// Sphere is a pickable bounding sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates with the origin at the top-left,
// viewportW/H are viewport dimensions and invViewProj is the inverse of the
// view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	near := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1, 1})

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

func unproject(inv mgl32.Mat4, p mgl32.Vec4) mgl32.Vec3 {
	w := inv.Mul4x1(p)
	if w[3] != 0 {
		return w.Vec3().Mul(1 / w[3])
	}
	return w.Vec3()
}

// IntersectSphere returns the distance along the ray to the first hit.
// A ray starting inside the sphere reports the exit distance.
func (r Ray) IntersectSphere(s Sphere) (t float32, hit bool) {
	if s.Radius <= 0 {
		return 0, false
	}
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	root := float32(math.Sqrt(float64(disc)))

	t = -b - root
	if t < 0 {
		t = -b + root
	}
	if t < 0 {
		return 0, false // Behind ray origin
	}
	return t, true
}

// Nearest returns the index of the closest sphere the ray hits.
func Nearest(r Ray, spheres []Sphere) (int, bool) {
	best, bestT := -1, float32(0)
	for i, s := range spheres {
		t, ok := r.IntersectSphere(s)
		if ok && (best < 0 || t < bestT) {
			best, bestT = i, t
		}
	}
	return best, best >= 0
}
