package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var up = mgl32.Vec3{0, 1, 0}

// Sphere builds a UV sphere centred on the origin.
//
// Vertex (i, j) sits at polar angle i/stacks*pi and azimuth j/slices*2pi, so
// the seam column and both pole rows are duplicated. Triangles wind
// counter-clockwise when seen from outside.
func Sphere(stacks, slices int, radius float32) (Mesh, error) {
	if stacks < 1 || slices < 1 {
		return Mesh{}, fmt.Errorf("%w: sphere needs stacks and slices >= 1, got %dx%d", ErrInvalidParams, stacks, slices)
	}
	if radius <= 0 {
		return Mesh{}, fmt.Errorf("%w: sphere radius %v", ErrInvalidParams, radius)
	}

	vertices := make([]Vertex, 0, (stacks+1)*(slices+1))
	for i := 0; i <= stacks; i++ {
		fv := float64(i) / float64(stacks)
		phi := fv * math.Pi
		y := math.Cos(phi)
		rr := math.Sin(phi)

		for j := 0; j <= slices; j++ {
			fu := float64(j) / float64(slices)
			theta := fu * 2 * math.Pi
			dir := mgl32.Vec3{
				float32(rr * math.Cos(theta)),
				float32(y),
				float32(rr * math.Sin(theta)),
			}
			vertices = append(vertices, Vertex{
				Position: dir.Mul(radius),
				Normal:   dir.Normalize(),
				UV:       mgl32.Vec2{float32(fu), float32(1 - fv)},
			})
		}
	}

	indices := make([]uint32, 0, stacks*slices*6)
	for i := 0; i < stacks; i++ {
		r1 := uint32(i * (slices + 1))
		r2 := uint32((i + 1) * (slices + 1))
		for j := uint32(0); j < uint32(slices); j++ {
			indices = append(indices,
				r1+j, r2+j+1, r2+j,
				r1+j, r1+j+1, r2+j+1,
			)
		}
	}

	return Mesh{Vertices: vertices, Indices: indices, Topology: Triangles}, nil
}

// Ring builds a flat annulus in the XZ plane facing +Y.
//
// Each of the segments+1 steps emits an outer vertex (v = 1) followed by an
// inner vertex (v = 0), so a radial strip of a ring texture maps across the band.
func Ring(segments int, innerRadius, outerRadius float32) (Mesh, error) {
	if segments < 3 {
		return Mesh{}, fmt.Errorf("%w: ring needs at least 3 segments, got %d", ErrInvalidParams, segments)
	}
	if innerRadius < 0 || outerRadius <= innerRadius {
		return Mesh{}, fmt.Errorf("%w: ring radii inner=%v outer=%v", ErrInvalidParams, innerRadius, outerRadius)
	}

	vertices := make([]Vertex, 0, 2*(segments+1))
	indices := make([]uint32, 0, 6*segments)
	for i := 0; i <= segments; i++ {
		u := float64(i) / float64(segments)
		theta := u * 2 * math.Pi
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))

		vertices = append(vertices,
			Vertex{Position: mgl32.Vec3{outerRadius * c, 0, outerRadius * s}, Normal: up, UV: mgl32.Vec2{float32(u), 1}},
			Vertex{Position: mgl32.Vec3{innerRadius * c, 0, innerRadius * s}, Normal: up, UV: mgl32.Vec2{float32(u), 0}},
		)
		if i < segments {
			b := uint32(i * 2)
			indices = append(indices,
				b, b+1, b+2,
				b+1, b+3, b+2,
			)
		}
	}

	return Mesh{Vertices: vertices, Indices: indices, Topology: Triangles}, nil
}

// OrbitLine builds a closed circle of line segments in the XZ plane.
// Index pairs are (i, i+1) with the last vertex wrapping back to the first.
func OrbitLine(segments int, radius float32) (Mesh, error) {
	if segments < 3 {
		return Mesh{}, fmt.Errorf("%w: orbit line needs at least 3 segments, got %d", ErrInvalidParams, segments)
	}
	if radius <= 0 {
		return Mesh{}, fmt.Errorf("%w: orbit line radius %v", ErrInvalidParams, radius)
	}

	vertices := make([]Vertex, 0, segments)
	indices := make([]uint32, 0, 2*segments)
	for i := 0; i < segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		vertices = append(vertices, Vertex{
			Position: mgl32.Vec3{radius * float32(math.Cos(theta)), 0, radius * float32(math.Sin(theta))},
			Normal:   up,
		})
		indices = append(indices, uint32(i), uint32((i+1)%segments))
	}

	return Mesh{Vertices: vertices, Indices: indices, Topology: Lines}, nil
}
