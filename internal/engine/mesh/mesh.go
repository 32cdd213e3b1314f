// Package mesh builds CPU-side vertex and index buffers for the procedural
// shapes the viewer draws: UV spheres, flat annuli and orbit circles.
package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidParams is returned when a generator is asked for a shape it cannot build.
var ErrInvalidParams = errors.New("invalid mesh parameters")

// Topology is the primitive type the index buffer describes.
type Topology int

const (
	Triangles Topology = iota
	Lines
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// FloatsPerVertex is the interleaved vertex stride in float32 units:
// position (3) + normal (3) + uv (2).
const FloatsPerVertex = 8

// Vertex is a single interleaved mesh vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is an immutable indexed primitive list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Topology Topology
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Vertices)
}

// IndexCount returns the number of indices.
func (m Mesh) IndexCount() int {
	return len(m.Indices)
}

// Interleave flattens the vertices into the layout expected by the GPU
// (see FloatsPerVertex).
func (m Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	return out
}
