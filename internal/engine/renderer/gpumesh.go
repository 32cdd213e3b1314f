package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/mesh"
)

// GPUMesh is a mesh uploaded to vertex and index buffers.
type GPUMesh struct {
	vao, vbo, ebo uint32
	count         int32
	primitive     uint32
}

// Primitive maps a mesh topology to its GL draw mode.
func Primitive(t mesh.Topology) uint32 {
	if t == mesh.Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

// Upload copies m into new GL buffers. Attribute 0 is position, 1 normal,
// 2 texture coordinates.
func Upload(m mesh.Mesh) *GPUMesh {
	g := &GPUMesh{count: int32(m.IndexCount()), primitive: Primitive(m.Topology)}
	data := m.Interleave()

	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.GenBuffers(1, &g.ebo)

	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	if len(m.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	stride := int32(mesh.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return g
}

// Draw issues the indexed draw call.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(g.primitive, g.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the buffers.
func (g *GPUMesh) Delete() {
	if g.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
	g.vao, g.vbo, g.ebo = 0, 0, 0
}
