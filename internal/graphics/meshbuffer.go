package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"mug-scene/internal/geometry"
)

// MeshBuffer is the GPU side of a geometry.Mesh: a VAO with an interleaved
// vertex buffer (pos.xyz + uv.st) and a 16-bit element buffer. Geometry
// stays pure data; this is the only place mesh data touches GL.
type MeshBuffer struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// UploadMesh copies a mesh into GPU buffers and records the attribute
// layout in a VAO. The mesh is immutable after upload (STATIC_DRAW).
func UploadMesh(mesh *geometry.Mesh) *MeshBuffer {
	mb := &MeshBuffer{indexCount: int32(len(mesh.Indices))}

	vertices := mesh.Interleave()

	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)

	gl.GenBuffers(1, &mb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*2, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return mb
}

// Draw issues the indexed draw call for the whole mesh.
func (mb *MeshBuffer) Draw() {
	gl.BindVertexArray(mb.vao)
	gl.DrawElements(gl.TRIANGLES, mb.indexCount, gl.UNSIGNED_SHORT, nil)
}

// IndexCount returns the number of indices uploaded.
func (mb *MeshBuffer) IndexCount() int32 {
	return mb.indexCount
}

// Dispose releases the GL buffer objects.
func (mb *MeshBuffer) Dispose() {
	if mb.ebo != 0 {
		gl.DeleteBuffers(1, &mb.ebo)
		mb.ebo = 0
	}
	if mb.vbo != 0 {
		gl.DeleteBuffers(1, &mb.vbo)
		mb.vbo = 0
	}
	if mb.vao != 0 {
		gl.DeleteVertexArrays(1, &mb.vao)
		mb.vao = 0
	}
}
