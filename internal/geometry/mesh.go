// Package geometry generates vertex and index buffers for the parametric
// primitives that make up the mug scene. Generation is pure data work: no
// GL calls, so the same parameters always yield the same buffers and the
// package tests without a graphics context. Upload to the GPU lives in
// internal/graphics.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved vertex: position plus texture coordinate.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Mesh is an indexed triangle list. Winding is counter-clockwise viewed
// from outside, every index is < len(Vertices), and len(Indices) is a
// multiple of 3.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// FloatsPerVertex is the interleaved stride in float32s (pos.xyz + uv.st).
const FloatsPerVertex = 5

// Interleave flattens the vertices into the pos+uv layout the vertex
// buffer upload expects.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.TexCoord.X(), v.TexCoord.Y(),
		)
	}
	return out
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
