package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane builds a square quad of half-width size at height y. Texture
// coordinates span the unit square once, so the texture tiles per quad.
func Plane(size, y float32) *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-size, y, -size}, TexCoord: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{size, y, -size}, TexCoord: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{size, y, size}, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-size, y, size}, TexCoord: mgl32.Vec2{0, 1}},
		},
		Indices: []uint16{0, 1, 2, 2, 3, 0},
	}
}

// Pyramid builds a square-based pyramid: four base corners at y=0 and the
// apex at y=height. The apex samples the texture center.
func Pyramid(baseSize, height float32) *Mesh {
	half := baseSize / 2

	return &Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-half, 0, -half}, TexCoord: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{half, 0, -half}, TexCoord: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{half, 0, half}, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-half, 0, half}, TexCoord: mgl32.Vec2{0, 1}},
			{Position: mgl32.Vec3{0, height, 0}, TexCoord: mgl32.Vec2{0.5, 0.5}},
		},
		Indices: []uint16{
			// base
			0, 1, 2,
			0, 2, 3,
			// sides, each fanning to the apex
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
			3, 0, 4,
		},
	}
}

// Cylinder builds an open-ended tube (no caps; the table plane hides the
// mug's bottom). Each ring carries radialSegments+1 vertices so the seam
// column at angle 0 is duplicated at 2pi, which lets the texture close
// without wrap logic. Per-level radius interpolates baseRadius->topRadius,
// so a tapered cup is just baseRadius != topRadius.
//
// Vertex count is (radialSegments+1)*(heightSegments+1); index count is
// 6*radialSegments*heightSegments.
func Cylinder(baseRadius, topRadius, height float32, radialSegments, heightSegments int) *Mesh {
	mustPositive("Cylinder radialSegments", radialSegments)
	mustPositive("Cylinder heightSegments", heightSegments)

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, (radialSegments+1)*(heightSegments+1)),
		Indices:  make([]uint16, 0, 6*radialSegments*heightSegments),
	}

	for y := 0; y <= heightSegments; y++ {
		t := float32(y) / float32(heightSegments)
		levelHeight := height * t
		levelRadius := baseRadius + t*(topRadius-baseRadius)

		for x := 0; x <= radialSegments; x++ {
			theta := 2 * math32.Pi * float32(x) / float32(radialSegments)
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: mgl32.Vec3{
					levelRadius * math32.Cos(theta),
					levelHeight,
					levelRadius * math32.Sin(theta),
				},
				TexCoord: mgl32.Vec2{float32(x) / float32(radialSegments), t},
			})
		}
	}

	for y := 0; y < heightSegments; y++ {
		for x := 0; x < radialSegments; x++ {
			base := uint16(y*(radialSegments+1) + x)
			next := base + uint16(radialSegments) + 1

			mesh.Indices = append(mesh.Indices,
				base, base+1, next,
				next, base+1, next+1,
			)
		}
	}

	return mesh
}

// Torus builds the mug handle. For each step u around the main ring the
// cross-section center sits at (cos u * innerRadius, sin u * innerRadius, 0);
// each tube vertex is that center plus outerRadius*(cos v, 0, sin v).
//
// The tube circle stays in the XZ basis instead of being rotated into the
// ring's tangent frame, so the surface twists and self-intersects for
// nonzero innerRadius. That is the handle's established shape; keep the
// formula as written.
//
// Vertex count is (tubularSegments+1)*(radialSegments+1); index count is
// 6*tubularSegments*radialSegments.
func Torus(innerRadius, outerRadius float32, radialSegments, tubularSegments int) *Mesh {
	mustPositive("Torus radialSegments", radialSegments)
	mustPositive("Torus tubularSegments", tubularSegments)

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, (tubularSegments+1)*(radialSegments+1)),
		Indices:  make([]uint16, 0, 6*tubularSegments*radialSegments),
	}

	for i := 0; i <= tubularSegments; i++ {
		u := float32(i) / float32(tubularSegments) * 2 * math32.Pi
		center := mgl32.Vec3{math32.Cos(u) * innerRadius, math32.Sin(u) * innerRadius, 0}

		for j := 0; j <= radialSegments; j++ {
			v := float32(j) / float32(radialSegments) * 2 * math32.Pi
			offset := mgl32.Vec3{math32.Cos(v), 0, math32.Sin(v)}.Mul(outerRadius)

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: center.Add(offset),
				TexCoord: mgl32.Vec2{
					float32(i) / float32(tubularSegments),
					float32(j) / float32(radialSegments),
				},
			})
		}
	}

	for i := 0; i < tubularSegments; i++ {
		for j := 0; j < radialSegments; j++ {
			first := uint16(i*(radialSegments+1) + j)
			second := first + uint16(radialSegments) + 1

			mesh.Indices = append(mesh.Indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return mesh
}

// mustPositive rejects degenerate tessellation parameters. Segment counts
// come from compile-time scene constants, so a bad value is a programmer
// error, not a runtime condition to recover from.
func mustPositive(name string, n int) {
	if n < 1 {
		panic(fmt.Sprintf("geometry: %s must be >= 1, got %d", name, n))
	}
}
