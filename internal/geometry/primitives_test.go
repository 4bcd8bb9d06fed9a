package geometry

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const seamTolerance = 1e-5

func TestPlaneGolden(t *testing.T) {
	m := Plane(1, 0)

	wantPositions := []mgl32.Vec3{
		{-1, 0, -1},
		{1, 0, -1},
		{1, 0, 1},
		{-1, 0, 1},
	}
	wantUVs := []mgl32.Vec2{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
	}

	if len(m.Vertices) != 4 {
		t.Fatalf("plane: got %d vertices, want 4", len(m.Vertices))
	}
	for i, v := range m.Vertices {
		if v.Position != wantPositions[i] {
			t.Errorf("plane vertex %d: got position %v, want %v", i, v.Position, wantPositions[i])
		}
		if v.TexCoord != wantUVs[i] {
			t.Errorf("plane vertex %d: got uv %v, want %v", i, v.TexCoord, wantUVs[i])
		}
	}

	wantIndices := []uint16{0, 1, 2, 2, 3, 0}
	if !reflect.DeepEqual(m.Indices, wantIndices) {
		t.Fatalf("plane indices: got %v, want %v", m.Indices, wantIndices)
	}
}

func TestPyramidShape(t *testing.T) {
	m := Pyramid(1, 1)

	if len(m.Vertices) != 5 {
		t.Fatalf("pyramid: got %d vertices, want 5", len(m.Vertices))
	}
	if len(m.Indices) != 18 {
		t.Fatalf("pyramid: got %d indices, want 18", len(m.Indices))
	}

	apex := m.Vertices[4]
	if apex.Position != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("pyramid apex: got %v, want (0,1,0)", apex.Position)
	}
	if apex.TexCoord != (mgl32.Vec2{0.5, 0.5}) {
		t.Errorf("pyramid apex uv: got %v, want (0.5,0.5)", apex.TexCoord)
	}

	// Base corners sit at y=0 with half-extent 0.5.
	for i := 0; i < 4; i++ {
		p := m.Vertices[i].Position
		if p.Y() != 0 {
			t.Errorf("pyramid base vertex %d: y = %v, want 0", i, p.Y())
		}
	}

	// Each side triangle references the apex.
	for tri := 2; tri < 6; tri++ {
		a, b, c := m.Indices[tri*3], m.Indices[tri*3+1], m.Indices[tri*3+2]
		if a != 4 && b != 4 && c != 4 {
			t.Errorf("pyramid side triangle %d (%d,%d,%d) does not reference the apex", tri, a, b, c)
		}
	}
}

func TestCylinderCounts(t *testing.T) {
	cases := []struct {
		radial, height int
	}{
		{1, 1},
		{3, 2},
		{36, 1},
		{16, 4},
	}

	for _, tc := range cases {
		m := Cylinder(0.5, 0.5, 1.0, tc.radial, tc.height)

		wantVerts := (tc.radial + 1) * (tc.height + 1)
		if len(m.Vertices) != wantVerts {
			t.Fatalf("cylinder %dx%d: got %d vertices, want %d", tc.radial, tc.height, len(m.Vertices), wantVerts)
		}

		wantIndices := 6 * tc.radial * tc.height
		if len(m.Indices) != wantIndices {
			t.Fatalf("cylinder %dx%d: got %d indices, want %d", tc.radial, tc.height, len(m.Indices), wantIndices)
		}

		assertIndicesValid(t, m)
	}
}

func TestCylinderSeamClosure(t *testing.T) {
	radial, height := 36, 2
	m := Cylinder(0.5, 0.3, 1.0, radial, height)

	// The first and last vertex of every ring must coincide: cos/sin of 0
	// and 2pi agree up to float error, which is what closes the texture seam.
	for level := 0; level <= height; level++ {
		first := m.Vertices[level*(radial+1)].Position
		last := m.Vertices[level*(radial+1)+radial].Position

		if first.Sub(last).Len() > seamTolerance {
			t.Errorf("cylinder ring %d: seam gap %v between %v and %v", level, first.Sub(last).Len(), first, last)
		}
	}
}

func TestCylinderTaperAndHeight(t *testing.T) {
	m := Cylinder(1.0, 0.5, 2.0, 8, 2)

	// Bottom ring at y=0 with radius 1, top ring at y=2 with radius 0.5.
	bottom := m.Vertices[0].Position
	if bottom.Y() != 0 {
		t.Errorf("bottom ring y: got %v, want 0", bottom.Y())
	}
	if r := radiusXZ(bottom); !approx(r, 1.0) {
		t.Errorf("bottom ring radius: got %v, want 1", r)
	}

	top := m.Vertices[2*(8+1)].Position
	if !approx(top.Y(), 2.0) {
		t.Errorf("top ring y: got %v, want 2", top.Y())
	}
	if r := radiusXZ(top); !approx(r, 0.5) {
		t.Errorf("top ring radius: got %v, want 0.5", r)
	}
}

func TestTorusCounts(t *testing.T) {
	cases := []struct {
		radial, tubular int
	}{
		{1, 1},
		{36, 100},
		{8, 16},
	}

	for _, tc := range cases {
		m := Torus(0.1, 0.2, tc.radial, tc.tubular)

		wantVerts := (tc.tubular + 1) * (tc.radial + 1)
		if len(m.Vertices) != wantVerts {
			t.Fatalf("torus %dx%d: got %d vertices, want %d", tc.radial, tc.tubular, len(m.Vertices), wantVerts)
		}

		wantIndices := 6 * tc.tubular * tc.radial
		if len(m.Indices) != wantIndices {
			t.Fatalf("torus %dx%d: got %d indices, want %d", tc.radial, tc.tubular, len(m.Indices), wantIndices)
		}

		assertIndicesValid(t, m)
	}
}

func TestTorusSeamClosure(t *testing.T) {
	radial, tubular := 12, 24
	m := Torus(0.1, 0.2, radial, tubular)

	// Tube cross-section seam: vertex j=0 and j=radial coincide per ring.
	for i := 0; i <= tubular; i++ {
		first := m.Vertices[i*(radial+1)].Position
		last := m.Vertices[i*(radial+1)+radial].Position
		if first.Sub(last).Len() > seamTolerance {
			t.Errorf("torus ring %d: cross-section seam gap %v", i, first.Sub(last).Len())
		}
	}

	// Main ring seam: ring i=0 and ring i=tubular coincide vertex for vertex.
	for j := 0; j <= radial; j++ {
		first := m.Vertices[j].Position
		last := m.Vertices[tubular*(radial+1)+j].Position
		if first.Sub(last).Len() > seamTolerance {
			t.Errorf("torus tube vertex %d: main-ring seam gap %v", j, first.Sub(last).Len())
		}
	}
}

func TestGenerationDeterministic(t *testing.T) {
	a := Cylinder(0.5, 0.5, 1.0, 36, 1)
	b := Cylinder(0.5, 0.5, 1.0, 36, 1)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("cylinder generation is not deterministic")
	}

	c := Torus(0.1, 0.2, 36, 100)
	d := Torus(0.1, 0.2, 36, 100)
	if !reflect.DeepEqual(c, d) {
		t.Fatal("torus generation is not deterministic")
	}
}

func TestInterleaveLayout(t *testing.T) {
	m := Plane(1, 0)
	flat := m.Interleave()

	if len(flat) != len(m.Vertices)*FloatsPerVertex {
		t.Fatalf("interleave: got %d floats, want %d", len(flat), len(m.Vertices)*FloatsPerVertex)
	}

	// Second vertex starts at offset 5: position (1,0,-1), uv (1,0).
	want := []float32{1, 0, -1, 1, 0}
	got := flat[5:10]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("interleave vertex 1: got %v, want %v", got, want)
		}
	}
}

func TestDegenerateSegmentsPanic(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"cylinder zero radial", func() { Cylinder(0.5, 0.5, 1, 0, 1) }},
		{"cylinder negative height", func() { Cylinder(0.5, 0.5, 1, 8, -1) }},
		{"torus zero tubular", func() { Torus(0.1, 0.2, 8, 0) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic on degenerate segment count")
				}
			}()
			tc.fn()
		})
	}
}

func BenchmarkCylinder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Cylinder(0.5, 0.5, 1.0, 36, 1)
	}
}

func BenchmarkTorus(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Torus(0.1, 0.2, 36, 100)
	}
}

func assertIndicesValid(t *testing.T, m *Mesh) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range (have %d vertices)", idx, len(m.Vertices))
		}
	}
}

func radiusXZ(p mgl32.Vec3) float32 {
	return mgl32.Vec2{p.X(), p.Z()}.Len()
}

func approx(got, want float32) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= seamTolerance
}
