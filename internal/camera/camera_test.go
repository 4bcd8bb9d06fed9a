package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func TestDefaultFrontFacesNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})

	if !vecApprox(c.Front, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("default front: got %v, want (0,0,-1)", c.Front)
	}
	if !vecApprox(c.Right, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("default right: got %v, want (1,0,0)", c.Right)
	}
	if !vecApprox(c.Up, mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("default up: got %v, want (0,1,0)", c.Up)
	}
}

func TestDefaultViewMatrixMatchesLookAt(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})

	got := c.ViewMatrix()
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})

	for i := 0; i < 16; i++ {
		if !approx(got[i], want[i]) {
			t.Fatalf("view matrix element %d: got %v, want %v\nfull got %v\nfull want %v", i, got[i], want[i], got, want)
		}
	}
}

func TestPitchClamp(t *testing.T) {
	c := New(mgl32.Vec3{})

	for i := 0; i < 100; i++ {
		c.ProcessMouseMovement(0, 500)
	}
	if c.Pitch > 89.0 {
		t.Fatalf("pitch exceeded clamp: %v", c.Pitch)
	}

	for i := 0; i < 100; i++ {
		c.ProcessMouseMovement(0, -500)
	}
	if c.Pitch < -89.0 {
		t.Fatalf("pitch fell below clamp: %v", c.Pitch)
	}
}

func TestZoomClamp(t *testing.T) {
	c := New(mgl32.Vec3{})

	for i := 0; i < 200; i++ {
		c.ProcessMouseScroll(1)
	}
	if c.Zoom < c.MinZoom {
		t.Fatalf("zoom fell below min: %v", c.Zoom)
	}
	if c.Zoom != c.MinZoom {
		t.Fatalf("zoom after scrolling in: got %v, want %v", c.Zoom, c.MinZoom)
	}

	for i := 0; i < 200; i++ {
		c.ProcessMouseScroll(-1)
	}
	if c.Zoom != c.MaxZoom {
		t.Fatalf("zoom after scrolling out: got %v, want %v", c.Zoom, c.MaxZoom)
	}
}

func TestKeyboardMovement(t *testing.T) {
	cases := []struct {
		name string
		dir  Direction
		want mgl32.Vec3
	}{
		{"forward", Forward, mgl32.Vec3{0, 0, -2}},
		{"backward", Backward, mgl32.Vec3{0, 0, 2}},
		{"left", Left, mgl32.Vec3{-2, 0, 0}},
		{"right", Right, mgl32.Vec3{2, 0, 0}},
		{"up", Up, mgl32.Vec3{0, 2, 0}},
		{"down", Down, mgl32.Vec3{0, -2, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(mgl32.Vec3{})
			c.ProcessKeyboard(tc.dir, 2)
			if !vecApprox(c.Position, tc.want) {
				t.Fatalf("got position %v, want %v", c.Position, tc.want)
			}
		})
	}
}

func TestBasisStaysOrthonormal(t *testing.T) {
	c := New(mgl32.Vec3{})

	// Slew the camera around a bunch and verify the derived basis.
	offsets := [][2]float32{{120, 40}, {-300, -88}, {45, 200}, {-10, -5}, {720, 30}}
	for _, o := range offsets {
		c.ProcessMouseMovement(o[0], o[1])

		if !approx(c.Front.Len(), 1) || !approx(c.Right.Len(), 1) || !approx(c.Up.Len(), 1) {
			t.Fatalf("basis not unit length after offset %v: |front|=%v |right|=%v |up|=%v",
				o, c.Front.Len(), c.Right.Len(), c.Up.Len())
		}
		if dot := c.Front.Dot(c.Right); !approx(dot, 0) {
			t.Fatalf("front/right not orthogonal after offset %v: dot=%v", o, dot)
		}
		if dot := c.Right.Dot(c.Up); !approx(dot, 0) {
			t.Fatalf("right/up not orthogonal after offset %v: dot=%v", o, dot)
		}
	}
}

func TestMouseSensitivityScalesOffsets(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.MouseSensitivity = 0.5

	c.ProcessMouseMovement(10, 4)

	if !approx(c.Yaw, DefaultYaw+5) {
		t.Fatalf("yaw: got %v, want %v", c.Yaw, DefaultYaw+5)
	}
	if !approx(c.Pitch, 2) {
		t.Fatalf("pitch: got %v, want 2", c.Pitch)
	}
}

func vecApprox(got, want mgl32.Vec3) bool {
	return got.Sub(want).Len() <= tolerance
}

func approx(got, want float32) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
