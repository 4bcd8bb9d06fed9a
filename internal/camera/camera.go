// Package camera provides the free-look camera for the mug scene. The
// camera owns position and orientation state only; it never polls input
// itself — the app layer feeds it discrete movement, look, and scroll
// events, so the camera stays time-step agnostic and testable.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a camera-relative movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Defaults match the classic fly-camera setup: yaw -90 so the initial
// front vector faces -Z.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	pitchLimit = 89.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera holds position/orientation state and derives the view matrix and
// the zoom-dependent field of view.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32

	// Zoom is the vertical field of view in degrees, clamped to
	// [MinZoom, MaxZoom] so the perspective frustum never inverts.
	Zoom    float32
	MinZoom float32
	MaxZoom float32
}

// New creates a camera at the given position with default orientation,
// speed, sensitivity, and zoom bounds.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
		MinZoom:          1.0,
		MaxZoom:          45.0,
	}
	c.updateVectors()
	return c
}

// ProcessKeyboard moves the camera along its basis vectors. The caller
// supplies the distance (typically MovementSpeed * frameTime * speedScale),
// keeping the camera independent of the frame clock.
func (c *Camera) ProcessKeyboard(dir Direction, distance float32) {
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(distance))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(distance))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(distance))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(distance))
	case Up:
		c.Position = c.Position.Add(worldUp.Mul(distance))
	case Down:
		c.Position = c.Position.Sub(worldUp.Mul(distance))
	}
}

// ProcessMouseMovement applies a cursor delta in pixels to yaw and pitch.
// Pitch is clamped short of +-90 to avoid the gimbal flip at the poles.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}

	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom -= yOffset
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}
}

// ViewMatrix returns the look-at matrix for the current state. Pure
// function of the camera fields, no side effects.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// updateVectors recomputes the orthonormal front/right/up basis from yaw
// and pitch via the spherical-to-Cartesian conversion.
func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	c.Front = mgl32.Vec3{
		math32.Cos(pitch) * math32.Cos(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Sin(yaw),
	}.Normalize()

	c.Right = c.Front.Cross(worldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
