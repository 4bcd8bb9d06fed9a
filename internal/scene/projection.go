package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects between the two supported projections.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

// Frustum bounds shared by both projections.
const (
	nearPlane = 0.1
	farPlane  = 100.0

	// Half-extent of the orthographic view volume.
	orthoSize = 10.0
)

// Projector caches the projection matrix and recomputes it only when the
// field of view, aspect ratio, or mode changes.
type Projector struct {
	mode   ProjectionMode
	fovDeg float32
	aspect float32

	cached mgl32.Mat4
	dirty  bool
}

// NewProjector starts in perspective mode with the given field of view
// and aspect ratio.
func NewProjector(fovDeg, aspect float32) *Projector {
	return &Projector{
		mode:   Perspective,
		fovDeg: fovDeg,
		aspect: aspect,
		dirty:  true,
	}
}

// SetFOV updates the perspective field of view in degrees.
func (p *Projector) SetFOV(fovDeg float32) {
	if p.fovDeg != fovDeg {
		p.fovDeg = fovDeg
		p.dirty = true
	}
}

// SetAspect updates the aspect ratio (width / height).
func (p *Projector) SetAspect(aspect float32) {
	if p.aspect != aspect {
		p.aspect = aspect
		p.dirty = true
	}
}

// Toggle switches between perspective and orthographic projection.
func (p *Projector) Toggle() {
	if p.mode == Perspective {
		p.mode = Orthographic
	} else {
		p.mode = Perspective
	}
	p.dirty = true
}

// Mode returns the current projection mode.
func (p *Projector) Mode() ProjectionMode {
	return p.mode
}

// Matrix returns the projection matrix, rebuilding it only if an input
// changed since the last call.
func (p *Projector) Matrix() mgl32.Mat4 {
	if p.dirty {
		if p.mode == Perspective {
			p.cached = mgl32.Perspective(mgl32.DegToRad(p.fovDeg), p.aspect, nearPlane, farPlane)
		} else {
			p.cached = mgl32.Ortho(-orthoSize, orthoSize, -orthoSize, orthoSize, nearPlane, farPlane)
		}
		p.dirty = false
	}
	return p.cached
}
