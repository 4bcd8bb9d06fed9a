// Package scene composes the mug scene: it owns the generated meshes,
// their placements, the two Phong lights, and the shared view/projection
// plumbing. Geometry is generated once at startup; only the model
// transforms are recomputed per frame.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mug-scene/internal/geometry"
	"mug-scene/internal/graphics"
	"mug-scene/internal/scene/shaders"
)

// Shape parameters for the mug. These are the scene's fixed design
// constants, not tunables.
const (
	mugBaseRadius     = 0.5
	mugTopRadius      = 0.5
	mugHeight         = 1.0
	mugRadialSegments = 36
	mugHeightSegments = 1

	handleInnerRadius     = 0.1
	handleOuterRadius     = 0.2
	handleRadialSegments  = 36
	handleTubularSegments = 100

	tableHalfWidth = 5.0
	tableY         = -0.27

	pyramidBaseSize = 1.0
	pyramidHeight   = 1.0
	// Gap between the mug and the decorative pyramid.
	pyramidExtraOffset = 1.5

	yawTiltDeg = 20.0
)

// Light is a point light fed to the Phong shader.
type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Entry pairs an uploaded mesh with its placement and texture. Entries
// are built once; nothing mutates them after construction.
type Entry struct {
	Name      string
	Buffer    *graphics.MeshBuffer
	Texture   uint32
	Transform TransformRecipe
}

// Textures names the image files bound to each scene object.
type Textures struct {
	Body    string
	Handle  string
	Table   string
	Pyramid string
}

// Scene draws the fixed mug layout with a shared camera transform.
type Scene struct {
	shader    *graphics.Shader
	entries   []Entry
	projector *Projector

	KeyLight  Light
	FillLight Light
}

// New compiles the scene shader, generates and uploads the four meshes,
// loads their textures, and builds the placement table. Requires a
// current GL context.
func New(tex Textures, width, height int) (*Scene, error) {
	shader, err := graphics.NewShader(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	s := &Scene{
		shader:    shader,
		projector: NewProjector(45, float32(width)/float32(height)),
		KeyLight: Light{
			Position:  mgl32.Vec3{1, 1, 1},
			Color:     mgl32.Vec3{1, 1, 1},
			Intensity: 2.0,
		},
		FillLight: Light{
			Position:  mgl32.Vec3{-1, 0.5, 1},
			Color:     mgl32.Vec3{1, 1, 1},
			Intensity: 1.0,
		},
	}

	if err := s.buildEntries(tex); err != nil {
		s.Dispose()
		return nil, err
	}

	return s, nil
}

// buildEntries generates the meshes and lays them out. Placements:
// the mug body is centered and lowered by half its height; the handle
// sits outward by baseRadius + outerRadius - innerRadius with a 20 degree
// yaw; the pyramid sits further out on the table with the same yaw; the
// table plane is generated at y=0 and translated down to tableY.
func (s *Scene) buildEntries(tex Textures) error {
	handleOffset := float32(mugBaseRadius + handleOuterRadius - handleInnerRadius)
	pyramidOffset := float32(mugBaseRadius + pyramidBaseSize/2 + pyramidExtraOffset)

	specs := []struct {
		name      string
		mesh      *geometry.Mesh
		texture   string
		transform TransformRecipe
	}{
		{
			name:    "table",
			mesh:    geometry.Plane(tableHalfWidth, 0),
			texture: tex.Table,
			transform: TransformRecipe{
				Translate: mgl32.Vec3{0, tableY, 0},
			},
		},
		{
			name:    "mug-body",
			mesh:    geometry.Cylinder(mugBaseRadius, mugTopRadius, mugHeight, mugRadialSegments, mugHeightSegments),
			texture: tex.Body,
			transform: TransformRecipe{
				Translate: mgl32.Vec3{0, -0.5 * mugHeight, 0},
			},
		},
		{
			name:    "mug-handle",
			mesh:    geometry.Torus(handleInnerRadius, handleOuterRadius, handleRadialSegments, handleTubularSegments),
			texture: tex.Handle,
			transform: TransformRecipe{
				Translate:  mgl32.Vec3{handleOffset, 0, 0},
				RotateDeg:  yawTiltDeg,
				RotateAxis: mgl32.Vec3{0, 1, 0},
			},
		},
		{
			name:    "pyramid",
			mesh:    geometry.Pyramid(pyramidBaseSize, pyramidHeight),
			texture: tex.Pyramid,
			transform: TransformRecipe{
				Translate:  mgl32.Vec3{pyramidOffset, tableY, 0},
				RotateDeg:  yawTiltDeg,
				RotateAxis: mgl32.Vec3{0, 1, 0},
				Scale:      mgl32.Vec3{pyramidBaseSize, pyramidHeight, pyramidBaseSize},
			},
		},
	}

	for _, spec := range specs {
		texID, err := graphics.GetTexture(spec.texture)
		if err != nil {
			return fmt.Errorf("texture for %s: %w", spec.name, err)
		}

		s.entries = append(s.entries, Entry{
			Name:      spec.name,
			Buffer:    graphics.UploadMesh(spec.mesh),
			Texture:   texID,
			Transform: spec.transform,
		})
	}

	return nil
}

// Render draws every entry with the shared view/projection and the two
// lights. viewPos is the camera position for specular lighting; fovDeg is
// the camera's current zoom.
func (s *Scene) Render(view mgl32.Mat4, viewPos mgl32.Vec3, fovDeg float32) {
	s.projector.SetFOV(fovDeg)
	projection := s.projector.Matrix()

	s.shader.Use()

	s.shader.SetMat4("view", view)
	s.shader.SetMat4("projection", projection)
	s.shader.SetVec3("viewPosition", viewPos)

	s.shader.SetVec3("keyLight.position", s.KeyLight.Position)
	s.shader.SetVec3("keyLight.color", s.KeyLight.Color)
	s.shader.SetFloat("keyLight.intensity", s.KeyLight.Intensity)

	s.shader.SetVec3("fillLight.position", s.FillLight.Position)
	s.shader.SetVec3("fillLight.color", s.FillLight.Color)
	s.shader.SetFloat("fillLight.intensity", s.FillLight.Intensity)

	s.shader.SetInt("texture1", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, e := range s.entries {
		s.shader.SetMat4("model", e.Transform.Mat4())
		gl.BindTexture(gl.TEXTURE_2D, e.Texture)
		e.Buffer.Draw()
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ToggleProjection flips between perspective and orthographic.
func (s *Scene) ToggleProjection() {
	s.projector.Toggle()
}

// ProjectionMode reports the active projection.
func (s *Scene) ProjectionMode() ProjectionMode {
	return s.projector.Mode()
}

// Resize updates the projection aspect ratio for a new viewport size.
func (s *Scene) Resize(width, height int) {
	if height == 0 {
		return
	}
	s.projector.SetAspect(float32(width) / float32(height))
}

// Entries exposes the placement table (read-only by convention).
func (s *Scene) Entries() []Entry {
	return s.entries
}

// Dispose releases mesh buffers and the shader. Textures are owned by the
// graphics cache and released separately.
func (s *Scene) Dispose() {
	for _, e := range s.entries {
		e.Buffer.Dispose()
	}
	s.entries = nil

	if s.shader != nil {
		s.shader.Dispose()
	}
}
