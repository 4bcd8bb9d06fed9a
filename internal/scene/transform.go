package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformRecipe describes an object placement declaratively: translate,
// then rotate, then scale, composed in that order (M = T * R * S). Keeping
// placements as data instead of inline matrix math lets the scene build
// its layout once as a table.
type TransformRecipe struct {
	Translate  mgl32.Vec3
	RotateDeg  float32
	RotateAxis mgl32.Vec3
	Scale      mgl32.Vec3
}

// Mat4 composes the model matrix from the recipe.
func (r TransformRecipe) Mat4() mgl32.Mat4 {
	m := mgl32.Translate3D(r.Translate.X(), r.Translate.Y(), r.Translate.Z())

	if r.RotateDeg != 0 {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(r.RotateDeg), r.RotateAxis))
	}

	scale := r.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return m.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}
