package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	remath "deserted-home/math"
	"deserted-home/scene"
)

// drawScene draws every object and head with u, skipping meshes missing
// from meshes. When view is non-nil the normal matrix is bound too. Both
// passes go through here so they place objects identically.
func drawScene(u Uniforms, objects []scene.Object, meshes map[string]Drawable, d scene.Dynamics, view *mgl32.Mat4) {
	draw := func(path string, model mgl32.Mat4) {
		mesh, ok := meshes[path]
		if !ok {
			return
		}
		u.SetMat4(UniformModel, model)
		if view != nil {
			u.SetMat3(UniformNormalMatrix, remath.NormalMatrix(view.Mul4(model)))
		}
		mesh.Draw(u)
	}
	for i := range objects {
		o := &objects[i]
		draw(o.Mesh, o.Model(d))
		if o.Head != nil {
			draw(o.Head.Mesh, o.HeadModel(d))
		}
	}
}
