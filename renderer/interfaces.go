package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"deserted-home/scene"
)

// Uniforms is a linked shader program. Setters take uniform names; the
// implementation resolves them against a table built at link time.
// Setting a name the program does not use is a no-op.
type Uniforms interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetMat3(name string, m mgl32.Mat3)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
}

// Drawable is an uploaded mesh that draws itself with the bound program.
type Drawable interface {
	Draw(u Uniforms)
}

// DepthTarget is an off-screen depth-only render target.
type DepthTarget interface {
	Bind()
	Size() (width, height int)
	BindTexture(unit int32)
}

// Backdrop is drawn behind the scene, such as a skybox.
type Backdrop interface {
	Draw(view, projection mgl32.Mat4)
}

// Device is the render state the passes switch between.
type Device interface {
	Viewport(width, height int)
	BindDefaultTarget()
	Clear(color, depth bool)
	SetPolygonMode(mode scene.PolygonMode)
	// CheckErrors drains and logs pending errors, returning how many
	// there were.
	CheckErrors() int
}

// Surface is the window being presented to.
type Surface interface {
	Size() (width, height int)
	SwapBuffers()
}
