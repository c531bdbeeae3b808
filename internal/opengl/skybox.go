package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"deserted-home/scene"
)

// SkyboxFaces is the order faces are read in: +X, -X, +Y, -Y, +Z, -Z.
var SkyboxFaces = [6]string{"px", "nx", "py", "ny", "pz", "nz"}

// Skybox renders a cubemap on an inverted unit cube.
// The vertex shader uses the xyww trick (gl_Position.z = gl_Position.w)
// so every fragment lands at NDC depth 1.0, behind scene geometry.
type Skybox struct {
	vao     uint32
	vbo     uint32
	cubemap uint32
	prog    *Program
}

// ── Cube geometry ─────────────────────────────────────────────────────────────

// 36 positions (xyz) for a unit cube, CCW winding from the outside.
// Face culling is disabled during draw so we see the inside faces.
var skyboxVerts = []float32{
	// -Z face
	-1, -1, -1, 1, 1, -1, 1, -1, -1,
	1, 1, -1, -1, -1, -1, -1, 1, -1,
	// +Z face
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, -1, 1,
	// -X face
	-1, 1, 1, -1, 1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	// +X face
	1, 1, 1, 1, -1, -1, 1, 1, -1,
	1, -1, -1, 1, 1, 1, 1, -1, 1,
	// -Y face
	-1, -1, -1, 1, -1, -1, 1, -1, 1,
	1, -1, 1, -1, -1, 1, -1, -1, -1,
	// +Y face
	-1, 1, -1, 1, 1, 1, 1, 1, -1,
	1, 1, 1, -1, 1, -1, -1, 1, 1,
}

// NewSkybox uploads six face images, given in SkyboxFaces order, into a
// cubemap drawn with prog.
func NewSkybox(prog *Program, faces [6]string) (*Skybox, error) {
	sb := &Skybox{prog: prog}

	gl.GenTextures(1, &sb.cubemap)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.cubemap)
	for i, path := range faces {
		tex, err := scene.LoadTexture(path)
		if err != nil {
			sb.Destroy()
			return nil, fmt.Errorf("skybox face %s: %w", SkyboxFaces[i], err)
		}
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.SRGB8_ALPHA8,
			int32(tex.Width), int32(tex.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Pixels))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	gl.GenVertexArrays(1, &sb.vao)
	gl.GenBuffers(1, &sb.vbo)
	gl.BindVertexArray(sb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVerts)*4, gl.Ptr(skyboxVerts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 12, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	return sb, nil
}

// Draw renders the sky. view must already have its translation stripped.
func (sb *Skybox) Draw(view, projection mgl32.Mat4) {
	// Depth LEQUAL so depth=1.0 fragments pass against the cleared depth value (1.0).
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)
	gl.Disable(gl.CULL_FACE)

	sb.prog.Use()
	sb.prog.SetMat4("view", view)
	sb.prog.SetMat4("projection", projection)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.cubemap)
	sb.prog.SetInt("skybox", 0)

	gl.BindVertexArray(sb.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	// Restore depth state for scene geometry
	gl.Enable(gl.CULL_FACE)
	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Destroy frees all GPU resources owned by this skybox.
func (sb *Skybox) Destroy() {
	if sb.vao != 0 {
		gl.DeleteVertexArrays(1, &sb.vao)
		gl.DeleteBuffers(1, &sb.vbo)
		sb.vao, sb.vbo = 0, 0
	}
	if sb.cubemap != 0 {
		gl.DeleteTextures(1, &sb.cubemap)
		sb.cubemap = 0
	}
}
