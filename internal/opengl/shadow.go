package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// ShadowMap wraps a depth-only framebuffer used for shadow mapping.
type ShadowMap struct {
	FBO      uint32
	DepthTex uint32
	Width    int32
	Height   int32
}

// NewShadowMap creates a depth-only FBO of width×height resolution.
// Depth is sampled directly (no hardware compare) with nearest filtering.
func NewShadowMap(width, height int) (*ShadowMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("shadow map size %dx%d", width, height)
	}
	sm := &ShadowMap{Width: int32(width), Height: int32(height)}

	gl.GenTextures(1, &sm.DepthTex)
	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT,
		sm.Width, sm.Height, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	// Fragments outside the shadow map are lit (border depth = 1.0)
	border := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.GenFramebuffers(1, &sm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.DepthTex, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		sm.Destroy()
		return nil, fmt.Errorf("shadow FBO incomplete: status=0x%X", status)
	}

	return sm, nil
}

// Bind makes the shadow framebuffer the render target.
func (sm *ShadowMap) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
}

func (sm *ShadowMap) Size() (int, int) {
	return int(sm.Width), int(sm.Height)
}

// BindTexture binds the depth texture to a texture unit for sampling.
func (sm *ShadowMap) BindTexture(unit int32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTex)
}

// Destroy frees GPU resources.
func (sm *ShadowMap) Destroy() {
	if sm.FBO != 0 {
		gl.DeleteFramebuffers(1, &sm.FBO)
		sm.FBO = 0
	}
	if sm.DepthTex != 0 {
		gl.DeleteTextures(1, &sm.DepthTex)
		sm.DepthTex = 0
	}
}
