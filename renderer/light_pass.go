package renderer

import (
	remath "deserted-home/math"
	"deserted-home/scene"
)

// ShadowUnit is the texture unit the shadow map is sampled from.
const ShadowUnit = 3

// MarkerScale sizes the debug cube drawn at the light.
const MarkerScale = 0.05

// LightPass renders the lit scene from the camera, sampling the shadow map.
type LightPass struct {
	program Uniforms
	shadow  DepthTarget
	skybox  Backdrop
	marker  Drawable
}

// NewLightPass creates the pass. skybox and marker may be nil.
func NewLightPass(program Uniforms, shadow DepthTarget, skybox Backdrop, marker Drawable) *LightPass {
	return &LightPass{program: program, shadow: shadow, skybox: skybox, marker: marker}
}

// Render draws the objects, the skybox and the light marker, in that order.
func (p *LightPass) Render(f *Frame, s *scene.State, objects []scene.Object, meshes map[string]Drawable) {
	p.bind(f, s)
	drawScene(p.program, objects, meshes, f.Dynamics, &f.View)

	if p.skybox != nil {
		p.skybox.Draw(remath.StripTranslation(f.View), f.Projection)
	}

	if p.marker != nil {
		p.program.Use()
		model := s.Light.Marker(MarkerScale)
		p.program.SetMat4(UniformModel, model)
		p.program.SetMat3(UniformNormalMatrix, remath.NormalMatrix(f.View.Mul4(model)))
		p.marker.Draw(p.program)
	}
}

// bind sets the pass-scoped uniforms.
func (p *LightPass) bind(f *Frame, s *scene.State) {
	u := p.program
	u.Use()
	u.SetMat4(UniformView, f.View)
	u.SetMat4(UniformProjection, f.Projection)

	dir := remath.NormalMatrix(f.View.Mul4(f.LightRotation)).Mul3x1(s.Light.Direction)
	u.SetVec3(UniformLightDir, dir)
	pos := f.View.Mul4x1(s.Light.Position.Vec4(1)).Vec3()
	u.SetVec3(UniformLightPos, pos)
	u.SetVec3(UniformLightColor, s.Light.Color)
	u.SetInt(UniformLightType, int32(s.Light.Mode))
	u.SetFloat(UniformFogDensity, s.Params.FogDensity())

	u.SetMat4(UniformLightSpace, f.LightSpace)
	p.shadow.BindTexture(ShadowUnit)
	u.SetInt(UniformShadowMap, ShadowUnit)
}
