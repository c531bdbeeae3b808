package renderer

import "deserted-home/scene"

// ShadowPass renders scene depth from the light into a DepthTarget.
type ShadowPass struct {
	device  Device
	target  DepthTarget
	program Uniforms
}

func NewShadowPass(device Device, target DepthTarget, program Uniforms) *ShadowPass {
	return &ShadowPass{device: device, target: target, program: program}
}

// Target is the depth target the pass renders into.
func (p *ShadowPass) Target() DepthTarget { return p.target }

// Render fills the depth target and leaves the default target bound.
func (p *ShadowPass) Render(f *Frame, objects []scene.Object, meshes map[string]Drawable) {
	p.device.Viewport(p.target.Size())
	p.target.Bind()
	p.device.SetPolygonMode(scene.PolygonFill)
	p.device.Clear(false, true)

	p.program.Use()
	p.program.SetMat4(UniformLightSpace, f.LightSpace)
	drawScene(p.program, objects, meshes, f.Dynamics, nil)

	p.device.BindDefaultTarget()
}
