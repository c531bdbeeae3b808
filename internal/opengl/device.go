package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"deserted-home/core"
	"deserted-home/renderer"
	"deserted-home/scene"
)

var (
	_ renderer.Device      = (*Device)(nil)
	_ renderer.DepthTarget = (*ShadowMap)(nil)
	_ renderer.Backdrop    = (*Skybox)(nil)
	_ renderer.Drawable    = (*Model)(nil)
	_ renderer.Uniforms    = (*Program)(nil)
)

// Device owns global GL state. Create it once the context is current.
type Device struct {
	log *slog.Logger
}

// NewDevice loads the GL entry points and sets the fixed render state:
// depth test, back-face culling with CCW fronts, sRGB framebuffer and
// the haze clear colour.
func NewDevice(log *slog.Logger) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	c := core.ColorHaze
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.MULTISAMPLE)

	return &Device{log: log}, nil
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) BindDefaultTarget() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (d *Device) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

func (d *Device) SetPolygonMode(mode scene.PolygonMode) {
	switch mode {
	case scene.PolygonLine:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	case scene.PolygonPoint:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.POINT)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// CheckErrors logs pending GL errors tagged with the caller's location.
func (d *Device) CheckErrors() int {
	return checkErrors(d.log, 1)
}
