package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"deserted-home/scene"
)

// CameraConfig is the lit pass projection.
type CameraConfig struct {
	FOV  float32 `toml:"fov"` // vertical, degrees
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{FOV: 45, Near: 0.1, Far: 1000}
}

// Projection returns the perspective matrix for a width×height surface.
func (c CameraConfig) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Frame holds the matrices shared by both passes. It is written once at
// the start of a frame and read-only afterwards.
type Frame struct {
	View          mgl32.Mat4
	Projection    mgl32.Mat4
	LightSpace    mgl32.Mat4
	LightRotation mgl32.Mat4
	Dynamics      scene.Dynamics
}

func (f *Frame) update(s *scene.State, cam CameraConfig, width, height int) {
	f.View = s.Camera.ViewMatrix()
	f.Projection = cam.Projection(width, height)
	f.LightSpace = s.Light.SpaceMatrix()
	f.LightRotation = s.Light.Rotation()
	f.Dynamics = s.Dynamics()
}
