package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	// ColorHaze is the clear colour of the viewer (matches the fog colour).
	ColorHaze = Color{0.7, 0.7, 0.7, 1}
)

// Vec3 returns the colour's RGB channels as a vector.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// Vertex is the interleaved layout uploaded to vertex buffers:
// location 0 = Position, 1 = Normal, 2 = UV.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// WindowConfig describes the window created by platform.NewWindow.
type WindowConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	VSync   bool   `toml:"vsync"`
	Samples int    `toml:"samples"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:   1024,
		Height:  768,
		Title:   "Deserted home",
		VSync:   true,
		Samples: 4,
	}
}
