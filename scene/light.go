package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	remath "deserted-home/math"
)

// LightMode selects how the single scene light is projected.
type LightMode int32

const (
	// LightDirectional is a parallel light using an orthographic shadow frustum.
	LightDirectional LightMode = iota
	// LightPositional is a point light using a perspective shadow frustum.
	LightPositional
)

func (m LightMode) String() string {
	if m == LightPositional {
		return "positional"
	}
	return "directional"
}

func (m LightMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *LightMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "directional":
		*m = LightDirectional
	case "positional":
		*m = LightPositional
	default:
		return fmt.Errorf("unknown light mode %q", text)
	}
	return nil
}

// ShadowFrustum holds the fixed constants of both light-space projections.
type ShadowFrustum struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	HalfExtent float32 `toml:"ortho_half_extent"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
	HalfFOV    float32 `toml:"half_fov"` // degrees
}

func DefaultShadowFrustum() ShadowFrustum {
	return ShadowFrustum{
		Width:      2048,
		Height:     2048,
		HalfExtent: 3,
		Near:       0.1,
		Far:        10,
		HalfFOV:    45,
	}
}

// Aspect is the shadow target's width over height.
func (f ShadowFrustum) Aspect() float32 {
	if f.Height == 0 {
		return 1
	}
	return float32(f.Width) / float32(f.Height)
}

// Light is the single scene light. Exactly one Mode is active; Angle
// rotates the directional light about +Y (degrees).
type Light struct {
	Direction mgl32.Vec3    `toml:"direction"`
	Position  mgl32.Vec3    `toml:"position"`
	Color     mgl32.Vec3    `toml:"color"`
	Mode      LightMode     `toml:"mode"`
	Angle     float32       `toml:"angle"`
	Frustum   ShadowFrustum `toml:"-"`
}

func DefaultLight() Light {
	return Light{
		Direction: mgl32.Vec3{0, 1.5, 1.5},
		Position:  mgl32.Vec3{-0.2, -0.25, -1.3},
		Color:     mgl32.Vec3{1, 1, 1},
		Mode:      LightDirectional,
		Frustum:   DefaultShadowFrustum(),
	}
}

// Rotation is the light's rotation about +Y.
func (l *Light) Rotation() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(l.Angle))
}

// Eye returns the point the shadow camera looks from in the active mode.
func (l *Light) Eye() mgl32.Vec3 {
	if l.Mode == LightPositional {
		return l.Position
	}
	return l.Rotation().Mul4x1(l.Direction.Vec4(1)).Vec3()
}

// View is the light's look-at matrix toward the scene origin.
func (l *Light) View() mgl32.Mat4 {
	return mgl32.LookAtV(l.Eye(), remath.Vec3Zero, remath.Vec3Up)
}

// Projection is orthographic for a directional light and perspective for
// a positional one.
func (l *Light) Projection() mgl32.Mat4 {
	f := l.Frustum
	if l.Mode == LightPositional {
		aspect := f.Aspect()
		fov := remath.HalfFOVToFull(mgl32.DegToRad(f.HalfFOV), aspect)
		return mgl32.Perspective(fov, aspect, f.Near, f.Far)
	}
	return mgl32.Ortho(-f.HalfExtent, f.HalfExtent, -f.HalfExtent, f.HalfExtent, f.Near, f.Far)
}

// SpaceMatrix is projection × view, mapping world space into the light's
// clip space. It is computed once per frame and shared by both passes.
func (l *Light) SpaceMatrix() mgl32.Mat4 {
	return l.Projection().Mul4(l.View())
}

// Marker returns the model matrix of the small cube drawn where the light is.
func (l *Light) Marker(scale float32) mgl32.Mat4 {
	s := mgl32.Scale3D(scale, scale, scale)
	if l.Mode == LightPositional {
		return mgl32.Translate3D(l.Position.Elem()).Mul4(s)
	}
	return l.Rotation().Mul4(mgl32.Translate3D(l.Direction.Elem())).Mul4(s)
}
