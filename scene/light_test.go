package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	remath "deserted-home/math"
)

func TestDirectionalLightIsOrthographic(t *testing.T) {
	l := DefaultLight()
	assert.True(t, remath.IsOrthographic(l.Projection()))

	expected := mgl32.Ortho(-3, 3, -3, 3, 0.1, 10).Mul4(
		mgl32.LookAtV(mgl32.Vec3{0, 1.5, 1.5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	assert.True(t, expected.ApproxEqualThreshold(l.SpaceMatrix(), 1e-5))
}

func TestPositionalLightIsPerspective(t *testing.T) {
	l := DefaultLight()
	l.Mode = LightPositional
	assert.False(t, remath.IsOrthographic(l.Projection()))

	fov := remath.HalfFOVToFull(mgl32.DegToRad(45), 1)
	expected := mgl32.Perspective(fov, 1, 0.1, 10).Mul4(
		mgl32.LookAtV(mgl32.Vec3{-0.2, -0.25, -1.3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	assert.True(t, expected.ApproxEqualThreshold(l.SpaceMatrix(), 1e-5))
}

func TestLightAngleRotatesDirectionalEye(t *testing.T) {
	l := DefaultLight()
	l.Angle = 90
	eye := l.Eye()
	// (0,1.5,1.5) rotated 90 degrees about +Y
	assert.True(t, eye.ApproxEqualThreshold(mgl32.Vec3{1.5, 1.5, 0}, 1e-5))

	// Angle does not move a positional light
	l.Mode = LightPositional
	assert.Equal(t, l.Position, l.Eye())
}

func TestShadowFrustumAspect(t *testing.T) {
	f := DefaultShadowFrustum()
	assert.Equal(t, float32(1), f.Aspect())
	f.Width, f.Height = 2048, 1024
	assert.Equal(t, float32(2), f.Aspect())
	f.Height = 0
	assert.Equal(t, float32(1), f.Aspect())
}

func TestMarkerFollowsMode(t *testing.T) {
	l := DefaultLight()
	origin := l.Marker(0.05).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, origin.ApproxEqualThreshold(l.Direction, 1e-5))

	l.Mode = LightPositional
	origin = l.Marker(0.05).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, origin.ApproxEqualThreshold(l.Position, 1e-5))
}

func TestLightModeText(t *testing.T) {
	var m LightMode
	require.NoError(t, m.UnmarshalText([]byte("positional")))
	assert.Equal(t, LightPositional, m)

	text, err := LightDirectional.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "directional", string(text))

	assert.Error(t, m.UnmarshalText([]byte("spot")))
}
