package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFogStaysInRange(t *testing.T) {
	p := NewParams(DefaultFogConfig())
	assert.Equal(t, float32(0), p.FogDensity())

	for i := 0; i < 500; i++ {
		p.IncreaseFog()
		assert.LessOrEqual(t, p.FogDensity(), float32(1))
	}
	assert.Equal(t, float32(1), p.FogDensity())

	for i := 0; i < 1000; i++ {
		p.DecreaseFog()
		assert.GreaterOrEqual(t, p.FogDensity(), float32(0))
	}
	assert.Equal(t, float32(0), p.FogDensity())
}

func TestFogStepsAreExact(t *testing.T) {
	p := NewParams(DefaultFogConfig())
	for i := 0; i < 50; i++ {
		p.IncreaseFog()
	}
	assert.Equal(t, float32(0.5), p.FogDensity())
}

func TestSetFogDensity(t *testing.T) {
	p := NewParams(FogConfig{Step: 0.01, Initial: 0.2})
	assert.InDelta(t, 0.2, p.FogDensity(), 1e-6)

	p.SetFogDensity(4)
	assert.Equal(t, float32(1), p.FogDensity())
	p.SetFogDensity(-1)
	assert.Equal(t, float32(0), p.FogDensity())
}

func TestParamsDefaults(t *testing.T) {
	p := NewParams(FogConfig{})
	assert.Equal(t, PolygonFill, p.Polygon)
	assert.Equal(t, "fill", p.Polygon.String())
	p.IncreaseFog()
	assert.InDelta(t, 0.01, p.FogDensity(), 1e-6)
}
