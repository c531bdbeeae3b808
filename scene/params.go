package scene

import (
	"github.com/chewxy/math32"

	remath "deserted-home/math"
)

// PolygonMode selects how the lit pass rasterises triangles.
type PolygonMode int

const (
	PolygonLine PolygonMode = iota
	PolygonFill
	PolygonPoint
)

func (m PolygonMode) String() string {
	switch m {
	case PolygonLine:
		return "line"
	case PolygonPoint:
		return "point"
	default:
		return "fill"
	}
}

// FogConfig describes the fog density range in integer steps.
type FogConfig struct {
	Step    float32 `toml:"step"`
	Initial float32 `toml:"initial"`
}

func DefaultFogConfig() FogConfig {
	return FogConfig{Step: 0.01, Initial: 0}
}

// Params are the render parameters mutated by the controller and read by
// the lit pass. Fog is counted in whole steps so repeated updates do not
// accumulate rounding error.
type Params struct {
	Polygon  PolygonMode
	fogStep  float32
	fogSteps int
	maxSteps int
}

func NewParams(fog FogConfig) Params {
	step := fog.Step
	if step <= 0 {
		step = DefaultFogConfig().Step
	}
	p := Params{
		Polygon:  PolygonFill,
		fogStep:  step,
		maxSteps: int(math32.Round(1 / step)),
	}
	p.SetFogDensity(fog.Initial)
	return p
}

// IncreaseFog raises the density by one step, stopping at 1.
func (p *Params) IncreaseFog() {
	if p.fogSteps < p.maxSteps {
		p.fogSteps++
	}
}

// DecreaseFog lowers the density by one step, stopping at 0.
func (p *Params) DecreaseFog() {
	if p.fogSteps > 0 {
		p.fogSteps--
	}
}

// FogDensity is always within [0,1].
func (p *Params) FogDensity() float32 {
	return remath.Clamp(float32(p.fogSteps)*p.fogStep, 0, 1)
}

// SetFogDensity rounds density to the nearest step within [0,1].
func (p *Params) SetFogDensity(density float32) {
	density = remath.Clamp(density, 0, 1)
	p.fogSteps = int(math32.Round(density / p.fogStep))
	if p.fogSteps > p.maxSteps {
		p.fogSteps = p.maxSteps
	}
}
