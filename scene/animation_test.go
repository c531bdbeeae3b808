package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTumbleweed() *Tumbleweed {
	return NewTumbleweed(DefaultTumbleweedConfig(), rand.NewPCG(1, 2))
}

func TestTumbleweedAdvancesUntilEndThenWraps(t *testing.T) {
	tw := newTestTumbleweed()
	cfg := tw.Config()
	require.Equal(t, cfg.Start, tw.Position().X())

	wrapped := false
	prev := tw.Position().X()
	for i := 0; i < 2000 && !wrapped; i++ {
		tw.Advance(1.0 / 60)
		x := tw.Position().X()
		if x == cfg.Start {
			wrapped = true
			// The wrap happens on the first step past End
			assert.Greater(t, prev, cfg.End-cfg.Speed/60*1.5)
			continue
		}
		assert.Greater(t, x, prev)
		assert.LessOrEqual(t, x, cfg.End)
		prev = x
	}
	assert.True(t, wrapped)
}

func TestTumbleweedWrapDrawsDepthInRange(t *testing.T) {
	tw := newTestTumbleweed()
	cfg := tw.Config()
	assert.Equal(t, float32(0), tw.Position().Z())

	for i := 0; i < 20; i++ {
		// One large step always crosses End from Start
		tw.Advance((cfg.End - cfg.Start) / cfg.Speed * 1.01)
		assert.Equal(t, cfg.Start, tw.Position().X())
		z := tw.Position().Z()
		assert.GreaterOrEqual(t, z, cfg.ZMin)
		assert.Less(t, z, cfg.ZMax)
	}
}

func TestTumbleweedDepthOnlyChangesOnWrap(t *testing.T) {
	tw := newTestTumbleweed()
	z := tw.Position().Z()
	for i := 0; i < 100; i++ {
		tw.Advance(0.01)
		assert.Equal(t, z, tw.Position().Z())
	}
}

func TestTumbleweedHeightDependsOnlyOnX(t *testing.T) {
	a := newTestTumbleweed()
	b := NewTumbleweed(DefaultTumbleweedConfig(), rand.NewPCG(9, 9))

	// Same distance covered at different frame rates
	for i := 0; i < 60; i++ {
		a.Advance(1.0 / 60)
	}
	for i := 0; i < 15; i++ {
		b.Advance(1.0 / 15)
	}
	assert.InDelta(t, a.Position().X(), b.Position().X(), 1e-4)
	assert.Equal(t, a.Height(0.7), b.Height(0.7))

	cfg := a.Config()
	for _, x := range []float32{-2, -1.3, 0, 0.31, 1.9} {
		y := a.Height(x)
		assert.GreaterOrEqual(t, y, cfg.YMin-1e-6)
		assert.LessOrEqual(t, y, cfg.YMax+1e-6)
	}
}

func TestTumbleweedIgnoresNegativeTime(t *testing.T) {
	tw := newTestTumbleweed()
	before := tw.Position()
	tw.Advance(-1)
	assert.Equal(t, before, tw.Position())
}

func TestWindmillAngleIsMonotonic(t *testing.T) {
	w := Windmill{Speed: 20}
	prev := w.Angle()
	for i := 0; i < 10; i++ {
		w.Advance(0.1)
		assert.Greater(t, w.Angle(), prev)
		prev = w.Angle()
	}
	assert.InDelta(t, 20, w.Angle(), 1e-4)

	w.Advance(-5)
	assert.Equal(t, prev, w.Angle())
}

func TestWindmillPhaseWraps(t *testing.T) {
	w := Windmill{Speed: 20}
	w.Advance(19)
	assert.InDelta(t, 380, w.Angle(), 1e-3)
	assert.InDelta(t, 20, w.Phase(), 1e-3)
}

func TestWindmillKeepsTurningAfterLongRuns(t *testing.T) {
	// About six days at 20°/s: a float32 sum would no longer move by a
	// 60 Hz frame step.
	w := Windmill{Speed: 20, angle: 1e7}
	before, phase := w.Angle(), w.Phase()

	w.Advance(1.0 / 60)
	assert.GreaterOrEqual(t, w.Angle(), before)
	assert.InDelta(t, 20.0/60, w.Phase()-phase, 1e-4)
}

func TestAnimationAdvancesBoth(t *testing.T) {
	a := NewAnimation(DefaultTumbleweedConfig(), 20, rand.NewPCG(3, 4))
	a.Advance(0.5)
	assert.InDelta(t, -2+0.125, a.Tumbleweed.Position().X(), 1e-6)
	assert.InDelta(t, 10, a.Windmill.Angle(), 1e-6)
}
