package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newTestState() *State {
	return &State{
		Camera:    newStartCamera(),
		Light:     DefaultLight(),
		Animation: NewAnimation(DefaultTumbleweedConfig(), 40, rand.NewPCG(1, 2)),
		Params:    NewParams(DefaultFogConfig()),
		Objects:   DefaultObjects(),
	}
}

func TestDynamicsFollowState(t *testing.T) {
	s := newTestState()
	s.ObjectAngle = 15
	s.Advance(0.5)

	d := s.Dynamics()
	assert.Equal(t, float32(15), d.Angle)
	assert.Equal(t, s.Animation.Windmill.Phase(), d.Blade)
	assert.Equal(t, s.Animation.Tumbleweed.Position(), d.Tumbleweed)
	assert.InDelta(t, 20, d.Blade, 1e-5)
}

func TestDynamicsWithoutTumbleweed(t *testing.T) {
	s := &State{}
	assert.Equal(t, mgl32.Vec3{}, s.Dynamics().Tumbleweed)
}
