package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	startPos    = mgl32.Vec3{0, -0.2, 0.89}
	startTarget = mgl32.Vec3{0, 0, 0}
	startUp     = mgl32.Vec3{0, 1, 0}
)

func newStartCamera() *Camera {
	return NewCamera(startPos, startTarget, startUp, 2.5)
}

func assertOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	assert.InDelta(t, 0, c.Front().Dot(c.Right()), 1e-5)
	assert.InDelta(t, 0, c.Front().Dot(c.Up()), 1e-5)
	assert.InDelta(t, 0, c.Right().Dot(c.Up()), 1e-5)
	assert.InDelta(t, 1, c.Front().Len(), 1e-5)
	assert.InDelta(t, 1, c.Right().Len(), 1e-5)
	assert.InDelta(t, 1, c.Up().Len(), 1e-5)
}

func TestInitialViewMatchesLookAt(t *testing.T) {
	c := newStartCamera()
	expected := mgl32.LookAtV(startPos, startTarget, startUp)
	view := c.ViewMatrix()

	for i := range view {
		assert.InDelta(t, expected[i], view[i], 1e-5, "element %d", i)
	}
}

func TestInitialAnglesReproduceFront(t *testing.T) {
	c := newStartCamera()
	front := c.Front()

	c.Rotate(c.Pitch(), c.Yaw())
	assert.True(t, front.ApproxEqualThreshold(c.Front(), 1e-5))
}

func TestRotateClampsPitch(t *testing.T) {
	c := newStartCamera()
	for _, pitch := range []float32{-720, -180, -90, -89, -45, 0, 12.5, 89, 90, 500} {
		c.Rotate(pitch, 37)
		assert.GreaterOrEqual(t, c.Pitch(), float32(-MaxPitch))
		assert.LessOrEqual(t, c.Pitch(), float32(MaxPitch))
		assertOrthonormal(t, c)
	}
}

func TestRotateFacesNegativeZAtYawMinus90(t *testing.T) {
	c := newStartCamera()
	c.Rotate(0, -90)
	assert.True(t, c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5))
	assert.True(t, c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))
}

func TestMove(t *testing.T) {
	c := newStartCamera()
	c.Rotate(0, -90)

	c.Move(MoveForward, 1)
	assert.True(t, c.Position().ApproxEqualThreshold(startPos.Add(mgl32.Vec3{0, 0, -1}), 1e-5))

	c.Move(MoveBackward, 1)
	assert.True(t, c.Position().ApproxEqualThreshold(startPos, 1e-5))

	c.Move(MoveRight, 0.5)
	assert.True(t, c.Position().ApproxEqualThreshold(startPos.Add(mgl32.Vec3{0.5, 0, 0}), 1e-5))

	c.Move(MoveLeft, 0.5)
	assert.True(t, c.Position().ApproxEqualThreshold(startPos, 1e-5))
}

func TestViewMatrixIsPure(t *testing.T) {
	c := newStartCamera()
	first := c.ViewMatrix()
	require.Equal(t, first, c.ViewMatrix())
	assert.Equal(t, startPos, c.Position())
}
