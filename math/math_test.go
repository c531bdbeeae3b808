package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-0.5, 0, 1))
	assert.Equal(t, float32(1), Clamp(3, 0, 1))
	assert.Equal(t, float32(0.25), Clamp(0.25, 0, 1))
}

func TestRemap(t *testing.T) {
	// [-1,1] -> [-0.46,-0.27], the tumbleweed bounce band
	assert.InDelta(t, -0.46, Remap(-1, -1, 1, -0.46, -0.27), 1e-6)
	assert.InDelta(t, -0.27, Remap(1, -1, 1, -0.46, -0.27), 1e-6)
	assert.InDelta(t, -0.365, Remap(0, -1, 1, -0.46, -0.27), 1e-6)
}

func TestNormalMatrix(t *testing.T) {
	// Pure rotation: normal matrix equals the rotation itself
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(30))
	n := NormalMatrix(rot)
	assert.True(t, n.ApproxEqualThreshold(rot.Mat3(), 1e-5))

	// Non-uniform scale: normals scale by the reciprocal
	s := mgl32.Scale3D(2, 4, 8)
	n = NormalMatrix(s)
	assert.InDelta(t, 0.5, n.At(0, 0), 1e-6)
	assert.InDelta(t, 0.25, n.At(1, 1), 1e-6)
	assert.InDelta(t, 0.125, n.At(2, 2), 1e-6)
}

func TestStripTranslation(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{3, 2, 1}, Vec3Zero, Vec3Up)
	sky := StripTranslation(view)

	assert.Equal(t, float32(0), sky.At(0, 3))
	assert.Equal(t, float32(0), sky.At(1, 3))
	assert.Equal(t, float32(0), sky.At(2, 3))
	assert.Equal(t, float32(1), sky.At(3, 3))
	assert.True(t, sky.Mat3().ApproxEqual(view.Mat3()))
}

func TestIsOrthographic(t *testing.T) {
	assert.True(t, IsOrthographic(mgl32.Ortho(-3, 3, -3, 3, 0.1, 10)))
	assert.False(t, IsOrthographic(mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 10)))
}

func TestHalfFOVToFull(t *testing.T) {
	// Square targets keep the angle
	assert.InDelta(t, mgl32.DegToRad(45), HalfFOVToFull(mgl32.DegToRad(45), 1), 1e-6)
	// Wider targets narrow the vertical angle
	assert.Less(t, HalfFOVToFull(mgl32.DegToRad(45), 2), mgl32.DegToRad(45))
}
