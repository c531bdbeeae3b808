package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	remath "deserted-home/math"
)

// MoveDirection selects the basis vector used by Camera.Move.
type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
)

// MaxPitch bounds the camera pitch in degrees to keep the view from
// flipping over the poles.
const MaxPitch = 89.0

// Camera is a free-flying first-person camera. Orientation is kept as a
// yaw/pitch pair (degrees) and an orthonormal front/right/up basis.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32
	speed float32
}

// NewCamera builds a camera at position looking at target. The yaw and
// pitch are recovered from the initial front vector so later Rotate calls
// continue from this orientation.
func NewCamera(position, target, up mgl32.Vec3, speed float32) *Camera {
	c := &Camera{
		position: position,
		worldUp:  up.Normalize(),
		speed:    speed,
	}
	c.front = target.Sub(position).Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()

	c.pitch = mgl32.RadToDeg(math32.Asin(remath.Clamp(c.front.Y(), -1, 1)))
	c.yaw = mgl32.RadToDeg(math32.Atan2(c.front.Z(), c.front.X()))
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Speed() float32       { return c.speed }

// Move translates the camera along one of its basis vectors.
func (c *Camera) Move(direction MoveDirection, distance float32) {
	switch direction {
	case MoveForward:
		c.position = c.position.Add(c.front.Mul(distance))
	case MoveBackward:
		c.position = c.position.Sub(c.front.Mul(distance))
	case MoveLeft:
		c.position = c.position.Sub(c.right.Mul(distance))
	case MoveRight:
		c.position = c.position.Add(c.right.Mul(distance))
	}
}

// Rotate sets the orientation from pitch and yaw in degrees and rebuilds
// the basis. Pitch is clamped to [-MaxPitch, MaxPitch].
func (c *Camera) Rotate(pitch, yaw float32) {
	c.pitch = remath.Clamp(pitch, -MaxPitch, MaxPitch)
	c.yaw = yaw

	p := mgl32.DegToRad(c.pitch)
	y := mgl32.DegToRad(c.yaw)
	c.front = mgl32.Vec3{
		math32.Cos(y) * math32.Cos(p),
		math32.Sin(p),
		math32.Sin(y) * math32.Cos(p),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ViewMatrix returns the look-at matrix for the current state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}
