package input

import (
	remath "deserted-home/math"
	"deserted-home/scene"
)

// Config holds the controller's step sizes.
type Config struct {
	MoveSpeed   float32 `toml:"move_speed"`  // world units per second
	ObjectStep  float32 `toml:"object_step"` // degrees per update
	LightStep   float32 `toml:"light_step"`  // degrees per update
	Sensitivity float32 `toml:"sensitivity"` // degrees per cursor pixel
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:   2.5,
		ObjectStep:  3,
		LightStep:   1,
		Sensitivity: 0.1,
	}
}

// Controller turns input snapshots into changes to the frame state.
type Controller struct {
	cfg Config

	anchored     bool
	lastX, lastY float64
	yaw, pitch   float32
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// Reset makes the next cursor sample an anchor with no rotation, and
// re-reads the camera angles at that point. Apply calls it when a snapshot
// is marked Refocused.
func (c *Controller) Reset() {
	c.anchored = false
}

// Apply applies one update worth of input to s. dt is the elapsed frame
// time in seconds; it scales camera movement only. It reports whether the
// user asked to quit.
func (c *Controller) Apply(snap *Snapshot, dt float32, s *scene.State) bool {
	if snap.Refocused {
		c.Reset()
	}
	if dt < 0 {
		dt = 0
	}
	distance := c.cfg.MoveSpeed * dt

	moves := [...]struct {
		key Key
		dir scene.MoveDirection
	}{
		{KeyW, scene.MoveForward},
		{KeyS, scene.MoveBackward},
		{KeyA, scene.MoveLeft},
		{KeyD, scene.MoveRight},
	}
	for _, m := range moves {
		if snap.Down(m.key) {
			s.Camera.Move(m.dir, distance)
		}
	}

	if snap.Down(KeyQ) {
		s.ObjectAngle -= c.cfg.ObjectStep
	}
	if snap.Down(KeyE) {
		s.ObjectAngle += c.cfg.ObjectStep
	}
	if snap.Down(KeyJ) {
		s.Light.Angle -= c.cfg.LightStep
	}
	if snap.Down(KeyL) {
		s.Light.Angle += c.cfg.LightStep
	}

	switch {
	case snap.Pressed(Key1):
		s.Params.Polygon = scene.PolygonLine
	case snap.Pressed(Key2):
		s.Params.Polygon = scene.PolygonFill
	case snap.Pressed(Key3):
		s.Params.Polygon = scene.PolygonPoint
	}

	switch {
	case snap.Pressed(KeyO):
		s.Light.Mode = scene.LightDirectional
	case snap.Pressed(KeyP):
		s.Light.Mode = scene.LightPositional
	}

	if snap.Down(KeyM) {
		s.Params.IncreaseFog()
	}
	if snap.Down(KeyN) {
		s.Params.DecreaseFog()
	}

	c.Look(snap.CursorX, snap.CursorY, s.Camera)

	return snap.Down(KeyEscape)
}

// Look rotates cam by the cursor movement since the previous sample.
func (c *Controller) Look(x, y float64, cam *scene.Camera) {
	if !c.anchored {
		c.lastX, c.lastY = x, y
		c.yaw, c.pitch = cam.Yaw(), cam.Pitch()
		c.anchored = true
		return
	}

	dx := float32(x-c.lastX) * c.cfg.Sensitivity
	// Screen y grows downwards
	dy := float32(c.lastY-y) * c.cfg.Sensitivity
	c.lastX, c.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}

	c.yaw += dx
	c.pitch = remath.Clamp(c.pitch+dy, -scene.MaxPitch, scene.MaxPitch)
	cam.Rotate(c.pitch, c.yaw)
}
