package scene

// State is everything the controller mutates and the pipeline reads
// during one frame. It is owned by the application loop and only touched
// from the render thread.
type State struct {
	Camera    *Camera
	Light     Light
	Animation Animation
	Params    Params
	Objects   []Object

	// ObjectAngle is the shared yaw (degrees) applied to spinning objects.
	ObjectAngle float32
}

// Dynamics snapshots the values the placement functions depend on.
func (s *State) Dynamics() Dynamics {
	d := Dynamics{Angle: s.ObjectAngle, Blade: s.Animation.Windmill.Phase()}
	if s.Animation.Tumbleweed != nil {
		d.Tumbleweed = s.Animation.Tumbleweed.Position()
	}
	return d
}

// Advance moves the animation forward by dt seconds.
func (s *State) Advance(dt float32) {
	s.Animation.Advance(dt)
}
