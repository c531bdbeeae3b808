package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Motion selects where an object's translation comes from.
type Motion string

const (
	MotionStatic     Motion = "static"
	MotionTumbleweed Motion = "tumbleweed"
)

// Rotation is a fixed axis-angle rotation (degrees).
type Rotation struct {
	Angle float32    `toml:"angle"`
	Axis  mgl32.Vec3 `toml:"axis"`
}

// Head is a part animated in its parent's translated and scaled frame,
// such as the windmill blade. Offset and Axis are tied to the authored
// origin of the head mesh.
type Head struct {
	Mesh   string     `toml:"mesh"`
	Offset mgl32.Vec3 `toml:"offset"`
	Axis   mgl32.Vec3 `toml:"axis"`
}

// Object is one placement record: a mesh plus the recipe of its model
// transform, applied as translate, scale, then rotations in order.
type Object struct {
	Name      string     `toml:"name"`
	Mesh      string     `toml:"mesh"`
	Position  mgl32.Vec3 `toml:"position"`
	Scale     mgl32.Vec3 `toml:"scale"`
	Rotations []Rotation `toml:"rotation"`
	// Spin appends the shared object angle as a rotation about +Y.
	Spin   bool   `toml:"spin"`
	Motion Motion `toml:"motion"`
	Head   *Head  `toml:"head"`
}

// Dynamics are the per-frame values shared by every placement.
type Dynamics struct {
	Angle      float32    // shared object yaw, degrees
	Tumbleweed mgl32.Vec3 // current tumbleweed position
	Blade      float32    // windmill blade angle, degrees
}

// frame is the object's translated and scaled local frame.
func (o *Object) frame(d Dynamics) mgl32.Mat4 {
	pos := o.Position
	if o.Motion == MotionTumbleweed {
		pos = d.Tumbleweed
	}
	return mgl32.Translate3D(pos.Elem()).Mul4(mgl32.Scale3D(o.Scale.Elem()))
}

// Model is the placement function of the object. It depends only on the
// object and d, so every pass that calls it gets the same matrix.
func (o *Object) Model(d Dynamics) mgl32.Mat4 {
	m := o.frame(d)
	for _, r := range o.Rotations {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(r.Angle), r.Axis.Normalize()))
	}
	if o.Spin {
		m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(d.Angle)))
	}
	return m
}

// HeadModel places the head relative to the parent's translated and
// scaled frame, rotated by the blade angle. It is the identity when the
// object has no head.
func (o *Object) HeadModel(d Dynamics) mgl32.Mat4 {
	if o.Head == nil {
		return mgl32.Ident4()
	}
	return o.frame(d).
		Mul4(mgl32.Translate3D(o.Head.Offset.Elem())).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(d.Blade), o.Head.Axis.Normalize()))
}

// Validate checks the fields the placement functions depend on.
func (o *Object) Validate() error {
	if o.Mesh == "" {
		return fmt.Errorf("object %q: no mesh", o.Name)
	}
	switch o.Motion {
	case "", MotionStatic, MotionTumbleweed:
	default:
		return fmt.Errorf("object %q: unknown motion %q", o.Name, o.Motion)
	}
	for i, r := range o.Rotations {
		if r.Axis.Len() == 0 {
			return fmt.Errorf("object %q: rotation %d has a zero axis", o.Name, i)
		}
	}
	if o.Head != nil {
		if o.Head.Mesh == "" {
			return fmt.Errorf("object %q: head has no mesh", o.Name)
		}
		if o.Head.Axis.Len() == 0 {
			return fmt.Errorf("object %q: head has a zero axis", o.Name)
		}
	}
	return nil
}

// Meshes lists every mesh path referenced by objects, without duplicates,
// in first-use order.
func Meshes(objects []Object) []string {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for i := range objects {
		add(objects[i].Mesh)
		if objects[i].Head != nil {
			add(objects[i].Head.Mesh)
		}
	}
	return paths
}

func uniform(s float32) mgl32.Vec3 { return mgl32.Vec3{s, s, s} }

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// DefaultObjects is the deserted home scene.
func DefaultObjects() []Object {
	cactus := func(name string, pos mgl32.Vec3) Object {
		return Object{
			Name:      name,
			Mesh:      "models/cactus/10436_Cactus_v1_max2010_it2.obj",
			Position:  pos,
			Scale:     uniform(0.0009),
			Rotations: []Rotation{{Angle: -90, Axis: axisX}},
		}
	}
	return []Object{
		cactus("cactus-1", mgl32.Vec3{0.98, -0.51, -1.662}),
		cactus("cactus-2", mgl32.Vec3{-0.44, -0.51, -0.32}),
		cactus("cactus-3", mgl32.Vec3{-1.38, -0.51, -0.99}),
		cactus("cactus-4", mgl32.Vec3{1.23, -0.51, -0.36}),
		{
			Name:      "cat",
			Mesh:      "models/cat/cat.obj",
			Position:  mgl32.Vec3{0.2488, -0.47, -1.72},
			Scale:     uniform(0.004),
			Rotations: []Rotation{{Angle: 180, Axis: axisY}},
			Spin:      true,
		},
		{
			Name:     "ground",
			Mesh:     "models/ground/ground.obj",
			Position: mgl32.Vec3{0, -0.5, -1},
			Scale:    uniform(0.15),
		},
		{
			Name:   "tumbleweed",
			Mesh:   "models/tumbleweed/tumble.obj",
			Scale:  uniform(0.0005),
			Spin:   true,
			Motion: MotionTumbleweed,
		},
		{
			Name:     "windmill",
			Mesh:     "models/windmill/windmill.obj",
			Position: mgl32.Vec3{-0.767222, -0.5, -1.51006},
			Scale:    uniform(0.1),
			Head: &Head{
				Mesh:   "models/windmill/windmill_headobj.obj",
				Offset: mgl32.Vec3{0, 6.93, 1},
				Axis:   axisZ,
			},
		},
		{
			Name:     "cottage",
			Mesh:     "models/cottage/cottage.obj",
			Position: mgl32.Vec3{0.4, -0.5, -1.5},
			Scale:    uniform(0.025),
		},
		{
			Name:     "rock",
			Mesh:     "models/rock/rock.obj",
			Position: mgl32.Vec3{-1.1, -0.5, 0.17},
			Scale:    uniform(0.07),
		},
		{
			Name:     "skull",
			Mesh:     "models/bones/skull.obj",
			Position: mgl32.Vec3{0, -0.51, 0},
			Scale:    uniform(0.003),
			Rotations: []Rotation{
				{Angle: 90, Axis: axisX},
				{Angle: 180, Axis: axisY},
			},
		},
	}
}
