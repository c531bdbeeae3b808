package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findObject(t *testing.T, objects []Object, name string) *Object {
	t.Helper()
	for i := range objects {
		if objects[i].Name == name {
			return &objects[i]
		}
	}
	require.Failf(t, "object not found", "%s", name)
	return nil
}

func TestModelOrderIsTranslateScaleRotate(t *testing.T) {
	cat := findObject(t, DefaultObjects(), "cat")
	d := Dynamics{Angle: 33}

	expected := mgl32.Translate3D(0.2488, -0.47, -1.72).
		Mul4(mgl32.Scale3D(0.004, 0.004, 0.004)).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(180), mgl32.Vec3{0, 1, 0})).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(33), mgl32.Vec3{0, 1, 0}))

	assert.True(t, expected.ApproxEqualThreshold(cat.Model(d), 1e-6))
}

func TestModelIsPure(t *testing.T) {
	objects := DefaultObjects()
	d := Dynamics{Angle: 12, Tumbleweed: mgl32.Vec3{0.5, -0.3, -0.2}, Blade: 48}
	for i := range objects {
		o := &objects[i]
		assert.Equal(t, o.Model(d), o.Model(d), o.Name)
		assert.Equal(t, o.HeadModel(d), o.HeadModel(d), o.Name)
	}
}

func TestStaticObjectsIgnoreAngle(t *testing.T) {
	ground := findObject(t, DefaultObjects(), "ground")
	assert.Equal(t, ground.Model(Dynamics{}), ground.Model(Dynamics{Angle: 90}))
}

func TestTumbleweedUsesAnimatedPosition(t *testing.T) {
	tw := findObject(t, DefaultObjects(), "tumbleweed")
	pos := mgl32.Vec3{1.25, -0.3, -0.6}
	m := tw.Model(Dynamics{Tumbleweed: pos, Angle: 45})

	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, origin.ApproxEqualThreshold(pos, 1e-6))
}

func TestHeadPivotsInParentFrame(t *testing.T) {
	windmill := findObject(t, DefaultObjects(), "windmill")
	require.NotNil(t, windmill.Head)

	// The pivot sits at offset inside the scaled frame and does not move
	// while the blade turns.
	pivotAt := func(blade float32) mgl32.Vec3 {
		return windmill.HeadModel(Dynamics{Blade: blade}).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	}
	expected := windmill.Position.Add(windmill.Head.Offset.Mul(0.1))
	assert.True(t, pivotAt(0).ApproxEqualThreshold(expected, 1e-5))
	assert.True(t, pivotAt(137).ApproxEqualThreshold(expected, 1e-5))

	// A point off the axis moves with the blade
	tip := func(blade float32) mgl32.Vec3 {
		return windmill.HeadModel(Dynamics{Blade: blade}).Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	}
	assert.False(t, tip(0).ApproxEqualThreshold(tip(90), 1e-5))
}

func TestHeadModelWithoutHead(t *testing.T) {
	ground := findObject(t, DefaultObjects(), "ground")
	assert.Equal(t, mgl32.Ident4(), ground.HeadModel(Dynamics{}))
}

func TestValidate(t *testing.T) {
	for _, o := range DefaultObjects() {
		assert.NoError(t, o.Validate(), o.Name)
	}

	assert.Error(t, (&Object{Name: "x"}).Validate())
	assert.Error(t, (&Object{Name: "x", Mesh: "m.obj", Motion: "orbit"}).Validate())
	assert.Error(t, (&Object{Name: "x", Mesh: "m.obj", Rotations: []Rotation{{Angle: 10}}}).Validate())
	assert.Error(t, (&Object{Name: "x", Mesh: "m.obj", Head: &Head{Axis: axisZ}}).Validate())
	assert.Error(t, (&Object{Name: "x", Mesh: "m.obj", Head: &Head{Mesh: "h.obj"}}).Validate())
}

func TestMeshesDeduplicates(t *testing.T) {
	paths := Meshes(DefaultObjects())
	assert.Len(t, paths, 9)
	assert.Equal(t, "models/cactus/10436_Cactus_v1_max2010_it2.obj", paths[0])
	assert.Contains(t, paths, "models/windmill/windmill_headobj.obj")
}
