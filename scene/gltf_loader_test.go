package scene

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deserted-home/core"
)

// triangleDoc builds a document with one triangle mesh and a red-orange
// material. Nodes and the scene are left to the caller.
func triangleDoc() *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	doc.Materials = []*gltf.Material{{
		Name: "clay",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 0.5, 0.25, 1},
		},
	}}
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Attributes: gltf.PrimitiveAttributes{gltf.POSITION: pos},
			Indices:    gltf.Index(idx),
			Material:   gltf.Index(0),
		}},
	}}
	return doc
}

func saveDoc(t *testing.T, doc *gltf.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.gltf")
	require.NoError(t, gltf.Save(doc, path))
	return path
}

func TestLoadGLTF(t *testing.T) {
	doc := triangleDoc()
	doc.Nodes = []*gltf.Node{
		{Name: "parent", Translation: [3]float64{1, 2, 3}, Children: []int{1}},
		{Name: "child", Mesh: gltf.Index(0), Scale: [3]float64{2, 2, 2}},
	}
	doc.Scenes[0].Nodes = []int{0}

	meshes, err := LoadModel(saveDoc(t, doc))
	require.NoError(t, err)
	require.Len(t, meshes, 1)
	m := meshes[0]

	assert.Equal(t, "tri_p0", m.Name)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	require.Len(t, m.Vertices, 3)
	want := []mgl32.Vec3{{1, 2, 3}, {3, 2, 3}, {1, 2, 5}}
	for i, v := range m.Vertices {
		assert.True(t, v.Position.ApproxEqual(want[i]), "vertex %d: %v", i, v.Position)
		assert.InDelta(t, 1, v.Normal.Len(), 1e-4, "vertex %d normal", i)
	}

	require.NotNil(t, m.Material)
	assert.Equal(t, "clay", m.MaterialName)
	assert.Equal(t, core.Color{R: 1, G: 0.5, B: 0.25, A: 1}, m.Material.Diffuse)
	assert.Nil(t, m.Material.DiffuseTexture)
}

func TestLoadGLTFWithoutSceneUsesParentlessNodes(t *testing.T) {
	doc := triangleDoc()
	doc.Scene = nil
	doc.Scenes = nil
	doc.Nodes = []*gltf.Node{
		{Mesh: gltf.Index(0), Translation: [3]float64{0, 1, 0}},
		{Children: []int{0}, Translation: [3]float64{5, 0, 0}},
	}

	meshes, err := LoadGLTF(saveDoc(t, doc))
	require.NoError(t, err)
	require.Len(t, meshes, 1)
	assert.True(t, meshes[0].Vertices[0].Position.ApproxEqual(mgl32.Vec3{5, 1, 0}))
}

func TestLoadGLTFRejectsNodeCycle(t *testing.T) {
	doc := triangleDoc()
	doc.Nodes = []*gltf.Node{
		{Mesh: gltf.Index(0), Children: []int{1}},
		{Children: []int{0}},
	}
	doc.Scenes[0].Nodes = []int{0}

	_, err := LoadGLTF(saveDoc(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node 0 is reached twice")
}

func TestLoadGLTFRejectsSharedNode(t *testing.T) {
	doc := triangleDoc()
	doc.Nodes = []*gltf.Node{
		{Children: []int{2}},
		{Children: []int{2}},
		{Mesh: gltf.Index(0)},
	}
	doc.Scenes[0].Nodes = []int{0, 1}

	_, err := LoadGLTF(saveDoc(t, doc))
	assert.ErrorContains(t, err, "node 2 is reached twice")
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF(filepath.Join(t.TempDir(), "none.glb"))
	assert.Error(t, err)
}
