package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"deserted-home/core"
)

// LoadGLTF opens a .glb or .gltf file and flattens its default scene into
// meshes, one per primitive, with node transforms baked into the vertices.
// PBR metallic-roughness is approximated to Blinn-Phong.
func LoadGLTF(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	dir := filepath.Dir(path)

	// ── Textures ─────────────────────────────────────────────────────────────
	texCache := make([]*Texture, len(doc.Textures))
	for i, gt := range doc.Textures {
		if gt.Source == nil || *gt.Source >= len(doc.Images) {
			continue
		}
		img := doc.Images[*gt.Source]

		var tex *Texture
		switch {
		case img.BufferView != nil:
			raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
			if err != nil {
				return nil, fmt.Errorf("gltf %q: image %d: %w", path, *gt.Source, err)
			}
			name := img.Name
			if name == "" {
				name = fmt.Sprintf("gltf_img_%d", *gt.Source)
			}
			tex, err = decodeImageBytes(name, raw)
			if err != nil {
				return nil, fmt.Errorf("gltf %q: image %d: %w", path, *gt.Source, err)
			}
		case img.URI != "" && !img.IsEmbeddedResource():
			tex, err = LoadTexture(filepath.Join(dir, img.URI))
			if err != nil {
				return nil, fmt.Errorf("gltf %q: %w", path, err)
			}
		}
		texCache[i] = tex
	}

	// ── Materials ────────────────────────────────────────────────────────────
	matCache := make([]*Material, len(doc.Materials))
	for i, gm := range doc.Materials {
		mat := DefaultMaterial()
		mat.Name = gm.Name

		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mat.Diffuse = core.Color{
				R: float32(cf[0]), G: float32(cf[1]),
				B: float32(cf[2]), A: float32(cf[3]),
			}
			if pbr.BaseColorTexture != nil {
				idx := pbr.BaseColorTexture.Index
				if idx < len(texCache) && texCache[idx] != nil {
					mat.DiffuseTexture = texCache[idx]
				}
			}
			// roughness → shininess, metallic → specular intensity
			roughness := float32(pbr.RoughnessFactorOrDefault())
			metallic := float32(pbr.MetallicFactorOrDefault())
			mat.Shininess = (1.0-roughness)*(1.0-roughness)*128.0 + 1.0
			s := metallic * 0.7
			mat.Specular = core.Color{R: s, G: s, B: s, A: 1}
		}
		matCache[i] = mat
	}

	// ── Nodes ────────────────────────────────────────────────────────────────
	// A node has at most one parent, so reaching one twice means the
	// hierarchy loops or shares a subtree.
	var meshes []*Mesh
	seen := make([]bool, len(doc.Nodes))
	var visit func(idx int, parent mgl32.Mat4) error
	visit = func(idx int, parent mgl32.Mat4) error {
		if idx < 0 || idx >= len(doc.Nodes) {
			return fmt.Errorf("node %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("node %d is reached twice", idx)
		}
		seen[idx] = true
		gn := doc.Nodes[idx]
		world := parent.Mul4(nodeMatrix(gn))

		if gn.Mesh != nil && *gn.Mesh < len(doc.Meshes) {
			gm := doc.Meshes[*gn.Mesh]
			for pi, prim := range gm.Primitives {
				m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim, world)
				if err != nil {
					return fmt.Errorf("mesh %d prim %d: %w", *gn.Mesh, pi, err)
				}
				m.Material = DefaultMaterial()
				if prim.Material != nil && *prim.Material < len(matCache) {
					m.Material = matCache[*prim.Material]
					m.MaterialName = m.Material.Name
				}
				meshes = append(meshes, m)
			}
		}
		for _, c := range gn.Children {
			if err := visit(c, world); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range rootNodes(doc) {
		if err := visit(root, mgl32.Ident4()); err != nil {
			return nil, fmt.Errorf("gltf %q: %w", path, err)
		}
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no geometry found in %q", path)
	}
	return meshes, nil
}

// rootNodes returns the default scene's roots, or every parentless node
// when the document names no scene.
func rootNodes(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// nodeMatrix is the node's local transform: its matrix if present,
// otherwise T·R·S.
func nodeMatrix(gn *gltf.Node) mgl32.Mat4 {
	var m mgl32.Mat4
	for i, v := range gn.MatrixOrDefault() {
		m[i] = float32(v)
	}
	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()
	q := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
	trs := mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
	return m.Mul4(trs)
}

// loadGLTFPrimitive converts one glTF mesh primitive into a scene.Mesh,
// transforming it by world.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive, world mgl32.Mat4) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, errors.New("only triangle primitives are supported")
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, errors.New("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("uvs: %w", err)
		}
	}

	normalMat := world.Mat3().Inv().Transpose()
	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: mgl32.TransformCoordinate(mgl32.Vec3(p), world),
			Normal:   mgl32.Vec3{0, 1, 0},
		}
		if i < len(normals) {
			v.Normal = normalMat.Mul3x1(mgl32.Vec3(normals[i])).Normalize()
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2(uvs[i])
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(normals) == 0 {
		generateSmoothNormals(verts, indices)
	}

	return CreateMeshFromData(name, verts, indices), nil
}

// decodeImageBytes decodes an embedded image into an RGBA8 scene.Texture.
func decodeImageBytes(name string, data []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return NewTexture(name, toRGBA(img)), nil
}
