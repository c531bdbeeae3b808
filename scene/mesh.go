package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"deserted-home/core"
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name         string
	Vertices     []core.Vertex
	Indices      []uint32
	IndexCount   uint32
	MaterialName string

	// Material holds surface shading properties. If nil, DefaultMaterial() is used.
	Material *Material
}

// CreateMeshFromData builds a Mesh from interleaved vertices and
// triangle indices.
func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:       name,
		Vertices:   vertices,
		Indices:    indices,
		IndexCount: uint32(len(indices)),
	}
}

// Bounds returns the local-space bounding box of the mesh positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return min, max
}

// CreateCube builds an axis-aligned cube centred on the origin with
// counter-clockwise front faces.
func CreateCube(size float32) *Mesh {
	s := size / 2
	v := func(x, y, z, nx, ny, nz, u, w float32) core.Vertex {
		return core.Vertex{
			Position: mgl32.Vec3{x, y, z},
			Normal:   mgl32.Vec3{nx, ny, nz},
			UV:       mgl32.Vec2{u, w},
		}
	}

	vertices := []core.Vertex{
		// Front face
		v(-s, -s, s, 0, 0, 1, 0, 0), v(s, -s, s, 0, 0, 1, 1, 0), v(s, s, s, 0, 0, 1, 1, 1), v(-s, s, s, 0, 0, 1, 0, 1),
		// Back face
		v(s, -s, -s, 0, 0, -1, 0, 0), v(-s, -s, -s, 0, 0, -1, 1, 0), v(-s, s, -s, 0, 0, -1, 1, 1), v(s, s, -s, 0, 0, -1, 0, 1),
		// Top face
		v(-s, s, s, 0, 1, 0, 0, 0), v(s, s, s, 0, 1, 0, 1, 0), v(s, s, -s, 0, 1, 0, 1, 1), v(-s, s, -s, 0, 1, 0, 0, 1),
		// Bottom face
		v(-s, -s, -s, 0, -1, 0, 0, 0), v(s, -s, -s, 0, -1, 0, 1, 0), v(s, -s, s, 0, -1, 0, 1, 1), v(-s, -s, s, 0, -1, 0, 0, 1),
		// Right face
		v(s, -s, s, 1, 0, 0, 0, 0), v(s, -s, -s, 1, 0, 0, 1, 0), v(s, s, -s, 1, 0, 0, 1, 1), v(s, s, s, 1, 0, 0, 0, 1),
		// Left face
		v(-s, -s, -s, -1, 0, 0, 0, 0), v(-s, -s, s, -1, 0, 0, 1, 0), v(-s, s, s, -1, 0, 0, 1, 1), v(-s, s, -s, -1, 0, 0, 0, 1),
	}

	indices := make([]uint32, 0, 36)
	for f := uint32(0); f < 6; f++ {
		b := f * 4
		indices = append(indices, b, b+1, b+2, b+2, b+3, b)
	}

	return CreateMeshFromData("Cube", vertices, indices)
}
