package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"deserted-home/core"
	"deserted-home/renderer"
	"deserted-home/scene"
)

// Texture units used by materials. The shadow map uses renderer.ShadowUnit.
const (
	diffuseUnit  = 0
	specularUnit = 1
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	Material   *scene.Material
}

// Model is a set of uploaded meshes drawn together.
type Model struct {
	Name   string
	meshes []*GPUMesh
	white  *scene.Texture
}

// Draw binds each mesh's material and draws it with the program in use.
func (m *Model) Draw(u renderer.Uniforms) {
	for _, gpu := range m.meshes {
		m.applyMaterial(u, gpu.Material)
		gl.BindVertexArray(gpu.VAO)
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

func (m *Model) applyMaterial(u renderer.Uniforms, mat *scene.Material) {
	diffuse, specular := m.white, m.white
	if mat.DiffuseTexture != nil && mat.DiffuseTexture.GLID != 0 {
		diffuse = mat.DiffuseTexture
	}
	if mat.SpecularTexture != nil && mat.SpecularTexture.GLID != 0 {
		specular = mat.SpecularTexture
	}
	bindTexture(diffuseUnit, diffuse)
	bindTexture(specularUnit, specular)

	u.SetInt("diffuseTexture", diffuseUnit)
	u.SetInt("specularTexture", specularUnit)
	u.SetVec3("diffuseColor", mat.Diffuse.Vec3())
	u.SetVec3("specularColor", mat.Specular.Vec3())
	u.SetFloat("shininess", mat.Shininess)
}

// Uploader turns CPU meshes into Models and owns every GPU resource it
// creates.
type Uploader struct {
	white    *scene.Texture
	textures []*scene.Texture
	meshes   []*GPUMesh
}

// NewUploader creates the 1×1 white texture used in place of missing maps.
func NewUploader() (*Uploader, error) {
	white := scene.NewSolidTexture("white", 255, 255, 255, 255)
	if err := UploadTexture(white); err != nil {
		return nil, fmt.Errorf("fallback texture: %w", err)
	}
	return &Uploader{white: white, textures: []*scene.Texture{white}}, nil
}

// Model uploads meshes and their textures.
func (up *Uploader) Model(name string, meshes []*scene.Mesh) (*Model, error) {
	model := &Model{Name: name, white: up.white}
	for _, mesh := range meshes {
		if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
			continue
		}
		mat := mesh.Material
		if mat == nil {
			mat = scene.DefaultMaterial()
		}
		for _, tex := range []*scene.Texture{mat.DiffuseTexture, mat.SpecularTexture} {
			if tex == nil || tex.GLID != 0 {
				continue
			}
			if err := UploadTexture(tex); err != nil {
				return nil, fmt.Errorf("model %s: %w", name, err)
			}
			up.textures = append(up.textures, tex)
		}

		gpu := upload(mesh)
		gpu.Material = mat
		up.meshes = append(up.meshes, gpu)
		model.meshes = append(model.meshes, gpu)
	}
	if len(model.meshes) == 0 {
		return nil, fmt.Errorf("model %s: no drawable geometry", name)
	}
	return model, nil
}

// Destroy frees every buffer and texture created by the uploader.
func (up *Uploader) Destroy() {
	for _, gpu := range up.meshes {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
	}
	up.meshes = nil
	for _, tex := range up.textures {
		DeleteTexture(tex)
	}
	up.textures = nil
}

// upload creates the VAO, VBO and EBO of an indexed mesh.
func upload(mesh *scene.Mesh) *GPUMesh {
	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return gpu
}
