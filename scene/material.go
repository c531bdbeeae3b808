package scene

import "deserted-home/core"

// Material describes the Phong surface properties of one mesh part.
type Material struct {
	Name      string
	Diffuse   core.Color // multiplied with DiffuseTexture if set
	Specular  core.Color // multiplied with SpecularTexture if set
	Shininess float32

	// Optional diffuse and specular maps. Upload via opengl.UploadTexture
	// before rendering.
	DiffuseTexture  *Texture
	SpecularTexture *Texture
}

// DefaultMaterial returns a plain white matte material.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "Default",
		Diffuse:   core.ColorWhite,
		Specular:  core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1},
		Shininess: 32,
	}
}
