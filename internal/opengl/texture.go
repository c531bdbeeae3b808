package opengl

import (
	"errors"
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"deserted-home/scene"
)

// materialSampling is the sampler state of diffuse and specular maps.
// Mesh UVs from OBJ files tile, so both axes repeat.
var materialSampling = [...]struct {
	param uint32
	value int32
}{
	{gl.TEXTURE_WRAP_S, gl.REPEAT},
	{gl.TEXTURE_WRAP_T, gl.REPEAT},
	{gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR},
	{gl.TEXTURE_MAG_FILTER, gl.LINEAR},
}

// UploadTexture creates the material map of tex and stores its GL name in
// tex.GLID. Pixels are taken as sRGB so the lit shader samples linear
// values. A texture that already has a GLID is left alone, which lets
// models share maps loaded from one MTL library.
func UploadTexture(tex *scene.Texture) error {
	if tex != nil && tex.GLID != 0 {
		return nil
	}
	if err := checkPixels(tex); err != nil {
		return fmt.Errorf("upload texture: %w", err)
	}

	gl.GenTextures(1, &tex.GLID)
	gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
	for _, s := range materialSampling {
		gl.TexParameteri(gl.TEXTURE_2D, s.param, s.value)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8_ALPHA8,
		int32(tex.Width), int32(tex.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// checkPixels reports whether tex holds a non-empty RGBA8 image.
func checkPixels(tex *scene.Texture) error {
	switch {
	case tex == nil:
		return errors.New("nil texture")
	case tex.Width <= 0 || tex.Height <= 0:
		return fmt.Errorf("%q: empty %dx%d image", tex.Name, tex.Width, tex.Height)
	case len(tex.Pixels) != tex.Width*tex.Height*4:
		return fmt.Errorf("%q: %d bytes for %dx%d RGBA", tex.Name, len(tex.Pixels), tex.Width, tex.Height)
	}
	return nil
}

// DeleteTexture releases the GL side of tex. The CPU pixels stay, so the
// texture can be uploaded again.
func DeleteTexture(tex *scene.Texture) {
	if tex == nil || tex.GLID == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.GLID)
	tex.GLID = 0
}

// bindTexture makes tex the 2D texture of a material unit.
func bindTexture(unit uint32, tex *scene.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
}
