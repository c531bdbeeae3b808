package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Texture holds CPU-side pixel data for a 2D texture.
// GLID is set by the OpenGL backend after upload; do not access directly.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major).
	Pixels []byte
	// GLID is the OpenGL texture object ID, set by opengl.UploadTexture.
	GLID uint32
}

// LoadTexture reads a PNG, JPEG, BMP or WebP file and returns it as RGBA8,
// top row first.
func LoadTexture(path string) (*Texture, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return NewTexture(path, toRGBA(img)), nil
}

// LoadTextureFlipped is LoadTexture with the rows reversed, so that the
// first row in memory is the bottom of the image. Wavefront UVs put v=0
// at the bottom.
func LoadTextureFlipped(path string) (*Texture, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return NewTexture(path, transform.FlipV(img)), nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return img, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// NewTexture wraps an RGBA image.
func NewTexture(name string, img *image.RGBA) *Texture {
	img = toRGBA(img)
	return &Texture{
		Name:   name,
		Width:  img.Rect.Dx(),
		Height: img.Rect.Dy(),
		Pixels: img.Pix,
	}
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}
