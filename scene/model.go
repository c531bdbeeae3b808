package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadModel loads every mesh of a model file, choosing the loader from the
// file extension.
func LoadModel(path string) ([]*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("load model %q: unsupported format %q", path, ext)
	}
}
