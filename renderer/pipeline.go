package renderer

import (
	"errors"
	"fmt"
	"log/slog"

	"deserted-home/scene"
)

// Options wires the pipeline to its collaborators.
type Options struct {
	Device  Device
	Surface Surface
	Shadow  DepthTarget

	DepthProgram Uniforms
	LitProgram   Uniforms

	// Skybox and Marker are optional.
	Skybox Backdrop
	Marker Drawable

	// Meshes maps the mesh paths used by objects to uploaded geometry.
	Meshes map[string]Drawable
	Camera CameraConfig
	Logger *slog.Logger
}

// Pipeline sequences the shadow and light passes for each frame. The
// objects come from the scene state; the pipeline only owns the geometry
// they name.
type Pipeline struct {
	device  Device
	surface Surface
	shadow  *ShadowPass
	light   *LightPass

	meshes map[string]Drawable
	camera CameraConfig
	frame  Frame
	log    *slog.Logger

	frames uint64
}

func NewPipeline(opts Options) (*Pipeline, error) {
	switch {
	case opts.Device == nil:
		return nil, errors.New("pipeline: no device")
	case opts.Surface == nil:
		return nil, errors.New("pipeline: no surface")
	case opts.Shadow == nil:
		return nil, errors.New("pipeline: no shadow target")
	case opts.DepthProgram == nil || opts.LitProgram == nil:
		return nil, errors.New("pipeline: missing shader program")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	p := &Pipeline{
		device:  opts.Device,
		surface: opts.Surface,
		shadow:  NewShadowPass(opts.Device, opts.Shadow, opts.DepthProgram),
		light:   NewLightPass(opts.LitProgram, opts.Shadow, opts.Skybox, opts.Marker),
		meshes:  opts.Meshes,
		camera:  opts.Camera,
		log:     log,
	}
	if len(p.meshes) == 0 {
		return nil, errors.New("pipeline: no meshes")
	}
	return p, nil
}

// Check reports whether objects can be drawn: every record is valid and
// every mesh it names is registered. Run it before handing a new object
// list to the scene state.
func (p *Pipeline) Check(objects []scene.Object) error {
	for i := range objects {
		if err := objects[i].Validate(); err != nil {
			return fmt.Errorf("pipeline: %w", err)
		}
	}
	for _, path := range scene.Meshes(objects) {
		if _, ok := p.meshes[path]; !ok {
			return fmt.Errorf("pipeline: mesh %q is not loaded", path)
		}
	}
	return nil
}

// AddMesh registers geometry under path, replacing any earlier entry.
func (p *Pipeline) AddMesh(path string, d Drawable) {
	if p.meshes == nil {
		p.meshes = make(map[string]Drawable)
	}
	p.meshes[path] = d
}

// HasMesh reports whether geometry is registered under path.
func (p *Pipeline) HasMesh(path string) bool {
	_, ok := p.meshes[path]
	return ok
}

// LastFrame returns the matrices of the last rendered frame.
func (p *Pipeline) LastFrame() Frame { return p.frame }

// Frame draws the objects of s and presents them. Objects whose mesh is
// not registered are skipped. It reports how many graphics errors were
// raised; they are logged and never stop the frame.
func (p *Pipeline) Frame(s *scene.State) int {
	width, height := p.surface.Size()
	p.frame.update(s, p.camera, width, height)

	p.shadow.Render(&p.frame, s.Objects, p.meshes)

	p.device.Viewport(width, height)
	p.device.SetPolygonMode(s.Params.Polygon)
	p.device.Clear(true, true)

	p.light.Render(&p.frame, s, s.Objects, p.meshes)

	p.surface.SwapBuffers()
	p.frames++

	n := p.device.CheckErrors()
	if n > 0 {
		p.log.Warn("frame raised graphics errors", "frame", p.frames, "errors", n)
	}
	return n
}
