package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"deserted-home/config"
	"deserted-home/input"
	"deserted-home/internal/opengl"
	"deserted-home/platform"
	"deserted-home/renderer"
	"deserted-home/scene"
)

// viewer owns the window, the GL resources and the per-frame state.
type viewer struct {
	cfg *config.Config
	log *slog.Logger

	window   *platform.Window
	programs []*opengl.Program
	shadow   *opengl.ShadowMap
	skybox   *opengl.Skybox
	uploader *opengl.Uploader
	pipeline *renderer.Pipeline

	state      *scene.State
	manager    *input.Manager
	controller *input.Controller
	watcher    *config.Watcher
	hud        *hud
}

func newViewer(cfg *config.Config, log *slog.Logger) (*viewer, error) {
	v := &viewer{cfg: cfg, log: log}
	if err := v.init(); err != nil {
		v.Destroy()
		return nil, err
	}
	return v, nil
}

// init creates every resource in dependency order. Whatever was created
// before a failure is released by Destroy.
func (v *viewer) init() error {
	cfg, log := v.cfg, v.log

	var err error
	v.window, err = platform.NewWindow(cfg.Window, log)
	if err != nil {
		return err
	}
	device, err := opengl.NewDevice(log)
	if err != nil {
		return err
	}

	shaders, err := v.shaderFS()
	if err != nil {
		return err
	}
	lit, err := v.program(shaders, "basic")
	if err != nil {
		return err
	}
	depth, err := v.program(shaders, "shadow")
	if err != nil {
		return err
	}
	sky, err := v.program(shaders, "skybox")
	if err != nil {
		return err
	}

	v.shadow, err = opengl.NewShadowMap(cfg.Shadow.Width, cfg.Shadow.Height)
	if err != nil {
		return err
	}
	v.skybox, err = opengl.NewSkybox(sky, cfg.SkyboxPaths(opengl.SkyboxFaces))
	if err != nil {
		return err
	}
	v.uploader, err = opengl.NewUploader()
	if err != nil {
		return err
	}

	marker, err := v.marker()
	if err != nil {
		return err
	}
	meshes := make(map[string]renderer.Drawable)
	for _, path := range scene.Meshes(cfg.Objects) {
		m, err := v.model(path)
		if err != nil {
			return err
		}
		meshes[path] = m
	}

	v.pipeline, err = renderer.NewPipeline(renderer.Options{
		Device:       device,
		Surface:      v.window,
		Shadow:       v.shadow,
		DepthProgram: depth,
		LitProgram:   lit,
		Skybox:       v.skybox,
		Marker:       marker,
		Meshes:       meshes,
		Camera:       cfg.Camera.Projection(),
		Logger:       log,
	})
	if err != nil {
		return err
	}
	if err := v.pipeline.Check(cfg.Objects); err != nil {
		return err
	}

	light := cfg.Light
	light.Frustum = cfg.Shadow
	v.state = &scene.State{
		Camera:    cfg.Camera.New(cfg.Input.MoveSpeed),
		Light:     light,
		Animation: scene.NewAnimation(cfg.Animation.Tumbleweed, cfg.Animation.Windmill.Speed, cfg.Animation.Source()),
		Params:    scene.NewParams(cfg.Fog),
		Objects:   cfg.Objects,
	}
	v.manager = input.NewManager(v.window)
	v.controller = input.NewController(cfg.Input)
	v.hud = newHUD(v.window, cfg.Window.Title)

	log.Info("scene ready", "objects", len(cfg.Objects), "meshes", len(meshes), "assets", cfg.Root())
	return nil
}

// shaderFS returns the configured shader directory, or the built-in
// sources when none is set.
func (v *viewer) shaderFS() (fs.FS, error) {
	if v.cfg.Assets.Shaders != "" {
		return os.DirFS(v.cfg.Path(v.cfg.Assets.Shaders)), nil
	}
	sub, err := fs.Sub(opengl.Shaders, "shaders")
	if err != nil {
		return nil, fmt.Errorf("embedded shaders: %w", err)
	}
	return sub, nil
}

func (v *viewer) program(fsys fs.FS, name string) (*opengl.Program, error) {
	p, err := opengl.LoadProgram(fsys, name+".vert", name+".frag")
	if err != nil {
		return nil, err
	}
	v.programs = append(v.programs, p)
	v.log.Debug("program linked", "name", p.Name, "uniforms", p.Uniforms())
	return p, nil
}

// model loads and uploads the mesh at an asset path.
func (v *viewer) model(path string) (*opengl.Model, error) {
	meshes, err := scene.LoadModel(v.cfg.Path(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	m, err := v.uploader.Model(path, meshes)
	if err != nil {
		return nil, err
	}
	lo, hi := meshes[0].Bounds()
	for _, mesh := range meshes[1:] {
		mlo, mhi := mesh.Bounds()
		for i := range 3 {
			lo[i] = min(lo[i], mlo[i])
			hi[i] = max(hi[i], mhi[i])
		}
	}
	v.log.Debug("model loaded", "path", path, "meshes", len(meshes), "min", lo, "max", hi)
	return m, nil
}

// marker is the light cube. A unit cube is generated when no mesh is
// configured.
func (v *viewer) marker() (*opengl.Model, error) {
	if v.cfg.Assets.LightCube != "" {
		return v.model(v.cfg.Assets.LightCube)
	}
	cube := scene.CreateCube(1)
	cube.Material = scene.DefaultMaterial()
	return v.uploader.Model("light cube", []*scene.Mesh{cube})
}

// Watch reloads object placements whenever the config file at path is
// saved.
func (v *viewer) Watch(path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	v.watcher = w
	v.log.Info("watching config", "path", w.Path())
	return nil
}

// reload swaps in the placements of a freshly parsed config. Missing
// meshes are loaded first; on any failure the current objects stay.
func (v *viewer) reload() {
	cfg, err := v.watcher.Poll()
	if err != nil {
		v.log.Warn("config reload failed", "err", err)
		return
	}
	if cfg == nil {
		return
	}
	for _, path := range scene.Meshes(cfg.Objects) {
		if v.pipeline.HasMesh(path) {
			continue
		}
		m, err := v.model(path)
		if err != nil {
			v.log.Warn("config reload failed", "err", err)
			return
		}
		v.pipeline.AddMesh(path, m)
	}
	if err := v.pipeline.Check(cfg.Objects); err != nil {
		v.log.Warn("config reload failed", "err", err)
		return
	}
	v.state.Objects = cfg.Objects
	v.log.Info("objects reloaded", "count", len(cfg.Objects))
}

// Run drives the frame loop until the window is closed or Escape is
// pressed.
func (v *viewer) Run() {
	last := v.window.Time()
	for !v.window.ShouldClose() {
		now := v.window.Time()
		dt := float32(now - last)
		last = now

		snap := v.manager.Poll()
		if v.controller.Apply(&snap, dt, v.state) {
			v.window.SetShouldClose(true)
		}
		v.state.Advance(dt)
		if v.watcher != nil {
			v.reload()
		}

		v.pipeline.Frame(v.state)
		v.hud.Update(now, v.state)
		v.window.PollEvents()
	}
}

func (v *viewer) Destroy() {
	if v.watcher != nil {
		if err := v.watcher.Close(); err != nil {
			v.log.Warn("close watcher", "err", err)
		}
	}
	if v.uploader != nil {
		v.uploader.Destroy()
	}
	if v.skybox != nil {
		v.skybox.Destroy()
	}
	if v.shadow != nil {
		v.shadow.Destroy()
	}
	for _, p := range v.programs {
		p.Destroy()
	}
	if v.window != nil {
		v.window.Destroy()
	}
}
