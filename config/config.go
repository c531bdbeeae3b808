// Package config holds the viewer settings. Default reproduces the
// built-in scene; Load overlays a TOML file on top of it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"deserted-home/core"
	"deserted-home/input"
	"deserted-home/renderer"
	"deserted-home/scene"
)

// Assets locates everything read from disk. Relative paths are resolved
// against Root, and Root itself against the config file's directory.
type Assets struct {
	Root string `toml:"root"`
	// Shaders overrides the embedded GLSL sources when set.
	Shaders   string `toml:"shaders"`
	Skybox    string `toml:"skybox"`
	SkyboxExt string `toml:"skybox_ext"`
	// LightCube is the marker mesh; a generated cube is used when empty.
	LightCube string `toml:"light_cube"`
}

type Camera struct {
	Position mgl32.Vec3 `toml:"position"`
	Target   mgl32.Vec3 `toml:"target"`
	Up       mgl32.Vec3 `toml:"up"`
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
}

// Projection returns the lit pass projection settings.
func (c Camera) Projection() renderer.CameraConfig {
	return renderer.CameraConfig{FOV: c.FOV, Near: c.Near, Far: c.Far}
}

// New builds the scene camera. Its speed is the controller's move speed.
func (c Camera) New(speed float32) *scene.Camera {
	return scene.NewCamera(c.Position, c.Target, c.Up, speed)
}

type Windmill struct {
	Speed float32 `toml:"speed"` // degrees per second
}

type Animation struct {
	Tumbleweed scene.TumbleweedConfig `toml:"tumbleweed"`
	Windmill   Windmill               `toml:"windmill"`
	// Seed fixes the tumbleweed lane; zero picks one from the clock.
	Seed uint64 `toml:"seed"`
}

// Source returns the tumbleweed random source, or nil for a clock seed.
func (a Animation) Source() rand.Source {
	if a.Seed == 0 {
		return nil
	}
	return rand.NewPCG(a.Seed, a.Seed)
}

type Config struct {
	Window    core.WindowConfig   `toml:"window"`
	Assets    Assets              `toml:"assets"`
	Camera    Camera              `toml:"camera"`
	Light     scene.Light         `toml:"light"`
	Shadow    scene.ShadowFrustum `toml:"shadow"`
	Fog       scene.FogConfig     `toml:"fog"`
	Input     input.Config        `toml:"input"`
	Animation Animation           `toml:"animation"`
	Objects   []scene.Object      `toml:"object"`

	// dir is where the file was read from; empty for Default.
	dir string
}

func Default() *Config {
	def := renderer.DefaultCameraConfig()
	return &Config{
		Window: core.DefaultWindowConfig(),
		Assets: Assets{
			Root:      ".",
			Skybox:    "skybox",
			SkyboxExt: ".png",
			LightCube: "models/cube/cube.obj",
		},
		Camera: Camera{
			Position: mgl32.Vec3{0, -0.2, 0.89},
			Target:   mgl32.Vec3{0, 0, 0},
			Up:       mgl32.Vec3{0, 1, 0},
			FOV:      def.FOV,
			Near:     def.Near,
			Far:      def.Far,
		},
		Light:  scene.DefaultLight(),
		Shadow: scene.DefaultShadowFrustum(),
		Fog:    scene.DefaultFogConfig(),
		Input:  input.DefaultConfig(),
		Animation: Animation{
			Tumbleweed: scene.DefaultTumbleweedConfig(),
			Windmill:   Windmill{Speed: 20},
		},
		Objects: scene.DefaultObjects(),
	}
}

// Load reads the TOML file at path over the defaults. A file without any
// [[object]] table keeps the built-in placements.
func Load(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Objects = nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(cfg.Objects) == 0 {
		cfg.Objects = scene.DefaultObjects()
	}
	for i := range cfg.Objects {
		if cfg.Objects[i].Motion == "" {
			cfg.Objects[i].Motion = scene.MotionStatic
		}
	}
	cfg.Light.Frustum = cfg.Shadow

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Shadow.Width <= 0 || c.Shadow.Height <= 0 {
		return fmt.Errorf("shadow map size %dx%d must be positive", c.Shadow.Width, c.Shadow.Height)
	}
	if c.Shadow.Near >= c.Shadow.Far {
		return fmt.Errorf("shadow near %g must be below far %g", c.Shadow.Near, c.Shadow.Far)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return fmt.Errorf("camera clip range [%g, %g] is invalid", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Target.Sub(c.Camera.Position).Len() == 0 {
		return errors.New("camera target coincides with its position")
	}
	if c.Animation.Tumbleweed.End <= c.Animation.Tumbleweed.Start {
		return fmt.Errorf("tumbleweed end %g must exceed start %g",
			c.Animation.Tumbleweed.End, c.Animation.Tumbleweed.Start)
	}
	for i := range c.Objects {
		if err := c.Objects[i].Validate(); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

// Root returns the asset root with ~ expanded and, when relative, joined to
// the directory the config was loaded from.
func (c *Config) Root() string {
	root, err := homedir.Expand(c.Assets.Root)
	if err != nil {
		root = c.Assets.Root
	}
	if filepath.IsAbs(root) || c.dir == "" {
		return root
	}
	return filepath.Join(c.dir, root)
}

// Path resolves an asset path against Root. Absolute and ~ paths are kept.
func (c *Config) Path(rel string) string {
	if p, err := homedir.Expand(rel); err == nil && p != rel {
		return p
	}
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root(), rel)
}

// SkyboxPaths returns one file per face name, in the order given.
func (c *Config) SkyboxPaths(faces [6]string) [6]string {
	var paths [6]string
	for i, f := range faces {
		paths[i] = c.Path(filepath.Join(c.Assets.Skybox, f+c.Assets.SkyboxExt))
	}
	return paths
}
