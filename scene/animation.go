package scene

import (
	"math"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	remath "deserted-home/math"
)

// TumbleweedConfig holds the fixed constants of the rolling tumbleweed.
type TumbleweedConfig struct {
	Start     float32 `toml:"start"`
	End       float32 `toml:"end"`
	Speed     float32 `toml:"speed"` // units per second along x
	Frequency float32 `toml:"frequency"`
	YMin      float32 `toml:"y_min"`
	YMax      float32 `toml:"y_max"`
	ZMin      float32 `toml:"z_min"`
	ZMax      float32 `toml:"z_max"`
}

func DefaultTumbleweedConfig() TumbleweedConfig {
	return TumbleweedConfig{
		Start:     -2,
		End:       2,
		Speed:     0.25,
		Frequency: 5,
		YMin:      -0.46,
		YMax:      -0.27,
		ZMin:      -1,
		ZMax:      0.2,
	}
}

// Tumbleweed rolls along +x, bouncing on a sine of its x position, and
// jumps back to Start at a new random depth once it passes End.
type Tumbleweed struct {
	cfg     TumbleweedConfig
	x, y, z float32
	rng     *rand.Rand
}

// NewTumbleweed places the tumbleweed at the start bound. A nil src uses
// a randomly seeded source.
func NewTumbleweed(cfg TumbleweedConfig, src rand.Source) *Tumbleweed {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	tw := &Tumbleweed{cfg: cfg, x: cfg.Start, rng: rand.New(src)}
	tw.y = tw.Height(tw.x)
	return tw
}

// Advance moves the tumbleweed by Speed*dt. Passing End wraps x back to
// Start and draws a new depth in the same call.
func (tw *Tumbleweed) Advance(dt float32) {
	if dt < 0 {
		dt = 0
	}
	tw.x += tw.cfg.Speed * dt
	if tw.x > tw.cfg.End {
		tw.x = tw.cfg.Start
		tw.z = tw.cfg.ZMin + tw.rng.Float32()*(tw.cfg.ZMax-tw.cfg.ZMin)
	}
	tw.y = tw.Height(tw.x)
}

// Height maps sin(Frequency*x) from [-1,1] into [YMin,YMax].
func (tw *Tumbleweed) Height(x float32) float32 {
	return remath.Remap(math32.Sin(tw.cfg.Frequency*x), -1, 1, tw.cfg.YMin, tw.cfg.YMax)
}

func (tw *Tumbleweed) Position() mgl32.Vec3 {
	return mgl32.Vec3{tw.x, tw.y, tw.z}
}

func (tw *Tumbleweed) Config() TumbleweedConfig { return tw.cfg }

// Windmill spins the windmill blade at a constant rate. The angle is summed
// in float64 so a frame's step still registers after days of running.
type Windmill struct {
	Speed float32 `toml:"speed"` // degrees per second
	angle float64
}

func (w *Windmill) Advance(dt float32) {
	if dt < 0 {
		dt = 0
	}
	w.angle += float64(w.Speed) * float64(dt)
}

// Angle is the accumulated blade rotation in degrees. It never decreases.
func (w *Windmill) Angle() float32 { return float32(w.angle) }

// Phase is Angle reduced to [0, 360), the value used to place the blade.
func (w *Windmill) Phase() float32 {
	p := math.Mod(w.angle, 360)
	if p < 0 {
		p += 360
	}
	return float32(p)
}

// Animation is the per-frame mutable state of the animated objects.
type Animation struct {
	Tumbleweed *Tumbleweed
	Windmill   Windmill
}

func NewAnimation(tumbleweed TumbleweedConfig, windmillSpeed float32, src rand.Source) Animation {
	return Animation{
		Tumbleweed: NewTumbleweed(tumbleweed, src),
		Windmill:   Windmill{Speed: windmillSpeed},
	}
}

// Advance steps every animation by the elapsed wall-clock time. Call it
// once per frame, before any pass draws.
func (a *Animation) Advance(dt float32) {
	a.Tumbleweed.Advance(dt)
	a.Windmill.Advance(dt)
}
