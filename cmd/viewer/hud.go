package main

import (
	"fmt"
	"strings"

	"deserted-home/scene"
)

// hudInterval is how often the title is rewritten, in seconds.
const hudInterval = 0.25

type titleSetter interface {
	SetTitle(title string)
}

// hud shows the camera position, fog density and light mode in the window
// title.
type hud struct {
	target titleSetter
	base   string
	lines  []string

	next   float64
	frames int
	fps    float64
}

func newHUD(target titleSetter, base string) *hud {
	return &hud{target: target, base: base}
}

func (h *hud) addLine(format string, args ...any) {
	h.lines = append(h.lines, fmt.Sprintf(format, args...))
}

func (h *hud) text() string {
	return strings.Join(h.lines, " | ")
}

// Update counts a frame and rewrites the title at most every hudInterval.
func (h *hud) Update(now float64, s *scene.State) {
	h.frames++
	if now < h.next {
		return
	}
	if h.next > 0 {
		h.fps = float64(h.frames) / (now - h.next + hudInterval)
	}
	h.frames = 0
	h.next = now + hudInterval

	p := s.Camera.Position()
	h.lines = h.lines[:0]
	h.addLine("%s", h.base)
	h.addLine("pos %.2f %.2f %.2f", p.X(), p.Y(), p.Z())
	h.addLine("fog %.2f", s.Params.FogDensity())
	h.addLine("%s light", s.Light.Mode)
	h.addLine("%s", s.Params.Polygon)
	if h.fps > 0 {
		h.addLine("%.0f fps", h.fps)
	}
	h.target.SetTitle(h.text())
}
