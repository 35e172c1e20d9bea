package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/clock"
	"solar-system/internal/commands"
	"solar-system/internal/graphics"
	"solar-system/internal/params"
	"solar-system/internal/shader"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

var panelBg = rl.NewColor(0, 0, 0, 140)

// Snapshot is what the parameter panel shows for one frame.
type Snapshot struct {
	Frame   clock.Frame
	Params  params.Params
	Surface *shader.SurfaceState
	Glow    *shader.GlowState
}

// Debug draws the FPS/memory counter (top-right) and the parameter panel (top-left).
type Debug struct {
	ShowFPS    bool
	ShowParams bool

	text       *graphics.Text
	frameCount uint32
	fpsText    string
	memText    string
	panel      []string
	memStats   runtime.MemStats
}

// New returns an overlay with the given toggles. text may be nil (raylib default font).
func New(showFPS, showParams bool, text *graphics.Text) *Debug {
	return &Debug{ShowFPS: showFPS, ShowParams: showParams, text: text}
}

// RegisterCommands adds "cmd fps" and "cmd panel".
func (d *Debug) RegisterCommands(reg *commands.Registry) {
	reg.Toggle("fps", "fps --show|--hide: FPS and memory counter", func(v bool) { d.ShowFPS = v })
	reg.Toggle("panel", "panel --show|--hide: parameter panel", func(v bool) { d.ShowParams = v })
}

// Draw renders enabled overlays. Call after the 3D scene.
func (d *Debug) Draw(s Snapshot) {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0 || d.fpsText == ""

	if d.ShowFPS {
		if refresh {
			runtime.ReadMemStats(&d.memStats)
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		screenW := int32(rl.GetScreenWidth())
		y := int32(padding)
		for _, line := range []string{d.fpsText, d.memText} {
			d.text.Draw(line, screenW-d.text.Measure(line, fontSize)-padding, y, fontSize, rl.Green)
			y += lineHeight
		}
	}

	if d.ShowParams && s.Surface != nil && s.Glow != nil {
		if refresh || d.panel == nil {
			d.panel = panelLines(s)
		}
		h := int32(len(d.panel)*lineHeight + padding)
		rl.DrawRectangle(padding/2, padding/2, 300, h, panelBg)
		for i, line := range d.panel {
			d.text.Draw(line, padding, int32(padding+i*lineHeight), fontSize, rl.RayWhite)
		}
	}
}

func panelLines(s Snapshot) []string {
	p := s.Params
	return []string{
		fmt.Sprintf("t %.1f  dt %.3f", s.Frame.Time, s.Frame.Delta),
		fmt.Sprintf("sun phase %.2f  amp %.2f", s.Surface.Time, s.Surface.Amplitude),
		fmt.Sprintf("brightness %.1f  noise %.1f", p.Brightness, p.Noise),
		fmt.Sprintf("rotation %.2f", p.TimeFactor),
		fmt.Sprintf("glow phase %.2f  size %.2f", s.Glow.Time, s.Glow.Scale),
		fmt.Sprintf("spread %.2f  intensity %.2f", p.GlowFactor, p.GlowPower),
		fmt.Sprintf("corona %.1f @ %.2f", p.BumpScale, p.BumpSpeed),
	}
}
