package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/commands"
	"solar-system/internal/graphics"
	"solar-system/internal/logger"
)

const (
	barHeight        = 36
	prompt           = "> "
	fontSize         = 18
	padding          = 8
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineChars     = 160
	maxHistory       = 50
)

var (
	barColor  = rl.NewColor(20, 24, 32, 235)
	edgeColor = rl.NewColor(70, 90, 120, 255)
	logBg     = rl.NewColor(10, 12, 18, 220)
)

// Terminal is the console overlay, toggled with ESC. Lines starting with "cmd " run through
// the command registry; "help" lists the commands. Up/Down walk the input history.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	history  []string
	cursor   int
	text     *graphics.Text
}

// New returns a closed console. text may be nil (raylib default font).
func New(log *logger.Logger, reg *commands.Registry, text *graphics.Text) *Terminal {
	return &Terminal{log: log, reg: reg, text: text}
}

// IsOpen reports whether the console is capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC and, while open, typing, history and Enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		t.inputBuf += string(rune(c))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) && t.cursor > 0 {
		t.cursor--
		t.inputBuf = t.history[t.cursor]
	}
	if rl.IsKeyPressed(rl.KeyDown) && t.cursor < len(t.history) {
		t.cursor++
		t.inputBuf = ""
		if t.cursor < len(t.history) {
			t.inputBuf = t.history[t.cursor]
		}
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		t.Submit(t.inputBuf)
		t.inputBuf = ""
	}
}

// Submit echoes line and runs it.
func (t *Terminal) Submit(line string) {
	t.log.Log(line)
	t.history = append(t.history, line)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
	t.cursor = len(t.history)

	if line == "help" {
		for _, h := range t.reg.Help() {
			t.log.Log("cmd " + h)
		}
		return
	}
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`unknown input, try "help"`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Errorf("%v", err)
	}
}

// Draw draws the log above the input bar at the bottom of the screen while open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - barHeight

	logH := int32(maxLinesOnScreen * lineHeight)
	logY := barY - logH
	if logY < 0 {
		logY, logH = 0, barY
	}
	rl.DrawRectangle(0, logY, screenW, logH, logBg)

	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		y := logY + int32((i-start)*lineHeight) + padding/2
		t.text.Draw(line, padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, barHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, edgeColor)
	t.text.Draw(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.RayWhite)
}
