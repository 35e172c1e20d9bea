package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontLoadSize = 32

// Text draws overlay strings with a loaded font, or with raylib's default font when none
// is set. The zero value is ready to use.
type Text struct {
	font rl.Font
}

// LoadFont loads the TTF/OTF at path. It must be called after the window exists.
func (t *Text) LoadFont(path string) bool {
	f := rl.LoadFontEx(path, fontLoadSize, nil)
	if !rl.IsFontValid(f) {
		return false
	}
	t.Unload()
	t.font = f
	return true
}

// Unload releases the loaded font, if any.
func (t *Text) Unload() {
	if t.font.Texture.ID != 0 {
		rl.UnloadFont(t.font)
		t.font = rl.Font{}
	}
}

// Draw draws s with its top-left corner at x, y.
func (t *Text) Draw(s string, x, y, size int32, c color.RGBA) {
	if t == nil || t.font.Texture.ID == 0 {
		rl.DrawText(s, x, y, size, c)
		return
	}
	rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
}

// Measure returns the width of s in pixels.
func (t *Text) Measure(s string, size int32) int32 {
	if t == nil || t.font.Texture.ID == 0 {
		return rl.MeasureText(s, size)
	}
	return int32(rl.MeasureTextEx(t.font, s, float32(size), 1).X)
}
