package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window configures the window opened by Run.
type Window struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Loop is the per-frame callbacks. Setup runs once after the window (and GL context) exists;
// an error aborts before the first frame. Resize runs once with the initial size and again
// whenever the window is resized. Any callback may be nil.
type Loop struct {
	Setup  func() error
	Update func()
	Draw   func()
	Resize func(w, h int)
	// Teardown runs before the window closes, while GPU resources can still be freed.
	Teardown func()
}

// Run opens the window and drives the loop until the window is closed.
// ESC toggles the console, so the window closes only via its close button.
func Run(win Window, loop Loop) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	w, h := win.Width, win.Height
	rl.InitWindow(int32(w), int32(h), win.Title)
	defer rl.CloseWindow()
	if win.Fullscreen {
		w, h = rl.GetMonitorWidth(rl.GetCurrentMonitor()), rl.GetMonitorHeight(rl.GetCurrentMonitor())
		rl.SetWindowSize(w, h)
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(win.TargetFPS))

	if loop.Setup != nil {
		if err := loop.Setup(); err != nil {
			return err
		}
	}
	if loop.Teardown != nil {
		defer loop.Teardown()
	}
	if loop.Resize != nil {
		loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && loop.Resize != nil {
			loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		if loop.Update != nil {
			loop.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if loop.Draw != nil {
			loop.Draw()
		}
		rl.EndDrawing()
	}
	return nil
}
