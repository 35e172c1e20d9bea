package main

import (
	"context"
	"fmt"
	"os"

	"solar-system/internal/assets"
	"solar-system/internal/commands"
	"solar-system/internal/config"
	"solar-system/internal/debug"
	"solar-system/internal/fonts"
	"solar-system/internal/graphics"
	"solar-system/internal/logger"
	"solar-system/internal/params"
	"solar-system/internal/primitives"
	"solar-system/internal/remote"
	"solar-system/internal/render"
	"solar-system/internal/sim"
	"solar-system/internal/terminal"
)

func main() {
	cfg, cfgErr := config.Load(config.Path)
	envErr := config.LoadEnvFile(config.EnvPath)
	cfg, overrideErr := config.ApplyEnv(cfg, os.LookupEnv)
	log := logger.New(cfg.Log.Path, logger.ParseLevel(cfg.Log.Level))
	for _, err := range []error{cfgErr, envErr, overrideErr} {
		if err != nil {
			log.Warnf("config: %v", err)
		}
	}

	store := params.NewStore(cfg.Params)
	reg := commands.NewRegistry()
	params.RegisterCommands(reg, store, log)
	registerSave(reg, cfg, store, log)
	registerFetch(reg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Remote.Enabled {
		go func() {
			if err := remote.New(store, log).Run(ctx, cfg.Remote.Addr); err != nil {
				log.Errorf("%v", err)
			}
		}()
	}

	text := &graphics.Text{}
	term := terminal.New(log, reg, text)
	dbg := debug.New(cfg.Overlays.FPS, cfg.Overlays.Params, text)
	dbg.RegisterCommands(reg)

	meshes := primitives.NewRegistry()
	renderer := render.New(cfg.RenderScale, log)
	var (
		s        *sim.Sim
		textures *primitives.Textures
	)

	err := graphics.Run(graphics.Window{
		Title:      "Solar System",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
	}, graphics.Loop{
		Setup: func() error {
			if path, ok := fonts.Find(fonts.Dirs, cfg.Font); ok && text.LoadFont(path) {
				log.Debugf("overlay font %s", path)
			}
			textures = primitives.NewTextures(assets.New(), log)
			var err error
			s, err = sim.New(sim.Context{}, cfg, meshes, textures, store, log)
			if err != nil {
				return err
			}
			s.RegisterCommands(reg)
			log.Infof(`press ESC for the console, "help" lists commands`)
			return nil
		},
		Update: func() {
			term.Update()
			if !term.IsOpen() {
				renderer.ControlCamera(s.Camera())
			}
			s.Step()
		},
		Draw: func() {
			renderer.Draw(s.Scene(), s.Camera(), s.Surface(), s.Glow())
			dbg.Draw(debug.Snapshot{Frame: s.Frame(), Params: s.Params(), Surface: s.Surface(), Glow: s.Glow()})
			term.Draw()
		},
		Resize: func(w, h int) { s.Resize(w, h) },
		Teardown: func() {
			text.Unload()
			renderer.Unload()
			textures.Unload()
			meshes.Unload()
		},
	})
	if err != nil {
		log.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// registerSave adds "cmd save": writes the startup config with the live parameters.
func registerSave(reg *commands.Registry, cfg config.Config, store *params.Store, log *logger.Logger) {
	fs := commands.NewFlagSet("save")
	reg.Register("save", "save: write current parameters to "+config.Path, fs, func() error {
		out := cfg.Clone()
		out.Params = store.Snapshot()
		if err := config.Save(config.Path, out); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		log.Infof("saved %s", config.Path)
		return nil
	})
}

// registerFetch adds "cmd fetch". The download runs in the background and is picked up on
// the next start.
func registerFetch(reg *commands.Registry, log *logger.Logger) {
	assets.RegisterFetch(reg, func(name, url, dir string) {
		go func() {
			path, err := assets.Fetch(context.Background(), nil, name, url, dir)
			if err != nil {
				log.Errorf("%v", err)
				return
			}
			log.Infof("saved %s; restart to apply", path)
		}()
	})
}
