// Package config loads the app configuration from config/solar.yaml.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"solar-system/internal/clock"
	"solar-system/internal/logger"
	"solar-system/internal/orbit"
	"solar-system/internal/params"
	"solar-system/internal/remote"
)

// Path is the config file location, relative to the process working directory.
const Path = "config/solar.yaml"

// Window holds window preferences.
type Window struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	TargetFPS  int  `yaml:"target_fps"`
}

// Overlays are the toggles for on-screen helpers.
type Overlays struct {
	FPS    bool `yaml:"fps"`
	Params bool `yaml:"params"`
	Guides bool `yaml:"guides"`
	Stars  bool `yaml:"stars"`
}

// Remote configures the websocket parameter server. It only starts when Enabled is set.
type Remote struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Config is the whole configuration. Keys absent from the file keep their defaults.
type Config struct {
	Window Window `yaml:"window"`
	// TimeScale is scene time units per real second.
	TimeScale float64 `yaml:"time_scale"`
	// RenderScale converts scene units to renderer units.
	RenderScale float64 `yaml:"render_scale"`
	StarSeed    uint64  `yaml:"star_seed"`
	// Font is the overlay font family searched under assets/fonts; empty picks any.
	Font     string           `yaml:"font"`
	Log      Log              `yaml:"log"`
	Overlays Overlays         `yaml:"overlays"`
	Remote   Remote           `yaml:"remote"`
	System   orbit.SystemSpec `yaml:"system"`
	Params   params.Params    `yaml:"params"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:      Window{Width: 1280, Height: 720, TargetFPS: 60},
		TimeScale:   clock.DefaultUnitsPerSecond,
		RenderScale: 0.01,
		StarSeed:    1,
		Log:         Log{Level: logger.LevelInfo.String(), Path: logger.DefaultPath},
		Overlays:    Overlays{FPS: true, Params: true, Guides: true, Stars: true},
		Remote:      Remote{Addr: remote.DefaultAddr},
		System:      orbit.DefaultSystemSpec(),
		Params:      params.Defaults(),
	}
}

// Normalize replaces out-of-range values with defaults and clamps the parameters.
func (c Config) Normalize() Config {
	def := Default()
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Window.TargetFPS <= 0 {
		c.Window.TargetFPS = def.Window.TargetFPS
	}
	if !positive(c.TimeScale) {
		c.TimeScale = def.TimeScale
	}
	if !positive(c.RenderScale) {
		c.RenderScale = def.RenderScale
	}
	if c.Remote.Addr == "" {
		c.Remote.Addr = def.Remote.Addr
	}
	if c.System.SunSize <= 0 {
		c.System.SunSize = def.System.SunSize
	}
	if c.System.EarthSize <= 0 {
		c.System.EarthSize = def.System.EarthSize
	}
	if len(c.System.Orbits) == 0 {
		c.System.Orbits = def.System.Orbits
	}
	if len(c.System.Bodies) == 0 {
		c.System.Bodies = def.System.Bodies
	}
	c.Params = c.Params.Sanitize()
	return c
}

// Clone returns a deep copy of c. The system spec holds slices and pointers that would
// otherwise be shared between copies.
func (c Config) Clone() Config {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		return c
	}
	return out
}

// positive reports whether f is a usable scale: finite and above zero.
func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// Load reads path over the defaults. A missing file yields the defaults and no error;
// an unreadable or invalid file yields the defaults and the error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return c.Normalize(), nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
