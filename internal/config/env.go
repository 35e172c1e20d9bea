package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPath is the optional dotenv file read before applying environment overrides.
const EnvPath = ".env"

// Environment variables that override file values.
const (
	EnvLogLevel    = "SOLAR_LOG_LEVEL"
	EnvFullscreen  = "SOLAR_FULLSCREEN"
	EnvTimeScale   = "SOLAR_TIME_SCALE"
	EnvRenderScale = "SOLAR_RENDER_SCALE"
	EnvFont        = "SOLAR_FONT"
	EnvRemote      = "SOLAR_REMOTE"
)

// LoadEnvFile sets an environment variable for each KEY=VALUE line of path. Blank lines and
// # comments are skipped, surrounding quotes are removed and variables already set win.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		if !ok || key == "" {
			continue
		}
		value = unquote(strings.TrimSpace(value))
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}

// ApplyEnv overrides c from lookup (os.LookupEnv in the app). Malformed values are skipped
// and reported together in the returned error.
func ApplyEnv(c Config, lookup func(string) (string, bool)) (Config, error) {
	var bad []string
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvFont); ok {
		c.Font = v
	}
	if v, ok := lookup(EnvRemote); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Remote.Enabled = b
		} else if v != "" {
			c.Remote.Enabled, c.Remote.Addr = true, v
		}
	}
	if v, ok := lookup(EnvFullscreen); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Window.Fullscreen = b
		} else {
			bad = append(bad, EnvFullscreen)
		}
	}
	for key, dst := range map[string]*float64{EnvTimeScale: &c.TimeScale, EnvRenderScale: &c.RenderScale} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || !positive(f) {
			bad = append(bad, key)
			continue
		}
		*dst = f
	}
	if len(bad) > 0 {
		return c, fmt.Errorf("ignored malformed environment overrides: %s", strings.Join(bad, ", "))
	}
	return c, nil
}
