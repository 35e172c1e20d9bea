package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "# comment\n\nSOLAR_TEST_A=\"quoted value\"\nexport SOLAR_TEST_B = plain\nSOLAR_TEST_C=from-file\nnot a pair\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SOLAR_TEST_C", "from-env")
	t.Setenv("SOLAR_TEST_A", "")
	os.Unsetenv("SOLAR_TEST_A")
	t.Setenv("SOLAR_TEST_B", "")
	os.Unsetenv("SOLAR_TEST_B")

	if err := LoadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	tests := map[string]string{
		"SOLAR_TEST_A": "quoted value",
		"SOLAR_TEST_B": "plain",
		"SOLAR_TEST_C": "from-env",
	}
	for k, want := range tests {
		if got := os.Getenv(k); got != want {
			t.Errorf("%s: expected %q, got %q", k, want, got)
		}
	}
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("expected no error for a missing file, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:    "debug",
		EnvFullscreen:  "true",
		EnvTimeScale:   "25",
		EnvRenderScale: "-1",
		EnvFont:        "Inter",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	c, err := ApplyEnv(Default(), lookup)
	if err == nil {
		t.Error("expected an error for the negative render scale")
	}
	if c.Log.Level != "debug" || !c.Window.Fullscreen || c.TimeScale != 25 || c.Font != "Inter" {
		t.Errorf("unexpected overrides %+v", c)
	}
	if c.RenderScale != Default().RenderScale {
		t.Errorf("expected render scale untouched, got %f", c.RenderScale)
	}

	c, err = ApplyEnv(Default(), func(string) (string, bool) { return "", false })
	if err != nil {
		t.Errorf("expected no error without overrides, got %v", err)
	}
}

func TestApplyEnvRejectsNonFiniteScales(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "+Inf", "-Inf", "0"} {
		lookup := func(k string) (string, bool) {
			if k == EnvTimeScale || k == EnvRenderScale {
				return v, true
			}
			return "", false
		}
		c, err := ApplyEnv(Default(), lookup)
		if err == nil {
			t.Errorf("%q: expected an error", v)
		}
		if c.TimeScale != Default().TimeScale || c.RenderScale != Default().RenderScale {
			t.Errorf("%q: expected default scales, got time=%f render=%f", v, c.TimeScale, c.RenderScale)
		}
	}
}

func TestApplyEnvRemote(t *testing.T) {
	tests := []struct {
		value       string
		wantEnabled bool
		wantAddr    string
	}{
		{"true", true, Default().Remote.Addr},
		{"0", false, Default().Remote.Addr},
		{":9000", true, ":9000"},
	}
	for _, tt := range tests {
		lookup := func(k string) (string, bool) {
			if k == EnvRemote {
				return tt.value, true
			}
			return "", false
		}
		c, err := ApplyEnv(Default(), lookup)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tt.value, err)
		}
		if c.Remote.Enabled != tt.wantEnabled || c.Remote.Addr != tt.wantAddr {
			t.Errorf("%q: expected enabled=%v addr=%s, got %+v", tt.value, tt.wantEnabled, tt.wantAddr, c.Remote)
		}
	}
}
