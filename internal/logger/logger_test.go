package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoggerWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "solar.txt")
	l := New(path, LevelInfo)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Log("cmd set amplitude 12")
	l.Warnf("unknown key %q", "foo")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "[2026-01-02 03:04:05] cmd set amplitude 12" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARN unknown key \"foo\"") {
		t.Errorf("unexpected second line %q", lines[1])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("expected 2 lines on disk, got %d", got)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l := Memory(LevelWarn)
	l.Debugf("hidden")
	l.Infof("hidden")
	l.Errorf("shown")
	if got := len(l.Lines()); got != 1 {
		t.Errorf("expected 1 line, got %d", got)
	}
	l.SetLevel(LevelDebug)
	l.Debugf("now shown")
	if got := len(l.Lines()); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}

func TestLoggerCapsHistory(t *testing.T) {
	l := Memory(LevelDebug)
	for i := 0; i < maxLines+20; i++ {
		l.Debugf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("expected %d lines, got %d", maxLines, len(lines))
	}
	if !strings.HasSuffix(lines[len(lines)-1], "line 519") {
		t.Errorf("expected newest line last, got %q", lines[len(lines)-1])
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, "error": LevelError, "bogus": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}
