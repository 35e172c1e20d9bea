package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	if err := os.WriteFile(filepath.Join(second, "earthmap1k.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(first, "saturnmap.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(second, "saturnmap.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	c := New(first, second)

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"earth", filepath.Join(second, "earthmap1k.jpg"), false},
		{"saturn", filepath.Join(first, "saturnmap.jpg"), false},
		{"pluto", "", true},
		{"vulcan", "", true},
	}
	for _, tt := range tests {
		got, err := c.Resolve(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: expected error %v, got %v", tt.name, tt.wantErr, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestCatalogueCoversSystem(t *testing.T) {
	for _, n := range []string{"mercury", "venus", "earth", "mars", "jupiter", "saturn", "uranus",
		"neptune", "pluto", "saturnRings", "uranusRings", "sun"} {
		if _, ok := Files[n]; !ok {
			t.Errorf("expected catalogue entry for %s", n)
		}
	}
	if len(Names()) != len(Files) {
		t.Errorf("expected %d names, got %d", len(Files), len(Names()))
	}
}
