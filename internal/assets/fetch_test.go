package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/earth.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("jpeg-bytes"))
		case "/page":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	path, err := Fetch(context.Background(), srv.Client(), "earth", srv.URL+"/earth.jpg", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "earthmap1k.jpg") {
		t.Errorf("expected catalogue file name, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "jpeg-bytes" {
		t.Errorf("expected saved body, got %q (%v)", data, err)
	}
	if got, err := New(dir).Resolve("earth"); err != nil || got != path {
		t.Errorf("expected Resolve to find %s, got %s (%v)", path, got, err)
	}

	tests := []struct {
		name, texture, path string
	}{
		{"not found", "mars", "/missing.jpg"},
		{"not an image", "mars", "/page"},
		{"unknown texture", "vulcan", "/earth.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Fetch(context.Background(), srv.Client(), tt.texture, srv.URL+tt.path, dir); err == nil {
				t.Error("expected an error")
			}
		})
	}
	if _, err := os.Stat(filepath.Join(dir, "mars_1k_color.jpg")); !os.IsNotExist(err) {
		t.Error("expected no file left behind for failed fetches")
	}
}
