package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fetchTimeout = 60 * time.Second

// Fetch downloads url into dir under the catalogue file name for name, so the next Resolve
// finds it. The body must be an image. Returns the saved path.
func Fetch(ctx context.Context, client *http.Client, name, url, dir string) (string, error) {
	file, ok := Files[name]
	if !ok {
		return "", fmt.Errorf("fetch: unknown texture %q", name)
	}
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP %d", name, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(strings.ToLower(ct), "image/") {
		return "", fmt.Errorf("fetch %s: unexpected content type %q", name, ct)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	path := filepath.Join(dir, file)
	tmp := path + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	return path, nil
}
