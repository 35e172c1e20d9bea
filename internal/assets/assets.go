// Package assets maps texture names to image files and finds them on disk.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Files maps catalogue names to file names under an asset directory.
var Files = map[string]string{
	"sun":         "sunTexture.jpg",
	"sunmap":      "sunmap.jpg",
	"mercury":     "mercurymap.jpg",
	"venus":       "venusmap.jpg",
	"earth":       "earthmap1k.jpg",
	"mars":        "mars_1k_color.jpg",
	"jupiter":     "jupitermap.jpg",
	"saturn":      "saturnmap.jpg",
	"uranus":      "uranusmap.jpg",
	"neptune":     "neptunemap.jpg",
	"pluto":       "plutomap1k.jpg",
	"saturnRings": "saturnringcolor.jpg",
	"uranusRings": "uranusringtrans.gif",
}

// SearchDirs are tried in order so assets are found whether run from the repo root or cmd/solar.
var SearchDirs = []string{
	"assets",
	"../../assets",
}

// Names returns the catalogue names sorted.
func Names() []string {
	out := make([]string, 0, len(Files))
	for n := range Files {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Catalogue resolves names against a list of directories.
type Catalogue struct {
	dirs []string
	stat func(string) (os.FileInfo, error)
}

// New returns a catalogue searching dirs, or SearchDirs when dirs is empty.
func New(dirs ...string) *Catalogue {
	if len(dirs) == 0 {
		dirs = SearchDirs
	}
	return &Catalogue{dirs: dirs, stat: os.Stat}
}

// Resolve returns the first existing path for name.
func (c *Catalogue) Resolve(name string) (string, error) {
	file, ok := Files[name]
	if !ok {
		return "", fmt.Errorf("unknown texture %q", name)
	}
	for _, dir := range c.dirs {
		p := filepath.Clean(filepath.Join(dir, file))
		if _, err := c.stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("texture %q: %s not found in %v", name, file, c.dirs)
}
