// Package fonts finds a TTF/OTF file for the overlays under assets/fonts.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the font file extensions considered.
var Exts = []string{".ttf", ".otf"}

// Dirs are tried in order so fonts are found whether run from the repo root or cmd/solar.
var Dirs = []string{"assets/fonts", "../../assets/fonts"}

// Scan returns the font files under dir, relative to dir with forward slashes, sorted.
// A missing dir yields no files and no error.
func Scan(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find returns the full path of the best font in dirs matching family ("Inter",
// "Google Sans"). An empty family matches any font. Among matches a "Regular" face wins.
func Find(dirs []string, family string) (string, bool) {
	want := normalize(family)
	var first string
	for _, dir := range dirs {
		list, err := Scan(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if !strings.Contains(normalize(rel), want) {
				continue
			}
			full := filepath.Join(dir, rel)
			if strings.Contains(strings.ToLower(rel), "regular") {
				return full, true
			}
			if first == "" {
				first = full
			}
		}
	}
	return first, first != ""
}
