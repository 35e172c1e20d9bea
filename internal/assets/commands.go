package assets

import (
	"fmt"

	"solar-system/internal/commands"
)

// RegisterFetch adds "cmd fetch [--dir d] <texture> <url>". start receives the validated
// request; the app runs Fetch from it in the background. --dir applies to one call only.
func RegisterFetch(reg *commands.Registry, start func(name, url, dir string)) {
	fs := commands.NewFlagSet("fetch")
	dir := fs.String("dir", SearchDirs[0], "destination directory")
	reg.Register("fetch", "fetch [--dir d] <texture> <url>: download a texture", fs, func() error {
		defer func() { *dir = SearchDirs[0] }()
		args := fs.Args()
		if len(args) != 2 {
			return fmt.Errorf("fetch: expected <texture> <url>")
		}
		if _, ok := Files[args[0]]; !ok {
			return fmt.Errorf("fetch: unknown texture %q", args[0])
		}
		start(args[0], args[1], *dir)
		return nil
	})
}
