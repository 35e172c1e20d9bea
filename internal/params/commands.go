package params

import (
	"fmt"
	"strconv"

	"solar-system/internal/commands"
	"solar-system/internal/logger"
)

// RegisterCommands adds the parameter console commands:
//
//	cmd set <key> <value>
//	cmd get <key>
//	cmd params
//	cmd reset [key]
func RegisterCommands(reg *commands.Registry, store *Store, log *logger.Logger) {
	setFS := commands.NewFlagSet("set")
	reg.Register("set", "set <key> <value>: change a sun or glow parameter", setFS, func() error {
		args := setFS.Args()
		if len(args) != 2 {
			return fmt.Errorf("set: expected <key> <value>")
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("set %s: %w", args[0], err)
		}
		applied, err := store.Set(args[0], v)
		if err != nil {
			return err
		}
		log.Infof("%s = %g", args[0], applied)
		return nil
	})

	getFS := commands.NewFlagSet("get")
	reg.Register("get", "get <key>: print a parameter", getFS, func() error {
		args := getFS.Args()
		if len(args) != 1 {
			return fmt.Errorf("get: expected <key>")
		}
		v, err := store.Get(args[0])
		if err != nil {
			return err
		}
		log.Infof("%s = %g", args[0], v)
		return nil
	})

	listFS := commands.NewFlagSet("params")
	reg.Register("params", "list every parameter with its range", listFS, func() error {
		snap := store.Snapshot()
		for _, r := range ranges {
			v, _ := snap.Get(r.Key)
			log.Infof("%s (%s) = %g [%g, %g]", r.Key, r.Label, v, r.Min, r.Max)
		}
		return nil
	})

	resetFS := commands.NewFlagSet("reset")
	reg.Register("reset", "reset [key]: restore defaults", resetFS, func() error {
		args := resetFS.Args()
		switch len(args) {
		case 0:
			_ = store.Reset("")
			log.Infof("parameters reset")
			return nil
		case 1:
			if err := store.Reset(args[0]); err != nil {
				return err
			}
			log.Infof("%s reset", args[0])
			return nil
		default:
			return fmt.Errorf("reset: expected at most one key")
		}
	})
}
