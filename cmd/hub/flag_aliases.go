package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// The due-date flags are just --date and --time, but the longer names come up
// often enough to accept as aliases.
var scheduleFlagAliases = map[string]string{
	"due-date": "date",
	"due-time": "time",
}

func addScheduleFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), scheduleFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
