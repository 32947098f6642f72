package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/mvnsettings/config"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change mvnsettings options",
	}

	save := func() config.SaveConfig {
		return config.SaveConfig{
			GlobalConfigDir: globalConfigDir,
			LocalConfigName: localConfigName,
			ValidKeys:       config.Keys,
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every option with its source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved := a.resolver.Resolve()
			for _, key := range config.Keys {
				value, src := resolved.GetWithSource(key)
				if src == "" {
					src = "unset"
				}
				fmt.Fprintf(a.out, "%s=%s (%s)\n", key, value, src)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.out, a.resolver.Resolve().Get(args[0]))
			return err
		},
	})

	var local bool
	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save an option to the global (or --local project) config",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return save().SaveLocal(a.resolver.ProjectRoot(), args[0], args[1])
			}
			return save().SaveGlobal(args[0], args[1])
		},
	}
	set.Flags().BoolVar(&local, "local", false, "write .mvnsettings.yaml in the project root")
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "unset <key>",
		Short: "Remove an option from the global config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return save().DeleteGlobalKey(args[0])
		},
	})

	return cmd
}
