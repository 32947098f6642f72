package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/mvnsettings/building"
	mverrors "github.com/randalmurphal/mvnsettings/errors"
	"github.com/randalmurphal/mvnsettings/problem"
	"github.com/randalmurphal/mvnsettings/settings"
	"github.com/randalmurphal/mvnsettings/source"
)

func newMergeCommand(a *app) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "merge <dominant> <recessive>",
		Short: "Merge two settings files as project over user settings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lvl settings.SourceLevel
			switch level {
			case "user":
				lvl = settings.LevelUser
			case "global":
				lvl = settings.LevelGlobal
			default:
				return fmt.Errorf("invalid level %q: must be user or global", level)
			}

			var problems problem.List
			docs := make([]*settings.Settings, len(args))
			for i, path := range args {
				if err := checkFile(path); err != nil {
					return err
				}
				docs[i] = building.Read(source.NewFile(path), &problems)
			}
			printProblems(a.errOut, problems.Problems())
			if problems.HasErrors() {
				return mverrors.WrapBuildingError(&problem.BuildingError{Problems: problems.Problems()})
			}

			return render(a.out, a.merger().Merge(docs[0], docs[1], lvl), a.opts.Output)
		},
	}

	cmd.Flags().StringVar(&level, "level", "user", "scope of the recessive file: user or global")
	return cmd
}

// checkFile reports a missing or unreadable settings file as a CLI error.
func checkFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return mverrors.WrapFileError(err, path)
	}
	return f.Close()
}

func projectSettingsFile(project string) string {
	return filepath.Join(project, filepath.FromSlash(building.ProjectSettingsPath))
}
