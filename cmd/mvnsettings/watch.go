package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/mvnsettings/problem"
	"github.com/randalmurphal/mvnsettings/watch"
)

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve whenever a settings file changes",
		Long: `Watch resolves the project once, then again each time the project, user
or global settings file changes, printing one summary line per resolution.
It stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := a.projectDir()
			if err != nil {
				return err
			}

			notifier := a.notifier()
			resolve := func(ctx context.Context, changed string) error {
				return a.resolveOnce(ctx, project, changed)
			}
			if err := resolve(cmd.Context(), ""); err != nil {
				a.logger.Warn("initial resolution failed", "error", err)
			}

			w := watch.New(resolve,
				[]string{projectSettingsFile(project), a.opts.UserSettings, a.opts.GlobalSettings},
				watch.WithLogger(a.logger),
				watch.WithNotifier(notifier),
			)
			return w.Run(cmd.Context())
		},
	}
}

// resolveOnce runs one resolution for watch and prints its summary.
func (a *app) resolveOnce(ctx context.Context, project, changed string) error {
	h, err := a.injector().Resolve(ctx, a.request(project))
	if err != nil {
		var be *problem.BuildingError
		if errors.As(err, &be) {
			printProblems(a.errOut, be.Problems)
			fmt.Fprintf(a.out, "failed: %d problem(s)\n", len(be.Problems))
		}
		return err
	}
	printProblems(a.errOut, h.AttachDiagnostics(nil))

	if !h.Injected() {
		_, err = fmt.Fprintf(a.out, "unchanged: no project settings\n")
		return err
	}
	prefix := "resolved"
	if changed != "" {
		prefix = "re-resolved after " + changed
	}
	_, err = fmt.Fprintf(a.out, "%s: bound to %s as %s (%d warning(s))\n",
		prefix, h.Binding, h.Result.Location(), len(h.Warnings()))
	return err
}
