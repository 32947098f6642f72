package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/mvnsettings/building"
	mverrors "github.com/randalmurphal/mvnsettings/errors"
	"github.com/randalmurphal/mvnsettings/problem"
	"github.com/randalmurphal/mvnsettings/settings"
	"github.com/randalmurphal/mvnsettings/source"
)

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the effective settings of a project",
		Long: `Resolve merges the project's .mvn/settings.xml with the user settings, or
with the global settings when there are no user settings, and prints the
effective document. Without project settings the user (or global) document
is printed as the build would read it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := a.projectDir()
			if err != nil {
				return err
			}

			req := a.request(project)
			h, err := a.injector().Resolve(cmd.Context(), req)
			if err != nil {
				var be *problem.BuildingError
				if errors.As(err, &be) {
					printProblems(a.errOut, be.Problems)
				}
				return mverrors.WrapBuildingError(err)
			}
			printProblems(a.errOut, h.AttachDiagnostics(nil))

			doc := h.Merged
			if !h.Injected() {
				if doc, err = a.hostDocument(req); err != nil {
					return err
				}
			}
			return render(a.out, doc, a.opts.Output)
		},
	}
}

// hostDocument reads the document the host uses when nothing was injected:
// the user settings, else the global settings, else an empty document.
func (a *app) hostDocument(req *building.Request) (*settings.Settings, error) {
	var src source.Source
	switch {
	case req.User.File() != "" && source.Exists(req.User.File()):
		src = source.NewFile(req.User.File())
	case req.Global.File() != "" && source.Exists(req.Global.File()):
		src = source.NewFile(req.Global.File())
	default:
		return settings.New(), nil
	}

	var problems problem.List
	doc := building.Read(src, &problems)
	printProblems(a.errOut, problems.Problems())
	if problems.HasErrors() {
		return nil, mverrors.WrapBuildingError(&problem.BuildingError{Problems: problems.Problems()})
	}
	a.logger.Debug("no project settings injected", "source", src.Location())
	return doc, nil
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check settings files for problems",
		Long: `Validate reads each file the way resolution does, strictly first and then
leniently, and reports every problem. Without arguments the project's
.mvn/settings.xml is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				project, err := a.projectDir()
				if err != nil {
					return err
				}
				files = []string{projectSettingsFile(project)}
			}

			var problems problem.List
			for _, path := range files {
				if err := checkFile(path); err != nil {
					return err
				}
				building.Read(source.NewFile(path), &problems)
			}

			printProblems(a.errOut, problems.Problems())
			if problems.HasErrors() {
				return mverrors.WrapBuildingError(&problem.BuildingError{Problems: problems.Problems()})
			}
			_, err := fmt.Fprintf(a.out, "%d file(s) valid, %d warning(s)\n", len(files), problems.Len())
			return err
		},
	}
}
