package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/mvnsettings"
	"github.com/randalmurphal/mvnsettings/building"
	"github.com/randalmurphal/mvnsettings/config"
	mverrors "github.com/randalmurphal/mvnsettings/errors"
	"github.com/randalmurphal/mvnsettings/merge"
	"github.com/randalmurphal/mvnsettings/notify"
)

const (
	envPrefix       = "MVNSETTINGS_"
	globalConfigDir = "mvnsettings"
	localConfigName = ".mvnsettings.yaml"
)

// app holds the flags and the per-invocation state shared by subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer

	project        string
	userSettings   string
	globalSettings string
	output         string
	logLevel       string
	configPolicy   string
	webhook        string
	skipProject    bool
	defines        []string

	resolver *config.Resolver
	opts     config.Options
	logger   *slog.Logger
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "mvnsettings",
		Short: "Resolve project-scoped Maven settings",
		Long: `mvnsettings merges a project's .mvn/settings.xml with the user (or global)
Maven settings the same way the build host does, and prints the effective
document.

Options are read from flags, MVNSETTINGS_* environment variables,
.mvnsettings.yaml in the project root and ~/.config/mvnsettings/config.yaml.`,
		Version:       mvnsettings.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.project, "project", "p", "", "project directory (default: nearest directory holding .mvn)")
	flags.StringVarP(&a.userSettings, "settings", "s", "", "user settings file")
	flags.StringVar(&a.globalSettings, "global-settings", "", "global settings file")
	flags.StringVarP(&a.output, "output", "o", "", "output format: xml or yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.configPolicy, "config-policy", "", "server configuration merge: prefer-dominant, prefer-recessive or keep-dominant")
	flags.StringVar(&a.webhook, "webhook", "", "URL receiving resolution events as JSON")
	flags.BoolVar(&a.skipProject, "skip-project", false, "ignore project settings")
	flags.StringArrayVarP(&a.defines, "define", "D", nil, "user property key=value")

	rootCmd.AddCommand(
		newResolveCommand(a),
		newValidateCommand(a),
		newMergeCommand(a),
		newWatchCommand(a),
		newConfigCommand(a),
		newVersionCommand(a),
	)

	return rootCmd
}

// load resolves the layered configuration and sets up logging.
func (a *app) load() error {
	if a.output != "" {
		switch strings.ToLower(a.output) {
		case config.OutputXML, config.OutputYAML:
		default:
			return mverrors.NewInvalidOutputError(a.output)
		}
	}

	home, _ := os.UserHomeDir()
	start := a.project
	if start == "" {
		start = "."
	}
	a.resolver = config.NewResolver(config.ResolverConfig{
		EnvPrefix:       envPrefix,
		GlobalConfigDir: globalConfigDir,
		LocalConfigName: localConfigName,
		Defaults:        config.Defaults(home),
		ValidKeys:       config.Keys,
		StartDir:        start,
		ErrWriter:       a.errOut,
	})

	resolved := a.resolver.ResolveWithFlags(map[string]string{
		config.KeyUserSettings:   a.userSettings,
		config.KeyGlobalSettings: a.globalSettings,
		config.KeyOutput:         a.output,
		config.KeyLogLevel:       a.logLevel,
		config.KeyConfigPolicy:   a.configPolicy,
	})
	opts, err := resolved.Options()
	if err != nil {
		return err
	}
	a.opts = opts

	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: opts.LogLevel}))
	return nil
}

// projectDir returns the project root: the --project flag, else the root
// found while resolving configuration.
func (a *app) projectDir() (string, error) {
	if a.project != "" {
		abs, err := filepath.Abs(a.project)
		if err != nil {
			return "", err
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			return "", mverrors.NewNoProjectError()
		}
		return abs, nil
	}
	if root := a.resolver.ProjectRoot(); root != "" {
		return root, nil
	}
	return "", mverrors.NewNoProjectError()
}

// request builds the settings building request for project.
func (a *app) request(project string) *building.Request {
	home, _ := os.UserHomeDir()
	req := &building.Request{
		UserProperties: building.Properties{},
		SystemProperties: building.Properties{
			building.UserHomeProperty:   home,
			building.ProjectDirProperty: project,
		},
	}
	for _, d := range a.defines {
		key, value, ok := strings.Cut(d, "=")
		if !ok {
			value = "true"
		}
		req.UserProperties[key] = value
	}
	if a.skipProject {
		req.UserProperties[building.SkipProperty] = "true"
	}
	if a.opts.UserSettings != "" {
		req.User.SetFile(a.opts.UserSettings)
	}
	if a.opts.GlobalSettings != "" {
		req.Global.SetFile(a.opts.GlobalSettings)
	}
	return req
}

func (a *app) merger() *merge.Merger {
	return &merge.Merger{ConfigPolicy: a.opts.ConfigPolicy}
}

func (a *app) notifier() notify.Notifier {
	multi := notify.NewMultiNotifier(notify.NewLogNotifier(a.logger))
	if a.webhook != "" {
		multi.Add(&webhookNotifier{
			WebhookNotifier: notify.NewWebhookNotifier(a.webhook, nil),
		})
	}
	return multi
}

func (a *app) injector() *building.Injector {
	return building.NewInjector(
		building.WithMerger(a.merger()),
		building.WithLogger(a.logger),
		building.WithNotifier(a.notifier()),
	)
}

// webhookNotifier turns transport failures into CLI connection errors.
type webhookNotifier struct {
	*notify.WebhookNotifier
}

func (n *webhookNotifier) Notify(ctx context.Context, event notify.Event) error {
	return mverrors.WrapConnectionError(n.WebhookNotifier.Notify(ctx, event), n.URL)
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(a.out, "mvnsettings %s\n", mvnsettings.Version)
			return err
		},
	}
}
