package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/mvnsettings/dom"
)

// Configuration keys understood by the mvnsettings CLI.
const (
	KeyUserSettings   = "user_settings"
	KeyGlobalSettings = "global_settings"
	KeyOutput         = "output"
	KeyLogLevel       = "log_level"
	KeyConfigPolicy   = "config_policy"
)

// Keys lists every configuration key.
var Keys = []string{KeyUserSettings, KeyGlobalSettings, KeyOutput, KeyLogLevel, KeyConfigPolicy}

// Output formats.
const (
	OutputXML  = "xml"
	OutputYAML = "yaml"
)

// ErrInvalidValue is wrapped by Options for values that cannot be parsed.
var ErrInvalidValue = errors.New("invalid configuration value")

// Defaults returns the built-in values. The user settings default below
// home; the global settings default below $MAVEN_HOME when it is set.
func Defaults(home string) map[string]string {
	d := map[string]string{
		KeyOutput:       OutputXML,
		KeyLogLevel:     "info",
		KeyConfigPolicy: dom.PreferDominant.String(),
	}
	if home != "" {
		d[KeyUserSettings] = filepath.Join(home, ".m2", "settings.xml")
	}
	if mavenHome := os.Getenv("MAVEN_HOME"); mavenHome != "" {
		d[KeyGlobalSettings] = filepath.Join(mavenHome, "conf", "settings.xml")
	}
	return d
}

// ResolverConfig configures the hierarchical config resolver.
type ResolverConfig struct {
	// EnvPrefix is prepended to key names for environment variable lookup.
	// With EnvPrefix "MVNSETTINGS_", key "log_level" maps to
	// MVNSETTINGS_LOG_LEVEL.
	EnvPrefix string

	// GlobalConfigDir is the name of the directory under ~/.config/
	// where the global config is stored.
	GlobalConfigDir string

	// GlobalConfigFile is the filename for global config.
	// Defaults to "config.yaml" if empty.
	GlobalConfigFile string

	// LocalConfigName is the filename for local config in the project root.
	LocalConfigName string

	// Defaults provides the default values for configuration keys.
	Defaults map[string]string

	// ValidKeys lists keys accepted from config files.
	// If nil, all keys are valid.
	ValidKeys []string

	// StartDir is where the project root search begins. Defaults to ".".
	StartDir string

	// ProjectRootFinder finds the project root directory.
	// If nil, the nearest ancestor holding a .mvn directory is used.
	ProjectRootFinder func(startDir string) (string, error)

	// ErrWriter is where warnings are written.
	// Defaults to os.Stderr if nil.
	ErrWriter io.Writer
}

func (c ResolverConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

// Resolver handles hierarchical configuration resolution.
type Resolver struct {
	config      ResolverConfig
	globalPath  string
	localPath   string
	projectRoot string

	// Warnings collects non-fatal issues during resolution.
	Warnings []string
}

// NewResolver creates a new configuration resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	resolver := &Resolver{
		config: cfg,
	}

	if cfg.ErrWriter == nil {
		resolver.config.ErrWriter = os.Stderr
	}

	start := cfg.StartDir
	if start == "" {
		start = "."
	}
	var root string
	if cfg.ProjectRootFinder != nil {
		root, _ = cfg.ProjectRootFinder(start)
	} else {
		root = FindProjectRoot(start)
	}
	if root != "" {
		resolver.projectRoot = root
		if cfg.LocalConfigName != "" {
			resolver.localPath = filepath.Join(root, cfg.LocalConfigName)
		}
	}

	if cfg.GlobalConfigDir != "" {
		if home, err := os.UserHomeDir(); err == nil {
			resolver.globalPath = filepath.Join(
				home, ".config", cfg.GlobalConfigDir, cfg.globalConfigFile(),
			)
		}
	}

	return resolver
}

// NewResolverWithPaths creates a resolver with explicit global and local paths.
func NewResolverWithPaths(cfg ResolverConfig, globalPath, localPath string) *Resolver {
	resolver := &Resolver{
		config:     cfg,
		globalPath: globalPath,
		localPath:  localPath,
	}
	if localPath != "" {
		resolver.projectRoot = filepath.Dir(localPath)
	}

	if cfg.ErrWriter == nil {
		resolver.config.ErrWriter = os.Stderr
	}

	return resolver
}

func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	if r.config.ErrWriter != nil {
		fmt.Fprintf(r.config.ErrWriter, "Warning: %s\n", msg)
	}
}

// Resolved holds the final merged configuration.
type Resolved struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or empty string if not set.
func (c *Resolved) Get(key string) string {
	return c.values[key]
}

// Source returns the source of a key's value.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// GetWithSource returns both the value and its source.
func (c *Resolved) GetWithSource(key string) (string, Source) {
	return c.values[key], c.sources[key]
}

// All returns a copy of all key-value pairs.
func (c *Resolved) All() map[string]string {
	result := make(map[string]string, len(c.values))
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

// Resolve builds the final config by merging all sources.
// Priority (highest to lowest): env > local > global > defaults.
func (r *Resolver) Resolve() *Resolved {
	cfg := &Resolved{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	r.apply(cfg, r.config.Defaults, SourceDefault)
	r.apply(cfg, r.readFile(r.globalPath), SourceGlobal)
	r.apply(cfg, r.readFile(r.localPath), SourceLocal)
	r.apply(cfg, r.env(cfg), SourceEnv)

	return cfg
}

// ResolveWithFlags resolves config and applies non-empty flag overrides.
func (r *Resolver) ResolveWithFlags(flags map[string]string) *Resolved {
	cfg := r.Resolve()

	set := make(map[string]string, len(flags))
	for key, value := range flags {
		if value != "" {
			set[key] = value
		}
	}
	r.apply(cfg, set, SourceFlag)

	return cfg
}

// apply overlays layer onto cfg and records src for every key it sets.
func (r *Resolver) apply(cfg *Resolved, layer map[string]string, src Source) {
	allowed := make(map[string]string, len(layer))
	for key, value := range layer {
		if prev, ok := cfg.sources[key]; !ok || src.Overrides(prev) {
			allowed[key] = value
		}
	}
	if len(allowed) == 0 {
		return
	}
	if err := mergo.Merge(&cfg.values, allowed, mergo.WithOverride); err != nil {
		r.warn(fmt.Sprintf("could not apply %s config: %v", src, err))
		return
	}
	for key := range allowed {
		cfg.sources[key] = src
	}
}

func (r *Resolver) readFile(path string) map[string]string {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil // File doesn't exist - not an error
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", path, err))
		return nil
	}

	layer := make(map[string]string, len(parsed))
	for key, value := range parsed {
		if len(r.config.ValidKeys) > 0 && !contains(r.config.ValidKeys, key) {
			r.warn(fmt.Sprintf("ignoring unknown key %q in %s", key, path))
			continue
		}
		if strVal := toString(value); strVal != "" {
			layer[key] = strVal
		}
	}
	return layer
}

func (r *Resolver) env(cfg *Resolved) map[string]string {
	if r.config.EnvPrefix == "" {
		return nil
	}

	allKeys := make(map[string]bool)
	for _, k := range r.config.ValidKeys {
		allKeys[k] = true
	}
	for k := range r.config.Defaults {
		allKeys[k] = true
	}
	for k := range cfg.values {
		allKeys[k] = true
	}

	layer := make(map[string]string)
	for key := range allKeys {
		envKey := r.config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if value := os.Getenv(envKey); value != "" {
			layer[key] = value
		}
	}
	return layer
}

// ProjectRoot returns the detected project root directory.
func (r *Resolver) ProjectRoot() string {
	return r.projectRoot
}

// GlobalPath returns the path to the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local config file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

// Options is the typed view of a resolved configuration.
type Options struct {
	UserSettings   string
	GlobalSettings string
	Output         string
	LogLevel       slog.Level
	ConfigPolicy   dom.Policy
}

// Options parses the resolved values.
func (c *Resolved) Options() (Options, error) {
	opts := Options{
		UserSettings:   c.Get(KeyUserSettings),
		GlobalSettings: c.Get(KeyGlobalSettings),
		Output:         strings.ToLower(c.Get(KeyOutput)),
	}

	switch opts.Output {
	case "":
		opts.Output = OutputXML
	case OutputXML, OutputYAML:
	default:
		return Options{}, fmt.Errorf("%w: %s %q (from %s)", ErrInvalidValue, KeyOutput, opts.Output, c.Source(KeyOutput))
	}

	if v := c.Get(KeyLogLevel); v != "" {
		if err := opts.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Options{}, fmt.Errorf("%w: %s %q (from %s)", ErrInvalidValue, KeyLogLevel, v, c.Source(KeyLogLevel))
		}
	}

	policy, ok := dom.ParsePolicy(c.Get(KeyConfigPolicy))
	if !ok {
		return Options{}, fmt.Errorf("%w: %s %q (from %s)", ErrInvalidValue, KeyConfigPolicy, c.Get(KeyConfigPolicy), c.Source(KeyConfigPolicy))
	}
	opts.ConfigPolicy = policy

	return opts, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}

// FindProjectRoot returns the nearest directory at or above startDir that
// holds a .mvn directory, or "" if there is none.
func FindProjectRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, ".mvn")); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
