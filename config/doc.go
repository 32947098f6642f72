// Package config resolves the options of the mvnsettings CLI from layered
// sources.
//
// Precedence, highest first:
//  1. Command-line flags
//  2. Environment variables (MVNSETTINGS_<KEY>)
//  3. Local config (.mvnsettings.yaml in the project root)
//  4. Global config (~/.config/mvnsettings/config.yaml)
//  5. Built-in defaults
//
// The project root is the nearest directory holding a .mvn directory.
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.ResolverConfig{
//	    EnvPrefix:       "MVNSETTINGS_",
//	    GlobalConfigDir: "mvnsettings",
//	    LocalConfigName: ".mvnsettings.yaml",
//	    Defaults:        config.Defaults(home),
//	    ValidKeys:       config.Keys,
//	})
//
//	cfg := resolver.ResolveWithFlags(map[string]string{"output": flagOutput})
//	opts, err := cfg.Options()
//
// Each resolved value tracks where it came from; see Source.
package config
