package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveConfig writes values into the config files read by Resolver.
type SaveConfig struct {
	// GlobalConfigDir is the directory under ~/.config/ for global config.
	GlobalConfigDir string

	// GlobalConfigFile is the filename. Defaults to "config.yaml".
	GlobalConfigFile string

	// LocalConfigName is the filename for local config in the project root.
	LocalConfigName string

	// ValidKeys lists keys that can be saved. If empty, any key is accepted.
	ValidKeys []string
}

func (c SaveConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

// GlobalPath returns the global config file below the user home.
func (c SaveConfig) GlobalPath() (string, error) {
	if c.GlobalConfigDir == "" {
		return "", fmt.Errorf("global config directory not configured")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", c.GlobalConfigDir, c.globalConfigFile()), nil
}

// SaveGlobal saves a key-value pair to the global config file.
func (c SaveConfig) SaveGlobal(key, value string) error {
	if err := c.checkKey(key); err != nil {
		return err
	}
	path, err := c.GlobalPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return update(path, 0o600, func(m map[string]interface{}) {
		m[key] = parseValue(value)
	})
}

// SaveLocal saves a key-value pair to the local config file in projectRoot.
func (c SaveConfig) SaveLocal(projectRoot, key, value string) error {
	if projectRoot == "" {
		return fmt.Errorf("project root not found")
	}
	if c.LocalConfigName == "" {
		return fmt.Errorf("local config name not configured")
	}
	if err := c.checkKey(key); err != nil {
		return err
	}

	// Local config is shared with the project and should be readable.
	return update(filepath.Join(projectRoot, c.LocalConfigName), 0o644, func(m map[string]interface{}) {
		m[key] = parseValue(value)
	})
}

// DeleteGlobalKey removes a key from the global config. A missing or
// unparseable file is left alone.
func (c SaveConfig) DeleteGlobalKey(key string) error {
	path, err := c.GlobalPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil // Nothing to delete
	}
	var existing map[string]interface{}
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return nil
	}

	delete(existing, key)
	return write(path, 0o600, existing)
}

func (c SaveConfig) checkKey(key string) error {
	if len(c.ValidKeys) > 0 && !contains(c.ValidKeys, key) {
		return fmt.Errorf("unknown config key: %s\n\nValid keys: %s",
			key, strings.Join(c.ValidKeys, ", "))
	}
	return nil
}

// update loads the YAML map at path, applies fn and writes it back. An
// unparseable existing file is replaced.
func update(path string, perm os.FileMode, fn func(map[string]interface{})) error {
	var existing map[string]interface{}
	if data, readErr := os.ReadFile(path); readErr == nil {
		_ = yaml.Unmarshal(data, &existing)
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}

	fn(existing)
	return write(path, perm, existing)
}

func write(path string, perm os.FileMode, values map[string]interface{}) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm) //nolint:gosec
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) interface{} {
	lower := strings.ToLower(value)
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	return value
}
