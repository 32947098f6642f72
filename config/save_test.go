package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func readSaved(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var saved map[string]interface{}
	if err := yaml.Unmarshal(data, &saved); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return saved
}

func TestSaveConfig_SaveGlobal(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cfg := SaveConfig{
		GlobalConfigDir: "mvnsettings",
		ValidKeys:       Keys,
	}
	configPath := filepath.Join(tmpHome, ".config", "mvnsettings", "config.yaml")

	t.Run("creates config file", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyOutput, "yaml"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}

		saved := readSaved(t, configPath)
		if saved[KeyOutput] != "yaml" {
			t.Errorf("output = %v, want yaml", saved[KeyOutput])
		}

		info, err := os.Stat(configPath)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("mode = %o, want 600", perm)
		}
	})

	t.Run("updates existing config", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyLogLevel, "debug"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}

		saved := readSaved(t, configPath)
		if saved[KeyOutput] != "yaml" {
			t.Errorf("output = %v, want yaml", saved[KeyOutput])
		}
		if saved[KeyLogLevel] != "debug" {
			t.Errorf("log_level = %v, want debug", saved[KeyLogLevel])
		}
	})

	t.Run("rejects invalid key", func(t *testing.T) {
		err := cfg.SaveGlobal("invalid_key", "value")
		if err == nil {
			t.Fatal("expected error for invalid key")
		}
		if !strings.Contains(err.Error(), "unknown config key") {
			t.Errorf("error = %v, want to contain 'unknown config key'", err)
		}
	})

	t.Run("no global config dir", func(t *testing.T) {
		if err := (SaveConfig{}).SaveGlobal("key", "value"); err == nil {
			t.Error("expected error when GlobalConfigDir not set")
		}
	})

	t.Run("custom config filename", func(t *testing.T) {
		customCfg := SaveConfig{
			GlobalConfigDir:  "customfile",
			GlobalConfigFile: "settings.yaml",
		}
		if err := customCfg.SaveGlobal("key", "value"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}

		path := filepath.Join(tmpHome, ".config", "customfile", "settings.yaml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Error("expected settings.yaml to be created")
		}
	})

	t.Run("resolver reads saved value", func(t *testing.T) {
		resolver := NewResolver(ResolverConfig{
			GlobalConfigDir: "mvnsettings",
			StartDir:        t.TempDir(),
		})
		if got := resolver.Resolve().Get(KeyLogLevel); got != "debug" {
			t.Errorf("log_level = %q, want debug", got)
		}
	})
}

func TestSaveConfig_SaveLocal(t *testing.T) {
	cfg := SaveConfig{
		LocalConfigName: ".mvnsettings.yaml",
		ValidKeys:       Keys,
	}

	t.Run("creates and updates local config", func(t *testing.T) {
		root := t.TempDir()
		if err := cfg.SaveLocal(root, KeyConfigPolicy, "keep-dominant"); err != nil {
			t.Fatalf("SaveLocal() error = %v", err)
		}
		if err := cfg.SaveLocal(root, KeyOutput, "yaml"); err != nil {
			t.Fatalf("SaveLocal() error = %v", err)
		}

		saved := readSaved(t, filepath.Join(root, ".mvnsettings.yaml"))
		if saved[KeyConfigPolicy] != "keep-dominant" || saved[KeyOutput] != "yaml" {
			t.Errorf("saved = %v", saved)
		}
	})

	t.Run("overwrites malformed local config", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, ".mvnsettings.yaml")
		if err := os.WriteFile(path, []byte("not: valid: yaml: [[["), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := cfg.SaveLocal(root, KeyOutput, "xml"); err != nil {
			t.Fatalf("SaveLocal() error = %v", err)
		}
		if saved := readSaved(t, path); saved[KeyOutput] != "xml" {
			t.Errorf("output = %v, want xml", saved[KeyOutput])
		}
	})

	t.Run("rejects invalid key", func(t *testing.T) {
		if err := cfg.SaveLocal(t.TempDir(), "invalid_key", "value"); err == nil {
			t.Error("expected error for invalid key")
		}
	})

	t.Run("empty project root", func(t *testing.T) {
		if err := cfg.SaveLocal("", KeyOutput, "xml"); err == nil {
			t.Error("expected error when project root empty")
		}
	})

	t.Run("no local config name", func(t *testing.T) {
		if err := (SaveConfig{}).SaveLocal(t.TempDir(), "key", "value"); err == nil {
			t.Error("expected error when LocalConfigName not set")
		}
	})
}

func TestSaveConfig_DeleteGlobalKey(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cfg := SaveConfig{GlobalConfigDir: "testdelete"}

	t.Run("deletes existing key", func(t *testing.T) {
		if err := cfg.SaveGlobal("key1", "value1"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}
		if err := cfg.SaveGlobal("key2", "value2"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}

		if err := cfg.DeleteGlobalKey("key1"); err != nil {
			t.Fatalf("DeleteGlobalKey() error = %v", err)
		}

		saved := readSaved(t, filepath.Join(tmpHome, ".config", "testdelete", "config.yaml"))
		if _, exists := saved["key1"]; exists {
			t.Error("key1 should have been deleted")
		}
		if saved["key2"] != "value2" {
			t.Errorf("key2 = %v, want value2", saved["key2"])
		}
	})

	t.Run("no error when file doesn't exist", func(t *testing.T) {
		if err := (SaveConfig{GlobalConfigDir: "nonexistent"}).DeleteGlobalKey("any_key"); err != nil {
			t.Errorf("DeleteGlobalKey() error = %v, want nil", err)
		}
	})

	t.Run("leaves malformed config alone", func(t *testing.T) {
		dir := filepath.Join(tmpHome, ".config", "malformed")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(dir, "config.yaml")
		bad := []byte("not: valid: yaml: [[[")
		if err := os.WriteFile(path, bad, 0o600); err != nil {
			t.Fatal(err)
		}

		if err := (SaveConfig{GlobalConfigDir: "malformed"}).DeleteGlobalKey("key"); err != nil {
			t.Errorf("DeleteGlobalKey() error = %v, want nil", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != string(bad) {
			t.Errorf("malformed file was rewritten: %q", data)
		}
	})

	t.Run("no global config dir", func(t *testing.T) {
		if err := (SaveConfig{}).DeleteGlobalKey("key"); err == nil {
			t.Error("expected error when GlobalConfigDir not set")
		}
	})
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"true", true},
		{"TRUE", true},
		{"false", false},
		{"False", false},
		{"keep-dominant", "keep-dominant"},
		{"123", "123"}, // Numbers stay as strings
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseValue(tt.input)
			if got != tt.want {
				t.Errorf("parseValue(%q) = %v (%T), want %v (%T)",
					tt.input, got, got, tt.want, tt.want)
			}
		})
	}
}
