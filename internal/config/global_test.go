// Where: internal/config/global_test.go
// What: Tests for global config persistence.
// Why: Config round trips and env overrides must stay stable.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGlobalConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	original := GlobalConfig{
		Version:     1,
		ComposeFile: "/srv/app/compose.yaml",
		Profiles:    []string{"db", "web"},
		Hostname:    "stack.local",
	}

	if err := SaveGlobalConfig(path, original); err != nil {
		t.Fatalf("SaveGlobalConfig: %v", err)
	}
	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if !reflect.DeepEqual(loaded, original) {
		t.Fatalf("round trip mismatch: %+v vs %+v", loaded, original)
	}
}

func TestGlobalConfigPathOverrides(t *testing.T) {
	t.Setenv("ENV_PREFIX", "")
	t.Setenv("STACKCTL_CONFIG_PATH", "/tmp/custom.yaml")
	t.Setenv("STACKCTL_CONFIG_HOME", "")

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("GlobalConfigPath: %v", err)
	}
	if path != "/tmp/custom.yaml" {
		t.Fatalf("unexpected path: %s", path)
	}

	t.Setenv("STACKCTL_CONFIG_PATH", "")
	t.Setenv("STACKCTL_CONFIG_HOME", "/tmp/home")
	path, err = GlobalConfigPath()
	if err != nil {
		t.Fatalf("GlobalConfigPath: %v", err)
	}
	if path != filepath.Join("/tmp/home", "config.yaml") {
		t.Fatalf("unexpected path: %s", path)
	}
}

func TestEnsureGlobalConfigCreates(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV_PREFIX", "")
	t.Setenv("STACKCTL_CONFIG_PATH", "")
	t.Setenv("STACKCTL_CONFIG_HOME", home)

	if err := EnsureGlobalConfig(); err != nil {
		t.Fatalf("EnsureGlobalConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	cfg, err := LoadGlobalConfig(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
}
