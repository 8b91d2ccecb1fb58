package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit_Defaults(t *testing.T) {
	viper.Reset()

	Init()

	if got := viper.GetString("log_format"); got != "text" {
		t.Errorf("log_format default = %q, want %q", got, "text")
	}
	if got := viper.GetString("store"); got != "" {
		t.Errorf("store default = %q, want empty", got)
	}
}

func TestLoad_NoSettingsFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	Init()

	s, err := Load("")
	if err != nil {
		t.Errorf("Load() with no settings file should not error: %v", err)
	}
	if s == nil {
		t.Fatal("expected settings to be returned")
	}
	if s.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want default", s.LogFormat)
	}
}

func TestLoad_WithSettingsFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := []byte("store: /tmp/alt.json\nlog_format: json\n")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q): %v", path, err)
	}
	if s.Store != "/tmp/alt.json" {
		t.Errorf("Store = %q", s.Store)
	}
	if s.LogFormat != "json" {
		t.Errorf("LogFormat = %q", s.LogFormat)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	Init()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for explicitly named missing file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("DOTCONF_STORE", "/tmp/env.json")

	Init()

	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Store != "/tmp/env.json" {
		t.Errorf("Store = %q, want env override", s.Store)
	}
}
