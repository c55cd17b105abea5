package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}
	if viper.GetInt("min_count") != 3 {
		t.Errorf("expected min_count default 3, got %d", viper.GetInt("min_count"))
	}
	if exts := viper.GetStringSlice("extensions"); len(exts) == 0 {
		t.Error("expected extensions to have defaults")
	}
	if !viper.GetBool("allow_trailing") {
		t.Error("expected allow_trailing default true")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()

	// Run from a temp dir so a developer's config.yaml is not picked up
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}
	if cfg.MinCount != 3 {
		t.Errorf("MinCount = %d, want 3", cfg.MinCount)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("min_count: 5\nextensions:\n  - jpg\n  - gif\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MinCount != 5 {
		t.Errorf("MinCount = %d, want 5", cfg.MinCount)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("expected 2 extensions, got %d", len(cfg.Extensions))
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	if _, err := Load("/non/existent/path/config.yaml"); err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErrs int
	}{
		{"defaults are valid", func(*Config) {}, 0},
		{"zero version", func(c *Config) { c.Version = 0 }, 1},
		{"zero min_count", func(c *Config) { c.MinCount = 0 }, 1},
		{"empty extensions", func(c *Config) { c.Extensions = nil }, 1},
		{"blank extension entry", func(c *Config) { c.Extensions = []string{"jpg", " "} }, 1},
		{"extension with separator", func(c *Config) { c.Extensions = []string{"a/b"} }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if errs := Validate(cfg); len(errs) != tt.wantErrs {
				t.Errorf("Validate() returned %d errors, want %d: %v", len(errs), tt.wantErrs, errs)
			}
		})
	}
}

func TestLoadRules_Empty(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules(\"\") error = %v", err)
	}
	if rules.MaxLen != 40 {
		t.Errorf("MaxLen = %d, want default 40", rules.MaxLen)
	}
	if len(rules.CameraPrefixes) == 0 {
		t.Error("expected default camera prefixes")
	}
}

func TestLoadRules_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	content := []byte("camera_prefixes = [\"img\", \"mycam\"]\nmax_len = 30\ndigit_ratio = 2\n")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}

	if rules.MaxLen != 30 {
		t.Errorf("MaxLen = %d, want 30", rules.MaxLen)
	}
	if rules.DigitRatio != 2 {
		t.Errorf("DigitRatio = %d, want 2", rules.DigitRatio)
	}
	if len(rules.CameraPrefixes) != 2 {
		t.Errorf("CameraPrefixes = %v, want 2 entries", rules.CameraPrefixes)
	}
	// Untouched fields keep their defaults
	if rules.MinLen != 1 {
		t.Errorf("MinLen = %d, want default 1", rules.MinLen)
	}
}

func TestLoadRules_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "max_len = [not toml"},
		{"min above max", "min_len = 10\nmax_len = 5"},
		{"zero digit ratio", "digit_ratio = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadRules(path); err == nil {
				t.Error("LoadRules() should reject invalid rules")
			}
		})
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules("/non/existent/rules.toml"); err == nil {
		t.Error("LoadRules() should error on a missing file")
	}
}

func TestExtensionError(t *testing.T) {
	e := &ExtensionError{Extension: "a b", Err: ErrInvalidExtension}
	if !errors.Is(e, ErrInvalidExtension) {
		t.Error("ExtensionError should unwrap to ErrInvalidExtension")
	}
	if e.Error() == "" {
		t.Error("ExtensionError message should not be empty")
	}
}
