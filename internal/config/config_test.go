package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InputDir != "queens_levels" {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, "queens_levels")
	}
	if cfg.OutputDir != "queens_levels_json" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "queens_levels_json")
	}
	if cfg.Prefix != "level" {
		t.Errorf("Prefix = %q, want %q", cfg.Prefix, "level")
	}
	if cfg.Extension != ".ts" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, ".ts")
	}
	if cfg.TargetSize != 8 {
		t.Errorf("TargetSize = %d, want 8", cfg.TargetSize)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatJSON)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `input_dir: levels
output_dir: out
target_size: 9
format: yaml
log_level: debug
recursive: true
report_path: report.html
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.InputDir != "levels" {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, "levels")
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
	if cfg.TargetSize != 9 {
		t.Errorf("TargetSize = %d, want 9", cfg.TargetSize)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatYAML)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.Recursive {
		t.Error("Recursive = false, want true")
	}
	if cfg.ReportPath != "report.html" {
		t.Errorf("ReportPath = %q, want %q", cfg.ReportPath, "report.html")
	}
	// Unset keys keep their defaults
	if cfg.Prefix != "level" {
		t.Errorf("Prefix = %q, want default %q", cfg.Prefix, "level")
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if cfg.TargetSize != 8 {
		t.Errorf("TargetSize = %d, want 8 (default)", cfg.TargetSize)
	}
}

// TestLoadConfigMalformed tests that invalid YAML is reported
func TestLoadConfigMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("target_size: [not, an, int"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	if got := DefaultConfigPath(); got != filepath.Join(".levelconv", "config.yaml") {
		t.Errorf("DefaultConfigPath() = %q", got)
	}

	t.Setenv(ConfigEnvVar, "/etc/levelconv.yaml")
	if got := DefaultConfigPath(); got != "/etc/levelconv.yaml" {
		t.Errorf("DefaultConfigPath() = %q, want env override", got)
	}
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	size := 10
	out := "elsewhere"
	cfg.MergeWithFlags(Flags{TargetSize: &size, OutputDir: &out})

	if cfg.TargetSize != 10 {
		t.Errorf("TargetSize = %d, want 10", cfg.TargetSize)
	}
	if cfg.OutputDir != "elsewhere" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "elsewhere")
	}
	// Nil flags leave values untouched
	if cfg.InputDir != "queens_levels" {
		t.Errorf("InputDir = %q, want default", cfg.InputDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"empty input dir", func(c *Config) { c.InputDir = "" }, "input_dir"},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"zero target size", func(c *Config) { c.TargetSize = 0 }, "target_size"},
		{"negative target size", func(c *Config) { c.TargetSize = -3 }, "target_size"},
		{"unknown format", func(c *Config) { c.Format = "xml" }, "invalid format"},
		{"uppercase format normalized", func(c *Config) { c.Format = "YAML" }, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"markdown report", func(c *Config) { c.ReportPath = "summary.md" }, ""},
		{"html report", func(c *Config) { c.ReportPath = "summary.HTML" }, ""},
		{"text report", func(c *Config) { c.ReportPath = "summary.txt" }, "report_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
