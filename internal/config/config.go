package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ConfigEnvVar overrides the config file location when set
const ConfigEnvVar = "LEVELCONV_CONFIG"

// Config represents levelconv configuration options
type Config struct {
	// InputDir is the directory containing level definition files
	InputDir string `yaml:"input_dir"`

	// OutputDir is where converted level files are written
	OutputDir string `yaml:"output_dir"`

	// Prefix is the file name prefix of level definitions
	Prefix string `yaml:"prefix"`

	// Extension is the file extension of level definitions
	Extension string `yaml:"extension"`

	// TargetSize is the only grid size that gets converted
	TargetSize int `yaml:"target_size"`

	// Format is the output encoding (json, yaml)
	Format string `yaml:"format"`

	// Recursive scans subdirectories of InputDir
	Recursive bool `yaml:"recursive"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ReportPath optionally receives a Markdown or HTML run summary
	ReportPath string `yaml:"report_path"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		InputDir:   "queens_levels",
		OutputDir:  "queens_levels_json",
		Prefix:     "level",
		Extension:  ".ts",
		TargetSize: 8,
		Format:     FormatJSON,
		Recursive:  false,
		LogLevel:   "info",
	}
}

// DefaultConfigPath returns $LEVELCONV_CONFIG if set, otherwise
// .levelconv/config.yaml under the working directory
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path
	}
	return filepath.Join(".levelconv", "config.yaml")
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.InputDir != "" {
		cfg.InputDir = fileCfg.InputDir
	}
	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if fileCfg.Prefix != "" {
		cfg.Prefix = fileCfg.Prefix
	}
	if fileCfg.Extension != "" {
		cfg.Extension = fileCfg.Extension
	}
	if fileCfg.TargetSize != 0 {
		cfg.TargetSize = fileCfg.TargetSize
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Recursive {
		cfg.Recursive = true
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.ReportPath != "" {
		cfg.ReportPath = fileCfg.ReportPath
	}

	return cfg, nil
}

// Flags holds CLI flag values; nil fields were not set on the command line
type Flags struct {
	InputDir   *string
	OutputDir  *string
	Prefix     *string
	Extension  *string
	TargetSize *int
	Format     *string
	Recursive  *bool
	LogLevel   *string
	ReportPath *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f Flags) {
	if f.InputDir != nil {
		c.InputDir = *f.InputDir
	}
	if f.OutputDir != nil {
		c.OutputDir = *f.OutputDir
	}
	if f.Prefix != nil {
		c.Prefix = *f.Prefix
	}
	if f.Extension != nil {
		c.Extension = *f.Extension
	}
	if f.TargetSize != nil {
		c.TargetSize = *f.TargetSize
	}
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.Recursive != nil {
		c.Recursive = *f.Recursive
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.ReportPath != nil {
		c.ReportPath = *f.ReportPath
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir cannot be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	if c.TargetSize <= 0 {
		return fmt.Errorf("target_size must be > 0, got %d", c.TargetSize)
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatJSON && c.Format != FormatYAML {
		return fmt.Errorf("invalid format %q, must be one of: json, yaml", c.Format)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.ReportPath != "" {
		ext := strings.ToLower(filepath.Ext(c.ReportPath))
		if ext != ".md" && ext != ".html" {
			return fmt.Errorf("report_path must end in .md or .html, got %q", c.ReportPath)
		}
	}

	return nil
}
