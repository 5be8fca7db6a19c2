// Package config loads optional project-level defaults for the tool
// executables, extensions, style, and build path.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the project config looked up in the working
// directory unless --config points elsewhere.
const DefaultConfigFile = ".clang-lint.yaml"

// DefaultExtensions is the file extension set processed by default,
// covering the common C/C++ source and header suffixes.
var DefaultExtensions = []string{
	"cc", "cpp", "cxx", "c++", "h", "hh", "hpp", "hxx", "h++", "ipp", "i",
}

// Config represents project configuration options. CLI flags override any
// field set here.
type Config struct {
	// FormatExecutable is the path to the clang-format executable.
	FormatExecutable string `yaml:"format_executable"`

	// TidyExecutable is the path to the clang-tidy executable.
	TidyExecutable string `yaml:"tidy_executable"`

	// Extensions lists the file extensions to process (without dots).
	Extensions []string `yaml:"extensions"`

	// Style is the formatting style to apply (LLVM, Google, Chromium,
	// Mozilla, WebKit). Empty means the tools' own default resolution.
	Style string `yaml:"style"`

	// BuildPath is the compilation database directory passed to the
	// analyzer via -p.
	BuildPath string `yaml:"build_path"`

	// Color controls colored output: auto, always, or never.
	Color string `yaml:"color"`

	// LogLevel sets the verbosity of progress logging (debug, info, warn,
	// error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		FormatExecutable: "clang-format",
		TidyExecutable:   "clang-tidy",
		Extensions:       append([]string(nil), DefaultExtensions...),
		Style:            "",
		BuildPath:        "./build",
		Color:            "auto",
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
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

	// Apply non-zero values from the file over the defaults.
	if fileCfg.FormatExecutable != "" {
		cfg.FormatExecutable = fileCfg.FormatExecutable
	}
	if fileCfg.TidyExecutable != "" {
		cfg.TidyExecutable = fileCfg.TidyExecutable
	}
	if len(fileCfg.Extensions) > 0 {
		cfg.Extensions = fileCfg.Extensions
	}
	if fileCfg.Style != "" {
		cfg.Style = fileCfg.Style
	}
	if fileCfg.BuildPath != "" {
		cfg.BuildPath = fileCfg.BuildPath
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	return cfg, nil
}

// MergeWithFlags applies CLI flag values over the loaded configuration.
// Nil pointers mean the flag was not set and the config value stands.
func (c *Config) MergeWithFlags(formatExe, tidyExe, extensions, style, buildPath, colorMode *string) {
	if formatExe != nil {
		c.FormatExecutable = *formatExe
	}
	if tidyExe != nil {
		c.TidyExecutable = *tidyExe
	}
	if extensions != nil {
		c.Extensions = splitExtensions(*extensions)
	}
	if style != nil {
		c.Style = *style
	}
	if buildPath != nil {
		c.BuildPath = *buildPath
	}
	if colorMode != nil {
		c.Color = *colorMode
	}
}

// Validate checks the merged configuration for values the pipeline cannot
// work with.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q: must be auto, always, or never", c.Color)
	}
	if c.FormatExecutable == "" {
		return fmt.Errorf("format executable must not be empty")
	}
	if c.TidyExecutable == "" {
		return fmt.Errorf("tidy executable must not be empty")
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extension list must not be empty")
	}
	return nil
}

// splitExtensions parses a comma-separated extension list, trimming spaces
// and leading dots.
func splitExtensions(s string) []string {
	var exts []string
	for _, part := range strings.Split(s, ",") {
		ext := strings.TrimPrefix(strings.TrimSpace(part), ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}
