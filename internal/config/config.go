// Package config loads genoreport settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/unbound-force/genoreport/internal/table"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory
// when no path is given.
const DefaultFile = ".genoreport.yaml"

// Config holds all user-tunable settings.
type Config struct {
	Report   ReportConfig `yaml:"report"`
	LogLevel string       `yaml:"log_level"`

	// path is the file the config was read from, if any.
	path string
}

// ReportConfig controls the text placed in generated reports.
type ReportConfig struct {
	// Title is the HTML document title.
	Title string `yaml:"title"`

	// Heading is the top-level page heading.
	Heading string `yaml:"heading"`

	// Placeholder is the function text for features without a
	// product description.
	Placeholder string `yaml:"placeholder"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Report: ReportConfig{
			Title:       "Genomic Data Table",
			Heading:     "Genomic Data",
			Placeholder: table.DefaultPlaceholder,
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// tries DefaultFile and silently falls back to defaults when it does
// not exist; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c Config) Path() string {
	return c.path
}

// Validate checks that all report strings are set and the log level
// is known.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Report.Title) == "" {
		problems = append(problems, "report.title must not be empty")
	}
	if strings.TrimSpace(c.Report.Heading) == "" {
		problems = append(problems, "report.heading must not be empty")
	}
	if strings.TrimSpace(c.Report.Placeholder) == "" {
		problems = append(problems, "report.placeholder must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf(
			"log_level %q invalid: must be debug, info, warn, or error", c.LogLevel))
	}

	if len(problems) == 0 {
		return nil
	}
	source := "defaults"
	if c.path != "" {
		source = fmt.Sprintf("config file %q", c.path)
	}
	return fmt.Errorf("invalid %s:\n  %s", source, strings.Join(problems, "\n  "))
}
