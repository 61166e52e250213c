// Package scaffold writes a starter genoreport configuration file
// into a target directory.
package scaffold

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unbound-force/genoreport/internal/config"
)

//go:embed assets/genoreport.yaml
var defaultConfig []byte

// Options configures the scaffold operation.
type Options struct {
	// TargetDir is the directory to write the config into.
	// Defaults to the current working directory.
	TargetDir string

	// Force overwrites an existing config file when true.
	Force bool

	// Version is the genoreport version string to embed in the
	// version marker comment. Defaults to "dev".
	Version string

	// Stdout is the writer for summary output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Status describes what Run did with the config file.
type Status string

// Scaffold outcomes.
const (
	Created     Status = "created"
	Skipped     Status = "skipped"
	Overwritten Status = "overwritten"
)

// Result reports what the scaffold operation did.
type Result struct {
	// Path is the config file path.
	Path string

	// Status is the outcome for Path.
	Status Status
}

// versionMarker returns the version marker comment prepended to the
// scaffolded file.
func versionMarker(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("# scaffolded by genoreport %s\n", version)
}

// Run writes config.DefaultFile into the target directory. An
// existing file is left alone unless opts.Force is set.
func Run(opts Options) (*Result, error) {
	if opts.TargetDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		opts.TargetDir = cwd
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	result := &Result{Path: filepath.Join(opts.TargetDir, config.DefaultFile)}

	_, statErr := os.Stat(result.Path)
	exists := statErr == nil

	switch {
	case exists && !opts.Force:
		result.Status = Skipped
	default:
		if err := os.MkdirAll(opts.TargetDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", opts.TargetDir, err)
		}
		out := append([]byte(versionMarker(opts.Version)), defaultConfig...)
		if err := os.WriteFile(result.Path, out, 0o644); err != nil {
			return nil, fmt.Errorf("creating %s: %w", result.Path, err)
		}
		result.Status = Created
		if exists {
			result.Status = Overwritten
		}
	}

	printSummary(opts.Stdout, result)
	return result, nil
}

// printSummary writes a human-readable summary of the scaffold
// operation to w.
func printSummary(w io.Writer, r *Result) {
	switch r.Status {
	case Skipped:
		fmt.Fprintf(w, "  skipped: %s (already exists)\n", r.Path)
		fmt.Fprintln(w, "Use --force to overwrite.")
	default:
		fmt.Fprintf(w, "  %s: %s\n", r.Status, r.Path)
	}
}
