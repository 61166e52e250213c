package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/genoreport/internal/config"
)

func TestRun_CreatesConfig(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	result, err := Run(Options{TargetDir: dir, Version: "1.2.3", Stdout: &buf})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if result.Status != Created {
		t.Errorf("status = %q, want created", result.Status)
	}
	wantPath := filepath.Join(dir, config.DefaultFile)
	if result.Path != wantPath {
		t.Errorf("path = %q, want %q", result.Path, wantPath)
	}

	content, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("reading scaffolded file: %v", err)
	}
	if !strings.HasPrefix(string(content), "# scaffolded by genoreport 1.2.3\n") {
		t.Errorf("missing version marker, got:\n%s", content)
	}
	if !strings.Contains(buf.String(), "created:") {
		t.Errorf("summary should mention 'created:', got:\n%s", buf.String())
	}
}

// The scaffolded file must load to exactly the built-in defaults.
func TestRun_ConfigMatchesDefaults(t *testing.T) {
	dir := t.TempDir()
	result, err := Run(Options{TargetDir: dir, Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	cfg, err := config.Load(result.Path)
	if err != nil {
		t.Fatalf("scaffolded config does not load: %v", err)
	}
	def := config.Default()
	if cfg.Report != def.Report {
		t.Errorf("report = %+v, want %+v", cfg.Report, def.Report)
	}
	if cfg.LogLevel != def.LogLevel {
		t.Errorf("log_level = %q, want %q", cfg.LogLevel, def.LogLevel)
	}
}

func TestRun_SkipsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFile)
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	result, err := Run(Options{TargetDir: dir, Stdout: &buf})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if result.Status != Skipped {
		t.Errorf("status = %q, want skipped", result.Status)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "log_level: debug\n" {
		t.Errorf("existing file was modified: %q", content)
	}
	if !strings.Contains(buf.String(), "--force") {
		t.Errorf("summary should mention --force, got:\n%s", buf.String())
	}
}

func TestRun_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFile)
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Run(Options{TargetDir: dir, Force: true, Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if result.Status != Overwritten {
		t.Errorf("status = %q, want overwritten", result.Status)
	}

	content, _ := os.ReadFile(path)
	if !strings.Contains(string(content), "# scaffolded by genoreport dev") {
		t.Errorf("expected dev version marker, got:\n%s", content)
	}
}
