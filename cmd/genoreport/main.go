package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/genoreport/internal/annotation"
	"github.com/unbound-force/genoreport/internal/config"
	"github.com/unbound-force/genoreport/internal/report"
	"github.com/unbound-force/genoreport/internal/scaffold"
	"github.com/unbound-force/genoreport/internal/table"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		format      string
		configPath  string
		title       string
		interactive bool
		verbose     bool
	)

	root := &cobra.Command{
		Use:   "genoreport <input_json_file> <output_html_file>",
		Short: "Genoreport — genomic annotation JSON to HTML report",
		Long: `Genoreport converts a genomic-annotation JSON document into a
self-contained HTML report with a per-feature table for CDS, tRNA
and rRNA features and a summary of feature counts per type.`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runConvert(convertParams{
				input:       args[0],
				output:      args[1],
				format:      format,
				configPath:  configPath,
				title:       title,
				interactive: interactive,
				verbose:     verbose,
				stdout:      cmd.OutOrStdout(),
				stderr:      cmd.ErrOrStderr(),
			})
		},
	}

	root.Flags().StringVar(&format, "format", report.FormatHTML,
		"output format: html, json, or text")
	root.Flags().StringVar(&configPath, "config", "",
		"path to YAML config (default: "+config.DefaultFile+" if present)")
	root.Flags().StringVar(&title, "title", "",
		"report title (overrides config)")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"browse the tables in a terminal viewer after writing")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(newSchemaCmd())
	root.AddCommand(newInitCmd())

	return root
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for genoreport JSON output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of genoreport --format=json output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.DefaultFile + " to the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scaffold.Run(scaffold.Options{
				Force:   force,
				Version: version,
				Stdout:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"overwrite an existing config file")

	return cmd
}

// convertParams holds the parsed arguments and flags for a conversion.
type convertParams struct {
	input       string
	output      string
	format      string
	configPath  string
	title       string
	interactive bool
	verbose     bool
	stdout      io.Writer
	stderr      io.Writer
}

// runConvert is the extracted, testable body of the root command.
func runConvert(p convertParams) error {
	if !report.ValidFormat(p.format) {
		return fmt.Errorf("invalid format %q: must be 'html', 'json', or 'text'", p.format)
	}

	cfg, err := loadConfig(p.configPath, p.title)
	if err != nil {
		return err
	}
	configureLogger(p.stderr, cfg.LogLevel, p.verbose)
	if cfg.Path() != "" {
		logger.Debug("loaded config", "path", cfg.Path())
	}

	logger.Info("loading annotations", "input", p.input)
	doc, err := annotation.Load(p.input)
	if err != nil {
		return err
	}
	if doc.Skipped > 0 {
		logger.Debug("skipped non-object feature entries", "count", doc.Skipped)
	}

	tbl := table.Build(doc.Features, table.Options{
		Placeholder: cfg.Report.Placeholder,
	})
	for _, w := range tbl.Warnings {
		logger.Warn(w)
	}
	logger.Debug("tables built",
		"features", len(doc.Features), "rows", len(tbl.Rows), "tracked", tbl.Summary.Total())

	err = report.WriteFile(p.output, tbl, report.Options{
		Format: p.format,
		HTML: report.HTMLOptions{
			Title:   cfg.Report.Title,
			Heading: cfg.Report.Heading,
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(p.stdout, "%s file has been created successfully at %s\n",
		strings.ToUpper(p.format), p.output)

	if p.interactive {
		return runInteractive(tbl, cfg.Report.Heading)
	}
	return nil
}

// loadConfig reads the config file and applies flag overrides. An
// empty title leaves the configured value in place.
func loadConfig(path, title string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if title != "" {
		cfg.Report.Title = title
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// configureLogger points the logger at w and sets its level from the
// config; verbose forces debug.
func configureLogger(w io.Writer, level string, verbose bool) {
	logger.SetOutput(w)
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.InfoLevel
	}
	if verbose {
		lvl = charmlog.DebugLevel
	}
	logger.SetLevel(lvl)
}
