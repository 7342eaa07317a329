package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/taskfmt/internal/config"
	"github.com/nao1215/taskfmt/internal/report"
	"github.com/nao1215/taskfmt/internal/tabulate"
)

// NewTableCmd creates the table command.
func NewTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [file...]",
		Short: "Render task results as a table",
		Long: `Table flattens task results into one row per task and renders a table.

Result collections are serialized with details first, so every row carries
host, name, diff, changed, result, failed and exception. Lists of records
are rendered as they are.

Modes:
  true, enabled    render with --headers
  false, disabled  print the input unrendered as JSON
  brief            grid table with index and host, name, result, exception
  extend           one row per element of list-valued results

When a table cannot be rendered, the records are printed as JSON and the
reason is reported on stderr.

Examples:
  # Brief overview of a run
  taskfmt table -m brief results.json

  # Selected columns as a GitHub Markdown table
  taskfmt table -H host,name,result -f github results.json

  # Expand list results and drop noisy fields
  taskfmt table -m extend -x diff,changed results.yaml

  # Use a profile from the configuration file
  taskfmt table -p failures results.json

Configuration file (.taskfmt) example:
  defaults:
    table_format: rounded
  profiles:
    failures:
      headers: [host, name, failed, exception]`,
		Args: cobra.ArbitraryArgs,
		RunE: runTableCmd,
	}

	cmd.Flags().StringP("mode", "m", config.DefaultMode,
		"Table mode: true, false, brief or extend")
	cmd.Flags().StringP("headers", "H", config.DefaultHeaders,
		"Comma-separated columns, or keys to follow record keys")
	cmd.Flags().StringP("exclude", "x", "",
		"Comma-separated fields to remove from every record")
	cmd.Flags().StringP("format", "f", config.DefaultTableFormat,
		"Table format: "+strings.Join(report.Formats(), ", "))
	cmd.Flags().BoolP("show-index", "i", false,
		"Add a row number column")
	cmd.Flags().StringP("profile", "p", "",
		"Render with a named profile from the configuration file")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .taskfmt in current, XDG config or home directory)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency,
		"Number of input files decoded in parallel")

	return cmd
}

// buildTableConfig creates a Config from the table command flags and the
// configuration file.
func buildTableConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Inputs = args
	cfg.Verbose = getVerboseFlag(cmd)

	flags := cmd.Flags()
	var err error

	if cfg.Mode, err = flags.GetString("mode"); err != nil {
		return nil, err
	}
	if cfg.Headers, err = flags.GetString("headers"); err != nil {
		return nil, err
	}
	if cfg.HeadersExclude, err = flags.GetString("exclude"); err != nil {
		return nil, err
	}
	if cfg.TableFormat, err = flags.GetString("format"); err != nil {
		return nil, err
	}
	if cfg.ShowIndex, err = flags.GetBool("show-index"); err != nil {
		return nil, err
	}
	if cfg.Profile, err = flags.GetString("profile"); err != nil {
		return nil, err
	}
	if cfg.OutputFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; otherwise a missing file
	// just means no defaults and no profiles.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		cfg.File, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.ApplyDefaults(flags.Changed)
	return cfg, nil
}

// runTableCmd executes the table command.
func runTableCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildTableConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	req, err := cfg.Request()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)
	if !report.IsKnownFormat(cfg.TableFormat) {
		logger.Warn("unknown table format, using simple", "format", cfg.TableFormat)
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	docs, err := loadDocuments(ctx, cmd, cfg, logger)
	if err != nil {
		return err
	}

	outcome := tabulate.New(tabulate.WithLogger(logger)).Format(mergeTableInput(docs), req)

	w, closeOutput, err := openOutput(cmd, cfg.OutputFile)
	if err != nil {
		return err
	}
	if err := writeOutcome(w, cmd.ErrOrStderr(), outcome); err != nil {
		_ = closeOutput()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return closeOutput()
}

// writeOutcome writes a rendered table, or the unrendered records as JSON
// with the reason on errOut.
func writeOutcome(w, errOut io.Writer, outcome tabulate.Outcome) error {
	if outcome.Rendered() {
		_, err := io.WriteString(w, outcome.Text)
		return err
	}

	if outcome.Err != nil {
		fmt.Fprintf(errOut, "warning: table not rendered: %v\n", outcome.Err)
	}
	_, err := report.NewJSONWriter(w, report.WithPrettyPrint()).Write(outcome.Input)
	return err
}
