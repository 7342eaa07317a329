package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/taskfmt/internal/config"
	"github.com/nao1215/taskfmt/internal/report"
	"github.com/nao1215/taskfmt/internal/serializer"
)

// NewSerializeCmd creates the serialize command.
func NewSerializeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serialize [file...]",
		Short: "Convert a result collection into plain nested data",
		Long: `Serialize converts raw task results into plain nested data.

Bookkeeping tasks (names starting with "_") and group tasks such as
netmiko_send_commands are dropped. A host-level exception replaces the
task's data with a single exception field.

Examples:
  # Dictionary shape: host -> task name -> result
  taskfmt serialize results.json

  # List shape with diff, changed, failed and exception
  taskfmt serialize --list --details results.json

  # YAML output from standard input
  cat results.yaml | taskfmt serialize -y -`,
		Args: cobra.ArbitraryArgs,
		RunE: runSerializeCmd,
	}

	cmd.Flags().BoolP("details", "d", false,
		"Add diff, changed, failed and exception to every result")
	cmd.Flags().BoolP("list", "l", false,
		"Emit host -> list of records instead of host -> task name -> result")
	cmd.Flags().BoolP("yaml", "y", false,
		"Write YAML instead of JSON")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency,
		"Number of input files decoded in parallel")

	return cmd
}

// buildSerializeConfig creates a Config from the serialize command flags.
func buildSerializeConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Inputs = args
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if cfg.AddDetails, err = cmd.Flags().GetBool("details"); err != nil {
		return nil, err
	}

	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return nil, err
	}
	cfg.ToDict = !list

	asYAML, err := cmd.Flags().GetBool("yaml")
	if err != nil {
		return nil, err
	}
	if asYAML {
		cfg.OutputFormat = config.OutputYAML
	}

	if cfg.OutputFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runSerializeCmd executes the serialize command.
func runSerializeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildSerializeConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	docs, err := loadDocuments(ctx, cmd, cfg, logger)
	if err != nil {
		return err
	}

	collection, err := mergeCollections(docs)
	if err != nil {
		return err
	}

	out := serializer.Serialize(collection,
		serializer.WithDetails(cfg.AddDetails),
		serializer.WithDict(cfg.ToDict),
	)
	logger.Debug("serialized",
		"hosts", len(out.Hosts()),
		"details", cfg.AddDetails,
		"dict", cfg.ToDict,
	)

	w, closeOutput, err := openOutput(cmd, cfg.OutputFile)
	if err != nil {
		return err
	}

	if cfg.OutputFormat == config.OutputYAML {
		_, err = report.NewYAMLWriter(w).Write(out)
	} else {
		_, err = report.NewJSONWriter(w, report.WithPrettyPrint()).Write(out)
	}
	if err != nil {
		_ = closeOutput()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return closeOutput()
}
