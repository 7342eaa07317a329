package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/taskfmt/internal/config"
	"github.com/nao1215/taskfmt/internal/input"
	tlog "github.com/nao1215/taskfmt/internal/log"
	"github.com/nao1215/taskfmt/internal/model"
	"github.com/nao1215/taskfmt/internal/serializer"
)

// errMixedSerializeInput is returned when serialize receives flat records.
var errMixedSerializeInput = errors.New("serialize needs result collections, got a list of records")

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the sanitizing logger writing to the command's stderr.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	return tlog.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// signalContext returns a context cancelled on interrupt or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// loadDocuments decodes all inputs of cfg. Standard input is read from the
// command's input stream.
func loadDocuments(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) ([]input.Document, error) {
	loader := input.NewLoader(
		input.WithStdin(cmd.InOrStdin()),
		input.WithConcurrency(cfg.Concurrency),
		input.WithLogger(logger),
	)
	return loader.Load(ctx, cfg.Inputs)
}

// mergeCollections merges every document into one collection. Hosts that
// appear in several documents collect their tasks in argument order.
func mergeCollections(docs []input.Document) (*model.Collection, error) {
	merged := model.NewCollection()
	for _, doc := range docs {
		c, ok := doc.Value.(*model.Collection)
		if !ok {
			return nil, fmt.Errorf("%s: %w", doc.Path, errMixedSerializeInput)
		}
		for _, host := range c.Hosts() {
			merged.Add(host, c.Tasks(host)...)
		}
	}
	return merged, nil
}

// mergeTableInput combines documents into a single tabulate input. Only
// collections yield a merged collection; otherwise every document is
// flattened into one record list.
func mergeTableInput(docs []input.Document) any {
	if c, err := mergeCollections(docs); err == nil {
		return c
	}

	var records []*model.Record
	for _, doc := range docs {
		switch v := doc.Value.(type) {
		case *model.Collection:
			records = append(records, serializer.Records(v)...)
		case []*model.Record:
			records = append(records, v...)
		}
	}
	if records == nil {
		records = []*model.Record{}
	}
	return records
}

// openOutput returns the destination writer: the named file, created with
// owner-only permissions, or the command's stdout when path is empty.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Results may include device configuration.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
