package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrRepeatedStdin is returned when standard input is named more than once.
var ErrRepeatedStdin = errors.New("standard input can only be read once")

// DefaultConcurrency is the number of files decoded at once when the
// caller does not set a limit.
const DefaultConcurrency = 4

// Document is one decoded input file.
type Document struct {
	// Path is the file the document was read from, or Stdin.
	Path string

	// Value is a *model.Collection or a []*model.Record.
	Value any
}

// Loader decodes input files.
type Loader struct {
	stdin       io.Reader
	concurrency int
	logger      *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithStdin sets the reader used for the Stdin path.
func WithStdin(r io.Reader) LoaderOption {
	return func(l *Loader) {
		l.stdin = r
	}
}

// WithConcurrency sets the maximum number of files decoded at once.
// Values below 1 keep the default.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader reading standard input from os.Stdin.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		stdin:       os.Stdin,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = slog.Default()
	}

	return l
}

// Load decodes every path concurrently and returns the documents in
// argument order. The first failure cancels the remaining work. Stdin may
// appear at most once.
func (l *Loader) Load(ctx context.Context, paths []string) ([]Document, error) {
	stdinCount := 0
	for _, path := range paths {
		if path == Stdin {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, ErrRepeatedStdin
	}

	docs := make([]Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			value, err := l.loadOne(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			l.logger.Debug("input decoded", "path", path, "type", fmt.Sprintf("%T", value))
			docs[i] = Document{Path: path, Value: value}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (l *Loader) loadOne(path string) (any, error) {
	if path == Stdin {
		return Decode(l.stdin)
	}

	f, err := os.Open(path) //nolint:gosec // paths come from the command line
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// LoadFiles decodes paths with a default Loader limited to concurrency
// parallel reads.
func LoadFiles(ctx context.Context, paths []string, concurrency int) ([]Document, error) {
	return NewLoader(WithConcurrency(concurrency)).Load(ctx, paths)
}
