package report

import (
	"io"
	"slices"
)

// Table formats understood by NewTableWriter.
const (
	// FormatSimple underlines the header row and draws no borders.
	FormatSimple = "simple"
	// FormatPlain draws no lines at all.
	FormatPlain = "plain"
	// FormatGrid draws ASCII borders around every cell.
	FormatGrid = "grid"
	// FormatRounded draws rounded box-drawing borders.
	FormatRounded = "rounded"
	// FormatHeavy draws heavy box-drawing borders.
	FormatHeavy = "heavy"
	// FormatDouble draws double-line box-drawing borders.
	FormatDouble = "double"
	// FormatGitHub renders a GitHub-flavored Markdown table.
	FormatGitHub = "github"
	// FormatPipe is an alias of FormatGitHub.
	FormatPipe = "pipe"
	// FormatMarkdown is an alias of FormatGitHub.
	FormatMarkdown = "markdown"
)

// TableWriter writes tables to an output destination.
type TableWriter interface {
	// WriteTable renders t and returns the number of bytes written.
	WriteTable(t *Table) (int, error)
}

// Formats returns every table format name NewTableWriter accepts.
func Formats() []string {
	return []string{
		FormatSimple, FormatPlain, FormatGrid, FormatRounded, FormatHeavy,
		FormatDouble, FormatGitHub, FormatPipe, FormatMarkdown,
	}
}

// IsKnownFormat reports whether format is a recognized table format.
func IsKnownFormat(format string) bool {
	return slices.Contains(Formats(), format)
}

// IsMarkdownFormat reports whether format renders as Markdown.
func IsMarkdownFormat(format string) bool {
	switch format {
	case FormatGitHub, FormatPipe, FormatMarkdown:
		return true
	default:
		return false
	}
}

// NewTableWriter returns the writer that renders format. Markdown formats
// go to MarkdownWriter, everything else to TextWriter; unknown formats fall
// back to FormatSimple.
func NewTableWriter(output io.Writer, format string) TableWriter {
	if IsMarkdownFormat(format) {
		return NewMarkdownWriter(output)
	}
	return NewTextWriter(output, WithFormat(format))
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// countingWriter counts bytes passed through to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
