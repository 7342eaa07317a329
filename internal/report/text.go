package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// TextWriter outputs plain-text tables for terminal display.
// Cells may span several lines; multi-line device output stays readable.
type TextWriter struct {
	baseWriter

	// format is one of the text table formats (simple, plain, grid, ...).
	format string
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithFormat selects the table format. Unknown names fall back to simple.
func WithFormat(format string) TextWriterOption {
	return func(w *TextWriter) {
		w.format = format
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		format:     FormatSimple,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteTable renders t as a text table.
func (w *TextWriter) WriteTable(t *Table) (int, error) {
	headers, rows := t.Grid()
	if len(headers) == 0 && len(rows) == 0 {
		return 0, nil
	}

	out := &countingWriter{w: w.output}
	table := tablewriter.NewTable(out,
		tablewriter.WithRenderer(renderer.NewBlueprint(rendition(w.format))),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
		tablewriter.WithHeaderAutoWrap(tw.WrapNone),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return out.n, err
	}
	if err := table.Render(); err != nil {
		return out.n, err
	}
	return out.n, nil
}

// rendition maps a format name to tablewriter border and line settings.
func rendition(format string) tw.Rendition {
	switch format {
	case FormatGrid:
		return boxed(tw.StyleASCII)
	case FormatRounded:
		return boxed(tw.StyleRounded)
	case FormatHeavy:
		return boxed(tw.StyleHeavy)
	case FormatDouble:
		return boxed(tw.StyleDouble)
	case FormatPlain:
		return tw.Rendition{
			Borders: tw.BorderNone,
			Symbols: tw.NewSymbols(tw.StyleASCII),
			Settings: tw.Settings{
				Separators: tw.SeparatorsNone,
				Lines:      tw.LinesNone,
			},
		}
	default:
		return tw.Rendition{
			Borders: tw.BorderNone,
			Symbols: tw.NewSymbols(tw.StyleASCII),
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader:     tw.Off,
					ShowFooter:     tw.Off,
					BetweenRows:    tw.Off,
					BetweenColumns: tw.Off,
				},
				Lines: tw.Lines{
					ShowTop:        tw.Off,
					ShowBottom:     tw.Off,
					ShowHeaderLine: tw.On,
					ShowFooterLine: tw.Off,
				},
			},
		}
	}
}

// boxed returns a fully bordered rendition with a line between rows.
func boxed(style tw.BorderStyle) tw.Rendition {
	return tw.Rendition{
		Borders: tw.Border{Left: tw.On, Right: tw.On, Top: tw.On, Bottom: tw.On},
		Symbols: tw.NewSymbols(style),
		Settings: tw.Settings{
			Separators: tw.Separators{
				ShowHeader:     tw.On,
				BetweenRows:    tw.On,
				BetweenColumns: tw.On,
			},
			Lines: tw.Lines{
				ShowTop:        tw.On,
				ShowBottom:     tw.On,
				ShowHeaderLine: tw.On,
			},
		},
	}
}
