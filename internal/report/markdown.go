package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs tables in GitHub-flavored Markdown.
// This format is designed for pasting results into issues, wikis and
// change records.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteTable renders t as a Markdown table.
// Line breaks inside cells become <br> so each row stays on one line.
func (w *MarkdownWriter) WriteTable(t *Table) (int, error) {
	headers, rows := t.Grid()
	if len(headers) == 0 && len(rows) == 0 {
		return 0, nil
	}

	for i, row := range rows {
		escaped := make([]string, len(row))
		for j, cell := range row {
			escaped[j] = escapeCell(cell)
		}
		rows[i] = escaped
	}

	out := &countingWriter{w: w.output}
	md := markdown.NewMarkdown(out)
	md.Table(markdown.TableSet{
		Header: headers,
		Rows:   rows,
	})
	if err := md.Build(); err != nil {
		return out.n, err
	}
	return out.n, nil
}

// escapeCell keeps a cell on one Markdown line.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}
