package tabulate

import (
	"strings"

	"github.com/nao1215/taskfmt/internal/report"
)

// Backend renders a table into text.
type Backend interface {
	Render(t *report.Table, format string) (string, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(t *report.Table, format string) (string, error)

// Render calls f.
func (f BackendFunc) Render(t *report.Table, format string) (string, error) {
	return f(t, format)
}

// DefaultBackend returns the backend built on the report table writers.
func DefaultBackend() Backend {
	return BackendFunc(renderTable)
}

func renderTable(t *report.Table, format string) (string, error) {
	var sb strings.Builder
	if _, err := report.NewTableWriter(&sb, format).WriteTable(t); err != nil {
		return "", err
	}
	return sb.String(), nil
}
