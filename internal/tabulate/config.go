package tabulate

import (
	"github.com/nao1215/taskfmt/internal/model"
	"github.com/nao1215/taskfmt/internal/report"
)

// Config is the renderer configuration handed to the Backend.
type Config struct {
	// Headers selects the table columns. Unset headers in a Custom mode
	// fall back to the requested headers.
	Headers Headers

	// TableFormat names the table style, see report.Formats.
	// Empty selects the backend default.
	TableFormat string

	// ShowIndex prepends a column with the row number.
	ShowIndex bool
}

// BriefConfig returns the brief preset: grid borders, an index column and
// the host, name, result and exception columns.
func BriefConfig() Config {
	return Config{
		Headers:     HeaderNames(model.FieldHost, model.FieldName, model.FieldResult, model.FieldException),
		TableFormat: report.FormatGrid,
		ShowIndex:   true,
	}
}
