package report

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nao1215/taskfmt/internal/model"
)

// Table is the input of table writers.
// Exactly one of Rows or Records is expected to be populated: Rows when the
// caller chose explicit headers, Records when headers come from record keys.
type Table struct {
	// Headers names the columns of Rows. Ignored when Records is used.
	Headers []string

	// Rows holds positional cells aligned to Headers.
	Rows [][]any

	// Records holds mapping rows. Headers are the union of their keys in
	// first-seen order.
	Records []*model.Record

	// ShowIndex prepends a column with the zero-based row number.
	ShowIndex bool
}

// Grid resolves the table into string headers and rectangular string rows.
func (t *Table) Grid() ([]string, [][]string) {
	var headers []string
	var rows [][]string

	if t.Records != nil {
		headers = recordKeys(t.Records)
		rows = make([][]string, len(t.Records))
		for i, r := range t.Records {
			row := make([]string, len(headers))
			for j, h := range headers {
				if v, ok := r.Get(h); ok {
					row[j] = FormatCell(v)
				}
			}
			rows[i] = row
		}
	} else {
		headers = append([]string(nil), t.Headers...)
		rows = make([][]string, len(t.Rows))
		for i, cells := range t.Rows {
			row := make([]string, len(headers))
			for j := range headers {
				if j < len(cells) {
					row[j] = FormatCell(cells[j])
				}
			}
			rows[i] = row
		}
	}

	if t.ShowIndex {
		headers = append([]string{""}, headers...)
		for i := range rows {
			rows[i] = append([]string{strconv.Itoa(i)}, rows[i]...)
		}
	}
	return headers, rows
}

// recordKeys returns the union of record keys in first-seen order.
func recordKeys(records []*model.Record) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, r := range records {
		for _, k := range r.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// FormatCell converts a cell value into its display string.
// nil renders as an empty cell; structured values render as compact JSON.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case *model.Record, map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}
