package report

import (
	"encoding/json"
	"io"
)

// prettyIndent is the per-level indentation of pretty-printed output.
const prettyIndent = "  "

// JSONWriter writes serialized results and unrendered records as JSON.
// Ordered model types marshal themselves, so host and task order survive.
type JSONWriter struct {
	baseWriter
	pretty bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint indents nested values by two spaces per level.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.pretty = true
	}
}

// NewJSONWriter creates a JSONWriter writing compact JSON to output.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes v as one JSON document terminated by a newline.
func (w *JSONWriter) Write(v any) (int, error) {
	marshal := json.Marshal
	if w.pretty {
		marshal = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", prettyIndent)
		}
	}

	data, err := marshal(v)
	if err != nil {
		return 0, err
	}
	return w.output.Write(append(data, '\n'))
}
