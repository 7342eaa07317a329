package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the number of spaces per YAML nesting level.
const yamlIndent = 2

// YAMLWriter outputs values as a YAML document.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write encodes v as YAML.
func (w *YAMLWriter) Write(v any) (int, error) {
	out := &countingWriter{w: w.output}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(v); err != nil {
		return out.n, err
	}
	if err := enc.Close(); err != nil {
		return out.n, err
	}
	return out.n, nil
}
