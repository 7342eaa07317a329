package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/taskfmt/internal/model"
)

// sampleRecords returns flattened records with heterogeneous shapes.
func sampleRecords() []*model.Record {
	return []*model.Record{
		model.NewRecord(
			model.Field{Key: model.FieldName, Value: "show clock"},
			model.Field{Key: model.FieldResult, Value: "12:00"},
			model.Field{Key: model.FieldHost, Value: "R1"},
		),
		model.NewRecord(
			model.Field{Key: model.FieldName, Value: "show version"},
			model.Field{Key: model.FieldException, Value: "connection lost"},
			model.Field{Key: model.FieldHost, Value: "R2"},
		),
	}
}

func TestTableGrid(t *testing.T) {
	t.Parallel()

	t.Run("records use key union in first-seen order", func(t *testing.T) {
		t.Parallel()

		table := &Table{Records: sampleRecords()}
		headers, rows := table.Grid()

		wantHeaders := []string{"name", "result", "host", "exception"}
		if diff := cmp.Diff(wantHeaders, headers); diff != "" {
			t.Errorf("headers mismatch (-want +got):\n%s", diff)
		}
		wantRows := [][]string{
			{"show clock", "12:00", "R1", ""},
			{"show version", "", "R2", "connection lost"},
		}
		if diff := cmp.Diff(wantRows, rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rows are padded and truncated to headers", func(t *testing.T) {
		t.Parallel()

		table := &Table{
			Headers: []string{"host", "name"},
			Rows: [][]any{
				{"R1"},
				{"R2", "show clock", "extra"},
			},
		}
		_, rows := table.Grid()

		want := [][]string{{"R1", ""}, {"R2", "show clock"}}
		if diff := cmp.Diff(want, rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("show index prepends row numbers", func(t *testing.T) {
		t.Parallel()

		table := &Table{
			Headers:   []string{"host"},
			Rows:      [][]any{{"R1"}, {"R2"}},
			ShowIndex: true,
		}
		headers, rows := table.Grid()

		if diff := cmp.Diff([]string{"", "host"}, headers); diff != "" {
			t.Errorf("headers mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([][]string{{"0", "R1"}, {"1", "R2"}}, rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("does not share header slice with caller", func(t *testing.T) {
		t.Parallel()

		headers := []string{"host"}
		table := &Table{Headers: headers, ShowIndex: true}
		_, _ = table.Grid()

		if diff := cmp.Diff([]string{"host"}, headers); diff != "" {
			t.Errorf("caller headers modified (-want +got):\n%s", diff)
		}
	})
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "12:00", want: "12:00"},
		{name: "bool", in: true, want: "true"},
		{name: "int", in: 42, want: "42"},
		{name: "float", in: 1.5, want: "1.5"},
		{name: "error", in: errors.New("timeout"), want: "timeout"},
		{name: "slice", in: []any{"a", 1}, want: `["a",1]`},
		{name: "map", in: map[string]any{"b": 2, "a": 1}, want: `{"a":1,"b":2}`},
		{
			name: "record",
			in:   model.NewRecord(model.Field{Key: "z", Value: 1}, model.Field{Key: "a", Value: 2}),
			want: `{"z":1,"a":2}`,
		},
		{name: "other", in: int64(7), want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCell(tt.in); got != tt.want {
				t.Errorf("FormatCell(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders headers verbatim", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)
		n, err := w.WriteTable(&Table{Records: sampleRecords()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected byte count %d, got %d", buf.Len(), n)
		}

		output := buf.String()
		for _, want := range []string{"name", "exception", "show clock", "connection lost", "R2"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, output)
			}
		}
		if strings.Contains(output, "EXCEPTION") {
			t.Error("expected headers not to be upper-cased")
		}
	})

	t.Run("grid draws borders", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf, WithFormat(FormatGrid))
		_, err := w.WriteTable(&Table{
			Headers: []string{"host", "name"},
			Rows:    [][]any{{"R1", "show clock"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "+") || !strings.Contains(output, "|") {
			t.Errorf("expected grid borders, got:\n%s", output)
		}
	})

	t.Run("empty table writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewTextWriter(&buf).WriteTable(&Table{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 || buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes pipe table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		_, err := w.WriteTable(&Table{
			Headers: []string{"name", "result"},
			Rows:    [][]any{{"show clock", "12:00"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "| name | result |") {
			t.Errorf("expected header row, got:\n%s", output)
		}
		if !strings.Contains(output, "| show clock | 12:00 |") {
			t.Errorf("expected data row, got:\n%s", output)
		}
	})

	t.Run("keeps multi-line cells on one row", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		_, err := w.WriteTable(&Table{
			Headers: []string{"result"},
			Rows:    [][]any{{"line1\r\nline2|x"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), `| line1<br>line2\|x |`) {
			t.Errorf("expected escaped cell, got:\n%s", buf.String())
		}
	})
}

func TestNewTableWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format   string
		markdown bool
	}{
		{format: FormatGitHub, markdown: true},
		{format: FormatPipe, markdown: true},
		{format: FormatMarkdown, markdown: true},
		{format: FormatGrid, markdown: false},
		{format: "fancy_outline", markdown: false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			w := NewTableWriter(&bytes.Buffer{}, tt.format)
			_, isMarkdown := w.(*MarkdownWriter)
			if isMarkdown != tt.markdown {
				t.Errorf("format %q: expected markdown=%v, got %T", tt.format, tt.markdown, w)
			}
		})
	}

	if IsKnownFormat("fancy_outline") {
		t.Error("expected unknown format to be rejected")
	}
	if !IsKnownFormat(FormatRounded) {
		t.Error("expected rounded to be known")
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output keeps record order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		_, err := w.Write(sampleRecords()[0])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := `{"name":"show clock","result":"12:00","host":"R1"}` + "\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())
		_, err := w.Write(sampleRecords())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n    \"name\": \"show clock\"") {
			t.Errorf("expected indented output, got:\n%s", buf.String())
		}

		var decoded []map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(decoded) != 2 {
			t.Errorf("expected 2 records, got %d", len(decoded))
		}
	})
}

func TestYAMLWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewYAMLWriter(&buf)
	n, err := w.Write(sampleRecords()[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("expected byte count %d, got %d", buf.Len(), n)
	}

	want := "name: show version\nexception: connection lost\nhost: R2\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
}
