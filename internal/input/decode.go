package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/taskfmt/internal/model"
)

var (
	// ErrUnsupportedDocument is returned when the top-level value is
	// neither a mapping nor a list.
	ErrUnsupportedDocument = errors.New("document must be a mapping of hosts or a list of records")

	// ErrEmptyDocument is returned when the input holds no document.
	ErrEmptyDocument = errors.New("empty document")
)

// Decode reads one document from r. It returns a *model.Collection for a
// top-level mapping and a []*model.Record for a top-level list.
func Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyDocument
	}

	// JSON is decoded directly; pretty-printed JSON may be indented with
	// tabs, which YAML rejects.
	switch trimmed[0] {
	case '{':
		c := model.NewCollection()
		if err := json.Unmarshal(trimmed, c); err != nil {
			return nil, fmt.Errorf("decode collection: %w", err)
		}
		return c, nil
	case '[':
		var records []*model.Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		return nonNil(records), nil
	}

	return decodeYAML(data)
}

func decodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		c := model.NewCollection()
		if err := root.Decode(c); err != nil {
			return nil, fmt.Errorf("decode collection: %w", err)
		}
		return c, nil
	case yaml.SequenceNode:
		var records []*model.Record
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		return nonNil(records), nil
	default:
		return nil, fmt.Errorf("%w: line %d", ErrUnsupportedDocument, root.Line)
	}
}

// nonNil keeps an empty list distinguishable from a missing one.
func nonNil(records []*model.Record) []*model.Record {
	if records == nil {
		return []*model.Record{}
	}
	return records
}
