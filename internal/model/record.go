package model

import (
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Field names used in flat records.
const (
	FieldHost      = "host"
	FieldName      = "name"
	FieldResult    = "result"
	FieldChanged   = "changed"
	FieldDiff      = "diff"
	FieldFailed    = "failed"
	FieldException = "exception"
)

// Record is a flat, ordered key/value record describing one task on one host.
// Keys keep their insertion order; overwriting a key keeps its position.
//
// The zero value is an empty record ready to use.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// Field is a single key/value pair used to build records.
type Field struct {
	Key   string
	Value any
}

// NewRecord creates a record holding fields in the given order.
func NewRecord(fields ...Field) *Record {
	r := &Record{fields: orderedmap.New[string, any](len(fields))}
	for _, f := range fields {
		r.fields.Set(f.Key, f.Value)
	}
	return r
}

// RecordFromMap creates a record from a plain map. Go maps carry no order,
// so keys are inserted in sorted order.
func RecordFromMap(m map[string]any) *Record {
	r := &Record{fields: orderedmap.New[string, any](len(m))}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		r.fields.Set(k, m[k])
	}
	return r
}

func (r *Record) init() {
	if r.fields == nil {
		r.fields = orderedmap.New[string, any]()
	}
}

// Set stores value under key and returns the record for chaining.
func (r *Record) Set(key string, value any) *Record {
	r.init()
	r.fields.Set(key, value)
	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil || r.fields == nil {
		return nil, false
	}
	return r.fields.Get(key)
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Delete removes key from the record.
func (r *Record) Delete(key string) {
	if r == nil || r.fields == nil {
		return
	}
	r.fields.Delete(key)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil || r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Keys returns field names in order.
func (r *Record) Keys() []string {
	if r == nil || r.fields == nil {
		return nil
	}
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Fields returns the key/value pairs in order.
func (r *Record) Fields() []Field {
	if r == nil || r.fields == nil {
		return nil
	}
	fields := make([]Field, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		fields = append(fields, Field{Key: pair.Key, Value: pair.Value})
	}
	return fields
}

// Clone returns a shallow copy of the record. Values are shared, the key
// order and key set are independent.
func (r *Record) Clone() *Record {
	return NewRecord(r.Fields()...)
}

// Without returns a copy of the record without the given keys.
func (r *Record) Without(keys ...string) *Record {
	out := r.Clone()
	for _, k := range keys {
		out.Delete(k)
	}
	return out
}

// MarshalJSON implements json.Marshaler, keeping field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	r.init()
	return r.fields.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler, keeping field order.
func (r *Record) UnmarshalJSON(data []byte) error {
	r.fields = orderedmap.New[string, any]()
	return r.fields.UnmarshalJSON(data)
}

// MarshalYAML implements yaml.Marshaler, keeping field order.
func (r *Record) MarshalYAML() (interface{}, error) {
	r.init()
	return r.fields.MarshalYAML()
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping field order.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	r.fields = orderedmap.New[string, any]()
	return r.fields.UnmarshalYAML(value)
}
