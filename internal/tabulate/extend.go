package tabulate

import (
	"reflect"

	"github.com/nao1215/taskfmt/internal/model"
)

// expand replaces every record whose result is a sequence with one record
// per element. A mapping element takes the place of the result field and
// overrides the parent's other fields; any other element replaces the
// result value. An empty sequence produces no rows.
func expand(records []*model.Record) []*model.Record {
	out := make([]*model.Record, 0, len(records))
	for _, r := range records {
		result, _ := r.Get(model.FieldResult)
		items, ok := sequence(result)
		if !ok {
			out = append(out, r)
			continue
		}
		for _, item := range items {
			if fields, ok := mapping(item); ok {
				row := r.Without(model.FieldResult)
				for _, f := range fields {
					row.Set(f.Key, f.Value)
				}
				out = append(out, row)
				continue
			}
			out = append(out, r.Clone().Set(model.FieldResult, item))
		}
	}
	return out
}

// sequence returns the elements of v when v is a slice or an array.
// Strings and byte slices are scalars.
func sequence(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil, string, []byte:
		return nil, false
	case []any:
		return val, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// mapping returns the fields of v when v is a record or a string-keyed map.
// Plain maps yield their fields in sorted key order.
func mapping(v any) ([]model.Field, bool) {
	switch val := v.(type) {
	case *model.Record:
		return val.Fields(), true
	case model.Record:
		return val.Fields(), true
	case map[string]any:
		return model.RecordFromMap(val).Fields(), true
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return model.RecordFromMap(m).Fields(), true
	default:
		return nil, false
	}
}
