package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		r := NewRecord(
			Field{Key: "name", Value: "show clock"},
			Field{Key: "result", Value: "12:00"},
		)
		r.Set("changed", false)
		r.Set("name", "show version")

		want := []string{"name", "result", "changed"}
		if diff := cmp.Diff(want, r.Keys()); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
		if v, _ := r.Get("name"); v != "show version" {
			t.Errorf("expected overwritten name, got %v", v)
		}
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var r Record
		if r.Len() != 0 {
			t.Errorf("expected empty record, got %d fields", r.Len())
		}
		r.Set("a", 1)
		if !r.Has("a") {
			t.Error("expected key a to be present")
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		r := NewRecord(Field{Key: "a", Value: 1}, Field{Key: "b", Value: 2})
		c := r.Clone()
		c.Delete("a")
		c.Set("c", 3)

		if diff := cmp.Diff([]string{"a", "b"}, r.Keys()); diff != "" {
			t.Errorf("original modified (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"b", "c"}, c.Keys()); diff != "" {
			t.Errorf("clone keys mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("without drops keys", func(t *testing.T) {
		t.Parallel()

		r := NewRecord(Field{Key: "a", Value: 1}, Field{Key: "b", Value: 2}, Field{Key: "c", Value: 3})
		got := r.Without("b", "missing")
		if diff := cmp.Diff([]string{"a", "c"}, got.Keys()); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
		if r.Len() != 3 {
			t.Errorf("expected original to keep 3 fields, got %d", r.Len())
		}
	})

	t.Run("from map sorts keys", func(t *testing.T) {
		t.Parallel()

		r := RecordFromMap(map[string]any{"zeta": 1, "alpha": 2, "mid": 3})
		if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, r.Keys()); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("json keeps order", func(t *testing.T) {
		t.Parallel()

		r := NewRecord(Field{Key: "name", Value: "x"}, Field{Key: "diff", Value: ""}, Field{Key: "changed", Value: true})
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"name":"x","diff":"","changed":true}`
		if string(data) != want {
			t.Errorf("expected %s, got %s", want, data)
		}
	})

	t.Run("json round trip keeps order", func(t *testing.T) {
		t.Parallel()

		var r Record
		if err := json.Unmarshal([]byte(`{"z":1,"a":"b","m":null}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"z", "a", "m"}, r.Keys()); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml keeps order", func(t *testing.T) {
		t.Parallel()

		r := NewRecord(Field{Key: "name", Value: "x"}, Field{Key: "result", Value: "ok"})
		data, err := yaml.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "name: x\nresult: ok\n"
		if string(data) != want {
			t.Errorf("expected %q, got %q", want, data)
		}
	})
}
