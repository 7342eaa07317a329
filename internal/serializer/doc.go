// Package serializer converts a raw result collection into plain nested
// structures that downstream encoders (JSON, YAML, tables) can consume.
//
// Two shapes are produced:
//   - dictionary: host -> task name -> result (or detail record)
//   - list: host -> [{name, result, ...}, ...]
//
// Internal bookkeeping tasks (names starting with "_") and known group tasks
// never appear in either shape. A host-level exception replaces the task's
// own data with a single exception field.
package serializer
