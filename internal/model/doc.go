// Package model defines the data structures shared by the serializer, the
// tabulate engine and the report writers.
//
// This package contains the following main types:
//   - Collection: the raw per-host, per-task result collection produced by a
//     network-automation run
//   - TaskOutcome: one task's result on one host
//   - Record: a flat, ordered key/value record (one task on one host)
//   - NestedResult: host -> task name -> value, the dictionary shape
//   - HostRecords: host -> []*Record, the list shape
//
// Every container keeps insertion order and encodes to JSON and YAML in that
// order, so hosts and tasks come out the way the automation run produced them.
package model
