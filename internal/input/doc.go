// Package input decodes result documents for the command line tool.
//
// A document is JSON or YAML. A top-level mapping is a raw result
// collection (host -> list of task outcomes); a top-level list is an
// already flattened list of records. UTF-8 and UTF-16 byte order marks are
// honoured, so files exported by Windows tooling decode as well.
package input
