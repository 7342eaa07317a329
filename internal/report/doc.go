// Package report provides output writers for serialized results and tables.
//
// This package contains writers for different output formats:
//   - TextWriter: plain-text tables for terminal display (tablewriter)
//   - MarkdownWriter: GitHub-flavored Markdown tables
//   - JSONWriter: structured JSON for tool integration
//   - YAMLWriter: YAML for humans and configuration pipelines
//
// Table writers consume a Table, which is either a list of positional rows
// aligned to explicit headers or a list of records whose headers are derived
// from their keys. Either way the rendered table is rectangular: a field a
// record does not carry renders as an empty cell.
package report
