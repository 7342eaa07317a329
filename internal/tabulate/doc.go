// Package tabulate flattens result collections into rows and renders them as
// text tables.
//
// Formatting runs as a fixed chain of stages:
//
//  1. Input resolution: a *model.Collection is serialized in list shape with
//     details and every record is annotated with its host; flat record lists
//     are used as they are.
//  2. Mode resolution: Brief forces a preset, Extend expands list-valued
//     results into one row per element, Custom supplies its own renderer
//     configuration.
//  3. Exclusion: excluded fields are removed from every record.
//  4. Row building: with explicit headers every record becomes a positional
//     row, missing fields rendering as empty cells.
//  5. Rendering through the Backend.
//
// Unsupported input, an unsupported mode, a missing backend and backend
// failures never panic. They are logged and reported as a passthrough
// Outcome that carries the original input and the diagnostic error.
package tabulate
