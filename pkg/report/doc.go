// Package report defines the validation result model shared by all
// validation passes.
//
// A Result aggregates the findings of one validation run: structural
// violations at error level, unknown fields at warning level, and the raw
// list of unknown field paths. Validity is determined solely by structural
// violations; warnings never make a document invalid.
//
// Results render in two forms:
//
//   - Summary: one line with error/warning/unknown counts
//   - Detailed: sectioned report with every message, empty sections omitted
//
// Messages and Results are plain values with no shared mutable state, so a
// Result may be inspected and rendered concurrently.
package report
