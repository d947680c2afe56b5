// Package validation is the core validation engine: it checks résumé
// documents against a schema and reports actionable errors, warnings, and
// field-name suggestions.
//
// # Pipeline
//
// One validation run performs three passes:
//
//  1. Normalization: native date/time scalars are rewritten to canonical
//     "YYYY-MM-DD" strings so schemas can express dates as plain strings.
//  2. Structural validation: the normalized document is checked against the
//     compiled schema. Every violation is enumerated in a single pass and
//     classified by failing constraint (required, type, format, pattern,
//     enum, length, size); nothing short-circuits.
//  3. Unknown-field detection: the original document's keys are diffed
//     against the schema's declared properties at every nesting level,
//     including through array elements. Each unknown field becomes a
//     warning, with a "did you mean" suggestion when a known field name is
//     similar enough.
//
// Structural violations determine validity; unknown fields are advisory.
//
// # Usage
//
//	v, err := validation.New("schema.yml")
//	if err != nil {
//	    return err // no schema, no validator
//	}
//
//	result := v.ValidateFile("resume.yml")
//	if !result.Valid {
//	    fmt.Println(result.Detailed())
//	}
//
// ValidateData and ValidateFile always return a Result; input problems are
// folded into the Result rather than raised, so callers have one decision
// point.
package validation
