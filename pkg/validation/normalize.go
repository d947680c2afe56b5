package validation

import "time"

// dateLayout is the canonical string form for date and timestamp scalars.
const dateLayout = "2006-01-02"

// Normalize rebuilds a decoded YAML document with every date/time scalar
// converted to its canonical "YYYY-MM-DD" string form. YAML decodes bare
// dates (e.g. 2021-06-01) into time.Time values, but schemas express dates
// as formatted strings, so without this pass every native date would be a
// type violation.
//
// Containers are rebuilt rather than mutated; all other scalars pass
// through unchanged. The input document is never modified.
func Normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	case time.Time:
		return v.Format(dateLayout)
	default:
		return value
	}
}
