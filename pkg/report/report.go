package report

import (
	"fmt"
	"strings"
)

// Level categorizes the severity of a validation message.
type Level string

const (
	// LevelError marks a structural violation. Any error makes the document invalid.
	LevelError Level = "error"
	// LevelWarning marks an advisory finding, such as an unknown field.
	LevelWarning Level = "warning"
	// LevelInfo marks an informational message.
	LevelInfo Level = "info"
)

// Message is a single validation finding. It is immutable once constructed.
type Message struct {
	Level      Level  `json:"level"`
	FieldPath  string `json:"field_path"` // dotted path to the offending value, "" for document root
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// String formats the message for display.
func (m Message) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s", strings.ToUpper(string(m.Level)), m.Message))
	if m.FieldPath != "" {
		sb.WriteString(fmt.Sprintf(" (at %s)", m.FieldPath))
	}
	if m.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n   suggestion: %s", m.Suggestion))
	}

	return sb.String()
}

// Result is the aggregated outcome of one validation run.
// Validity reflects structural violations only; unknown fields are advisory
// and never make a document invalid.
type Result struct {
	Valid         bool      `json:"valid"`
	Messages      []Message `json:"messages"`
	UnknownFields []string  `json:"unknown_fields"`
}

// Errors returns the error-level messages, in report order.
func (r *Result) Errors() []Message {
	return r.byLevel(LevelError)
}

// Warnings returns the warning-level messages, in report order.
func (r *Result) Warnings() []Message {
	return r.byLevel(LevelWarning)
}

// HasErrors reports whether the result contains any error-level messages.
func (r *Result) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings reports whether the result contains any warning-level messages.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

func (r *Result) byLevel(level Level) []Message {
	var out []Message
	for _, msg := range r.Messages {
		if msg.Level == level {
			out = append(out, msg)
		}
	}
	return out
}

// Summary formats a one-line overview of the result: a success message when
// the document is clean, otherwise pipe-separated error/warning/unknown counts.
func (r *Result) Summary() string {
	if r.Valid && !r.HasWarnings() {
		return "validation passed"
	}

	var parts []string

	if n := len(r.Errors()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, pluralize("error", n)))
	}
	if n := len(r.Warnings()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, pluralize("warning", n)))
	}
	if n := len(r.UnknownFields); n > 0 {
		parts = append(parts, fmt.Sprintf("%d unknown %s", n, pluralize("field", n)))
	}

	if len(parts) == 0 {
		return "validation completed"
	}

	return strings.Join(parts, " | ")
}

// Detailed formats the full multi-section report: the summary line followed
// by errors, warnings, and unknown fields. Empty sections are omitted.
func (r *Result) Detailed() string {
	lines := []string{r.Summary(), ""}

	if r.HasErrors() {
		lines = append(lines, "ERRORS:")
		for _, msg := range r.Errors() {
			lines = append(lines, "  "+msg.String())
		}
		lines = append(lines, "")
	}

	if r.HasWarnings() {
		lines = append(lines, "WARNINGS:")
		for _, msg := range r.Warnings() {
			lines = append(lines, "  "+msg.String())
		}
		lines = append(lines, "")
	}

	if len(r.UnknownFields) > 0 {
		lines = append(lines, "UNKNOWN FIELDS:")
		for _, field := range r.UnknownFields {
			lines = append(lines, fmt.Sprintf("  unknown field: '%s'", field))
		}
		lines = append(lines, "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
