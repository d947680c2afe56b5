package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"vitae-hq/vitae/pkg/report"
	"vitae-hq/vitae/pkg/schema"
)

// rootField is the path gojsonschema reports for violations at the
// document root; we report those with an empty field path instead.
const rootField = "(root)"

// structural validates the normalized document against the compiled schema
// and returns every violation found, classified by the failing constraint.
// The boolean is the overall validity: false iff at least one violation.
func (v *Validator) structural(normalized any) ([]report.Message, bool) {
	result, err := v.compiled.Validate(gojsonschema.NewGoLoader(normalized))
	if err != nil {
		// The document could not be handed to the validator at all
		// (e.g. a value that cannot be represented as JSON).
		return []report.Message{{
			Level:   report.LevelError,
			Message: fmt.Sprintf("Document could not be validated: %v", err),
		}}, false
	}

	if result.Valid() {
		return nil, true
	}

	messages := make([]report.Message, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, v.classify(desc))
	}
	return messages, false
}

// classify converts one schema violation into a tailored message keyed by
// the failing constraint kind. Anything unrecognized keeps the validator's
// own description unmodified.
func (v *Validator) classify(desc gojsonschema.ResultError) report.Message {
	path := fieldPath(desc)
	var message string

	switch desc.Type() {
	case "required":
		// The violated schema carries the missing field name as
		// structured metadata; never parse it out of the message text.
		message = fmt.Sprintf("Required field '%v' is missing", desc.Details()["property"])
	case "invalid_type":
		message = fmt.Sprintf("Expected %v, got %v", desc.Details()["expected"], desc.Details()["given"])
	case "format":
		message = fmt.Sprintf("Invalid format: %s", desc.Description())
	case "pattern":
		message = "Value doesn't match required pattern"
	case "enum":
		message = fmt.Sprintf("Value must be one of: %s", v.allowedValues(path, desc))
	case "string_gte", "string_lte":
		message = fmt.Sprintf("String length validation failed: %s", desc.Description())
	case "array_min_items", "array_max_items":
		message = fmt.Sprintf("Array size validation failed: %s", desc.Description())
	default:
		message = desc.Description()
	}

	return report.Message{
		Level:     report.LevelError,
		FieldPath: path,
		Message:   message,
	}
}

// allowedValues formats the enum values declared at the offending path as a
// comma-separated list of quoted values.
func (v *Validator) allowedValues(path string, desc gojsonschema.ResultError) string {
	node := v.tree.Resolve(path)
	if node == nil || len(node.Enum) == 0 {
		// Path resolution can miss for composed schemas; fall back to
		// the validator's own pre-joined list.
		return fmt.Sprintf("%v", desc.Details()["allowed"])
	}

	quoted := make([]string, len(node.Enum))
	for i, value := range node.Enum {
		quoted[i] = fmt.Sprintf("'%v'", value)
	}
	return strings.Join(quoted, ", ")
}

// fieldPath maps gojsonschema's field notation to the report notation:
// dot-joined keys and indices, with the document root as the empty string.
func fieldPath(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if field == rootField {
		return ""
	}
	return field
}

func compile(tree *schema.Schema) (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(tree))
}
