package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"vitae-hq/vitae/pkg/report"
	"vitae-hq/vitae/pkg/schema"
	"vitae-hq/vitae/pkg/suggest"
)

// Validator validates résumé documents against a schema and suggests
// corrections for unrecognized fields.
//
// A Validator is built once per schema: the schema tree, its compiled form,
// and the known-field set are all constructed here and immutable afterwards,
// so one instance can validate any number of documents, including
// concurrently.
type Validator struct {
	tree     *schema.Schema
	compiled *gojsonschema.Schema
	matcher  *suggest.Matcher
}

// Option configures a Validator at construction time.
type Option func(*options)

type options struct {
	threshold int
}

// WithThreshold overrides the minimum similarity score (0-100) an unknown
// field must reach against a known field before a suggestion is offered.
func WithThreshold(threshold int) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// New creates a validator from a YAML schema file. A missing or malformed
// schema is fatal: the validator cannot run without one.
func New(schemaPath string, opts ...Option) (*Validator, error) {
	tree, err := schema.Load(schemaPath)
	if err != nil {
		return nil, err
	}
	return fromTree(tree, opts...)
}

// NewFromBytes creates a validator from YAML schema bytes.
func NewFromBytes(data []byte, opts ...Option) (*Validator, error) {
	tree, err := schema.Parse(data)
	if err != nil {
		return nil, err
	}
	return fromTree(tree, opts...)
}

func fromTree(tree *schema.Schema, opts ...Option) (*Validator, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	compiled, err := compile(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{
		tree:     tree,
		compiled: compiled,
		matcher:  suggest.NewMatcher(tree.KnownFields(), o.threshold),
	}, nil
}

// KnownFields returns the field names and dotted paths the schema declares.
func (v *Validator) KnownFields() []string {
	return v.tree.KnownFields()
}

// ValidateData validates an already-parsed document. It always returns a
// Result and never an error: structural violations are accumulated as
// error-level messages, unknown fields as warnings with suggestions where a
// known field is similar enough.
func (v *Validator) ValidateData(data map[string]any) *report.Result {
	structuralMessages, valid := v.structural(Normalize(data))

	unknown := unknownFields(data, v.tree, "")

	messages := structuralMessages
	for _, fieldPath := range unknown {
		messages = append(messages, report.Message{
			Level:      report.LevelWarning,
			FieldPath:  fieldPath,
			Message:    fmt.Sprintf("Unknown field '%s'", fieldPath),
			Suggestion: v.matcher.Suggest(fieldPath),
		})
	}

	return &report.Result{
		Valid:         valid,
		Messages:      messages,
		UnknownFields: unknown,
	}
}

// ValidateFile loads a YAML document from disk and validates it. Load
// failures are recovered into an invalid Result carrying a single
// root-level error message, never returned as an error.
func (v *Validator) ValidateFile(path string) *report.Result {
	raw, err := os.ReadFile(path)
	if err != nil {
		message := fmt.Sprintf("Failed to read data file %s: %v", path, err)
		if errors.Is(err, fs.ErrNotExist) {
			message = fmt.Sprintf("Data file not found: %s", path)
		}
		return loadFailure(message)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return loadFailure(fmt.Sprintf("Error parsing data file %s: %v", path, err))
	}

	return v.ValidateData(data)
}

func loadFailure(message string) *report.Result {
	return &report.Result{
		Valid: false,
		Messages: []report.Message{{
			Level:   report.LevelError,
			Message: message,
		}},
		UnknownFields: []string{},
	}
}
