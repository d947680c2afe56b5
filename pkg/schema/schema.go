package schema

import (
	"strconv"
	"strings"
)

// Schema is one node of the validation schema tree. A node either carries
// scalar constraints (type, pattern, enum, bounds, format) or describes a
// composite: an object with named properties or an array with a single
// item schema.
//
// The tree is built once by Load or Parse and never mutated afterwards, so
// it is safe to share across validations. The struct is JSON-tagged with
// the standard JSON Schema keyword names so a node can be handed directly
// to a JSON Schema compiler.
type Schema struct {
	Type        string             `yaml:"type,omitempty" json:"type,omitempty"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required    []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Items       *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	Enum        []any              `yaml:"enum,omitempty" json:"enum,omitempty"`
	Pattern     string             `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Format      string             `yaml:"format,omitempty" json:"format,omitempty"`
	MinLength   *int               `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength   *int               `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinItems    *int               `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems    *int               `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`

	// Composition and reuse keywords. Known-field extraction descends into
	// these so composed schemas still contribute their property names.
	AllOf       []*Schema          `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf       []*Schema          `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf       []*Schema          `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Definitions map[string]*Schema `yaml:"definitions,omitempty" json:"definitions,omitempty"`
}

// IsObject reports whether this node describes an object with declared
// properties. Unknown-field detection only applies at such nodes.
func (s *Schema) IsObject() bool {
	return s != nil && len(s.Properties) > 0
}

// IsArrayOfObjects reports whether this node describes an array whose
// elements are objects with declared properties.
func (s *Schema) IsArrayOfObjects() bool {
	return s != nil && s.Items.IsObject()
}

// Resolve walks the tree along a dot-joined key/index path and returns the
// schema node describing that location, or nil if the path leaves the tree.
// Numeric segments index into array items; the empty path is the root.
func (s *Schema) Resolve(fieldPath string) *Schema {
	if s == nil || fieldPath == "" {
		return s
	}

	node := s
	for _, segment := range strings.Split(fieldPath, ".") {
		if node == nil {
			return nil
		}
		if _, err := strconv.Atoi(segment); err == nil && node.Items != nil {
			node = node.Items
			continue
		}
		node = node.Properties[segment]
	}
	return node
}
