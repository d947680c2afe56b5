package schema

import "sort"

// KnownFields collects every field name the schema recognizes: for each
// property of every object node, both its bare name and its full dotted
// path from the root. Array items contribute no path segment. The result
// is sorted, so extraction is deterministic for a given schema.
func (s *Schema) KnownFields() []string {
	seen := make(map[string]bool)
	collectFields(s, "", seen)

	fields := make([]string, 0, len(seen))
	for field := range seen {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func collectFields(node *Schema, prefix string, seen map[string]bool) {
	if node == nil {
		return
	}

	for name, prop := range node.Properties {
		fullName := name
		if prefix != "" {
			fullName = prefix + "." + name
		}
		seen[name] = true
		seen[fullName] = true

		collectFields(prop, fullName, seen)
	}

	// Arrays don't contribute a path segment of their own
	collectFields(node.Items, prefix, seen)

	// Composed and shared schemas still declare fields
	for _, sub := range node.AllOf {
		collectFields(sub, prefix, seen)
	}
	for _, sub := range node.AnyOf {
		collectFields(sub, prefix, seen)
	}
	for _, sub := range node.OneOf {
		collectFields(sub, prefix, seen)
	}
	for _, sub := range node.Definitions {
		collectFields(sub, prefix, seen)
	}
}
