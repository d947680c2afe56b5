package validation

import (
	"fmt"
	"sort"

	"vitae-hq/vitae/pkg/schema"
)

// unknownFields recursively diffs the keys present in the data against the
// properties the schema declares at the same nesting level. It works on the
// ORIGINAL (non-normalized) document so reported paths reflect exactly what
// the author wrote.
//
// Declared properties that the schema describes as objects are descended
// into; declared array-of-object properties are descended per element with
// an [index] path suffix. Values the schema describes as scalars are
// leaves, even when the data nests further structure beneath them. Keys are
// visited in sorted order so repeated runs produce identical output.
func unknownFields(data map[string]any, node *schema.Schema, path string) []string {
	if !node.IsObject() {
		return nil
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var unknown []string

	// Undeclared keys at this level
	for _, key := range keys {
		if _, declared := node.Properties[key]; !declared {
			unknown = append(unknown, joinPath(path, key))
		}
	}

	// Descend into declared structured values
	for _, key := range keys {
		prop, declared := node.Properties[key]
		if !declared {
			continue
		}
		keyPath := joinPath(path, key)

		switch value := data[key].(type) {
		case map[string]any:
			if prop.IsObject() {
				unknown = append(unknown, unknownFields(value, prop, keyPath)...)
			}
		case []any:
			if !prop.IsArrayOfObjects() {
				continue
			}
			for i, element := range value {
				item, ok := element.(map[string]any)
				if !ok {
					continue
				}
				elementPath := fmt.Sprintf("%s[%d]", keyPath, i)
				unknown = append(unknown, unknownFields(item, prop.Items, elementPath)...)
			}
		}
	}

	return unknown
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
