package suggest

import (
	"fmt"
	"strings"
)

// DefaultThreshold is the minimum similarity score (0-100) required before
// a candidate field name is offered as a suggestion.
const DefaultThreshold = 60

// Matcher finds the closest known field name for an unrecognized field.
// The candidate list is fixed at construction, so a Matcher is safe for
// concurrent use and produces identical suggestions across calls.
type Matcher struct {
	fields    []string
	threshold int
}

// NewMatcher creates a matcher over the given candidate field names.
// A threshold <= 0 selects DefaultThreshold.
func NewMatcher(fields []string, threshold int) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{
		fields:    fields,
		threshold: threshold,
	}
}

// Best returns the candidate most similar to the final segment of the given
// field path (the text after the last '.'), along with its score. The second
// return value is false when no candidate clears the threshold.
func (m *Matcher) Best(fieldPath string) (string, bool) {
	if len(m.fields) == 0 {
		return "", false
	}

	// Compare against the bare field name, not the full path
	segments := strings.Split(fieldPath, ".")
	name := segments[len(segments)-1]

	bestScore := -1
	var bestMatch string

	for _, field := range m.fields {
		score := Ratio(name, field)
		if score > bestScore {
			bestScore = score
			bestMatch = field
		}
	}

	if bestScore >= m.threshold {
		return bestMatch, true
	}
	return "", false
}

// Suggest returns a human-readable "Did you mean" hint for the given field
// path, or the empty string when no known field is similar enough.
func (m *Matcher) Suggest(fieldPath string) string {
	match, ok := m.Best(fieldPath)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Did you mean '%s'?", match)
}

// Ratio computes a normalized similarity score between two strings on a
// 0-100 scale, derived from the Levenshtein edit distance over runes, so
// accented field names score the same as plain ones. Identical strings
// score 100; strings with no characters in common score 0.
func Ratio(s1, s2 string) int {
	if s1 == s2 {
		return 100
	}

	r1 := []rune(s1)
	r2 := []rune(s2)

	longest := max(len(r1), len(r2))
	if longest == 0 {
		return 100
	}

	dist := levenshteinDistance(r1, r2)
	if dist >= longest {
		return 0
	}
	return (100 * (longest - dist)) / longest
}

// levenshteinDistance computes the Levenshtein distance between two rune
// sequences.
func levenshteinDistance(s1, s2 []rune) int {
	len1 := len(s1)
	len2 := len(s2)

	// Create distance matrix
	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	// Initialize first column and row
	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	// Compute distances
	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // Deletion
				matrix[i][j-1]+1,      // Insertion
				matrix[i-1][j-1]+cost, // Substitution
			)
		}
	}

	return matrix[len1][len2]
}
