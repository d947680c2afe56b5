// Package suggest provides "did you mean" field-name suggestions based on
// Levenshtein edit distance.
//
// A Matcher is built once from the set of field names a schema recognizes
// and then queried per unknown field. Similarity is normalized to a 0-100
// scale; candidates below the threshold (default 60) are never suggested,
// so wildly different names produce no suggestion at all.
package suggest
