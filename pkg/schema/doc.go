// Package schema loads the declarative YAML schema that describes an
// acceptable résumé document and exposes it as an immutable tree.
//
// Beyond the tree itself, the package derives the known-field set: every
// property name the schema declares anywhere, both as a bare name and as a
// dotted path from the root. The suggestion engine matches misspelled
// fields against this set.
//
// Load fails with a *LoadError when the schema file is missing or
// malformed; a validator cannot operate without a schema, so this is a
// construction-time failure rather than a recoverable validation finding.
package schema
