// Vitae validates structured résumé data against a schema before document
// generation, reporting actionable errors, warnings, and field-name
// suggestions.
//
// Usage:
//
//	# Validate a résumé against a schema
//	vitae validate --schema schema.yml --file resume.yml
//
//	# Validate every résumé in a directory, JSON output for CI
//	vitae validate --schema schema.yml --dir resumes/ --format json
//
//	# Revalidate on every save, with Prometheus metrics
//	vitae watch --schema schema.yml --path resumes/ --metrics-addr :9090
//
//	# Show past validation runs
//	vitae history --limit 20
//
//	# Show version information
//	vitae version
package main

func main() {
	Execute()
}
