// Package metrics exposes Prometheus metrics for validation runs.
//
// Metrics are registered on a dedicated registry so embedding applications
// never collide with the process-global default registry. The watch command
// serves them over HTTP when a metrics address is configured.
package metrics
