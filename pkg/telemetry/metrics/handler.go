package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler exposing the registered metrics in the
// Prometheus exposition format. It is typically mounted at "/metrics" by
// the watch command when a metrics address is configured.
func (v *Validation) Handler() http.Handler {
	return promhttp.HandlerFor(
		v.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
		},
	)
}
