package server

import (
	"context"
	"net/http"
)

// Routes mounts the Prometheus exporter on /metrics, when one is given, and
// the health check on /health.
func Routes(ctx context.Context, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}
	mux.Handle("/health", HandleHealth(ctx))
	return mux
}
