package server

import (
	"context"
	"net/http"

	"github.com/go-sod/qtree/internal/logging"
)

// HandleHealth answers 200 until ctx is done and 503 afterwards.
func HandleHealth(ctx context.Context) http.Handler {
	logger := logging.FromContext(ctx)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx.Err() != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			logger.Errorw("write health response", "error", err)
		}
	})
}
