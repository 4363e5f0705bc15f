package httpx

import (
	"context"
	"log/slog"
	"net/http"
)

// ActivityRecorder decouples the middleware from the activity backend.
type ActivityRecorder interface {
	Record(ctx context.Context, username, method, route string) error
}

// ActivityMiddleware records method and path for requests that carry a
// ?username= query parameter. A failed write is logged and the request
// proceeds.
func ActivityMiddleware(recorder ActivityRecorder, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if username := r.URL.Query().Get("username"); username != "" && recorder != nil {
				if err := recorder.Record(r.Context(), username, r.Method, r.URL.Path); err != nil {
					logger.Warn("activity not recorded",
						"username", username,
						"request_id", RequestIDFrom(r),
						"error", err,
					)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
