package httpx

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	maxRequestIDLen = 64
)

// RequestIDMiddleware gives every request an id. It is echoed in the
// X-Request-Id header and lands in meta.request_id of the catalog envelope.
// A caller id is reused only if acceptRequestID allows it.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := acceptRequestID(r.Header.Get(requestIDHeader))
		if !ok {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), id)))
	})
}

// acceptRequestID keeps short ids made of letters, digits, '.', '_' and '-'
// so they are safe to log and echo back.
func acceptRequestID(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > maxRequestIDLen {
		return "", false
	}
	for _, c := range v {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return "", false
		}
	}
	return v, true
}
