package httpx

import (
	"fmt"
	"net/http"
)

// RequestSizeLimitMiddleware caps request bodies at maxBytes. A declared
// Content-Length over the cap is refused with 413 before routing. Bodies
// without a length are cut off by http.MaxBytesReader and the handler's
// decoder reports the same 413.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	message := fmt.Sprintf("request body exceeds %d bytes", maxBytes)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", message, nil)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
