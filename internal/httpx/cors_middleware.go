package httpx

import "net/http"

// catalogMethods are the methods the catalog routes are registered under.
const catalogMethods = "GET, POST, PUT, DELETE"

// CORSMiddleware lets browsers on allowedOrigins call the catalog. Preflight
// requests stop here: 204 for a listed origin, 403 envelope otherwise.
// Plain requests from unlisted origins pass through without CORS headers and
// the browser blocks the response.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Add("Vary", "Origin")

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if _, ok := allowed[origin]; !ok {
				if preflight {
					JSONError(w, r, http.StatusForbidden, "CORS_ORIGIN_DENIED", "origin "+origin+" is not allowed", nil)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
			if preflight {
				w.Header().Set("Access-Control-Allow-Methods", catalogMethods)
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
				w.Header().Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
