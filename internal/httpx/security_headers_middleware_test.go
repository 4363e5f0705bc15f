package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookcatalog/internal/httpx"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	requests := map[string]func() *http.Request{
		"book lookup": func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/is/12345ONE", nil)
		},
		"missing envelope": func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/author/new", strings.NewReader(`{}`))
		},
		"unknown publication": func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/publications/99", nil)
		},
	}

	for _, hsts := range []bool{false, true} {
		handler := httpx.Chain(catalogRouter(), httpx.SecurityHeadersMiddleware(hsts))
		for name, newRequest := range requests {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, newRequest())

			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"), name)
			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"), name)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"), name)
			assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"), name)
			assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'", name)
			if hsts {
				assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"), name)
			} else {
				assert.Empty(t, w.Header().Get("Strict-Transport-Security"), name)
			}
		}
	}
}
