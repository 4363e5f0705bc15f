package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bookcatalog/internal/activity"
	"bookcatalog/internal/config"
	"bookcatalog/internal/store"
	"bookcatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Addr:            ":0",
		LogLevel:        "info",
		RateLimitBurst:  20,
		MaxBodyBytes:    1 << 20,
		ActivityDepth:   3,
		ShutdownTimeout: time.Second,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHandler_ServesCatalogRoutes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := store.NewMemoryFromSnapshot(store.SeedSnapshot())
	h := newHandler(ctx, testConfig(), repo, activity.NewMemory(3), discardLogger())

	for _, path := range []string{"/books", "/author", "/publications", "/is/12345ONE", "/store", "/integrity", "/healthz", "/readyz"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestNewHandler_RateLimitEnabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	h := newHandler(ctx, cfg, store.NewMemory(), activity.NewMemory(3), discardLogger())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNewHandler_BodyLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testConfig()
	cfg.MaxBodyBytes = 16
	h := newHandler(ctx, cfg, store.NewMemory(), activity.NewMemory(3), discardLogger())

	body := `{"newBook":{"ISBN":"0123456789012345"}}`
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/book/new", strings.NewReader(body)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestOpenStore(t *testing.T) {
	t.Run("builtin seed", func(t *testing.T) {
		repo, err := openStore(testConfig(), discardLogger())
		require.NoError(t, err)
		summary, err := repo.Summary(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Books)
	})

	t.Run("seed file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(p, []byte(`{"books":[{"ISBN":"X","title":"Only"}],"authors":[],"publications":[]}`), 0o644))

		cfg := testConfig()
		cfg.SeedFile = p
		repo, err := openStore(cfg, discardLogger())
		require.NoError(t, err)
		summary, err := repo.Summary(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Books)
	})

	t.Run("unreadable seed file", func(t *testing.T) {
		cfg := testConfig()
		cfg.SeedFile = filepath.Join(t.TempDir(), "missing.json")
		_, err := openStore(cfg, discardLogger())
		assert.Error(t, err)
	})
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := testConfig()
	cfg.Addr = "127.0.0.1:0"

	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, discardLogger()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestNewHandler_CreateBookEnvelope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newHandler(ctx, testConfig(), store.NewMemory(), activity.NewMemory(3), discardLogger())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/book/new", map[string]any{"newBook": testutil.TestBook}))

	resp := testutil.RecordHTTPResponse(w)
	testutil.AssertResponseCode(t, resp.Code, http.StatusCreated)
	testutil.AssertResponseBody(t, resp.Body, "success", true)
	meta, _ := resp.Body["meta"].(map[string]interface{})
	testutil.AssertResponseBody(t, meta, "message", "Book was Added!")
}
