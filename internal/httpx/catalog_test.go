package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/entity"
	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/store"

	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Books []entity.Book `json:"books"`
	} `json:"data"`
	Meta struct {
		RequestID string `json:"request_id"`
		Message   string `json:"message"`
	} `json:"meta"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// catalogRouter serves the book, author and publication routes over a
// freshly seeded store.
func catalogRouter() http.Handler {
	repo := store.NewMemoryFromSnapshot(store.SeedSnapshot())
	return apphttp.NewRouter(apphttp.Handlers{
		Books:        apphttp.NewBookHandler(repo),
		Authors:      apphttp.NewAuthorHandler(repo),
		Publications: apphttp.NewPublicationHandler(repo),
		Catalog:      apphttp.NewCatalogHandler(repo),
	})
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}
