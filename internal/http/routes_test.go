package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookcatalog/internal/activity"
	"bookcatalog/internal/entity"
	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogData struct {
	Books        []entity.Book        `json:"books"`
	Authors      []entity.Author      `json:"authors"`
	Publications []entity.Publication `json:"publications"`
}

type response struct {
	Success bool           `json:"success"`
	Data    catalogData    `json:"data"`
	Meta    map[string]any `json:"meta"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

// newTestServer wires a fresh seeded store behind the same middleware the
// api binary uses, minus rate limiting.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	repo := store.NewMemoryFromSnapshot(store.SeedSnapshot())
	rec := activity.NewMemory(3)
	router := apphttp.NewRouter(apphttp.Handlers{
		Books:        apphttp.NewBookHandler(repo),
		Authors:      apphttp.NewAuthorHandler(repo),
		Publications: apphttp.NewPublicationHandler(repo),
		Catalog:      apphttp.NewCatalogHandler(repo),
		Activity:     apphttp.NewActivityHandler(rec),
		Health:       apphttp.NewHealthHandler(rec),
	})
	handler := httpx.Chain(router,
		httpx.RecoveryMiddleware(nil),
		httpx.RequestIDMiddleware,
		httpx.SecurityHeadersMiddleware(false),
		httpx.RequestSizeLimitMiddleware(1<<20),
		httpx.ActivityMiddleware(rec, nil),
	)
	return &testServer{t: t, handler: handler}
}

func (s *testServer) do(method, target, body string) (int, response) {
	s.t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)

	var resp response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w.Code, resp
}

func bookISBNs(books []entity.Book) []string {
	out := []string{}
	for _, b := range books {
		out = append(out, b.ISBN)
	}
	return out
}

func authorIDs(authors []entity.Author) []int {
	out := []int{}
	for _, a := range authors {
		out = append(out, a.ID)
	}
	return out
}

func TestRoutes_GetByISBN(t *testing.T) {
	s := newTestServer(t)

	for _, isbn := range []string{"12345ONE", "12345TWO"} {
		code, resp := s.do(http.MethodGet, "/is/"+isbn, "")
		require.Equal(t, http.StatusOK, code)
		require.Len(t, resp.Data.Books, 1)
		assert.Equal(t, isbn, resp.Data.Books[0].ISBN)
	}

	code, resp := s.do(http.MethodGet, "/is/123", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "no book found for ISBN 123", resp.Error.Message)

	code, resp = s.do(http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"12345ONE", "12345TWO"}, bookISBNs(resp.Data.Books))
}

func TestRoutes_CreateBookAppendsUnmodified(t *testing.T) {
	s := newTestServer(t)

	body := `{"newBook":{"ISBN":"12345THREE","title":"GoLang","authors":[3],"language":"EN","pubDate":"2022-01-01","numOfPage":250,"category":["Tech"],"publication":7}}`
	code, resp := s.do(http.MethodPost, "/book/new", body)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Book was Added!", resp.Meta["message"])

	_, resp = s.do(http.MethodGet, "/books", "")
	require.Equal(t, []string{"12345ONE", "12345TWO", "12345THREE"}, bookISBNs(resp.Data.Books))
	assert.Equal(t, entity.Book{
		ISBN:        "12345THREE",
		Title:       "GoLang",
		Authors:     []int{3},
		Language:    "EN",
		PubDate:     "2022-01-01",
		NumOfPage:   250,
		Category:    []string{"Tech"},
		Publication: 7,
	}, resp.Data.Books[2])

	code, _ = s.do(http.MethodPost, "/book/new", body)
	assert.Equal(t, http.StatusConflict, code)
	_, resp = s.do(http.MethodGet, "/books", "")
	assert.Len(t, resp.Data.Books, 3)
}

func TestRoutes_UpdateTitleChangesOnlyTitle(t *testing.T) {
	s := newTestServer(t)

	_, before := s.do(http.MethodGet, "/is/12345ONE", "")
	code, _ := s.do(http.MethodPut, "/book/update/12345ONE", `{"bookTitle":"Node.js in Action"}`)
	require.Equal(t, http.StatusOK, code)
	_, after := s.do(http.MethodGet, "/is/12345ONE", "")

	want := before.Data.Books[0]
	want.Title = "Node.js in Action"
	assert.Equal(t, want, after.Data.Books[0])

	code, _ = s.do(http.MethodPut, "/book/update/missing", `{"bookTitle":"x"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_LinkAuthorIsVisibleFromBothSides(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPut, "/book/author/update/12345ONE", `{"newAuthor":2}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "New Author was added", resp.Meta["message"])

	_, resp = s.do(http.MethodGet, "/author/12345ONE", "")
	assert.Equal(t, []int{1, 2}, authorIDs(resp.Data.Authors))

	_, resp = s.do(http.MethodGet, "/a/2", "")
	assert.Equal(t, []string{"12345ONE", "12345TWO"}, bookISBNs(resp.Data.Books))

	code, _ = s.do(http.MethodPut, "/book/author/update/12345ONE", `{"newAuthor":99}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_UnlinkAuthorCleansBothSides(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodDelete, "/book/delete/author/12345ONE/1", "")
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/author/12345ONE", "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = s.do(http.MethodGet, "/a/1", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_DeleteBookTouchesNothingElse(t *testing.T) {
	s := newTestServer(t)

	_, authorsBefore := s.do(http.MethodGet, "/author", "")
	_, pubsBefore := s.do(http.MethodGet, "/publications", "")

	code, resp := s.do(http.MethodDelete, "/book/delete/12345ONE", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"12345TWO"}, bookISBNs(resp.Data.Books))

	_, authorsAfter := s.do(http.MethodGet, "/author", "")
	_, pubsAfter := s.do(http.MethodGet, "/publications", "")
	assert.Equal(t, authorsBefore.Data.Authors, authorsAfter.Data.Authors)
	assert.Equal(t, pubsBefore.Data.Publications, pubsAfter.Data.Publications)

	code, again := s.do(http.MethodDelete, "/book/delete/12345ONE", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, resp.Data.Books, again.Data.Books)
}

func TestRoutes_DeleteAuthorDoesNotCascade(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodDelete, "/author/delete/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []int{2}, authorIDs(resp.Data.Authors))

	_, resp = s.do(http.MethodGet, "/is/12345ONE", "")
	assert.Equal(t, []int{1}, resp.Data.Books[0].Authors)

	code, again := s.do(http.MethodDelete, "/author/delete/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []int{2}, authorIDs(again.Data.Authors))

	_, integrity := s.do(http.MethodGet, "/integrity", "")
	assert.True(t, integrity.Success)
}

func TestRoutes_Category(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodGet, "/c/Fiction", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"12345ONE", "12345TWO"}, bookISBNs(resp.Data.Books))

	code, resp = s.do(http.MethodGet, "/c/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "no book found for the category nonexistent", resp.Error.Message)
}

func TestRoutes_Publications(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPut, "/publication/update/book/12345ONE", `{"pubId":2}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "successfully updated publication", resp.Meta["message"])

	// linking appends on both sides; publication 1 still lists the book
	_, resp = s.do(http.MethodGet, "/pub/12345ONE", "")
	require.Len(t, resp.Data.Publications, 2)
	assert.Equal(t, 1, resp.Data.Publications[0].ID)
	assert.Equal(t, 2, resp.Data.Publications[1].ID)

	_, resp = s.do(http.MethodGet, "/is/12345ONE", "")
	assert.Equal(t, 2, resp.Data.Books[0].Publication)

	code, _ = s.do(http.MethodDelete, "/publication/delete/book/12345ONE/2", "")
	require.Equal(t, http.StatusOK, code)
	_, resp = s.do(http.MethodGet, "/is/12345ONE", "")
	assert.Equal(t, entity.NoPublication, resp.Data.Books[0].Publication)

	// unlinking resets the book even when it points at another publication
	code, _ = s.do(http.MethodDelete, "/publication/delete/book/12345TWO/2", "")
	require.Equal(t, http.StatusOK, code)
	_, resp = s.do(http.MethodGet, "/is/12345TWO", "")
	assert.Equal(t, entity.NoPublication, resp.Data.Books[0].Publication)

	code, _ = s.do(http.MethodPut, "/publication/name/update/1", `{"publicationName":"Chakra Books"}`)
	require.Equal(t, http.StatusOK, code)
	_, resp = s.do(http.MethodGet, "/publications/1", "")
	assert.Equal(t, "Chakra Books", resp.Data.Publications[0].Name)

	code, _ = s.do(http.MethodPost, "/publications/new", `{"newPublication":{"id":3,"name":"Gopher Press","books":[]}}`)
	require.Equal(t, http.StatusCreated, code)
	code, resp = s.do(http.MethodDelete, "/publication/delete/3", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Data.Publications, 2)
}

func TestRoutes_AuthorsCreateAndRename(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPost, "/author/new", `{"newAuthor":{"id":3,"name":"rob","books":[]}}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, []int{1, 2, 3}, authorIDs(resp.Data.Authors))

	code, _ = s.do(http.MethodPut, "/author/updatename/3", `{"authorName":"Rob"}`)
	require.Equal(t, http.StatusOK, code)

	code, resp = s.do(http.MethodGet, "/au/Rob", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []int{3}, authorIDs(resp.Data.Authors))

	code, _ = s.do(http.MethodGet, "/au/rob", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_BadInputs(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{http.MethodGet, "/a/one", "", http.StatusBadRequest, "BAD_REQUEST"},
		{http.MethodGet, "/publications/x", "", http.StatusBadRequest, "BAD_REQUEST"},
		{http.MethodDelete, "/author/delete/x", "", http.StatusBadRequest, "BAD_REQUEST"},
		{http.MethodPost, "/book/new", `not json`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{http.MethodPost, "/book/new", ``, http.StatusBadRequest, "VALIDATION_ERROR"},
		{http.MethodPut, "/book/update/12345ONE", `{}`, http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			code, resp := s.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Meta["request_id"])
		})
	}
}

func TestRoutes_SummaryIntegrityAndActivity(t *testing.T) {
	s := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/store", nil)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"number_of_books":2`)

	r = httptest.NewRequest(http.MethodGet, "/integrity", nil)
	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"consistent":false`)
	assert.Contains(t, w.Body.String(), `"unreciprocated_publication"`)

	s.do(http.MethodGet, "/books?username=isha", "")
	s.do(http.MethodGet, "/is/12345ONE?username=isha", "")

	r = httptest.NewRequest(http.MethodGet, "/activity/isha", nil)
	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data struct {
			Activity []activity.Entry `json:"activity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []activity.Entry{
		{Method: http.MethodGet, Route: "/is/12345ONE"},
		{Method: http.MethodGet, Route: "/books"},
	}, body.Data.Activity)
}

func TestRoutes_UnknownRouteAndMethod(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodPost, "/books", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
}
