package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"bookcatalog/internal/entity"
)

// TestBook matches the first book of the built-in seed.
var TestBook = entity.Book{
	ISBN:        "12345ONE",
	Title:       "NodeJs",
	Authors:     []int{1},
	Language:    "EN",
	PubDate:     "2021-07-07",
	NumOfPage:   100,
	Category:    []string{"Fiction", "Programming", "Tech", "webdev"},
	Publication: 1,
}

// TestAuthor matches the first author of the built-in seed.
var TestAuthor = entity.Author{ID: 1, Name: "shantanu", Books: []string{"12345ONE"}}

// TestPublication matches the first publication of the built-in seed.
var TestPublication = entity.Publication{ID: 1, Name: "Chakra", Books: []string{"12345ONE"}}

// NewRequest creates a new HTTP request for testing. A string or []byte body
// is sent as is, so malformed JSON can be exercised; anything else is
// marshalled.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(b)
	case []byte:
		bodyBytes = b
	default:
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if len(bodyBytes) > 0 {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %v for key %q, want %v", value, key, expectedValue)
	}
}
