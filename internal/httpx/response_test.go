package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books", nil)
	data := map[string]string{"key": "value"}

	JSONSuccess(w, r, data, map[string]any{"message": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var response struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Meta    map[string]any    `json:"meta"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !response.Success {
		t.Error("Expected success to be true")
	}
	if response.Data["key"] != "value" {
		t.Errorf("Expected data to be present, got %v", response.Data)
	}
	if response.Meta["message"] != "ok" {
		t.Errorf("Expected meta message, got %v", response.Meta)
	}
	if _, ok := response.Meta["request_id"]; ok {
		t.Error("Expected no request_id without the middleware")
	}
}

func TestJSONSuccess_IncludesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))

	JSONSuccess(w, r, nil, nil)

	var response map[string]any
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	meta, _ := response["meta"].(map[string]any)
	if meta["request_id"] != "req-1" {
		t.Errorf("Expected request_id req-1, got %v", response["meta"])
	}
	if _, ok := response["data"]; ok {
		t.Error("Expected data to be omitted when nil")
	}
}

func TestJSONSuccessCreated(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/book/new", nil)

	JSONSuccessCreated(w, r, []int{1}, nil)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/book/new", nil)
	code := "VALIDATION_ERROR"
	message := "Invalid input"
	details := []ErrorDetail{
		{Field: "newBook", Message: "newBook is required"},
	}

	JSONError(w, r, http.StatusBadRequest, code, message, details)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Success {
		t.Error("Expected success to be false")
	}

	if response.Error.Code != code {
		t.Errorf("Expected error code %s, got %s", code, response.Error.Code)
	}

	if len(response.Error.Details) != 1 {
		t.Errorf("Expected 1 error detail, got %d", len(response.Error.Details))
	}
}
