package http

import (
	"errors"
	"log/slog"
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

// writeStoreError maps a store error onto the error envelope.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, usecase.ErrAlreadyExists):
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", err.Error(), nil)
	default:
		slog.ErrorContext(r.Context(), "store operation failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", httpx.RequestIDFrom(r),
			"error", err,
		)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
	}
}

func writeNotFound(w http.ResponseWriter, r *http.Request, message string) {
	httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", message, nil)
}

// withMessage builds the meta block carrying a human readable message.
func withMessage(message string) map[string]any {
	return map[string]any{"message": message}
}
