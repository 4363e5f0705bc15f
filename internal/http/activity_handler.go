package http

import (
	"context"
	"net/http"

	"bookcatalog/internal/activity"
	"bookcatalog/internal/httpx"
)

// ActivityReader is the read side of the activity backend.
type ActivityReader interface {
	Recent(ctx context.Context, username string) ([]activity.Entry, error)
}

type ActivityHandler struct {
	reader ActivityReader
}

func NewActivityHandler(reader ActivityReader) *ActivityHandler {
	return &ActivityHandler{reader: reader}
}

// Recent returns the user's latest requests, newest first. A user with no
// history gets an empty list.
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	entries, err := h.reader.Recent(r.Context(), username)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{
		"username": username,
		"activity": entries,
	}, nil)
}
