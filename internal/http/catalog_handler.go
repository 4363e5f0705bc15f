package http

import (
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type CatalogHandler struct {
	inspector usecase.CatalogInspector
}

func NewCatalogHandler(inspector usecase.CatalogInspector) *CatalogHandler {
	return &CatalogHandler{inspector: inspector}
}

// Summary reports how many records each collection holds.
func (h *CatalogHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.inspector.Summary(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, summary, nil)
}

// Integrity lists dangling and one-sided cross-references. It answers 200
// either way; "consistent" tells the caller whether the list is empty.
func (h *CatalogHandler) Integrity(w http.ResponseWriter, r *http.Request) {
	violations, err := h.inspector.CheckIntegrity(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{
		"consistent": len(violations) == 0,
		"violations": violations,
	}, nil)
}
