package http

import (
	"fmt"
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type AuthorHandler struct {
	repo usecase.AuthorRepository
}

func NewAuthorHandler(repo usecase.AuthorRepository) *AuthorHandler {
	return &AuthorHandler{repo: repo}
}

func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.repo.ListAuthors(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"authors": authors}, nil)
}

// ListByName matches the name exactly, case included.
func (h *AuthorHandler) ListByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("auname")
	authors, err := h.repo.AuthorsByName(r.Context(), name)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if len(authors) == 0 {
		writeNotFound(w, r, fmt.Sprintf("no book found by author %s", name))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"authors": authors}, nil)
}

func (h *AuthorHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	authors, err := h.repo.AuthorsByBook(r.Context(), isbn)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if len(authors) == 0 {
		writeNotFound(w, r, fmt.Sprintf("no author found for book's ISBN %s", isbn))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"authors": authors}, nil)
}

func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req newAuthorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	authors, err := h.repo.CreateAuthor(r.Context(), *req.NewAuthor)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, map[string]any{"authors": authors}, withMessage("Author was Added"))
}

func (h *AuthorHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	var req authorNameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	authors, err := h.repo.UpdateAuthorName(r.Context(), id, *req.AuthorName)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"authors": authors}, nil)
}

// Delete leaves the id in every book that lists it.
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	authors, err := h.repo.DeleteAuthor(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"authors": authors}, nil)
}
