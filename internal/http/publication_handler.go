package http

import (
	"fmt"
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type PublicationHandler struct {
	repo usecase.PublicationRepository
}

func NewPublicationHandler(repo usecase.PublicationRepository) *PublicationHandler {
	return &PublicationHandler{repo: repo}
}

func (h *PublicationHandler) List(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.repo.ListPublications(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"publications": pubs}, nil)
}

func (h *PublicationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	pubs, err := h.repo.PublicationsByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if len(pubs) == 0 {
		writeNotFound(w, r, fmt.Sprintf("no publication found by id %d", id))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"publications": pubs}, nil)
}

func (h *PublicationHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	pubs, err := h.repo.PublicationsByBook(r.Context(), isbn)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if len(pubs) == 0 {
		writeNotFound(w, r, fmt.Sprintf("no publication found for books with ISBN %s", isbn))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"publications": pubs}, nil)
}

func (h *PublicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req newPublicationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	pubs, err := h.repo.CreatePublication(r.Context(), *req.NewPublication)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, map[string]any{"publications": pubs}, withMessage("Publication was Added"))
}

func (h *PublicationHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	var req publicationNameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	pubs, err := h.repo.UpdatePublicationName(r.Context(), id, *req.PublicationName)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"publications": pubs}, nil)
}

// LinkBook points the book in the path at the publication named in the body.
func (h *PublicationHandler) LinkBook(w http.ResponseWriter, r *http.Request) {
	var req linkPublicationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	books, pubs, err := h.repo.LinkBook(r.Context(), r.PathValue("isbn"), *req.PubID)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books, "publications": pubs}, withMessage("successfully updated publication"))
}

func (h *PublicationHandler) UnlinkBook(w http.ResponseWriter, r *http.Request) {
	pubID, ok := pathInt(w, r, "pubId")
	if !ok {
		return
	}
	books, pubs, err := h.repo.UnlinkBook(r.Context(), r.PathValue("isbn"), pubID)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books, "publications": pubs}, nil)
}

// Delete leaves books that point at the publication untouched.
func (h *PublicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	pubs, err := h.repo.DeletePublication(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"publications": pubs}, nil)
}
