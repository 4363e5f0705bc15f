package http

import (
	"fmt"
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.ListBooks(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /is/{isbn} [get]
func (h *BookHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	books, err := h.repo.BooksByISBN(r.Context(), isbn)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if len(books) == 0 {
		writeNotFound(w, r, fmt.Sprintf("no book found for ISBN %s", isbn))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// @Summary List books in a category
// @Tags books
// @Param category path string true "Category, exact match"
// @Router /c/{category} [get]
func (h *BookHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	books, err := h.repo.BooksByCategory(r.Context(), category)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if len(books) == 0 {
		writeNotFound(w, r, fmt.Sprintf("no book found for the category %s", category))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// @Summary List books by author id
// @Tags books
// @Param authorid path int true "Author ID"
// @Router /a/{authorid} [get]
func (h *BookHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := pathInt(w, r, "authorid")
	if !ok {
		return
	}
	books, err := h.repo.BooksByAuthor(r.Context(), authorID)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if len(books) == 0 {
		writeNotFound(w, r, fmt.Sprintf("no books found for the author %d", authorID))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// @Summary Add a book
// @Tags books
// @Accept json
// @Param body body newBookRequest true "Book to add"
// @Success 201 {object} map[string]interface{}
// @Router /book/new [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req newBookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	books, err := h.repo.CreateBook(r.Context(), *req.NewBook)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, map[string]any{"books": books}, withMessage("Book was Added!"))
}

// @Summary Update a book's title
// @Tags books
// @Param isbn path string true "Book ISBN"
// @Router /book/update/{isbn} [put]
func (h *BookHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	var req bookTitleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	books, err := h.repo.UpdateBookTitle(r.Context(), r.PathValue("isbn"), *req.BookTitle)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// @Summary Add an author to a book
// @Tags books
// @Param isbn path string true "Book ISBN"
// @Router /book/author/update/{isbn} [put]
func (h *BookHandler) LinkAuthor(w http.ResponseWriter, r *http.Request) {
	var req linkAuthorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	books, authors, err := h.repo.LinkAuthor(r.Context(), r.PathValue("isbn"), *req.NewAuthor)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books, "authors": authors}, withMessage("New Author was added"))
}

// @Summary Delete a book
// @Tags books
// @Param isbn path string true "Book ISBN"
// @Router /book/delete/{isbn} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.DeleteBook(r.Context(), r.PathValue("isbn"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// @Summary Remove an author from a book
// @Tags books
// @Param isbn path string true "Book ISBN"
// @Param authorId path int true "Author ID"
// @Router /book/delete/author/{isbn}/{authorId} [delete]
func (h *BookHandler) UnlinkAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := pathInt(w, r, "authorId")
	if !ok {
		return
	}
	books, authors, err := h.repo.UnlinkAuthor(r.Context(), r.PathValue("isbn"), authorID)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books, "authors": authors}, withMessage("Author was deleted"))
}
