package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/httpx"
)

// Request envelopes. The wrapped records are stored as sent; only the
// presence of the envelope field is checked.
type newBookRequest struct {
	NewBook *entity.Book `json:"newBook" validate:"required"`
}

type bookTitleRequest struct {
	BookTitle *string `json:"bookTitle" validate:"required"`
}

type linkAuthorRequest struct {
	NewAuthor *int `json:"newAuthor" validate:"required"`
}

type newAuthorRequest struct {
	NewAuthor *entity.Author `json:"newAuthor" validate:"required"`
}

type authorNameRequest struct {
	AuthorName *string `json:"authorName" validate:"required"`
}

type newPublicationRequest struct {
	NewPublication *entity.Publication `json:"newPublication" validate:"required"`
}

type publicationNameRequest struct {
	PublicationName *string `json:"publicationName" validate:"required"`
}

type linkPublicationRequest struct {
	PubID *int `json:"pubId" validate:"required"`
}

// decodeBody decodes the JSON body into dst and validates it. On failure it
// writes the error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large", nil)
		case errors.Is(err, io.EOF):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "request body is empty", nil)
		default:
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", []httpx.ErrorDetail{
				{Field: "body", Message: err.Error()},
			})
		}
		return false
	}

	if verrs := ValidateStruct(dst); len(verrs) > 0 {
		details := make([]httpx.ErrorDetail, 0, len(verrs))
		for _, v := range verrs {
			details = append(details, httpx.ErrorDetail{Field: v.Field, Message: v.Message})
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", details)
		return false
	}
	return true
}

// pathInt reads an integer path wildcard. On failure it writes a 400 and
// returns false.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.PathValue(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("%s must be an integer, got %q", name, raw), nil)
		return 0, false
	}
	return n, true
}
