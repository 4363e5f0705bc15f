package http

import "net/http"

type Handlers struct {
	Books        *BookHandler
	Authors      *AuthorHandler
	Publications *PublicationHandler
	Catalog      *CatalogHandler
	Activity     *ActivityHandler
	Health       *HealthHandler
}

// NewRouter registers every route on a fresh ServeMux. Unknown paths get
// ServeMux's 404 and known paths with the wrong verb get its 405.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health.Healthz)
	mux.HandleFunc("GET /readyz", h.Health.Readyz)

	mux.HandleFunc("GET /books", h.Books.List)
	mux.HandleFunc("GET /is/{isbn}", h.Books.GetByISBN)
	mux.HandleFunc("GET /c/{category}", h.Books.ListByCategory)
	mux.HandleFunc("GET /a/{authorid}", h.Books.ListByAuthor)
	mux.HandleFunc("POST /book/new", h.Books.Create)
	mux.HandleFunc("PUT /book/update/{isbn}", h.Books.UpdateTitle)
	mux.HandleFunc("PUT /book/author/update/{isbn}", h.Books.LinkAuthor)
	mux.HandleFunc("DELETE /book/delete/{isbn}", h.Books.Delete)
	mux.HandleFunc("DELETE /book/delete/author/{isbn}/{authorId}", h.Books.UnlinkAuthor)

	mux.HandleFunc("GET /author", h.Authors.List)
	mux.HandleFunc("GET /au/{auname}", h.Authors.ListByName)
	mux.HandleFunc("GET /author/{isbn}", h.Authors.ListByBook)
	mux.HandleFunc("POST /author/new", h.Authors.Create)
	mux.HandleFunc("PUT /author/updatename/{id}", h.Authors.UpdateName)
	mux.HandleFunc("DELETE /author/delete/{id}", h.Authors.Delete)

	mux.HandleFunc("GET /publications", h.Publications.List)
	mux.HandleFunc("GET /publications/{id}", h.Publications.GetByID)
	mux.HandleFunc("GET /pub/{isbn}", h.Publications.ListByBook)
	mux.HandleFunc("POST /publications/new", h.Publications.Create)
	mux.HandleFunc("PUT /publication/name/update/{id}", h.Publications.UpdateName)
	mux.HandleFunc("PUT /publication/update/book/{isbn}", h.Publications.LinkBook)
	mux.HandleFunc("DELETE /publication/delete/book/{isbn}/{pubId}", h.Publications.UnlinkBook)
	mux.HandleFunc("DELETE /publication/delete/{id}", h.Publications.Delete)

	mux.HandleFunc("GET /store", h.Catalog.Summary)
	mux.HandleFunc("GET /integrity", h.Catalog.Integrity)
	mux.HandleFunc("GET /activity/{username}", h.Activity.Recent)

	return mux
}
