package usecase

import (
	"bookcatalog/internal/entity"
	"context"
)

// Summary counts the records in each collection.
type Summary struct {
	Books        int `json:"number_of_books"`
	Authors      int `json:"number_of_authors"`
	Publications int `json:"number_of_publications"`
}

// CatalogInspector reports on the store as a whole.
type CatalogInspector interface {
	Summary(ctx context.Context) (Summary, error)
	CheckIntegrity(ctx context.Context) ([]entity.Violation, error)
}
