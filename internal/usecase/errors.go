package usecase

//go:generate mockgen -destination=../store/mocks/mock_repository.go -package=mocks bookcatalog/internal/usecase AuthorRepository,BookRepository,CatalogInspector,PublicationRepository

import "errors"

var (
	// ErrNotFound is returned when an operation addresses a record by key and no record has that key.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a create would reuse a key that is taken.
	ErrAlreadyExists = errors.New("already exists")
)
