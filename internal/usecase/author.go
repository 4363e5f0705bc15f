package usecase

import (
	"bookcatalog/internal/entity"
	"context"
)

type AuthorRepository interface {
	ListAuthors(ctx context.Context) ([]entity.Author, error)
	AuthorsByName(ctx context.Context, name string) ([]entity.Author, error)
	AuthorsByBook(ctx context.Context, isbn string) ([]entity.Author, error)

	CreateAuthor(ctx context.Context, a entity.Author) ([]entity.Author, error)
	UpdateAuthorName(ctx context.Context, id int, name string) ([]entity.Author, error)
	DeleteAuthor(ctx context.Context, id int) ([]entity.Author, error)
}
