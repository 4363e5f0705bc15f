package usecase

import (
	"bookcatalog/internal/entity"
	"context"
)

type PublicationRepository interface {
	ListPublications(ctx context.Context) ([]entity.Publication, error)
	PublicationsByID(ctx context.Context, id int) ([]entity.Publication, error)
	PublicationsByBook(ctx context.Context, isbn string) ([]entity.Publication, error)

	CreatePublication(ctx context.Context, p entity.Publication) ([]entity.Publication, error)
	UpdatePublicationName(ctx context.Context, id int, name string) ([]entity.Publication, error)
	DeletePublication(ctx context.Context, id int) ([]entity.Publication, error)

	LinkBook(ctx context.Context, isbn string, pubID int) ([]entity.Book, []entity.Publication, error)
	UnlinkBook(ctx context.Context, isbn string, pubID int) ([]entity.Book, []entity.Publication, error)
}
