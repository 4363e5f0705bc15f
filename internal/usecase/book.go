package usecase

import (
	"bookcatalog/internal/entity"
	"context"
)

// BookRepository defines the contract for the book collection and the
// book-side cross-reference operations.
type BookRepository interface {
	ListBooks(ctx context.Context) ([]entity.Book, error)
	// Filters return an empty slice, not an error, when nothing matches.
	BooksByISBN(ctx context.Context, isbn string) ([]entity.Book, error)
	BooksByCategory(ctx context.Context, category string) ([]entity.Book, error)
	BooksByAuthor(ctx context.Context, authorID int) ([]entity.Book, error)

	CreateBook(ctx context.Context, b entity.Book) ([]entity.Book, error)
	UpdateBookTitle(ctx context.Context, isbn, title string) ([]entity.Book, error)
	DeleteBook(ctx context.Context, isbn string) ([]entity.Book, error)

	// LinkAuthor and UnlinkAuthor touch both the book and the author.
	LinkAuthor(ctx context.Context, isbn string, authorID int) ([]entity.Book, []entity.Author, error)
	UnlinkAuthor(ctx context.Context, isbn string, authorID int) ([]entity.Book, []entity.Author, error)
}
