package store

import (
	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
	"context"
	"fmt"
	"slices"
)

func (m *Memory) ListBooks(ctx context.Context) ([]entity.Book, error) {
	return m.filterBooks(ctx, nil)
}

func (m *Memory) BooksByISBN(ctx context.Context, isbn string) ([]entity.Book, error) {
	return m.filterBooks(ctx, func(b entity.Book) bool { return b.ISBN == isbn })
}

func (m *Memory) BooksByCategory(ctx context.Context, category string) ([]entity.Book, error) {
	return m.filterBooks(ctx, func(b entity.Book) bool { return b.HasCategory(category) })
}

func (m *Memory) BooksByAuthor(ctx context.Context, authorID int) ([]entity.Book, error) {
	return m.filterBooks(ctx, func(b entity.Book) bool { return b.HasAuthor(authorID) })
}

func (m *Memory) filterBooks(ctx context.Context, keep func(entity.Book) bool) ([]entity.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.books.filter(keep), nil
}

// CreateBook appends b as given. Referenced authors and publications are
// neither checked nor updated.
func (m *Memory) CreateBook(ctx context.Context, b entity.Book) ([]entity.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.books.has(b.ISBN) {
		return nil, fmt.Errorf("book %s: %w", b.ISBN, usecase.ErrAlreadyExists)
	}
	m.books.put(b.ISBN, b)
	return m.books.filter(nil), nil
}

func (m *Memory) UpdateBookTitle(ctx context.Context, isbn, title string) ([]entity.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.books.get(isbn)
	if !ok {
		return nil, fmt.Errorf("book %s: %w", isbn, usecase.ErrNotFound)
	}
	b.Title = title
	m.books.put(isbn, b)
	return m.books.filter(nil), nil
}

// DeleteBook removes the book only. Authors and publications that list the
// ISBN keep it. Deleting an unknown ISBN is a no-op.
func (m *Memory) DeleteBook(ctx context.Context, isbn string) ([]entity.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.books.remove(isbn)
	return m.books.filter(nil), nil
}

// LinkAuthor appends authorID to the book's authors and the ISBN to the
// author's books. Both records must exist. Like create, it does not guard
// against duplicates; UnlinkAuthor removes every occurrence.
func (m *Memory) LinkAuthor(ctx context.Context, isbn string, authorID int) ([]entity.Book, []entity.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	b, a, err := m.bookAndAuthor(isbn, authorID)
	if err != nil {
		return nil, nil, err
	}
	b.Authors = append(b.Authors, authorID)
	a.Books = append(a.Books, isbn)
	m.books.put(isbn, b)
	m.authors.put(authorID, a)
	return m.books.filter(nil), m.authors.filter(nil), nil
}

// UnlinkAuthor removes authorID from the book and the ISBN from the author.
func (m *Memory) UnlinkAuthor(ctx context.Context, isbn string, authorID int) ([]entity.Book, []entity.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	b, a, err := m.bookAndAuthor(isbn, authorID)
	if err != nil {
		return nil, nil, err
	}
	b.Authors = slices.DeleteFunc(b.Authors, func(id int) bool { return id == authorID })
	a.Books = slices.DeleteFunc(a.Books, func(s string) bool { return s == isbn })
	m.books.put(isbn, b)
	m.authors.put(authorID, a)
	return m.books.filter(nil), m.authors.filter(nil), nil
}

// bookAndAuthor must be called with m.mu held.
func (m *Memory) bookAndAuthor(isbn string, authorID int) (entity.Book, entity.Author, error) {
	b, ok := m.books.get(isbn)
	if !ok {
		return entity.Book{}, entity.Author{}, fmt.Errorf("book %s: %w", isbn, usecase.ErrNotFound)
	}
	a, ok := m.authors.get(authorID)
	if !ok {
		return entity.Book{}, entity.Author{}, fmt.Errorf("author %d: %w", authorID, usecase.ErrNotFound)
	}
	return b, a, nil
}
