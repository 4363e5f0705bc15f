package store

import (
	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
	"context"
	"fmt"
	"slices"
)

func (m *Memory) ListPublications(ctx context.Context) ([]entity.Publication, error) {
	return m.filterPublications(ctx, nil)
}

func (m *Memory) PublicationsByID(ctx context.Context, id int) ([]entity.Publication, error) {
	return m.filterPublications(ctx, func(p entity.Publication) bool { return p.ID == id })
}

func (m *Memory) PublicationsByBook(ctx context.Context, isbn string) ([]entity.Publication, error) {
	return m.filterPublications(ctx, func(p entity.Publication) bool { return p.HasBook(isbn) })
}

func (m *Memory) filterPublications(ctx context.Context, keep func(entity.Publication) bool) ([]entity.Publication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.publications.filter(keep), nil
}

func (m *Memory) CreatePublication(ctx context.Context, p entity.Publication) ([]entity.Publication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.publications.has(p.ID) {
		return nil, fmt.Errorf("publication %d: %w", p.ID, usecase.ErrAlreadyExists)
	}
	m.publications.put(p.ID, p)
	return m.publications.filter(nil), nil
}

func (m *Memory) UpdatePublicationName(ctx context.Context, id int, name string) ([]entity.Publication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.publications.get(id)
	if !ok {
		return nil, fmt.Errorf("publication %d: %w", id, usecase.ErrNotFound)
	}
	p.Name = name
	m.publications.put(id, p)
	return m.publications.filter(nil), nil
}

// DeletePublication removes the publication only; books that point at it
// keep their publication id.
func (m *Memory) DeletePublication(ctx context.Context, id int) ([]entity.Publication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.publications.remove(id)
	return m.publications.filter(nil), nil
}

// LinkBook points the book at pubID and appends the ISBN to pubID's books.
// Other publications that list the ISBN are left as they are.
func (m *Memory) LinkBook(ctx context.Context, isbn string, pubID int) ([]entity.Book, []entity.Publication, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	b, p, err := m.bookAndPublication(isbn, pubID)
	if err != nil {
		return nil, nil, err
	}
	p.Books = append(p.Books, isbn)
	m.publications.put(pubID, p)
	b.Publication = pubID
	m.books.put(isbn, b)
	return m.books.filter(nil), m.publications.filter(nil), nil
}

// UnlinkBook removes the ISBN from the publication and resets the book to
// entity.NoPublication.
func (m *Memory) UnlinkBook(ctx context.Context, isbn string, pubID int) ([]entity.Book, []entity.Publication, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	b, p, err := m.bookAndPublication(isbn, pubID)
	if err != nil {
		return nil, nil, err
	}
	p.Books = slices.DeleteFunc(p.Books, func(s string) bool { return s == isbn })
	m.publications.put(pubID, p)
	b.Publication = entity.NoPublication
	m.books.put(isbn, b)
	return m.books.filter(nil), m.publications.filter(nil), nil
}

// bookAndPublication must be called with m.mu held.
func (m *Memory) bookAndPublication(isbn string, pubID int) (entity.Book, entity.Publication, error) {
	b, ok := m.books.get(isbn)
	if !ok {
		return entity.Book{}, entity.Publication{}, fmt.Errorf("book %s: %w", isbn, usecase.ErrNotFound)
	}
	p, ok := m.publications.get(pubID)
	if !ok {
		return entity.Book{}, entity.Publication{}, fmt.Errorf("publication %d: %w", pubID, usecase.ErrNotFound)
	}
	return b, p, nil
}
