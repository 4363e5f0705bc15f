package store

import (
	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
	"context"
	"fmt"
)

func (m *Memory) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	return m.filterAuthors(ctx, nil)
}

func (m *Memory) AuthorsByName(ctx context.Context, name string) ([]entity.Author, error) {
	return m.filterAuthors(ctx, func(a entity.Author) bool { return a.Name == name })
}

func (m *Memory) AuthorsByBook(ctx context.Context, isbn string) ([]entity.Author, error) {
	return m.filterAuthors(ctx, func(a entity.Author) bool { return a.HasBook(isbn) })
}

func (m *Memory) filterAuthors(ctx context.Context, keep func(entity.Author) bool) ([]entity.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authors.filter(keep), nil
}

func (m *Memory) CreateAuthor(ctx context.Context, a entity.Author) ([]entity.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.authors.has(a.ID) {
		return nil, fmt.Errorf("author %d: %w", a.ID, usecase.ErrAlreadyExists)
	}
	m.authors.put(a.ID, a)
	return m.authors.filter(nil), nil
}

func (m *Memory) UpdateAuthorName(ctx context.Context, id int, name string) ([]entity.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.authors.get(id)
	if !ok {
		return nil, fmt.Errorf("author %d: %w", id, usecase.ErrNotFound)
	}
	a.Name = name
	m.authors.put(id, a)
	return m.authors.filter(nil), nil
}

// DeleteAuthor removes the author only; books keep the id in their authors.
// Use UnlinkAuthor to clean both sides.
func (m *Memory) DeleteAuthor(ctx context.Context, id int) ([]entity.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.authors.remove(id)
	return m.authors.filter(nil), nil
}
