package store

import (
	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
	"context"
)

func (m *Memory) Summary(ctx context.Context) (usecase.Summary, error) {
	if err := ctx.Err(); err != nil {
		return usecase.Summary{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return usecase.Summary{
		Books:        m.books.len(),
		Authors:      m.authors.len(),
		Publications: m.publications.len(),
	}, nil
}

// CheckIntegrity walks every cross-reference in both directions and reports
// the ones that are dangling or not reciprocated. Books are walked first,
// then authors, then publications, each in insertion order.
func (m *Memory) CheckIntegrity(ctx context.Context) ([]entity.Violation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []entity.Violation{}
	for _, b := range m.books.filter(nil) {
		for _, id := range b.Authors {
			a, ok := m.authors.get(id)
			switch {
			case !ok:
				out = append(out, entity.Violation{Kind: entity.MissingAuthor, ISBN: b.ISBN, AuthorID: id})
			case !a.HasBook(b.ISBN):
				out = append(out, entity.Violation{Kind: entity.UnreciprocatedAuthor, ISBN: b.ISBN, AuthorID: id})
			}
		}
		if b.Publication == entity.NoPublication {
			continue
		}
		p, ok := m.publications.get(b.Publication)
		switch {
		case !ok:
			out = append(out, entity.Violation{Kind: entity.MissingPublication, ISBN: b.ISBN, PublicationID: b.Publication})
		case !p.HasBook(b.ISBN):
			out = append(out, entity.Violation{Kind: entity.UnreciprocatedPublication, ISBN: b.ISBN, PublicationID: b.Publication})
		}
	}

	for _, a := range m.authors.filter(nil) {
		for _, isbn := range a.Books {
			b, ok := m.books.get(isbn)
			switch {
			case !ok:
				out = append(out, entity.Violation{Kind: entity.MissingBook, ISBN: isbn, AuthorID: a.ID})
			case !b.HasAuthor(a.ID):
				out = append(out, entity.Violation{Kind: entity.UnreciprocatedAuthor, ISBN: isbn, AuthorID: a.ID})
			}
		}
	}

	for _, p := range m.publications.filter(nil) {
		for _, isbn := range p.Books {
			b, ok := m.books.get(isbn)
			switch {
			case !ok:
				out = append(out, entity.Violation{Kind: entity.MissingBook, ISBN: isbn, PublicationID: p.ID})
			case b.Publication != p.ID:
				out = append(out, entity.Violation{Kind: entity.UnreciprocatedPublication, ISBN: isbn, PublicationID: p.ID})
			}
		}
	}
	return out, nil
}
