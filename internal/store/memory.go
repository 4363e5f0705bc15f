package store

// Repository implementation (in memory)

import (
	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
	"context"
	"slices"
	"sync"
)

// collection keeps records addressable by key while preserving insertion order.
type collection[K comparable, V any] struct {
	order []K
	items map[K]V
	clone func(V) V
}

func newCollection[K comparable, V any](clone func(V) V) *collection[K, V] {
	return &collection[K, V]{items: make(map[K]V), clone: clone}
}

func (c *collection[K, V]) get(k K) (V, bool) {
	v, ok := c.items[k]
	if !ok {
		return v, false
	}
	return c.clone(v), true
}

func (c *collection[K, V]) has(k K) bool {
	_, ok := c.items[k]
	return ok
}

// put replaces the record under k, or appends it when k is new.
func (c *collection[K, V]) put(k K, v V) {
	if _, ok := c.items[k]; !ok {
		c.order = append(c.order, k)
	}
	c.items[k] = c.clone(v)
}

func (c *collection[K, V]) remove(k K) {
	if _, ok := c.items[k]; !ok {
		return
	}
	delete(c.items, k)
	c.order = slices.DeleteFunc(c.order, func(o K) bool { return o == k })
}

// filter returns copies of the records matching keep, in insertion order.
// A nil keep matches everything.
func (c *collection[K, V]) filter(keep func(V) bool) []V {
	out := make([]V, 0, len(c.order))
	for _, k := range c.order {
		v := c.items[k]
		if keep == nil || keep(v) {
			out = append(out, c.clone(v))
		}
	}
	return out
}

func (c *collection[K, V]) len() int {
	return len(c.order)
}

// Memory is the in-memory catalog. It owns the book, author and publication
// collections and serializes every operation behind one lock, so operations
// that touch two collections are observed atomically.
type Memory struct {
	mu           sync.RWMutex
	books        *collection[string, entity.Book]
	authors      *collection[int, entity.Author]
	publications *collection[int, entity.Publication]
}

// NewMemory returns an empty catalog.
func NewMemory() *Memory {
	return &Memory{
		books:        newCollection[string](entity.Book.Clone),
		authors:      newCollection[int](entity.Author.Clone),
		publications: newCollection[int](entity.Publication.Clone),
	}
}

// NewMemoryFromSnapshot returns a catalog holding the snapshot's records in
// order. Later records win when a key repeats.
func NewMemoryFromSnapshot(s Snapshot) *Memory {
	m := NewMemory()
	for _, b := range s.Books {
		m.books.put(b.ISBN, b)
	}
	for _, a := range s.Authors {
		m.authors.put(a.ID, a)
	}
	for _, p := range s.Publications {
		m.publications.put(p.ID, p)
	}
	return m
}

// Snapshot returns a deep copy of all three collections.
func (m *Memory) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		Books:        m.books.filter(nil),
		Authors:      m.authors.filter(nil),
		Publications: m.publications.filter(nil),
	}, nil
}

var (
	_ usecase.BookRepository        = (*Memory)(nil)
	_ usecase.AuthorRepository      = (*Memory)(nil)
	_ usecase.PublicationRepository = (*Memory)(nil)
	_ usecase.CatalogInspector      = (*Memory)(nil)
)
