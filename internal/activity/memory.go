package activity

import (
	"context"
	"slices"
	"sync"
)

// Memory is the process-local Recorder used when no Redis is configured.
type Memory struct {
	mu      sync.Mutex
	depth   int
	entries map[string][]Entry
}

func NewMemory(depth int) *Memory {
	return &Memory{depth: depth, entries: make(map[string][]Entry)}
}

func (m *Memory) Record(ctx context.Context, username, method, route string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	list := append([]Entry{{Method: method, Route: route}}, m.entries[username]...)
	if len(list) > m.depth {
		list = list[:m.depth]
	}
	m.entries[username] = list
	return nil
}

func (m *Memory) Recent(ctx context.Context, username string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := slices.Clone(m.entries[username])
	if out == nil {
		out = []Entry{}
	}
	return out, nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

var _ Recorder = (*Memory)(nil)
