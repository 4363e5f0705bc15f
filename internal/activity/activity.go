// Package activity keeps a short, per-user history of the requests a user made.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
)

// Entry is one recorded request.
type Entry struct {
	Method string `json:"method"`
	Route  string `json:"route"`
}

// Recorder stores the most recent entries per username, newest first.
type Recorder interface {
	Record(ctx context.Context, username, method, route string) error
	Recent(ctx context.Context, username string) ([]Entry, error)
	Ping(ctx context.Context) error
}

func encodeEntry(e Entry) ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode activity entry: %w", err)
	}
	return b, nil
}

func decodeEntries(raw []string) ([]Entry, error) {
	out := make([]Entry, 0, len(raw))
	for _, r := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(r), &e); err != nil {
			return nil, fmt.Errorf("decode activity entry: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}
