package store

import (
	"bookcatalog/internal/entity"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Snapshot is the serialisable form of the catalog.
type Snapshot struct {
	Books        []entity.Book        `json:"books"`
	Authors      []entity.Author      `json:"authors"`
	Publications []entity.Publication `json:"publications"`
}

// DecodeSnapshot reads a JSON snapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// LoadSnapshotFile reads a JSON snapshot from path.
func LoadSnapshotFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return DecodeSnapshot(f)
}

// EncodeSnapshot writes s as indented JSON.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// SeedSnapshot is the catalog the service starts with when no snapshot file
// is configured.
func SeedSnapshot() Snapshot {
	return Snapshot{
		Books: []entity.Book{
			{
				ISBN:        "12345ONE",
				Title:       "NodeJs",
				Authors:     []int{1},
				Language:    "EN",
				PubDate:     "2021-07-07",
				NumOfPage:   100,
				Category:    []string{"Fiction", "Programming", "Tech", "webdev"},
				Publication: 1,
			},
			{
				ISBN:        "12345TWO",
				Title:       "EXPRESSJs",
				Authors:     []int{2},
				Language:    "EN",
				PubDate:     "2021-07-07",
				NumOfPage:   100,
				Category:    []string{"Fiction", "Programming", "Tech", "wp"},
				Publication: 1,
			},
		},
		Authors: []entity.Author{
			{ID: 1, Name: "shantanu", Books: []string{"12345ONE"}},
			{ID: 2, Name: "isha", Books: []string{"12345TWO"}},
		},
		Publications: []entity.Publication{
			{ID: 1, Name: "Chakra", Books: []string{"12345ONE"}},
			{ID: 2, Name: "VSCODE", Books: []string{"12345TWO"}},
		},
	}
}
