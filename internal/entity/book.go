package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// NoPublication is the Book.Publication value for a book without a publisher.
const NoPublication = 0

type Book struct {
	ISBN        string    `json:"ISBN"`
	Title       string    `json:"title"`
	Authors     []int     `json:"authors"`
	Language    string    `json:"language"`
	PubDate     string    `json:"pubDate"`
	NumOfPage   PageCount `json:"numOfPage"`
	Category    []string  `json:"category"`
	Publication int       `json:"publication"`
}

// Clone returns a copy that shares no slices with b.
func (b Book) Clone() Book {
	b.Authors = slices.Clone(b.Authors)
	b.Category = slices.Clone(b.Category)
	return b
}

func (b Book) HasAuthor(id int) bool {
	return slices.Contains(b.Authors, id)
}

func (b Book) HasCategory(category string) bool {
	return slices.Contains(b.Category, category)
}

// PageCount decodes from either a JSON number or a numeric string and
// always encodes as a number.
type PageCount int

// UnmarshalJSON accepts 100, "100" and null.
func (p *PageCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*p = 0
			return nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("numOfPage: %q is not a whole number", s)
	}
	*p = PageCount(n)
	return nil
}
