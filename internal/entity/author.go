package entity

import "slices"

type Author struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Books []string `json:"books"`
}

func (a Author) Clone() Author {
	a.Books = slices.Clone(a.Books)
	return a
}

func (a Author) HasBook(isbn string) bool {
	return slices.Contains(a.Books, isbn)
}
