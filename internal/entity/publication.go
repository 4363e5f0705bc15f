package entity

import "slices"

type Publication struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Books []string `json:"books"`
}

func (p Publication) Clone() Publication {
	p.Books = slices.Clone(p.Books)
	return p
}

func (p Publication) HasBook(isbn string) bool {
	return slices.Contains(p.Books, isbn)
}
