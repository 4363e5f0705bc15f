package entity

// ViolationKind names the kind of broken cross-reference.
type ViolationKind string

const (
	// A book lists an author id that has no author record.
	MissingAuthor ViolationKind = "missing_author"
	// A book points at a publication id that has no publication record.
	MissingPublication ViolationKind = "missing_publication"
	// An author or publication lists an ISBN that has no book record.
	MissingBook ViolationKind = "missing_book"
	// An author lists a book that does not list the author back, or the reverse.
	UnreciprocatedAuthor ViolationKind = "unreciprocated_author"
	// A publication lists a book whose publication is another id, or the reverse.
	UnreciprocatedPublication ViolationKind = "unreciprocated_publication"
)

// Violation is one cross-reference that does not hold.
type Violation struct {
	Kind          ViolationKind `json:"kind"`
	ISBN          string        `json:"isbn"`
	AuthorID      int           `json:"author_id,omitempty"`
	PublicationID int           `json:"publication_id,omitempty"`
}
