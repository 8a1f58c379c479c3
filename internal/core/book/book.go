package book

import "github.com/taibuivan/bookstore/internal/platform/apperr"

// Book is a single catalogue entry, keyed by its ISBN.
type Book struct {
	ISBN      string `json:"isbn"`
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

// Global field names for validation
const (
	FieldISBN      = "isbn"
	FieldAmazonURL = "amazon_url"
	FieldAuthor    = "author"
	FieldLanguage  = "language"
	FieldPages     = "pages"
	FieldPublisher = "publisher"
	FieldTitle     = "title"
	FieldYear      = "year"
)

var (
	// ErrNotFound is returned when no book matches the requested ISBN.
	ErrNotFound = apperr.NotFound("Book")

	// ErrConflict is returned when creating a book whose ISBN already exists.
	ErrConflict = apperr.Conflict("A book with this isbn already exists")
)
