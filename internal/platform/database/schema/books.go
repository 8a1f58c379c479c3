package schema

// BooksTable represents the 'books' table
type BooksTable struct {
	Table     string
	ISBN      string
	AmazonURL string
	Author    string
	Language  string
	Pages     string
	Publisher string
	Title     string
	Year      string
}

// Books is the schema definition for public.books
var Books = BooksTable{
	Table:     "books",
	ISBN:      "isbn",
	AmazonURL: "amazon_url",
	Author:    "author",
	Language:  "language",
	Pages:     "pages",
	Publisher: "publisher",
	Title:     "title",
	Year:      "year",
}

// Columns returns every column in scan order.
func (t BooksTable) Columns() []string {
	return []string{t.ISBN, t.AmazonURL, t.Author, t.Language, t.Pages, t.Publisher, t.Title, t.Year}
}

// MutableColumns returns the columns an update may replace (all but the key).
func (t BooksTable) MutableColumns() []string {
	return []string{t.AmazonURL, t.Author, t.Language, t.Pages, t.Publisher, t.Title, t.Year}
}
