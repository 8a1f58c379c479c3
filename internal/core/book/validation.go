package book

import (
	"math"

	"github.com/taibuivan/bookstore/internal/platform/validate"
	"github.com/taibuivan/bookstore/pkg/pointer"
)

// Integer columns are 32-bit in the store.
var (
	minColumnInt = pointer.To(math.MinInt32)
	maxColumnInt = pointer.To(math.MaxInt32)
)

// Field rules shared by both request shapes.
var (
	isbnField      = validate.Field{Name: FieldISBN, Type: validate.TypeString, Required: true, NonEmpty: true}
	amazonURLField = validate.Field{Name: FieldAmazonURL, Type: validate.TypeString, Required: true, Format: validate.FormatURL}
	authorField    = validate.Field{Name: FieldAuthor, Type: validate.TypeString, Required: true}
	languageField  = validate.Field{Name: FieldLanguage, Type: validate.TypeString, Required: true}
	pagesField     = validate.Field{Name: FieldPages, Type: validate.TypeInteger, Required: true, Min: pointer.To(1), Max: maxColumnInt}
	publisherField = validate.Field{Name: FieldPublisher, Type: validate.TypeString, Required: true}
	titleField     = validate.Field{Name: FieldTitle, Type: validate.TypeString, Required: true, NonEmpty: true}
	yearField      = validate.Field{Name: FieldYear, Type: validate.TypeInteger, Required: true, Min: minColumnInt, Max: maxColumnInt}
)

// createSchema is the POST /books body: every column, the key included.
var createSchema = validate.NewSchema(
	isbnField,
	amazonURLField,
	authorField,
	languageField,
	pagesField,
	publisherField,
	titleField,
	yearField,
)

// updateSchema is the PUT /books/{isbn} body. The key comes from the path, so
// an isbn in the body is an unrecognized field.
var updateSchema = validate.NewSchema(
	amazonURLField,
	authorField,
	languageField,
	pagesField,
	publisherField,
	titleField,
	yearField,
)

// ValidateForCreate checks a decoded POST body and returns the typed book.
func ValidateForCreate(input map[string]any) (Book, error) {
	if err := createSchema.Check(input); err != nil {
		return Book{}, err
	}

	book := fromInput(input)
	book.ISBN = input[FieldISBN].(string)
	return book, nil
}

// ValidateForUpdate checks a decoded PUT body. The returned book has no ISBN.
func ValidateForUpdate(input map[string]any) (Book, error) {
	if err := updateSchema.Check(input); err != nil {
		return Book{}, err
	}
	return fromInput(input), nil
}

// fromInput copies the mutable fields of an already checked input.
func fromInput(input map[string]any) Book {
	pages, _ := validate.Integer(input[FieldPages])
	year, _ := validate.Integer(input[FieldYear])

	return Book{
		AmazonURL: input[FieldAmazonURL].(string),
		Author:    input[FieldAuthor].(string),
		Language:  input[FieldLanguage].(string),
		Pages:     pages,
		Publisher: input[FieldPublisher].(string),
		Title:     input[FieldTitle].(string),
		Year:      year,
	}
}
