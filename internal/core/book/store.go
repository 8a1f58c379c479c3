package book

import "context"

// Repository defines the data access contract.
//
// Keyed operations return [ErrNotFound] when no row matches.
type Repository interface {
	ListBooks(context context.Context) ([]*Book, error)
	GetBook(context context.Context, isbn string) (*Book, error)
	CreateBook(context context.Context, b *Book) error
	UpdateBook(context context.Context, isbn string, b *Book) error
	DeleteBook(context context.Context, isbn string) error
}
