package book_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/taibuivan/bookstore/internal/core/book"
)

// memoryRepository is an in-memory [book.Repository] that counts calls.
type memoryRepository struct {
	mu    sync.Mutex
	books map[string]book.Book
	calls int
}

func newMemoryRepository(seed ...book.Book) *memoryRepository {
	repo := &memoryRepository{books: make(map[string]book.Book)}
	for _, b := range seed {
		repo.books[b.ISBN] = b
	}
	return repo
}

func (r *memoryRepository) ListBooks(_ context.Context) ([]*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	books := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		copied := b
		books = append(books, &copied)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ISBN < books[j].ISBN })
	return books, nil
}

func (r *memoryRepository) GetBook(_ context.Context, isbn string) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	b, ok := r.books[isbn]
	if !ok {
		return nil, book.ErrNotFound
	}
	return &b, nil
}

func (r *memoryRepository) CreateBook(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	if _, exists := r.books[b.ISBN]; exists {
		return book.ErrConflict
	}
	r.books[b.ISBN] = *b
	return nil
}

func (r *memoryRepository) UpdateBook(_ context.Context, isbn string, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	if _, exists := r.books[isbn]; !exists {
		return book.ErrNotFound
	}
	b.ISBN = isbn
	r.books[isbn] = *b
	return nil
}

func (r *memoryRepository) DeleteBook(_ context.Context, isbn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	if _, exists := r.books[isbn]; !exists {
		return book.ErrNotFound
	}
	delete(r.books, isbn)
	return nil
}

func (r *memoryRepository) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *memoryRepository) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.books)
}

// sampleBook is the row every scenario starts from.
func sampleBook() book.Book {
	return book.Book{
		ISBN:      "123432122",
		AmazonURL: "https://amazon.com/taco",
		Author:    "Eli",
		Language:  "English",
		Pages:     100,
		Publisher: "Nothing publishers",
		Title:     "my first book",
		Year:      2008,
	}
}

func createPayload() map[string]any {
	return map[string]any{
		"isbn":       "1234567",
		"amazon_url": "https://taco.com",
		"author":     "mctest",
		"language":   "english",
		"pages":      200,
		"publisher":  "yeah right",
		"title":      "amazing times",
		"year":       2010,
	}
}

func updatePayload() map[string]any {
	return map[string]any{
		"amazon_url": "https://amazon.com/taco",
		"author":     "New Eli",
		"language":   "english",
		"pages":      101,
		"publisher":  "Famous publishers",
		"title":      "my new book",
		"year":       2009,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
