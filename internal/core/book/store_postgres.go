package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/bookstore/internal/platform/database/schema"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
	"github.com/taibuivan/bookstore/pkg/pointer"
)

var (
	bookColumns = strings.Join(schema.Books.Columns(), ", ")

	listBooksQuery = fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
	`, bookColumns, schema.Books.Table, schema.Books.ISBN)

	getBookQuery = fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, bookColumns, schema.Books.Table, schema.Books.ISBN)

	createBookQuery = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s
	`, schema.Books.Table, bookColumns, placeholders(1, len(schema.Books.Columns())), bookColumns)

	updateBookQuery = fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $%d
		RETURNING %s
	`,
		schema.Books.Table,
		assignments(schema.Books.MutableColumns()),
		schema.Books.ISBN, len(schema.Books.MutableColumns())+1,
		bookColumns,
	)

	deleteBookQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Books.Table, schema.Books.ISBN)
)

// PostgresRepository stores books in PostgreSQL through a [database/sql] handle.
type PostgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresRepository binds the repository to db. Every statement is bounded by timeout.
func NewPostgresRepository(db *sql.DB, timeout time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, timeout: timeout}
}

func (repository *PostgresRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, repository.timeout)
}

func (repository *PostgresRepository) ListBooks(context context.Context) ([]*Book, error) {
	timeoutCtx, cancel := repository.withTimeout(context)
	defer cancel()

	rows, err := repository.db.QueryContext(timeoutCtx, listBooksQuery)
	if err != nil {
		return nil, wrap(err, "list_books")
	}
	defer rows.Close()

	books := make([]*Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, wrap(err, "list_books")
	}
	return books, nil
}

func (repository *PostgresRepository) GetBook(context context.Context, isbn string) (*Book, error) {
	timeoutCtx, cancel := repository.withTimeout(context)
	defer cancel()

	b, err := scanBook(repository.db.QueryRowContext(timeoutCtx, getBookQuery, isbn))
	if err != nil {
		return nil, wrap(err, "get_book")
	}
	return b, nil
}

func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	timeoutCtx, cancel := repository.withTimeout(context)
	defer cancel()

	row := repository.db.QueryRowContext(timeoutCtx, createBookQuery,
		b.ISBN, b.AmazonURL, b.Author, b.Language, b.Pages, b.Publisher, b.Title, b.Year,
	)

	stored, err := scanBook(row)
	if err != nil {
		return wrap(err, "create_book")
	}

	*b = *stored
	return nil
}

func (repository *PostgresRepository) UpdateBook(context context.Context, isbn string, b *Book) error {
	timeoutCtx, cancel := repository.withTimeout(context)
	defer cancel()

	row := repository.db.QueryRowContext(timeoutCtx, updateBookQuery,
		b.AmazonURL, b.Author, b.Language, b.Pages, b.Publisher, b.Title, b.Year, isbn,
	)

	stored, err := scanBook(row)
	if err != nil {
		return wrap(err, "update_book")
	}

	*b = *stored
	return nil
}

func (repository *PostgresRepository) DeleteBook(context context.Context, isbn string) error {
	timeoutCtx, cancel := repository.withTimeout(context)
	defer cancel()

	result, err := repository.db.ExecContext(timeoutCtx, deleteBookQuery, isbn)
	if err != nil {
		return wrap(err, "delete_book")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return wrap(err, "delete_book")
	}

	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBook reads one row in [schema.BooksTable.Columns] order.
// Columns other than the key are nullable in the store; NULL reads as the zero value.
func scanBook(row rowScanner) (*Book, error) {
	var isbn string
	var amazonURL, author, language, publisher, title *string
	var pages, year *int

	if err := row.Scan(&isbn, &amazonURL, &author, &language, &pages, &publisher, &title, &year); err != nil {
		return nil, err
	}

	return &Book{
		ISBN:      isbn,
		AmazonURL: pointer.Val(amazonURL),
		Author:    pointer.Val(author),
		Language:  pointer.Val(language),
		Pages:     pointer.Val(pages),
		Publisher: pointer.Val(publisher),
		Title:     pointer.Val(title),
		Year:      pointer.Val(year),
	}, nil
}

// wrap classifies a driver error and narrows generic kinds to book errors.
func wrap(err error, action string) error {
	err = dberr.Wrap(err, action)

	switch {
	case errors.Is(err, dberr.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, dberr.ErrConflict):
		return ErrConflict
	}
	return err
}

// placeholders renders "$from, ..., $(from+count-1)".
func placeholders(from, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

// assignments renders "col1 = $1, col2 = $2, ...".
func assignments(columns []string) string {
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	return strings.Join(parts, ", ")
}
