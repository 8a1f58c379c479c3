package book

import (
	"context"
	"log/slog"
)

// Service validates book payloads and delegates storage to a [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.ListBooks(context)
}

func (service *Service) GetBook(context context.Context, isbn string) (*Book, error) {
	return service.repo.GetBook(context, isbn)
}

// CreateBook validates a decoded POST body and inserts it.
// The repository is not called when validation fails.
func (service *Service) CreateBook(context context.Context, input map[string]any) (*Book, error) {
	book, err := ValidateForCreate(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.CreateBook(context, &book); err != nil {
		return nil, err
	}

	service.logger.Info("book_created", slog.String("isbn", book.ISBN))
	return &book, nil
}

// UpdateBook validates a decoded PUT body and replaces every mutable field of
// the book stored under isbn.
func (service *Service) UpdateBook(context context.Context, isbn string, input map[string]any) (*Book, error) {
	book, err := ValidateForUpdate(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateBook(context, isbn, &book); err != nil {
		return nil, err
	}

	service.logger.Info("book_updated", slog.String("isbn", isbn))
	return &book, nil
}

func (service *Service) DeleteBook(context context.Context, isbn string) error {
	if err := service.repo.DeleteBook(context, isbn); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.String("isbn", isbn))
	return nil
}
