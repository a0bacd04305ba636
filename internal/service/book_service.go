package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/redact"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// BookInput carries the caller-supplied fields of a book for create and update.
type BookInput struct {
	Title       string
	Description string
	AuthorID    int64
}

// BookService provides the books resource operations.
type BookService interface {
	// ListBooks returns every book with its author, in store order.
	ListBooks(ctx context.Context) ([]*domain.BookWithAuthor, error)

	// GetBook returns a single book with its author.
	// Returns an error wrapping store.ErrBookNotFound if it does not exist.
	GetBook(ctx context.Context, id int64) (*domain.BookWithAuthor, error)

	// CreateBook stores a new book after checking that its author exists.
	// Returns an error wrapping store.ErrAuthorNotFound if it does not.
	CreateBook(ctx context.Context, input BookInput) (*domain.Book, error)

	// UpdateBook replaces every field of an existing book.
	// The book is looked up before the author.
	UpdateBook(ctx context.Context, id int64, input BookInput) (*domain.Book, error)

	// DeleteBook removes a book and returns its last values.
	DeleteBook(ctx context.Context, id int64) (*domain.Book, error)
}

// bookServiceImpl implements the BookService interface
type bookServiceImpl struct {
	books   store.BookStore
	authors store.AuthorStore
	logger  *slog.Logger
}

// NewBookService creates a new BookService.
// It returns an error if any of the required dependencies are nil.
func NewBookService(
	books store.BookStore,
	authors store.AuthorStore,
	logger *slog.Logger,
) (BookService, error) {
	if books == nil {
		return nil, errors.New("book store cannot be nil")
	}
	if authors == nil {
		return nil, errors.New("author store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &bookServiceImpl{
		books:   books,
		authors: authors,
		logger:  logger.With(slog.String("component", "book_service")),
	}, nil
}

// ListBooks implements BookService.ListBooks
func (s *bookServiceImpl) ListBooks(ctx context.Context) ([]*domain.BookWithAuthor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	books, err := s.books.List(ctx)
	if err != nil {
		log.Error("failed to list books", redact.ErrorAttr(err))
		return nil, NewBookServiceError("list_books", "failed to list books", err)
	}
	return books, nil
}

// GetBook implements BookService.GetBook
func (s *bookServiceImpl) GetBook(ctx context.Context, id int64) (*domain.BookWithAuthor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := s.books.GetWithAuthor(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("book not found", slog.Int64("book_id", id))
			return nil, NewBookServiceError("get_book", "book not found", store.ErrBookNotFound)
		}
		log.Error("failed to retrieve book", redact.ErrorAttr(err), slog.Int64("book_id", id))
		return nil, NewBookServiceError("get_book", "failed to retrieve book", err)
	}
	return book, nil
}

// CreateBook implements BookService.CreateBook
func (s *bookServiceImpl) CreateBook(ctx context.Context, input BookInput) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := domain.NewBook(input.Title, input.Description, input.AuthorID)
	if err != nil {
		return nil, NewBookServiceError("create_book", "invalid book", err)
	}

	if err := s.requireAuthor(ctx, "create_book", input.AuthorID); err != nil {
		return nil, err
	}

	if err := s.books.Create(ctx, book); err != nil {
		log.Error("failed to create book", redact.ErrorAttr(err), slog.Int64("author_id", input.AuthorID))
		return nil, NewBookServiceError("create_book", "failed to save book", err)
	}

	log.Info("book created", slog.Int64("book_id", book.ID), slog.Int64("author_id", book.AuthorID))
	return book, nil
}

// UpdateBook implements BookService.UpdateBook
func (s *bookServiceImpl) UpdateBook(ctx context.Context, id int64, input BookInput) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	replacement, err := domain.NewBook(input.Title, input.Description, input.AuthorID)
	if err != nil {
		return nil, NewBookServiceError("update_book", "invalid book", err)
	}

	book, err := s.findBook(ctx, "update_book", id)
	if err != nil {
		return nil, err
	}

	if err := s.requireAuthor(ctx, "update_book", input.AuthorID); err != nil {
		return nil, err
	}

	book.Replace(replacement)
	if err := s.books.Update(ctx, book); err != nil {
		if store.IsNotFoundError(err) {
			// Deleted between the lookup and the write.
			return nil, NewBookServiceError("update_book", "book not found", store.ErrBookNotFound)
		}
		log.Error("failed to update book", redact.ErrorAttr(err), slog.Int64("book_id", id))
		return nil, NewBookServiceError("update_book", "failed to save book", err)
	}

	log.Info("book updated", slog.Int64("book_id", id))
	return book, nil
}

// DeleteBook implements BookService.DeleteBook
func (s *bookServiceImpl) DeleteBook(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.findBook(ctx, "delete_book", id); err != nil {
		return nil, err
	}

	deleted, err := s.books.Delete(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewBookServiceError("delete_book", "book not found", store.ErrBookNotFound)
		}
		log.Error("failed to delete book", redact.ErrorAttr(err), slog.Int64("book_id", id))
		return nil, NewBookServiceError("delete_book", "failed to delete book", err)
	}

	log.Info("book deleted", slog.Int64("book_id", id))
	return deleted, nil
}

func (s *bookServiceImpl) findBook(ctx context.Context, op string, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("book not found", slog.Int64("book_id", id))
			return nil, NewBookServiceError(op, "book not found", store.ErrBookNotFound)
		}
		log.Error("failed to retrieve book", redact.ErrorAttr(err), slog.Int64("book_id", id))
		return nil, NewBookServiceError(op, "failed to retrieve book", err)
	}
	return book, nil
}

func (s *bookServiceImpl) requireAuthor(ctx context.Context, op string, authorID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("author not found", slog.Int64("author_id", authorID))
			return NewBookServiceError(op, "author not found", store.ErrAuthorNotFound)
		}
		log.Error("failed to retrieve author", redact.ErrorAttr(err), slog.Int64("author_id", authorID))
		return NewBookServiceError(op, "failed to retrieve author", err)
	}
	return nil
}
