package store

import (
	"context"

	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// List retrieves every book annotated with its author's name, in store order.
	// Returns an empty slice if there are no books.
	List(ctx context.Context) ([]*domain.BookWithAuthor, error)

	// GetWithAuthor retrieves a book by ID annotated with its author's name.
	// Returns ErrBookNotFound if the book does not exist.
	GetWithAuthor(ctx context.Context, id int64) (*domain.BookWithAuthor, error)

	// GetByID retrieves a book by ID without joining the author.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// Create saves a new book and sets its store-assigned ID.
	// Returns validation errors from the domain Book if data is invalid.
	Create(ctx context.Context, book *domain.Book) error

	// Update overwrites title, description and author of an existing book.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book and returns its last stored values.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id int64) (*domain.Book, error)

	// WithTx returns a new BookStore instance that uses the provided transaction.
	WithTx(tx DBTX) BookStore
}
