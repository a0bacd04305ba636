package store

import (
	"context"

	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// AuthorStore defines the read side of author persistence needed by books,
// plus Create for provisioning and tests. Author management itself lives elsewhere.
type AuthorStore interface {
	// GetByID retrieves an author by ID.
	// Returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Author, error)

	// Create saves a new author and sets its store-assigned ID.
	Create(ctx context.Context, author *domain.Author) error

	// WithTx returns a new AuthorStore instance that uses the provided transaction.
	WithTx(tx DBTX) AuthorStore
}
