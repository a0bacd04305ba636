package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/redact"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// PostgresAuthorStore implements the store.AuthorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuthorStore creates a new PostgreSQL implementation of the AuthorStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAuthorStore(db store.DBTX, logger *slog.Logger) *PostgresAuthorStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAuthorStore{
		db:     db,
		logger: logger.With(slog.String("component", "author_store")),
	}
}

// Ensure PostgresAuthorStore implements store.AuthorStore interface
var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

// WithTx implements store.AuthorStore.WithTx
func (s *PostgresAuthorStore) WithTx(tx store.DBTX) store.AuthorStore {
	return &PostgresAuthorStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetByID implements store.AuthorStore.GetByID
func (s *PostgresAuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildGetAuthorQuery(id)
	if err != nil {
		return nil, store.NewStoreError("author", "get", "failed to build query", err)
	}

	var row authorRow
	if err := sqlx.GetContext(ctx, s.db, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("author not found", slog.Int64("author_id", id))
			return nil, store.ErrAuthorNotFound
		}
		log.Error("failed to get author by ID",
			redact.ErrorAttr(err),
			slog.Int64("author_id", id))
		return nil, MapError(err)
	}

	return &domain.Author{ID: row.ID, Name: row.Name}, nil
}

// Create implements store.AuthorStore.Create
func (s *PostgresAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := author.Validate(); err != nil {
		return err
	}

	query, args, err := buildInsertAuthorQuery(author)
	if err != nil {
		return store.NewStoreError("author", "create", "failed to build query", err)
	}

	if err := sqlx.GetContext(ctx, s.db, &author.ID, query, args...); err != nil {
		log.Error("failed to create author", redact.ErrorAttr(err))
		return MapError(err)
	}

	log.Info("author created successfully", slog.Int64("author_id", author.ID))
	return nil
}
