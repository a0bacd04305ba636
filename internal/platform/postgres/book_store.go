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

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the BookStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// WithTx implements store.BookStore.WithTx
func (s *PostgresBookStore) WithTx(tx store.DBTX) store.BookStore {
	return &PostgresBookStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.BookStore.List
// Books come back in ascending id order, each with its author's name.
func (s *PostgresBookStore) List(ctx context.Context) ([]*domain.BookWithAuthor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildListBooksQuery()
	if err != nil {
		return nil, store.NewStoreError("book", "list", "failed to build query", err)
	}

	var rows []bookRow
	if err := sqlx.SelectContext(ctx, s.db, &rows, query, args...); err != nil {
		log.Error("failed to list books", redact.ErrorAttr(err))
		return nil, MapError(err)
	}

	books := make([]*domain.BookWithAuthor, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toBookWithAuthor())
	}

	log.Debug("listed books", slog.Int("count", len(books)))
	return books, nil
}

// GetWithAuthor implements store.BookStore.GetWithAuthor
func (s *PostgresBookStore) GetWithAuthor(ctx context.Context, id int64) (*domain.BookWithAuthor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildGetBookWithAuthorQuery(id)
	if err != nil {
		return nil, store.NewStoreError("book", "get", "failed to build query", err)
	}

	var row bookRow
	if err := sqlx.GetContext(ctx, s.db, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book with author",
			redact.ErrorAttr(err),
			slog.Int64("book_id", id))
		return nil, MapError(err)
	}

	return row.toBookWithAuthor(), nil
}

// GetByID implements store.BookStore.GetByID
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildGetBookQuery(id)
	if err != nil {
		return nil, store.NewStoreError("book", "get", "failed to build query", err)
	}

	var row bookRow
	if err := sqlx.GetContext(ctx, s.db, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			redact.ErrorAttr(err),
			slog.Int64("book_id", id))
		return nil, MapError(err)
	}

	return row.toBook(), nil
}

// Create implements store.BookStore.Create
// On success book.ID holds the store-assigned identifier.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create", redact.ErrorAttr(err))
		return err
	}

	query, args, err := buildInsertBookQuery(book)
	if err != nil {
		return store.NewStoreError("book", "create", "failed to build query", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, s.db, &id, query, args...); err != nil {
		log.Error("failed to create book",
			redact.ErrorAttr(err),
			slog.Int64("author_id", book.AuthorID))
		return MapError(err)
	}
	book.ID = id

	log.Info("book created successfully",
		slog.Int64("book_id", book.ID),
		slog.Int64("author_id", book.AuthorID))
	return nil
}

// Update implements store.BookStore.Update
// Title, description and author are all overwritten.
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during update",
			redact.ErrorAttr(err),
			slog.Int64("book_id", book.ID))
		return err
	}

	query, args, err := buildUpdateBookQuery(book)
	if err != nil {
		return store.NewStoreError("book", "update", "failed to build query", err)
	}

	var row bookRow
	if err := sqlx.GetContext(ctx, s.db, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found for update", slog.Int64("book_id", book.ID))
			return store.ErrBookNotFound
		}
		log.Error("failed to update book",
			redact.ErrorAttr(err),
			slog.Int64("book_id", book.ID))
		return MapError(err)
	}
	*book = *row.toBook()

	log.Info("book updated successfully", slog.Int64("book_id", book.ID))
	return nil
}

// Delete implements store.BookStore.Delete
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildDeleteBookQuery(id)
	if err != nil {
		return nil, store.NewStoreError("book", "delete", "failed to build query", err)
	}

	var row bookRow
	if err := sqlx.GetContext(ctx, s.db, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found for delete", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to delete book",
			redact.ErrorAttr(err),
			slog.Int64("book_id", id))
		return nil, MapError(err)
	}

	log.Info("book deleted successfully", slog.Int64("book_id", id))
	return row.toBook(), nil
}
