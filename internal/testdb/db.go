package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/bookshelf-api/internal/platform/postgres/migrations"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var migrateOnce sync.Map // database URL -> *sync.Once

// GetTestDatabaseURL returns the database URL for tests.
// It checks BOOKSHELF_TEST_DB_URL and DATABASE_URL in that order.
func GetTestDatabaseURL() string {
	if url := os.Getenv("BOOKSHELF_TEST_DB_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// OpenTestDatabase connects to the test database and applies migrations.
// The test is skipped when no database is configured. The connection is
// closed when the test finishes.
func OpenTestDatabase(t *testing.T) *sqlx.DB {
	t.Helper()

	url := GetTestDatabaseURL()
	if url == "" {
		t.Skip("BOOKSHELF_TEST_DB_URL or DATABASE_URL not set; skipping database test")
	}

	db, err := sqlx.Open("pgx", url)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Failed to ping test database")

	once, _ := migrateOnce.LoadOrStore(url, &sync.Once{})
	var migrateErr error
	once.(*sync.Once).Do(func() {
		migrateErr = migrations.Run(context.Background(), db.DB, "up", nil)
	})
	require.NoError(t, migrateErr, "Failed to run migrations")

	return db
}

// WithTx executes a test function within a transaction, automatically rolling back
// after the test completes. This ensures test isolation and prevents side effects.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	tx, err := db.Beginx()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
