//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/postgres"
	"github.com/phrazzld/bookshelf-api/internal/store"
	"github.com/phrazzld/bookshelf-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresBookStore(t *testing.T) {
	db := testdb.OpenTestDatabase(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
		ctx := context.Background()
		authors := postgres.NewPostgresAuthorStore(tx, nil)
		books := postgres.NewPostgresBookStore(tx, nil)

		author := &domain.Author{Name: "Frank Herbert"}
		require.NoError(t, authors.Create(ctx, author))
		require.NotZero(t, author.ID)

		got, err := authors.GetByID(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, "Frank Herbert", got.Name)

		book := &domain.Book{Title: "Dune", Description: "Spice", AuthorID: author.ID}
		require.NoError(t, books.Create(ctx, book))
		require.NotZero(t, book.ID)

		withAuthor, err := books.GetWithAuthor(ctx, book.ID)
		require.NoError(t, err)
		require.NotNil(t, withAuthor.Author)
		assert.Equal(t, "Frank Herbert", withAuthor.Author.Name)

		dangling := &domain.Book{Title: "Orphan", Description: "No author", AuthorID: author.ID + 1000}
		require.NoError(t, books.Create(ctx, dangling))

		list, err := books.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 2)
		for i := 1; i < len(list); i++ {
			assert.Less(t, list[i-1].ID, list[i].ID, "books must be in ascending id order")
		}
		last := list[len(list)-1]
		assert.Equal(t, dangling.ID, last.ID)
		assert.Nil(t, last.Author)

		book.Title = "Dune Messiah"
		book.Description = "More spice"
		require.NoError(t, books.Update(ctx, book))
		stored, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", stored.Title)

		deleted, err := books.Delete(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", deleted.Title)

		_, err = books.GetByID(ctx, book.ID)
		assert.ErrorIs(t, err, store.ErrBookNotFound)
		_, err = books.Delete(ctx, book.ID)
		assert.ErrorIs(t, err, store.ErrBookNotFound)

		missing := &domain.Book{ID: book.ID, Title: "x", Description: "y", AuthorID: author.ID}
		assert.ErrorIs(t, books.Update(ctx, missing), store.ErrBookNotFound)

		_, err = authors.GetByID(ctx, author.ID+1000)
		assert.ErrorIs(t, err, store.ErrAuthorNotFound)
	})
}

func TestPostgresBookStoreRejectsInvalidBook(t *testing.T) {
	db := testdb.OpenTestDatabase(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
		books := postgres.NewPostgresBookStore(tx, nil)

		err := books.Create(context.Background(), &domain.Book{Title: "", Description: "d", AuthorID: 1})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
