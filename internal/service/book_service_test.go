package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/mocks"
	"github.com/phrazzld/bookshelf-api/internal/service"
	"github.com/phrazzld/bookshelf-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, catalog *mocks.Catalog) service.BookService {
	t.Helper()
	svc, err := service.NewBookService(catalog.BookStore(), catalog.AuthorStore(), nil)
	require.NoError(t, err)
	return svc
}

func TestNewBookService(t *testing.T) {
	catalog := mocks.NewCatalog()

	_, err := service.NewBookService(nil, catalog.AuthorStore(), nil)
	assert.Error(t, err)

	_, err = service.NewBookService(catalog.BookStore(), nil, nil)
	assert.Error(t, err)

	svc, err := service.NewBookService(catalog.BookStore(), catalog.AuthorStore(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc := newService(t, mocks.NewCatalog())

		books, err := svc.ListBooks(ctx)

		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("books with authors in id order", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		author := catalog.AddAuthor("Frank Herbert")
		catalog.AddBook("Dune", "Spice", author.ID)
		catalog.AddBook("Dune Messiah", "More spice", author.ID)
		svc := newService(t, catalog)

		books, err := svc.ListBooks(ctx)

		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "Dune Messiah", books[1].Title)
		assert.Equal(t, "Frank Herbert", books[0].Author.Name)
	})

	t.Run("store failure", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		storeErr := errors.New("connection reset")
		catalog.BookStore().ListFn = func(context.Context) ([]*domain.BookWithAuthor, error) {
			return nil, storeErr
		}
		svc := newService(t, catalog)

		_, err := svc.ListBooks(ctx)

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestGetBook(t *testing.T) {
	ctx := context.Background()
	catalog := mocks.NewCatalog()
	author := catalog.AddAuthor("Frank Herbert")
	book := catalog.AddBook("Dune", "Spice", author.ID)
	svc := newService(t, catalog)

	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, got.Book)
	assert.Equal(t, "Frank Herbert", got.Author.Name)

	_, err = svc.GetBook(ctx, 999)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		author := catalog.AddAuthor("Frank Herbert")
		svc := newService(t, catalog)

		book, err := svc.CreateBook(ctx, service.BookInput{Title: "Dune", Description: "Spice", AuthorID: author.ID})

		require.NoError(t, err)
		assert.Equal(t, int64(1), book.ID)
		assert.Equal(t, 1, catalog.BookCount())
	})

	t.Run("missing author", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		svc := newService(t, catalog)

		_, err := svc.CreateBook(ctx, service.BookInput{Title: "Dune", Description: "Spice", AuthorID: 42})

		assert.ErrorIs(t, err, store.ErrAuthorNotFound)
		assert.Equal(t, 0, catalog.BookCount())
		assert.NotContains(t, catalog.BookStore().Calls(), "Create")
	})

	t.Run("invalid book", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		svc := newService(t, catalog)

		_, err := svc.CreateBook(ctx, service.BookInput{Title: "", Description: "Spice", AuthorID: 1})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, catalog.AuthorStore().Calls())
	})

	t.Run("author lookup failure", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		storeErr := errors.New("timeout")
		catalog.AuthorStore().GetByIDFn = func(context.Context, int64) (*domain.Author, error) {
			return nil, storeErr
		}
		svc := newService(t, catalog)

		_, err := svc.CreateBook(ctx, service.BookInput{Title: "Dune", Description: "Spice", AuthorID: 1})

		assert.ErrorIs(t, err, storeErr)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("full replacement", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		herbert := catalog.AddAuthor("Frank Herbert")
		leGuin := catalog.AddAuthor("Ursula K. Le Guin")
		book := catalog.AddBook("Dune", "Spice", herbert.ID)
		svc := newService(t, catalog)

		updated, err := svc.UpdateBook(ctx, book.ID, service.BookInput{
			Title: "The Left Hand of Darkness", Description: "Gethen", AuthorID: leGuin.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, book.ID, updated.ID)
		stored, ok := catalog.Book(book.ID)
		require.True(t, ok)
		assert.Equal(t, "The Left Hand of Darkness", stored.Title)
		assert.Equal(t, "Gethen", stored.Description)
		assert.Equal(t, leGuin.ID, stored.AuthorID)
	})

	t.Run("missing book is reported before missing author", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		svc := newService(t, catalog)

		_, err := svc.UpdateBook(ctx, 7, service.BookInput{Title: "X", Description: "Y", AuthorID: 99})

		assert.ErrorIs(t, err, store.ErrBookNotFound)
		assert.Empty(t, catalog.AuthorStore().Calls())
	})

	t.Run("missing author", func(t *testing.T) {
		catalog := mocks.NewCatalog()
		author := catalog.AddAuthor("Frank Herbert")
		book := catalog.AddBook("Dune", "Spice", author.ID)
		svc := newService(t, catalog)

		_, err := svc.UpdateBook(ctx, book.ID, service.BookInput{Title: "X", Description: "Y", AuthorID: 99})

		assert.ErrorIs(t, err, store.ErrAuthorNotFound)
		stored, _ := catalog.Book(book.ID)
		assert.Equal(t, "Dune", stored.Title)
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	catalog := mocks.NewCatalog()
	author := catalog.AddAuthor("Frank Herbert")
	book := catalog.AddBook("Dune", "Spice", author.ID)
	svc := newService(t, catalog)

	deleted, err := svc.DeleteBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, *deleted)
	assert.Equal(t, 0, catalog.BookCount())

	_, err = svc.DeleteBook(ctx, book.ID)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}
