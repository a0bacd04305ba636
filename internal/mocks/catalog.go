package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// Catalog is an in-memory book and author store shared by a MockBookStore and
// a MockAuthorStore. It assigns sequential IDs the way a serial column would.
type Catalog struct {
	mu           sync.Mutex
	books        map[int64]domain.Book
	authors      map[int64]domain.Author
	nextBookID   int64
	nextAuthorID int64

	bookStore   *MockBookStore
	authorStore *MockAuthorStore
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	c := &Catalog{
		books:        make(map[int64]domain.Book),
		authors:      make(map[int64]domain.Author),
		nextBookID:   1,
		nextAuthorID: 1,
	}

	c.bookStore = &MockBookStore{
		ListFn:          c.list,
		GetWithAuthorFn: c.getWithAuthor,
		GetByIDFn:       c.getBook,
		CreateFn:        c.createBook,
		UpdateFn:        c.updateBook,
		DeleteFn:        c.deleteBook,
	}
	c.authorStore = &MockAuthorStore{
		GetByIDFn: c.getAuthor,
		CreateFn:  c.createAuthor,
	}
	return c
}

// BookStore returns the catalog-backed book store. Tests may override its
// function fields to inject failures.
func (c *Catalog) BookStore() *MockBookStore { return c.bookStore }

// AuthorStore returns the catalog-backed author store.
func (c *Catalog) AuthorStore() *MockAuthorStore { return c.authorStore }

// AddAuthor inserts an author and returns it with its assigned ID.
func (c *Catalog) AddAuthor(name string) domain.Author {
	a := &domain.Author{Name: name}
	_ = c.createAuthor(context.Background(), a)
	return *a
}

// AddBook inserts a book without checking its author and returns it with its assigned ID.
func (c *Catalog) AddBook(title, description string, authorID int64) domain.Book {
	b := &domain.Book{Title: title, Description: description, AuthorID: authorID}
	_ = c.createBook(context.Background(), b)
	return *b
}

// RemoveAuthor deletes an author, leaving any books that reference it dangling.
func (c *Catalog) RemoveAuthor(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.authors, id)
}

// BookCount returns the number of stored books.
func (c *Catalog) BookCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.books)
}

// Book returns the stored book with the given ID.
func (c *Catalog) Book(id int64) (domain.Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.books[id]
	return b, ok
}

func (c *Catalog) withAuthor(b domain.Book) *domain.BookWithAuthor {
	result := &domain.BookWithAuthor{Book: b}
	if a, ok := c.authors[b.AuthorID]; ok {
		result.Author = &a
	}
	return result
}

func (c *Catalog) list(_ context.Context) ([]*domain.BookWithAuthor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int64, 0, len(c.books))
	for id := range c.books {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]*domain.BookWithAuthor, 0, len(ids))
	for _, id := range ids {
		result = append(result, c.withAuthor(c.books[id]))
	}
	return result, nil
}

func (c *Catalog) getWithAuthor(_ context.Context, id int64) (*domain.BookWithAuthor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return c.withAuthor(b), nil
}

func (c *Catalog) getBook(_ context.Context, id int64) (*domain.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return &b, nil
}

func (c *Catalog) createBook(_ context.Context, book *domain.Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	book.ID = c.nextBookID
	c.nextBookID++
	c.books[book.ID] = *book
	return nil
}

func (c *Catalog) updateBook(_ context.Context, book *domain.Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.books[book.ID]; !ok {
		return store.ErrBookNotFound
	}
	c.books[book.ID] = *book
	return nil
}

func (c *Catalog) deleteBook(_ context.Context, id int64) (*domain.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	delete(c.books, id)
	return &b, nil
}

func (c *Catalog) getAuthor(_ context.Context, id int64) (*domain.Author, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	return &a, nil
}

func (c *Catalog) createAuthor(_ context.Context, author *domain.Author) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	author.ID = c.nextAuthorID
	c.nextAuthorID++
	c.authors[author.ID] = *author
	return nil
}
