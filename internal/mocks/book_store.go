package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// MockBookStore implements store.BookStore for testing.
// Every call is recorded in Calls, in order.
type MockBookStore struct {
	ListFn          func(ctx context.Context) ([]*domain.BookWithAuthor, error)
	GetWithAuthorFn func(ctx context.Context, id int64) (*domain.BookWithAuthor, error)
	GetByIDFn       func(ctx context.Context, id int64) (*domain.Book, error)
	CreateFn        func(ctx context.Context, book *domain.Book) error
	UpdateFn        func(ctx context.Context, book *domain.Book) error
	DeleteFn        func(ctx context.Context, id int64) (*domain.Book, error)

	mu    sync.Mutex
	calls []string
}

var _ store.BookStore = (*MockBookStore)(nil)

func (m *MockBookStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
}

// Calls returns the names of the methods invoked so far.
func (m *MockBookStore) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// List implements store.BookStore
func (m *MockBookStore) List(ctx context.Context) ([]*domain.BookWithAuthor, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.BookWithAuthor{}, nil
}

// GetWithAuthor implements store.BookStore
func (m *MockBookStore) GetWithAuthor(ctx context.Context, id int64) (*domain.BookWithAuthor, error) {
	m.record("GetWithAuthor")
	if m.GetWithAuthorFn != nil {
		return m.GetWithAuthorFn(ctx, id)
	}
	return nil, store.ErrBookNotFound
}

// GetByID implements store.BookStore
func (m *MockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrBookNotFound
}

// Create implements store.BookStore
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}
	return nil
}

// Update implements store.BookStore
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}
	return nil
}

// Delete implements store.BookStore
func (m *MockBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil, store.ErrBookNotFound
}

// WithTx implements store.BookStore. The mock ignores the transaction.
func (m *MockBookStore) WithTx(_ store.DBTX) store.BookStore {
	return m
}
