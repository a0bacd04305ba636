package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// MockAuthorStore implements store.AuthorStore for testing.
type MockAuthorStore struct {
	GetByIDFn func(ctx context.Context, id int64) (*domain.Author, error)
	CreateFn  func(ctx context.Context, author *domain.Author) error

	mu    sync.Mutex
	calls []string
}

var _ store.AuthorStore = (*MockAuthorStore)(nil)

func (m *MockAuthorStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
}

// Calls returns the names of the methods invoked so far.
func (m *MockAuthorStore) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// GetByID implements store.AuthorStore
func (m *MockAuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrAuthorNotFound
}

// Create implements store.AuthorStore
func (m *MockAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, author)
	}
	return nil
}

// WithTx implements store.AuthorStore. The mock ignores the transaction.
func (m *MockAuthorStore) WithTx(_ store.DBTX) store.AuthorStore {
	return m
}
