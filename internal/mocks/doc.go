// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes a function field per interface method so a test can
// replace exactly the behavior it cares about. Methods without a function
// field fall back to the mock's default values.
//
// Usage:
//
//	import "github.com/phrazzld/bookshelf-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    catalog := mocks.NewCatalog()
//	    author := catalog.AddAuthor("Frank Herbert")
//	    books := catalog.BookStore()
//	    books.ListFn = func(ctx context.Context) ([]*domain.BookWithAuthor, error) {
//	        return nil, errors.New("connection reset")
//	    }
//	    // Use books and catalog.AuthorStore() in your test...
//	}
package mocks
