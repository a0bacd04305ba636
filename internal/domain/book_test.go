package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	book, err := NewBook("Dune", "Desert planet saga", 1)
	require.NoError(t, err)

	assert.Zero(t, book.ID, "ID is assigned by the store")
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Desert planet saga", book.Description)
	assert.Equal(t, int64(1), book.AuthorID)
}

func TestBookValidate(t *testing.T) {
	tests := []struct {
		name        string
		book        Book
		expectedErr error
	}{
		{
			name:        "valid",
			book:        Book{Title: "Dune", Description: "Desert planet saga", AuthorID: 1},
			expectedErr: nil,
		},
		{
			name:        "empty title",
			book:        Book{Title: "", Description: "Desert planet saga", AuthorID: 1},
			expectedErr: ErrEmptyBookTitle,
		},
		{
			name:        "title at limit",
			book:        Book{Title: strings.Repeat("a", MaxBookTitleLength), Description: "d", AuthorID: 1},
			expectedErr: nil,
		},
		{
			name:        "title over limit",
			book:        Book{Title: strings.Repeat("a", MaxBookTitleLength+1), Description: "d", AuthorID: 1},
			expectedErr: ErrBookTitleTooLong,
		},
		{
			name:        "multibyte title counts characters",
			book:        Book{Title: strings.Repeat("é", MaxBookTitleLength), Description: "d", AuthorID: 1},
			expectedErr: nil,
		},
		{
			name:        "empty description",
			book:        Book{Title: "Dune", Description: "", AuthorID: 1},
			expectedErr: ErrEmptyBookDescription,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.book.Validate()
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestBookReplace(t *testing.T) {
	book := &Book{ID: 7, Title: "Dune", Description: "Desert planet saga", AuthorID: 1}

	book.Replace(&Book{ID: 99, Title: "Dune Messiah", Description: "Sequel", AuthorID: 2})

	assert.Equal(t, int64(7), book.ID, "ID is never replaced")
	assert.Equal(t, "Dune Messiah", book.Title)
	assert.Equal(t, "Sequel", book.Description)
	assert.Equal(t, int64(2), book.AuthorID)
}

func TestAuthorValidate(t *testing.T) {
	assert.NoError(t, (&Author{ID: 1, Name: "Frank Herbert"}).Validate())
	assert.ErrorIs(t, (&Author{ID: 1}).Validate(), ErrEmptyAuthorName)
	assert.ErrorIs(t, (&Author{ID: 1}).Validate(), ErrValidation)
}
