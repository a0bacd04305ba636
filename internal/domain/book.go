package domain

import (
	"fmt"
	"unicode/utf8"
)

// MaxBookTitleLength is the maximum number of characters allowed in a book title.
const MaxBookTitleLength = 255

// Common validation errors for Book
var (
	ErrEmptyBookTitle       = fmt.Errorf("%w: book title cannot be empty", ErrValidation)
	ErrBookTitleTooLong     = fmt.Errorf("%w: book title cannot exceed %d characters", ErrValidation, MaxBookTitleLength)
	ErrEmptyBookDescription = fmt.Errorf("%w: book description cannot be empty", ErrValidation)
)

// Book is a title in the catalogue. Every book belongs to exactly one author,
// referenced by AuthorID.
type Book struct {
	ID          int64
	Title       string
	Description string
	AuthorID    int64
}

// BookWithAuthor is a Book annotated with its author.
// It is the read model returned by list and single-book lookups.
// Author is nil when the referenced author no longer exists.
type BookWithAuthor struct {
	Book
	Author *Author
}

// NewBook creates a new, not yet persisted Book. The ID is assigned by the store.
// Returns an error if validation fails.
func NewBook(title, description string, authorID int64) (*Book, error) {
	book := &Book{
		Title:       title,
		Description: description,
		AuthorID:    authorID,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
// Title length is measured in characters, not bytes.
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrEmptyBookTitle
	}
	if utf8.RuneCountInString(b.Title) > MaxBookTitleLength {
		return ErrBookTitleTooLong
	}
	if b.Description == "" {
		return ErrEmptyBookDescription
	}
	return nil
}

// Replace overwrites every mutable field of the book with the values of other.
// Updates are full replacements; there is no partial patch.
func (b *Book) Replace(other *Book) {
	b.Title = other.Title
	b.Description = other.Description
	b.AuthorID = other.AuthorID
}
