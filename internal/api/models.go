package api

import (
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/service"
)

// BookRequest defines the payload for the create and update endpoints.
// Fields are pointers so an absent member can be told apart from a zero value.
type BookRequest struct {
	Title       *string `json:"title"       validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"required,min=1"`
	AuthorID    *int64  `json:"authorId"    validate:"required"`
}

// toInput converts a validated request into service input.
func (r *BookRequest) toInput() service.BookInput {
	return service.BookInput{
		Title:       *r.Title,
		Description: *r.Description,
		AuthorID:    *r.AuthorID,
	}
}

// BookResponse is the wire form of a stored book.
type BookResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorID    int64  `json:"authorId"`
}

// AuthorSummary is the subset of author fields embedded in book reads.
type AuthorSummary struct {
	Name string `json:"name"`
}

// BookWithAuthorResponse is a book together with its author's name.
// Author is null when the referenced author no longer exists.
type BookWithAuthorResponse struct {
	BookResponse
	Author *AuthorSummary `json:"author"`
}

func bookToResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		AuthorID:    b.AuthorID,
	}
}

func bookWithAuthorToResponse(b *domain.BookWithAuthor) BookWithAuthorResponse {
	resp := BookWithAuthorResponse{BookResponse: bookToResponse(&b.Book)}
	if b.Author != nil {
		resp.Author = &AuthorSummary{Name: b.Author.Name}
	}
	return resp
}

func booksWithAuthorToResponse(books []*domain.BookWithAuthor) []BookWithAuthorResponse {
	resp := make([]BookWithAuthorResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, bookWithAuthorToResponse(b))
	}
	return resp
}
