package domain

import "fmt"

// ErrEmptyAuthorName is returned when an author has no name.
var ErrEmptyAuthorName = fmt.Errorf("%w: author name cannot be empty", ErrValidation)

// Author writes books. Authors are managed elsewhere; this service only
// reads them to check references and to annotate books with a name.
type Author struct {
	ID   int64
	Name string
}

// Validate checks if the Author has valid data.
func (a *Author) Validate() error {
	if a.Name == "" {
		return ErrEmptyAuthorName
	}
	return nil
}
