// Package service contains the application use cases for the books resource.
// It orchestrates the existence checks and persistence calls between the HTTP
// layer and the store interfaces defined in internal/store, without depending
// on any particular storage implementation.
//
// Errors returned by services wrap the store sentinels (store.ErrBookNotFound,
// store.ErrAuthorNotFound) and domain validation errors, so callers classify
// them with errors.Is.
package service
