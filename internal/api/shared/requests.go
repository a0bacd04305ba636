package shared

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// MaxBodyBytes bounds the size of request bodies read by DecodeObject.
const MaxBodyBytes = 1 << 20

var (
	// json is the codec used for request and response bodies.
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	// Global validator instance for reuse
	validate = validator.New()
)

// Body decoding errors.
var (
	// ErrInvalidJSON indicates the body is not syntactically valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrExpectedObject indicates the body is valid JSON but not an object.
	ErrExpectedObject = errors.New("expected object")

	// ErrBodyTooLarge indicates the body exceeded MaxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)

// RawFields is a JSON object whose member values have not been decoded yet.
type RawFields map[string]jsoniter.RawMessage

// DecodeObject reads the request body and splits the top-level JSON object
// into its raw members, so each member's type can be checked before it is
// decoded. An empty body is treated as an empty object.
func DecodeObject(r *http.Request) (RawFields, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) > MaxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return RawFields{}, nil
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}
	if body[0] != '{' {
		return nil, ErrExpectedObject
	}

	fields := RawFields{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return fields, nil
}

// ValidateRequest validates the given struct using its validate tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}
