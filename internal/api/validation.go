package api

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// formErrorsKey holds errors that belong to the body as a whole.
const formErrorsKey = "_errors"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// bookField describes one member of BookRequest for validation reporting.
type bookField struct {
	key   string // JSON member name
	name  string // struct field name reported by validator
	label string // human label used in messages
	kind  jsonKind
}

var bookFields = []bookField{
	{key: "title", name: "Title", label: "Title", kind: kindString},
	{key: "description", name: "Description", label: "Description", kind: kindString},
	{key: "authorId", name: "AuthorID", label: "Author id", kind: kindInteger},
}

type jsonKind int

const (
	kindString jsonKind = iota
	kindInteger
)

// ValidationReport is the structured 400 body: form-level errors plus a
// per-field list of messages. Only fields with errors appear.
type ValidationReport struct {
	FormErrors  []string
	FieldErrors map[string][]string
}

func newValidationReport() *ValidationReport {
	return &ValidationReport{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
}

func (v *ValidationReport) addField(key, message string) {
	v.FieldErrors[key] = append(v.FieldErrors[key], message)
}

// Empty reports whether no errors were recorded.
func (v *ValidationReport) Empty() bool {
	return len(v.FormErrors) == 0 && len(v.FieldErrors) == 0
}

// Body returns the JSON shape of the report:
//
//	{"_errors": [], "title": {"_errors": ["Title is required"]}}
func (v *ValidationReport) Body() map[string]interface{} {
	body := map[string]interface{}{formErrorsKey: v.FormErrors}
	for key, messages := range v.FieldErrors {
		body[key] = map[string][]string{formErrorsKey: messages}
	}
	return body
}

// decodeErrorReport turns a body decoding failure into a form-level report.
func decodeErrorReport(err error) *ValidationReport {
	report := newValidationReport()
	switch {
	case errors.Is(err, shared.ErrExpectedObject):
		report.FormErrors = append(report.FormErrors, "Expected object")
	case errors.Is(err, shared.ErrBodyTooLarge):
		report.FormErrors = append(report.FormErrors, "Request body too large")
	default:
		report.FormErrors = append(report.FormErrors, "Invalid JSON")
	}
	return report
}

// parseBookRequest type-checks each raw member, decodes it, then applies the
// validator tags of BookRequest. Unknown members are ignored. It returns a
// nil report when the request is valid.
func parseBookRequest(fields shared.RawFields) (*BookRequest, *ValidationReport) {
	req := &BookRequest{}
	report := newValidationReport()

	for _, f := range bookFields {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		if msg := decodeField(req, f, raw); msg != "" {
			report.addField(f.key, msg)
		}
	}

	if err := shared.ValidateRequest(req); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			report.FormErrors = append(report.FormErrors, "Invalid request")
			return nil, report
		}
		for _, fe := range validationErrs {
			f, ok := lookupField(fe.StructField())
			if !ok {
				continue
			}
			// A member that failed its type check is reported once.
			if _, typed := report.FieldErrors[f.key]; typed {
				continue
			}
			report.addField(f.key, tagMessage(f, fe.Tag()))
		}
	}

	if !report.Empty() {
		return nil, report
	}
	return req, nil
}

// decodeField decodes raw into the matching BookRequest member and returns a
// type error message, or "" on success.
func decodeField(req *BookRequest, f bookField, raw jsoniter.RawMessage) string {
	raw = bytes.TrimSpace(raw)

	switch f.kind {
	case kindString:
		if len(raw) == 0 || raw[0] != '"' {
			return f.label + " must be a string"
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return f.label + " must be a string"
		}
		switch f.key {
		case "title":
			req.Title = &s
		case "description":
			req.Description = &s
		}
	case kindInteger:
		if len(raw) == 0 || !isNumberToken(raw[0]) {
			return f.label + " must be a number"
		}
		n, ok := decodeInteger(raw)
		if !ok {
			return f.label + " must be an integer"
		}
		req.AuthorID = &n
	}
	return ""
}

func isNumberToken(c byte) bool {
	return c == '-' || (c >= '0' && c <= '9')
}

// decodeInteger accepts JSON numbers with an integral value that fits in an
// int64, including forms such as 1.0 and 1e3.
func decodeInteger(raw []byte) (int64, bool) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func lookupField(structField string) (bookField, bool) {
	for _, f := range bookFields {
		if f.name == structField {
			return f, true
		}
	}
	return bookField{}, false
}

func tagMessage(f bookField, tag string) string {
	switch tag {
	case "required":
		return f.label + " is required"
	case "min":
		return f.label + " can not be empty"
	case "max":
		return fmt.Sprintf("%s can not be longer than %d characters", f.label, domain.MaxBookTitleLength)
	default:
		return f.label + " is invalid"
	}
}
