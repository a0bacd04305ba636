package api

import (
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawFields(t *testing.T, body string) shared.RawFields {
	t.Helper()
	fields := shared.RawFields{}
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(body), &fields))
	return fields
}

func TestParseBookRequest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErrors map[string][]string
	}{
		{
			name: "valid",
			body: `{"title":"Dune","description":"Spice","authorId":1}`,
		},
		{
			name: "unknown fields ignored",
			body: `{"title":"Dune","description":"Spice","authorId":1,"isbn":"x"}`,
		},
		{
			name: "integral float author id",
			body: `{"title":"Dune","description":"Spice","authorId":1.0}`,
		},
		{
			name: "empty object",
			body: `{}`,
			wantErrors: map[string][]string{
				"title":       {"Title is required"},
				"description": {"Description is required"},
				"authorId":    {"Author id is required"},
			},
		},
		{
			name: "empty strings",
			body: `{"title":"","description":"","authorId":1}`,
			wantErrors: map[string][]string{
				"title":       {"Title can not be empty"},
				"description": {"Description can not be empty"},
			},
		},
		{
			name: "title too long",
			body: `{"title":"` + strings.Repeat("a", 256) + `","description":"d","authorId":1}`,
			wantErrors: map[string][]string{
				"title": {"Title can not be longer than 255 characters"},
			},
		},
		{
			name: "wrong types",
			body: `{"title":5,"description":null,"authorId":"1"}`,
			wantErrors: map[string][]string{
				"title":       {"Title must be a string"},
				"description": {"Description must be a string"},
				"authorId":    {"Author id must be a number"},
			},
		},
		{
			name: "fractional author id",
			body: `{"title":"Dune","description":"Spice","authorId":1.5}`,
			wantErrors: map[string][]string{
				"authorId": {"Author id must be an integer"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, report := parseBookRequest(rawFields(t, tc.body))

			if tc.wantErrors == nil {
				require.Nil(t, report)
				require.NotNil(t, req)
				assert.NotNil(t, req.Title)
				assert.NotNil(t, req.AuthorID)
				return
			}
			require.NotNil(t, report)
			assert.Nil(t, req)
			assert.Equal(t, tc.wantErrors, report.FieldErrors)
			assert.Empty(t, report.FormErrors)
		})
	}
}

func TestTitleLengthCountsCharacters(t *testing.T) {
	title := strings.Repeat("é", 255)
	body := `{"title":"` + title + `","description":"d","authorId":1}`

	req, report := parseBookRequest(rawFields(t, body))

	require.Nil(t, report)
	assert.Equal(t, title, *req.Title)
}

func TestValidationReportBody(t *testing.T) {
	report := newValidationReport()
	report.addField("title", "Title is required")

	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(report.Body())

	require.NoError(t, err)
	assert.JSONEq(t, `{"_errors":[],"title":{"_errors":["Title is required"]}}`, string(body))
}

func TestDecodeErrorReport(t *testing.T) {
	assert.Equal(t, []string{"Expected object"}, decodeErrorReport(shared.ErrExpectedObject).FormErrors)
	assert.Equal(t, []string{"Invalid JSON"}, decodeErrorReport(shared.ErrInvalidJSON).FormErrors)
}
