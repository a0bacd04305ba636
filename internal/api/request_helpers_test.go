package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGetPathID(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		want    int64
		wantErr bool
	}{
		{name: "plain digits", param: "42", want: 42},
		{name: "leading zeros", param: "007", want: 7},
		{name: "explicit plus sign", param: "+1", want: 1},
		{name: "negative", param: "-3", want: -3},
		{name: "leading whitespace", param: " 12", want: 12},
		{name: "trailing letters", param: "1abc", want: 1},
		{name: "fraction truncated", param: "1.9", want: 1},
		{name: "exponent ignored", param: "2e3", want: 2},
		{name: "hex prefix reads the zero", param: "0x10", want: 0},
		{name: "max int64", param: "9223372036854775807", want: 9223372036854775807},
		{name: "empty", param: "", wantErr: true},
		{name: "letters only", param: "abc", wantErr: true},
		{name: "sign only", param: "-", wantErr: true},
		{name: "sign then letters", param: "+x1", wantErr: true},
		{name: "leading dot", param: ".5", wantErr: true},
		{name: "overflow", param: "9223372036854775808", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.param)
			req := httptest.NewRequest(http.MethodGet, "/books/x", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			id, err := getPathID(req, "id")

			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
