package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// getPathID extracts a base-10 integer ID from the URL path parameters.
// Leading whitespace and an optional sign are accepted, then the leading run
// of digits is the ID and anything after it is ignored, so "12abc" and "12.5"
// both name 12. A segment with no leading digits, or one that overflows
// int64, is rejected.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := strings.TrimLeftFunc(chi.URLParam(r, paramName), unicode.IsSpace)

	end := 0
	if end < len(pathParam) && (pathParam[end] == '+' || pathParam[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(pathParam) && pathParam[end] >= '0' && pathParam[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, domain.ErrInvalidID
	}

	id, err := strconv.ParseInt(pathParam[:end], 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// respondWithServiceError writes the response for an error returned by the
// book service. Missing books and authors are answered in plain text; any
// other failure gets the JSON error envelope and is logged.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrBookNotFound):
		shared.RespondWithText(w, r, http.StatusNotFound, msgBookNotFound)
	case errors.Is(err, store.ErrAuthorNotFound):
		shared.RespondWithText(w, r, http.StatusNotFound, msgAuthorNotFound)
	default:
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
	}
}
