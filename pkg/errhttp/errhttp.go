// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/shelfwatch/pkg/httpx"
	stockdomain "github.com/ghuser/shelfwatch/services/stock/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, stockdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, stockdomain.ErrItemAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, stockdomain.ErrInvalidItem),
		errors.Is(err, stockdomain.ErrEmptyImport):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, stockdomain.ErrSuggestionInFlight):
		return http.StatusConflict // 409, client should wait for the running call
	case errors.Is(err, stockdomain.ErrSuggestionUnavailable):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
