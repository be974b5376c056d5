package handler

import (
	"errors"
	"net/http"

	"github.com/talent-api/internal/domain"
)

// writeDomainError maps domain sentinels to HTTP statuses. Anything
// unrecognised is treated as a storage/infrastructure outage and reported
// as a generic 503 without leaking the underlying error.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrAccountNotVerified):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotificationFailed):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, domain.ErrMissingKey):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusServiceUnavailable, domain.ErrUnavailable.Error())
	}
}
