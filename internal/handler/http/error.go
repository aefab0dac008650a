package handler

import (
	"errors"
	"net/http"

	"github.com/shopkit/adminpanel/internal/models"
)

// statusFromError maps an error to an HTTP status code.
// Anything unknown is an internal error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrNoSessionUser):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrOrderIDRequired),
		errors.Is(err, models.ErrInvalidOrderID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError is the single error funnel: the error message becomes the
// whole response body
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFromError(err))
}
