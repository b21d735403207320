package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/linkvaultapp/linkvault/middleware"
	"github.com/linkvaultapp/linkvault/store"
)

// writeStoreError maps the store error taxonomy onto HTTP responses.
// Unrecognized errors are treated as transport failures: logged with a
// diagnostic and reported as an opaque 500.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case store.IsValidation(err):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "You don't have permission to do that")
	case errors.Is(err, store.ErrDuplicateEmail):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalidCredentials):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid login credentials")
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
