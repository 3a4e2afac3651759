package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"promptcloud/internal/domain"
	"promptcloud/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Anything outside the
// taxonomy is store unavailability: logged with detail, returned opaque.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidReference):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("unexpected error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
