package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"playerone/internal/domain"
)

var errorStatuses = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrDuplicateUser, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrForbidden, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrEventFull, http.StatusConflict, ErrCodeEventFull},
	{domain.ErrRegistrationClosed, http.StatusForbidden, ErrCodeRegistrationClosed},
	{domain.ErrDuplicateRegistration, http.StatusConflict, ErrCodeDuplicateRegistration},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, ErrCodeUnauthorized},
}

// WriteServiceError maps a service error to its HTTP status and error code.
// Domain errors carry a client-safe message; anything else is logged and
// reported as an internal error without details.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			WriteJSONError(w, e.status, e.code, err.Error())
			return
		}
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}
