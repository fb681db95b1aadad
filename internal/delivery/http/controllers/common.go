package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"playerone/internal/delivery/http/helpers"
	"playerone/internal/delivery/http/middleware"
	"playerone/internal/domain"
)

// pathUUID reads a UUID path value, writing a 400 when it is missing or malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.PathValue(name)
	if v == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	if _, err := uuid.Parse(v); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return "", false
	}
	return v, true
}

// principal returns the authenticated caller, writing a 401 when there is none.
func principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return domain.Principal{}, false
	}
	return p, true
}
