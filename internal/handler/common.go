package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/outreachhub/outreachhub/internal/domain"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// statusForError maps the failure sentinels onto the wire status taxonomy.
// Absent targets and unknown identities share a status with missing input;
// clients distinguish failure kinds by status alone, so each validation
// stage past presence gets its own code.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInputMissing),
		errors.Is(err, domain.ErrIdentityNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrResourceList),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAuthorizationDenied),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrInvalidPhone):
		return http.StatusNotAcceptable
	case errors.Is(err, domain.ErrTemporalParse):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTemporalNull):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusRequestedRangeNotSatisfiable
	default:
		return http.StatusInternalServerError
	}
}

// respondWithDomainError reports a service failure using the status
// taxonomy, logging server-side failures with the request ID.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, code, "Internal server error")
		return
	}
	respondWithError(w, code, err.Error())
}
