package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/logger"
	"locallibrary-backend/internal/service"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the service error taxonomy onto HTTP statuses. The
// copy-unavailable outcome is a 409 with its own code so staff clients can
// tell "retry later" apart from a hard transition rejection.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{errorBody{"NOT_FOUND", err.Error()}})
	case errors.Is(err, domain.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, errorResponse{errorBody{"FORBIDDEN", err.Error()}})
	case errors.Is(err, domain.ErrIllegalTransition):
		writeJSON(w, http.StatusConflict, errorResponse{errorBody{"ILLEGAL_TRANSITION", err.Error()}})
	case errors.Is(err, domain.ErrCopyUnavailable):
		writeJSON(w, http.StatusConflict, errorResponse{errorBody{"COPY_UNAVAILABLE", err.Error()}})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", err.Error()}})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorBody{"VALIDATION_FAILED", ve.Error()}})
	default:
		logger.Error("Unhandled service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{errorBody{"INTERNAL", "internal server error"}})
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
