package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"kosboard/internal/auth"
	"kosboard/internal/service"
	"kosboard/internal/storage"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is treated as a transport failure and surfaced generically;
// the details go to the log, not the caller.
func writeError(w http.ResponseWriter, err error) {
	var validation *service.ValidationError

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: validation.Error()})
	case errors.Is(err, service.ErrNotAdmin):
		writeJSON(w, http.StatusForbidden, errorBody{Error: "admin access required; sign in as admin to change the ledgers"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: storage.ErrNotFound.Error()})
	default:
		slog.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "the data store is unavailable; nothing was changed"})
	}
}

// decodeJSON parses a request body into v, answering a ValidationError on
// malformed input so the caller sees a 400 rather than a 500.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &service.ValidationError{Field: "body", Reason: "malformed JSON"}
	}
	return nil
}
