package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/handlers"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// envelope is the JSON body of every response.
type envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Data: data})
}

func writeCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, envelope{Data: data})
}

// writeError maps the domain error taxonomy onto HTTP status codes:
// malformed shapes and business-rule violations are 400, blocked
// operations 403, missing entities 404, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		generationErr   *query.GenerationError
		databaseErr     *engine.DatabaseError
		domainErr       *handlers.DomainError
		notFoundErr     *handlers.NotFoundError
		unauthorizedErr *handlers.UnauthorizedError
	)

	switch {
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, envelope{Error: "NotFound", Message: err.Error()})
	case errors.As(err, &unauthorizedErr):
		writeJSON(w, http.StatusForbidden, envelope{Error: "UnauthorizedOperation", Message: err.Error()})
	case errors.As(err, &generationErr):
		writeJSON(w, http.StatusBadRequest, envelope{Error: "QueryGeneration", Message: err.Error()})
	case errors.As(err, &domainErr):
		writeJSON(w, http.StatusBadRequest, envelope{Error: "DomainRule", Message: err.Error()})
	case errors.As(err, &databaseErr):
		writeJSON(w, http.StatusBadRequest, envelope{Error: "Database", Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, envelope{Error: "Internal", Message: err.Error()})
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &handlers.DomainError{Reason: "malformed request body: " + err.Error()}
	}
	return nil
}
