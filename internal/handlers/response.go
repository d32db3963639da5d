package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/catalogue-api/internal/service"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, ErrorResponse{Detail: message}, logger)
}

// writeFailure maps err onto an HTTP status:
// malformed parameters are 422, missing items 404, rule violations 406.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case isParamError(err):
		logger.Info("invalid request parameters", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), logger)
	case errors.Is(err, service.ErrNotFound):
		logger.Info("item not found", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrInvalidArgument):
		logger.Info("request rejected", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusNotAcceptable, err.Error(), logger)
	default:
		logger.Error("request failed", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
