package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/pkg/logger"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/service"
)

// APIError represents a structured API error response
type APIError struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Error codes for common scenarios
const (
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeGenerationFailed = "GENERATION_FAILED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// respondError sends a structured error response with an error code.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	apiErr := APIError{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: logger.FromContext(r.Context()),
	}
	json.NewEncoder(w).Encode(apiErr)
}

// respondServiceError maps service errors to the API taxonomy: NotFound is a
// client error, generation failures are a bad gateway, everything else is a
// store failure.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Message not found")
	case errors.Is(err, service.ErrGeneration):
		respondError(w, r, http.StatusBadGateway, ErrCodeGenerationFailed, err.Error())
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
	}
}
