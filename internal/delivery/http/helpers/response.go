package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"esummit/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeValidation    = "validation_error"
	ErrCodeInternalError = "internal_error"
)

// MaxErrorMessageLength caps the error text returned with a 500 response.
const MaxErrorMessageLength = 200

// APIError is the error object returned on failure.
// swagger:model APIError
type APIError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// ErrorResponse is the envelope for every error response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// CreatedResponse is the body of a successful POST.
// swagger:model CreatedResponse
type CreatedResponse struct {
	ID string `json:"id"`
}

// MessageResponse is the body of GET /.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError writes an ErrorResponse with the given status, code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: &APIError{Code: code, Message: message}})
}

// WriteValidationError writes a 422 listing every offending field.
func WriteValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: &APIError{
		Code:    ErrCodeValidation,
		Message: "request validation failed",
		Fields:  verr.Fields,
	}})
}

// WriteServiceError maps an error returned by a service to a response.
// Validation errors become 422; anything else is logged and returned as a 500 carrying the truncated error text.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		WriteValidationError(w, verr)
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, truncate(err.Error(), MaxErrorMessageLength))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
