package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the failure shape shared by every relay error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error labels
const (
	ErrMissingCommand   = "Please provide a command"
	ErrMethodNotAllowed = "Method not allowed"
	ErrInternal         = "Internal server error"
)

// NewErrorResponse creates a failure body with an optional detail message.
func NewErrorResponse(label, message string) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   label,
		Message: message,
	}
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse to the response writer.
func WriteError(w http.ResponseWriter, statusCode int, err *ErrorResponse) {
	WriteJSON(w, statusCode, err)
}
