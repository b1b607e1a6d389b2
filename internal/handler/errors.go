package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/itinerary-form/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a request rejected before reaching
// the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

// internalBody is returned for unexpected failures. The cause is logged,
// never sent to the client.
func internalBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}}
}

// unwrapMessage extracts the human-readable part that follows the
// domain.ErrValidation text in a wrapped error.
// e.g. "validation error: an itinerary can have at most 5 legs" → "an itinerary can have at most 5 legs"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 && len(msg) > i+len(marker) {
		return msg[i+len(marker):]
	}
	return msg
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}
