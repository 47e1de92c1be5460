// Package respond provides utilities for sending HTTP responses in JSON format.
// Errors travel in a field-keyed envelope: {"errors": {"field": ["message"]}}.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"conduit/internal/domain/entity"
)

// ErrorEnvelope is the wire format for every error response.
type ErrorEnvelope struct {
	Errors map[string][]string `json:"errors"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Errors writes an error envelope with the given status code and field map.
func Errors(w http.ResponseWriter, code int, fields map[string][]string) {
	JSON(w, code, ErrorEnvelope{Errors: fields})
}

// FieldError writes an error envelope carrying a single message for a
// single field. "body" is the conventional field for non-field errors.
func FieldError(w http.ResponseWriter, code int, field, message string) {
	Errors(w, code, map[string][]string{field: {message}})
}

// ValidationError writes a 422 envelope for a field validation failure.
func ValidationError(w http.ResponseWriter, vErr *entity.ValidationError) {
	FieldError(w, http.StatusUnprocessableEntity, vErr.Field, vErr.Message)
}

// SafeError sanitizes error messages before returning them to users.
// Validation errors are returned with their field and message. Everything
// else is returned as a generic message for the status code, with details
// logged for debugging; internal errors never reach the client verbatim.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		ValidationError(w, vErr)
		return
	}

	if code >= 500 {
		// 内部エラーはログに出力し、汎用メッセージを返す
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
		FieldError(w, code, "body", "internal server error")
		return
	}

	FieldError(w, code, "body", err.Error())
}
