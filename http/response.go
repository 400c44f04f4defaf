package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/farhanyp/woordenlijst"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a JSON error response
func WriteError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errCode,
		Message: message,
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError writes the appropriate error response based on error type.
// Validation and not-found are domain-expected outcomes and keep their
// distinct shapes; backend errors are opaque beyond their kind.
func HandleError(w http.ResponseWriter, err error) {
	slog.Error("request error", "error", err)

	if ve, ok := woordenlijst.AsValidationError(err); ok {
		WriteError(w, http.StatusBadRequest, "validation_failed", validationMessage(ve.Reason))
		return
	}

	if errors.Is(err, woordenlijst.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "not_found", "No file has been uploaded yet")
		return
	}

	if be, ok := woordenlijst.AsBackendError(err); ok {
		switch be.Kind {
		case woordenlijst.BackendTimeout:
			WriteError(w, http.StatusGatewayTimeout, "backend_error", "Storage backend timed out")
		case woordenlijst.BackendUnreachable:
			WriteError(w, http.StatusBadGateway, "backend_error", "Storage backend unreachable")
		default:
			WriteError(w, http.StatusInternalServerError, "backend_error", "Storage backend failure")
		}
		return
	}

	WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
}

// validationMessage maps a validation reason to the caller-facing text.
func validationMessage(reason string) string {
	switch reason {
	case woordenlijst.ReasonUnsupportedType:
		return "Only .txt files are allowed"
	case woordenlijst.ReasonTooLarge:
		return "File size too large. Maximum 1MB allowed."
	default:
		return reason
	}
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}
