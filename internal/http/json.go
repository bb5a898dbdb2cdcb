package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// WriteError writes the JSON error envelope with the given status and message.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorBody{Error: message, Status: status})
}

// WriteAppError renders an application error as an HTTP error response.
// Hashing and internal failures are masked behind a generic message; their
// detail belongs in server logs, not in responses.
func WriteAppError(w http.ResponseWriter, err error) {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeUnauthorized:
		WriteError(w, http.StatusUnauthorized, appMessage(err))
	case apperrors.ErrCodeForbidden:
		WriteError(w, http.StatusForbidden, appMessage(err))
	case apperrors.ErrCodeBadRequest:
		WriteError(w, http.StatusBadRequest, appMessage(err))
	case apperrors.ErrCodeNotFound:
		WriteError(w, http.StatusNotFound, appMessage(err))
	case apperrors.ErrCodeConflict:
		WriteError(w, http.StatusConflict, appMessage(err))
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// appMessage returns the AppError message without any wrapped cause detail.
func appMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
