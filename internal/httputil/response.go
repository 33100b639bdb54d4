package httputil

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/labchat/chat-server-go/internal/errors"
)

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ErrorResponse is the wire format for every failed request: a bare
// message, nothing else.
type ErrorResponse struct {
	Message string `json:"message"`
}

// WriteError collapses any handler failure into the single error shape the
// client knows. Every failure is a 500 except rate limiting.
func WriteError(w http.ResponseWriter, err error) {
	message := "An unknown error occurred."
	status := http.StatusInternalServerError

	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.Message != "" {
			message = appErr.Message
		}
		if appErr.Code == apperrors.ErrCodeRateLimitExceeded {
			status = http.StatusTooManyRequests
		}
	} else if err != nil && err.Error() != "" {
		message = err.Error()
	}

	WriteJSON(w, status, ErrorResponse{Message: message})
}
