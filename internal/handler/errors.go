package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"blogsphere/internal/repository"
	"blogsphere/internal/service"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteError sends {success:false, error:message}.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Success: false, Error: message})
}

// writeSuccess sends payload with success:true merged in.
func writeSuccess(w http.ResponseWriter, payload map[string]interface{}, statusCode int) {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError maps a service or repository error onto a response.
// Anything unrecognised is logged in full and reported as a generic 500.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrPostNotFound):
		WriteError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrUserNotFound):
		WriteError(w, "User not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrEmailTaken):
		WriteError(w, "Email already registered", http.StatusBadRequest)
	case errors.Is(err, repository.ErrUsernameTaken):
		WriteError(w, "Username already taken", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, "Invalid email or password", http.StatusBadRequest)
	case errors.Is(err, service.ErrPasswordTooLong):
		WriteError(w, "Password must be at most 72 bytes", http.StatusBadRequest)
	case errors.Is(err, service.ErrUnsupportedImage):
		WriteError(w, "Image must be JPEG, PNG, GIF, or WebP", http.StatusBadRequest)
	case errors.Is(err, service.ErrStorageDisabled):
		WriteError(w, "Image uploads are not configured", http.StatusServiceUnavailable)
	default:
		h.Log.WithError(err).WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": r.Header.Get("X-Request-ID"),
		}).Error("storage error")
		WriteError(w, "Database error", http.StatusInternalServerError)
	}
}
