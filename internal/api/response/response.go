// Package response writes the dashboard's JSON envelopes. The API
// signals anticipated failures through an in-body status field on a
// transport-level 200; only unanticipated failures (store outages,
// panics) surface as real HTTP 500s.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the error response shape shared by all routes
type Envelope struct {
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

// JSON writes a JSON response with the given transport status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Log error but don't try to write again
			return
		}
	}
}

// OK writes a transport-200 response with the given body
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// InvalidKey writes the in-body 401 used when no user matches the key
func InvalidKey(w http.ResponseWriter) {
	OK(w, Envelope{Status: 401, Error: "Invalid Key"})
}

// BadRequest writes the in-body 400 used for missing required fields
func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	OK(w, Envelope{Status: 400, Error: message})
}

// Unauthorized writes a real 401, used only by the admin token hook
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	JSON(w, http.StatusUnauthorized, Envelope{Status: 401, Error: message})
}

// InternalError writes a real 500 for unanticipated failures
func InternalError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	JSON(w, http.StatusInternalServerError, Envelope{Status: 500, Error: message})
}

// TooManyRequests writes a 429 rate limit exceeded response
func TooManyRequests(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Rate limit exceeded"
	}
	JSON(w, http.StatusTooManyRequests, Envelope{Status: 429, Error: message})
}
