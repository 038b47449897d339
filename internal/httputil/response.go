package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the standard envelope every endpoint returns:
// {status: "success"|"error", data?, message?, count?}
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteJSON writes an arbitrary JSON response with the given status code.
// Use it for envelopes carrying extra top-level fields (auth token responses).
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already sent; nothing sensible left to do.
			return
		}
	}
}

// WriteSuccess writes a success envelope with a data payload.
func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, Response{Status: StatusSuccess, Data: data})
}

// WriteList writes a success envelope with data and its element count.
func WriteList(w http.ResponseWriter, count int, data interface{}) {
	WriteJSON(w, http.StatusOK, Response{Status: StatusSuccess, Count: &count, Data: data})
}

// WriteMessage writes a success envelope carrying a message and optional data.
func WriteMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Response{Status: StatusSuccess, Message: message, Data: data})
}

// WriteError writes an error envelope: {"status": "error", "message": "..."}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{Status: StatusError, Message: message})
}

// Common error response helpers

// WriteBadRequest writes a 400 Bad Request error
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteConflict writes a duplicate/full-capacity failure. The API maps
// conflicts to 400 rather than 409, matching its published status set.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteUnauthorized writes a 401 Unauthorized error
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

// WriteNotFound writes a 404 Not Found error
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteInternalError writes a 500 Internal Server Error
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}
