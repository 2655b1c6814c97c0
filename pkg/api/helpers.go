// Package api provides standardized helper functions for HTTP API responses.
//
// Every endpoint answers with the same envelope: a boolean success flag, the payload under
// data (or items for paginated lists), and an optional short error message.
package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON wrapper used by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PageEnvelope wraps one page of a paginated list.
type PageEnvelope struct {
	Success bool        `json:"success"`
	Items   interface{} `json:"items"`
	Total   int         `json:"total"`
	HasMore bool        `json:"hasMore"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
	Error   string      `json:"error,omitempty"`
}

// JSON writes any value as a JSON response.
func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// Success sends a standardized successful HTTP response with optional JSON data.
func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	JSON(w, statusCode, Envelope{Success: true, Data: data})
}

// Error sends a standardized error response with consistent JSON format.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Envelope{Success: false, Error: message})
}

// Page sends a paginated list. items must be a non-nil slice so the field encodes as [].
func Page(w http.ResponseWriter, statusCode int, page PageEnvelope) {
	JSON(w, statusCode, page)
}
