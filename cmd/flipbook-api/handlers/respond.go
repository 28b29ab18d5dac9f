// Package handlers provides HTTP handlers for the flipbook API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/municipress/flipbook/internal/domain"
)

// ErrorDTO is the structured error payload every handler returns on
// failure. Detail carries the full error chain and is only populated for
// development deployments.
type ErrorDTO struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string, detail string) {
	writeJSON(w, status, ErrorDTO{Error: message, Detail: detail})
}

// statusFor maps the domain error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch domain.TypeOf(err) {
	case domain.ErrorTypeInput, domain.ErrorTypeDecode:
		return http.StatusBadRequest
	case domain.ErrorTypePackaging:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
