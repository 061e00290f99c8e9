// Package httputil centralizes JSON response writing so every handler emits
// the same envelope. Errors render as {"error": "...", "details": [...]}.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "insightdeck/pkg/domain-errors"
)

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeBadRequest:   http.StatusBadRequest,
	dErrors.CodeUnauthorized: http.StatusUnauthorized,
	dErrors.CodeForbidden:    http.StatusForbidden,
	dErrors.CodeNotFound:     http.StatusNotFound,
	dErrors.CodeInternal:     http.StatusInternalServerError,
}

// ToHTTPStatus maps a domain error code to its HTTP status.
func ToHTTPStatus(code dErrors.Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// WriteJSON writes payload as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError translates a domain error into the JSON error envelope. Internal
// errors hide their message so storage details never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	body := errorBody{Error: "Internal server error."}
	status := http.StatusInternalServerError

	var de *dErrors.Error
	if errors.As(err, &de) {
		status = ToHTTPStatus(de.Code)
		if de.Code != dErrors.CodeInternal {
			body.Error = de.Message
			body.Details = de.Details
		}
	}

	WriteJSON(w, status, body)
}
