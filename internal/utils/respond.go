package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes v as the JSON body of the response.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError writes the standard failure body. Every error response of the
// API carries a single "error" field with an end-user message.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}
