package handlers

import (
	"encoding/json"
	"net/http"

	"squad-pickem-go/logging"
)

// writeJSON serializes a response body with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Errorf("Failed to encode response: %v", err)
	}
}

// writeError sends a generic error payload. Engine-internal errors are
// never exposed to end users; callers log the detail and send a summary.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
