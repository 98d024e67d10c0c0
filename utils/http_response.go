package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondWithJSON sends a JSON response with the given status code
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers have already been written; log and give up.
		slog.Error("Failed to encode JSON response", "error", err, "statusCode", statusCode)
	}
}
