package toolkit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Decode reads and unmarshals a JSON request body into T.
func Decode[T any](r *http.Request) (T, error) {
	var data T
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return data, fmt.Errorf("decode request body: %w", err)
	}
	return data, nil
}

// Respond writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func Respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func Error(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if logger != nil {
		logger.Error("handler error", "error", err, "status", status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
