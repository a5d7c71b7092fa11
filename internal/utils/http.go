package utils

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// WriteJSON encodes data and writes it as the response body with the given
// status. Sync responses and error envelopes are never cached by the
// browser reader.
//
// When data cannot be encoded, nothing of it reaches the client: the
// response becomes a plain 500 and the encoding error is returned.
//
//	_, _ = WriteJSON(w, models.ProxyResponse{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response body: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
