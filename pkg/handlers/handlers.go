// Package handlers provides response helpers shared by endpoint providers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes {"error": "<message>"} with the given status.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// RespondStatus writes only a status code. Used for rejections that carry no body.
func RespondStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// RespondText writes a plain-text body with the given status code.
func RespondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
