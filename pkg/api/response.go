package api

import (
	"context"
	"encoding/json"
	"net/http"

	"travelrest/pkg/logger"
)

// ErrorResponse is the body of every error reply except a GET miss.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Link points at one member of a collection.
type Link struct {
	ID   string `json:"id"`
	Href string `json:"href"`
}

// writeJSON sends data with status. The header is already out when encoding
// fails, so the failure is only logged.
func writeJSON(ctx context.Context, log *logger.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Debug(ctx, "encode response", "status", status, "error", err)
	}
}

func writeError(ctx context.Context, log *logger.Logger, w http.ResponseWriter, status int, err, message string) {
	writeJSON(ctx, log, w, status, ErrorResponse{Error: err, Message: message})
}
