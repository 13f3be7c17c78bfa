package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/JayRichh/steamshare/src/config"
	"github.com/JayRichh/steamshare/src/logger"
	"github.com/JayRichh/steamshare/src/models"
)

// Define a custom type for context keys to avoid collisions.
// This type is unexported, making it unique to this package.
type contextKey string

const steamIDContextKey contextKey = "steamID"

// GetSteamIDFromContext returns the authenticated SteamID64 placed in the
// request context by the auth middleware.
func GetSteamIDFromContext(ctx context.Context) (string, bool) {
	steamID, ok := ctx.Value(steamIDContextKey).(string)
	return steamID, ok
}

// writeErrorEnvelope emits the uniform failure envelope used by every error
// path, auth rejections included. Error responses must never be cached, so
// the cache is explicitly disabled. Diagnostic details are only disclosed in
// development mode.
func writeErrorEnvelope(w http.ResponseWriter, statusCode int, message, details string) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if logger.L != nil {
		logger.L.Warn("Sending error envelope to client", "message", message, "statusCode", statusCode)
	}

	resp := models.InventoryError{
		Success:    false,
		Error:      message,
		Items:      []models.InventoryItem{},
		TotalCount: 0,
	}
	if config.Cfg != nil && config.Cfg.IsDevelopment() {
		resp.Details = details
	}
	json.NewEncoder(w).Encode(resp)
}
