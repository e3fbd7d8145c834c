package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/benx421/minibank/internal/api"
)

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, code api.ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.ErrorResponse{Error: code, Message: message}); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}
