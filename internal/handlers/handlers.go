// Package handlers implements HTTP handlers for the bank API.
package handlers

import (
	"log/slog"

	"github.com/benx421/minibank/internal/api"
	"github.com/benx421/minibank/internal/service"
)

// Handler implements api.ServerInterface for all endpoints
type Handler struct {
	directory     service.Directory
	ledger        service.Ledger
	query         service.Query
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

var _ api.ServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	directory service.Directory,
	ledger service.Ledger,
	query service.Query,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		directory:     directory,
		ledger:        ledger,
		query:         query,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
