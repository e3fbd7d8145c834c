package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/minibank/internal/api"
	"github.com/benx421/minibank/internal/config"
	"github.com/benx421/minibank/internal/middleware"
	"github.com/benx421/minibank/internal/repository"
	"github.com/benx421/minibank/internal/service"
	"github.com/rs/cors"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	store repository.Store,
	cfg *config.Config,
	logger *slog.Logger,
) (http.Handler, error) {
	cards := service.NewCardIssuer(cfg.App.CardValidityYears)
	directory := service.NewDirectoryService(store, cards, cfg.App.BcryptCost)
	ledger := service.NewLedgerService(store)
	query := service.NewQueryService(store)

	handler := NewHandler(directory, ledger, query, store, logger)

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}

	mux := http.NewServeMux()
	if err := api.RegisterDocsRoutes(mux, doc, cfg.Server.EnableAdminRoutes); err != nil {
		return nil, err
	}
	api.HandlerWithOptions(handler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: handler.writeBindError,
		AdminRoutes:      cfg.Server.EnableAdminRoutes,
	})

	var finalHandler http.Handler = mux

	if cfg.Server.EnableRequestCheck {
		validate, err := middleware.RequestValidation(doc, logger)
		if err != nil {
			return nil, err
		}
		finalHandler = validate(finalHandler)
	}

	finalHandler = middleware.Idempotency(store.Idempotency(), logger)(finalHandler)

	finalHandler = cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Idempotency-Key"},
		ExposedHeaders: []string{"X-Idempotent-Replayed"},
	}).Handler(finalHandler)

	return finalHandler, nil
}
