// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/municipress/flipbook/cmd/flipbook-api/handlers"
	"github.com/municipress/flipbook/cmd/flipbook-api/middleware"
	"github.com/municipress/flipbook/internal/config"
	"github.com/municipress/flipbook/internal/observability"
	"github.com/municipress/flipbook/internal/storage"
	"github.com/municipress/flipbook/pkg/flipbook"
)

// NewRouter creates the main API router with all routes configured.
// repo may be nil when the conversion log database is unavailable; the
// history routes are then omitted and conversions are not recorded.
func NewRouter(logger *observability.Logger, cfg *config.Config, client *flipbook.Client, repo *storage.ConversionRepository) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.WriteTimeout))

	// Health check (unauthenticated)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"flipbook-api"}`))
	})

	convertHandler := handlers.NewConvertHandler(logger, client, repo, cfg)

	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", convertHandler.Convert)

		if repo != nil {
			historyHandler := handlers.NewHistoryHandler(logger, repo)
			r.Get("/conversions", historyHandler.List)
			r.Get("/stats", historyHandler.Stats)
		}
	})

	return r
}
