package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/middleware"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/response"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/config"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	transactionService *service.TransactionService,
	statisticsService *service.StatisticsService,
	cfg *config.Config,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// Unknown routes get the same envelope as everything else
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.RespondError(w, http.StatusNotFound, "endpoint not found")
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)
			r.Get("/", transactionHandler.ListTransactions)
			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/statistics", func(r chi.Router) {
			statisticsHandler := handlers.NewStatisticsHandler(statisticsService)
			r.Get("/", statisticsHandler.GetStatistics)
		})

		systemHandler := handlers.NewSystemHandler(systemService)
		r.Get("/health", systemHandler.Health)
	})

	return r
}
