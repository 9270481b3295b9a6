package app

import (
	"github.com/avc/smsrent/internal/handlers"
	"github.com/avc/smsrent/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	h := deps.handlers

	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Защищенные эндпоинты
	r.Route("/api", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Put("/credential", h.credential.Replace)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/countries", h.catalog.Countries)
			r.Get("/countries/{country}/operators", h.catalog.Operators)
			r.Get("/products/{country}/{operator}", h.catalog.Products)
			r.Get("/prices", h.catalog.Prices)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.orders.Buy)
			r.Post("/rebuy", h.orders.Rebuy)
			r.Get("/{id}", h.orders.Check)
			r.Post("/{id}/finish", h.orders.Finish)
			r.Post("/{id}/cancel", h.orders.Cancel)
			r.Post("/{id}/ban", h.orders.Ban)
			r.Get("/{id}/sms", h.orders.SMSInbox)
			r.Post("/{id}/watch", h.orders.Watch)
			r.Get("/{id}/watch", h.orders.WatchResult)
		})

		r.Get("/balance", h.balance.GetBalance)
	})
}
