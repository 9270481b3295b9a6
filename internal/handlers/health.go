package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// CredentialPresence сообщает, задан ли ключ API
type CredentialPresence interface {
	Present() bool
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	credentials CredentialPresence
	db          Pinger
	logger      *zap.Logger
}

// NewHealthHandler создает новый HealthHandler. db может быть nil, если ключ хранится в файле.
func NewHealthHandler(credentials CredentialPresence, db Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		credentials: credentials,
		db:          db,
		logger:      logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	Credential string `json:"credential"`
}

// Health возвращает статус приложения
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:     "ok",
		Database:   "disabled",
		Credential: "present",
	}

	if !h.credentials.Present() {
		response.Credential = "absent"
	}

	if h.db != nil {
		response.Database = "ok"

		// Проверяем подключение к БД с таймаутом
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			response.Status = "degraded"
			response.Database = "unavailable"
			h.logger.Warn("health check: database unavailable", zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if response.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready возвращает готовность обслуживать заказы: ключ API должен быть задан
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.credentials.Present() {
		h.logger.Warn("readiness check failed: api key is not configured")
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
