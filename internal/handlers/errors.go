package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/avc/smsrent/internal/credential"
	"github.com/avc/smsrent/internal/domain"
	"github.com/avc/smsrent/internal/service"
	"github.com/avc/smsrent/internal/worker"
	"go.uber.org/zap"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error      string `json:"error"`
	Kind       string `json:"kind,omitempty"`
	RetryAfter int    `json:"retry_after,omitempty"`
}

// statusFor сопоставляет ошибку с HTTP статусом ответа шлюза
func statusFor(err error) int {
	if _, ok := service.IsRateLimited(err); ok {
		return http.StatusTooManyRequests
	}

	switch {
	case errors.Is(err, credential.ErrAbsent):
		return http.StatusServiceUnavailable
	case errors.Is(err, worker.ErrQueueFull), errors.Is(err, worker.ErrPoolStopped):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrRemote):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTransport), errors.Is(err, domain.ErrProtocol):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, msg string, err error) {
	status := statusFor(err)
	requestID, _ := domain.RequestID(r.Context())

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(msg, fields...)
	} else {
		logger.Warn(msg, fields...)
	}

	resp := ErrorResponse{
		Error: domain.MessageOf(err),
		Kind:  string(domain.KindOf(err)),
	}
	if status == http.StatusInternalServerError {
		resp.Error = http.StatusText(status)
	}
	if rateLimitErr, ok := service.IsRateLimited(err); ok {
		seconds := int(math.Ceil(rateLimitErr.RetryAfter.Seconds()))
		resp.RetryAfter = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	writeJSON(w, status, resp, logger)
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
