package service

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultRetryAfter = time.Minute

// RateLimiter ограничивает частоту запросов к провайдеру
type RateLimiter struct {
	limiter      *rate.Limiter
	mu           sync.Mutex
	blockedUntil time.Time
}

// NewRateLimiter создает лимитер. Нулевой или отрицательный limit снимает ограничение.
func NewRateLimiter(limit float64, burst int) *RateLimiter {
	l := rate.Inf
	if limit > 0 {
		l = rate.Limit(limit)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(l, burst),
	}
}

// Wait блокирует до разрешения очередного запроса
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	until := rl.blockedUntil
	rl.mu.Unlock()

	if d := time.Until(until); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return rl.limiter.Wait(ctx)
}

// BlockFor приостанавливает все запросы на указанное время
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if until := time.Now().Add(duration); until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
}

// ParseRetryAfter разбирает заголовок Retry-After (секунды или HTTP-дата)
func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return defaultRetryAfter
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
		return 0
	}

	return defaultRetryAfter
}
