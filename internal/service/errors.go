package service

import (
	"fmt"
	"time"
)

// RateLimitError представляет ошибку превышения лимита запросов
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}

// Фразы, которыми провайдер отклоняет запрос обычным текстом вместо JSON
var providerRejections = map[string]struct{}{
	"no free phones":          {},
	"not enough user balance": {},
	"not enough rating":       {},
	"select country":          {},
	"select operator":         {},
	"bad country":             {},
	"bad operator":            {},
	"no product":              {},
	"server offline":          {},
	"order not found":         {},
	"order expired":           {},
	"order has sms":           {},
	"order no sms":            {},
	"hosting order":           {},
	"record not found":        {},
	"bad data":                {},
}
