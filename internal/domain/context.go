package domain

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID сохраняет request ID в контексте
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID извлекает request ID из контекста
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
