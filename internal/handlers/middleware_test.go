package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc/smsrent/internal/domain"
	"github.com/avc/smsrent/internal/utils/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middleware := RequestIDMiddleware()

	t.Run("Generated", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Проверяем, что request ID добавлен в контекст
			requestID, ok := domain.RequestID(r.Context())
			assert.True(t, ok)
			assert.NotEmpty(t, requestID)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Taken from client", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ := domain.RequestID(r.Context())
			assert.Equal(t, "client-id", requestID)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "client-id")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "client-id", w.Header().Get("X-Request-ID"))
	})

	t.Run("Oversized client id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("x", maxRequestIDLength+1))
		w := httptest.NewRecorder()

		middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(w, req)

		assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	middleware := LoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	middleware := RecoveryMiddleware(logger)

	t.Run("No panic", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("With panic", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("test panic")
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		// Не должно паниковать
		assert.NotPanics(t, func() {
			handler.ServeHTTP(w, req)
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	middleware := AuthMiddleware(jwtManager)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operator, ok := GetOperator(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "alice", operator)
		w.WriteHeader(http.StatusOK)
	}))

	token, err := jwtManager.Generate("alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "Valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "Missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetOperator(t *testing.T) {
	t.Run("Operator present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), OperatorKey, "alice")

		operator, ok := GetOperator(ctx)
		assert.True(t, ok)
		assert.Equal(t, "alice", operator)
	})

	t.Run("Operator not present", func(t *testing.T) {
		operator, ok := GetOperator(context.Background())
		assert.False(t, ok)
		assert.Empty(t, operator)
	})

	t.Run("Wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), OperatorKey, 42)

		_, ok := GetOperator(ctx)
		assert.False(t, ok)
	})
}
