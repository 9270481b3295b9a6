package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avc/smsrent/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProvider имитирует API провайдера для сквозных проверок шлюза
func fakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/user/buy/activation/russia/any/telegram":
			w.Write([]byte(`{"id":"123","phone":"79001234567","status":"PENDING"}`))
		case "/user/check/123":
			w.Write([]byte(`{"id":"123","status":"RECEIVED","sms":[{"code":"4521"}]}`))
		case "/user/cancel/999":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("order not found"))
		case "/user/profile":
			w.Write([]byte(`{"id":1,"balance":42.5}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T) (*App, string, string) {
	t.Helper()
	cfg := config.Default()
	cfg.APIURL = fakeProvider(t).URL
	cfg.APIKeyFile = filepath.Join(t.TempDir(), "apikey.txt")
	cfg.JWTSecret = "test-secret"

	core, err := NewCore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(core.Close)

	token, err := core.JWT.Generate("alice")
	require.NoError(t, err)

	return NewApp(core, zap.NewNop()), token, cfg.APIKeyFile
}

func serve(a *App, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	return w
}

func TestGateway_OrderFlow(t *testing.T) {
	a, token, keyFile := newTestApp(t)

	// без ключа шлюз не готов
	assert.Equal(t, http.StatusServiceUnavailable, serve(a, http.MethodGet, "/ready", "", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(a, http.MethodGet, "/api/balance", token, "").Code)

	w := serve(a, http.MethodPut, "/api/credential", token, "test-key")
	require.Equal(t, http.StatusNoContent, w.Code)

	stored, err := os.ReadFile(keyFile)
	require.NoError(t, err)
	assert.Equal(t, "test-key", strings.TrimSpace(string(stored)))
	assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/ready", "", "").Code)

	w = serve(a, http.MethodPost, "/api/orders", token, `{"country":"russia","operator":"any","product":"telegram"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"123","phone":"79001234567","status":"PENDING"}`, w.Body.String())

	w = serve(a, http.MethodGet, "/api/orders/123", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var order map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "RECEIVED", order["status"])

	w = serve(a, http.MethodPost, "/api/orders/999/cancel", token, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "order not found")

	w = serve(a, http.MethodGet, "/api/balance", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"balance":"42.5","profile":{"id":1,"balance":42.5}}`, w.Body.String())
}

func TestGateway_RequiresToken(t *testing.T) {
	a, _, _ := newTestApp(t)

	assert.Equal(t, http.StatusUnauthorized, serve(a, http.MethodGet, "/api/balance", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(a, http.MethodPut, "/api/credential", "forged", "key").Code)
	assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/health", "", "").Code)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := NewLogger(level)
		require.NoError(t, err, level)
		assert.NotNil(t, logger)
	}

	_, err := NewLogger("loud")
	assert.Error(t, err)
}
