package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/avc/smsrent/internal/credential"
	"github.com/avc/smsrent/internal/domain"
	"github.com/stretchr/testify/require"
)

// recordingServer имитирует API провайдера и запоминает пути запросов
type recordingServer struct {
	mu       sync.Mutex
	requests []*http.Request
	server   *httptest.Server
}

func newRecordingServer(t *testing.T, handler http.HandlerFunc) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.requests = append(rs.requests, r)
		rs.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(rs.server.Close)
	return rs
}

func (rs *recordingServer) hits() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.requests)
}

func (rs *recordingServer) paths() []string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	paths := make([]string, 0, len(rs.requests))
	for _, r := range rs.requests {
		paths = append(paths, r.Method+" "+r.URL.Path)
	}
	return paths
}

func (rs *recordingServer) client(key string) *FiveSimClient {
	return NewFiveSimClient(rs.server.URL, credential.NewHolder(key))
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func mustPayload(t *testing.T, raw string) domain.Payload {
	t.Helper()
	var p domain.Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}
