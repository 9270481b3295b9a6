package worker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc/smsrent/internal/credential"
	"github.com/avc/smsrent/internal/domain"
	domainmocks "github.com/avc/smsrent/internal/domain/mocks"
	"github.com/avc/smsrent/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fastPoll = PollConfig{
	Interval:    time.Millisecond,
	MaxInterval: 5 * time.Millisecond,
	Timeout:     time.Second,
}

func orderFrom(t *testing.T, raw string) *domain.Order {
	t.Helper()
	order := &domain.Order{}
	require.NoError(t, json.Unmarshal([]byte(raw), order))
	return order
}

func TestPoller_WaitForSMS(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("SMS on first check", func(t *testing.T) {
		orders := domainmocks.NewOrderServiceMock(t)
		poller := NewPoller(orders, logger)

		received := orderFrom(t, `{"id":123,"status":"RECEIVED","sms":[{"code":"4521"}]}`)
		orders.EXPECT().Check(mock.Anything, "123").Return(received, nil).Once()

		order, err := poller.WaitForSMS(ctx, "123", fastPoll)
		require.NoError(t, err)
		assert.Equal(t, []string{"4521"}, order.Codes())
	})

	t.Run("Pending then received", func(t *testing.T) {
		orders := domainmocks.NewOrderServiceMock(t)
		poller := NewPoller(orders, logger)

		pending := orderFrom(t, `{"id":123,"status":"PENDING","sms":[]}`)
		received := orderFrom(t, `{"id":123,"status":"RECEIVED","sms":[{"code":"4521"}]}`)
		orders.EXPECT().Check(mock.Anything, "123").Return(pending, nil).Times(2)
		orders.EXPECT().Check(mock.Anything, "123").Return(received, nil).Once()

		order, err := poller.WaitForSMS(ctx, "123", fastPoll)
		require.NoError(t, err)
		assert.Equal(t, []string{"4521"}, order.Codes())
	})

	t.Run("Transport errors are retried", func(t *testing.T) {
		orders := domainmocks.NewOrderServiceMock(t)
		poller := NewPoller(orders, logger)

		transportErr := &domain.Error{Kind: domain.KindTransport, Op: "GET /user/check/123", Err: errors.New("connection reset")}
		received := orderFrom(t, `{"id":123,"status":"RECEIVED","sms":[{"code":"4521"}]}`)
		orders.EXPECT().Check(mock.Anything, "123").Return(nil, transportErr).Once()
		orders.EXPECT().Check(mock.Anything, "123").Return(received, nil).Once()

		order, err := poller.WaitForSMS(ctx, "123", fastPoll)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusReceived, order.Status())
	})

	t.Run("Remote error stops immediately", func(t *testing.T) {
		orders := domainmocks.NewOrderServiceMock(t)
		poller := NewPoller(orders, logger)

		remoteErr := &domain.Error{Kind: domain.KindRemote, Op: "GET /user/check/999", StatusCode: 404, Message: "order not found"}
		orders.EXPECT().Check(mock.Anything, "999").Return(nil, remoteErr).Once()

		_, err := poller.WaitForSMS(ctx, "999", fastPoll)
		assert.ErrorIs(t, err, domain.ErrRemote)
		assert.NotErrorIs(t, err, ErrPollTimeout)
	})

	t.Run("Terminal status without sms", func(t *testing.T) {
		orders := domainmocks.NewOrderServiceMock(t)
		poller := NewPoller(orders, logger)

		canceled := orderFrom(t, `{"id":123,"status":"CANCELED","sms":[]}`)
		orders.EXPECT().Check(mock.Anything, "123").Return(canceled, nil).Once()

		order, err := poller.WaitForSMS(ctx, "123", fastPoll)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCanceled, order.Status())
		assert.Empty(t, order.Codes())
	})

	t.Run("Timeout", func(t *testing.T) {
		orders := domainmocks.NewOrderServiceMock(t)
		poller := NewPoller(orders, logger)

		pending := orderFrom(t, `{"id":123,"status":"PENDING","sms":[]}`)
		orders.EXPECT().Check(mock.Anything, "123").Return(pending, nil)

		cfg := PollConfig{Interval: time.Millisecond, MaxInterval: 2 * time.Millisecond, Timeout: 20 * time.Millisecond}
		order, err := poller.WaitForSMS(ctx, "123", cfg)
		assert.ErrorIs(t, err, ErrPollTimeout)
		assert.Contains(t, err.Error(), "PENDING")
		require.NotNil(t, order)
		assert.Equal(t, domain.OrderStatusPending, order.Status())
	})

	t.Run("Context canceled", func(t *testing.T) {
		orders := domainmocks.NewOrderServiceMock(t)
		poller := NewPoller(orders, logger)

		pending := orderFrom(t, `{"id":123,"status":"PENDING","sms":[]}`)
		orders.EXPECT().Check(mock.Anything, "123").Return(pending, nil).Maybe()

		cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		cfg := PollConfig{Interval: 5 * time.Millisecond, Timeout: time.Minute}
		_, err := poller.WaitForSMS(cancelCtx, "123", cfg)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrPollTimeout)
	})
}

func TestPoller_WaitForSMS_ServerUnavailableIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("<html><body><h1>503 Service Temporarily Unavailable</h1></body></html>"))
			return
		}
		w.Write([]byte(`{"id":1,"status":"RECEIVED","sms":[{"code":"4521"}]}`))
	}))
	defer srv.Close()

	client := service.NewFiveSimClient(srv.URL, credential.NewHolder("k"))
	poller := NewPoller(service.NewOrderService(client, zap.NewNop()), zap.NewNop())

	order, err := poller.WaitForSMS(context.Background(), "1", fastPoll)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, []string{"4521"}, order.Codes())
	assert.Equal(t, int32(2), calls.Load())
}
