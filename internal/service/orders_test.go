package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/avc/smsrent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderService_Buy(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rs := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/user/buy/activation/russia/any/telegram", r.URL.Path)
			w.Write([]byte(`{"id":"123","phone":"79001234567","status":"PENDING"}`))
		})
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		order, err := svc.Buy(ctx, "russia", "any", "telegram")
		require.NoError(t, err)
		assert.Equal(t, "123", order.ID())
		assert.Equal(t, "79001234567", order.Phone())
		assert.Equal(t, domain.OrderStatusPending, order.Status())
	})

	t.Run("Large numeric id keeps precision", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusOK, `{"id":123456789012345678,"phone":"+79001234567","price":21.5}`))
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		order, err := svc.Buy(ctx, "russia", "any", "telegram")
		require.NoError(t, err)
		assert.Equal(t, "123456789012345678", order.ID())
		assert.Equal(t, "+79001234567", order.Phone())
		assert.Equal(t, "21.5", order.Price().String())
	})

	t.Run("Missing arguments make no request", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusOK, `{}`))
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		cases := [][3]string{
			{"", "any", "telegram"},
			{"russia", "", "telegram"},
			{"russia", "any", ""},
			{" ", "any", "telegram"},
		}
		for _, c := range cases {
			_, err := svc.Buy(ctx, c[0], c[1], c[2])
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
		assert.Equal(t, 0, rs.hits())
	})

	t.Run("No free phones", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusOK, "no free phones"))
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		_, err := svc.Buy(ctx, "russia", "any", "telegram")
		assert.ErrorIs(t, err, domain.ErrRemote)
		assert.Equal(t, "no free phones", domain.MessageOf(err))
	})
}

func TestOrderService_Rebuy(t *testing.T) {
	ctx := context.Background()

	t.Run("Leading plus is stripped", func(t *testing.T) {
		rs := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user/reuse/telegram/79001234567", r.URL.Path)
			w.Write([]byte(`{"id":"124","phone":"+79001234567","status":"PENDING"}`))
		})
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		order, err := svc.Rebuy(ctx, "telegram", "+79001234567")
		require.NoError(t, err)
		assert.Equal(t, "124", order.ID())
	})

	t.Run("Missing number", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusOK, `{}`))
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		_, err := svc.Rebuy(ctx, "telegram", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, 0, rs.hits())
	})
}

func TestOrderService_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("Code received", func(t *testing.T) {
		rs := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user/check/123", r.URL.Path)
			w.Write([]byte(`{"id":123,"status":"RECEIVED","sms":[{"code":"4521","text":"Your code 4521","sender":"Telegram"}]}`))
		})
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		order, err := svc.Check(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusReceived, order.Status())
		assert.Equal(t, []string{"4521"}, order.Codes())
		require.Len(t, order.SMS(), 1)
		assert.Equal(t, "Telegram", order.SMS()[0].Sender())
	})

	t.Run("Repeated checks only read", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusOK, `{"id":123,"status":"PENDING","sms":[]}`))
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		for i := 0; i < 3; i++ {
			order, err := svc.Check(ctx, "123")
			require.NoError(t, err)
			assert.Empty(t, order.Codes())
		}
		assert.Equal(t, []string{"GET /user/check/123", "GET /user/check/123", "GET /user/check/123"}, rs.paths())
	})

	t.Run("Unknown status is passed through", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusOK, `{"id":1,"status":"HOLD"}`))
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		order, err := svc.Check(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatus("HOLD"), order.Status())
		assert.False(t, order.Status().Known())
	})
}

func TestOrderService_Actions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func(svc *OrderService, ctx context.Context, id string) (*domain.Order, error)
		path   string
		status domain.OrderStatus
	}{
		{name: "Finish", call: (*OrderService).Finish, path: "/user/finish/123", status: domain.OrderStatusFinished},
		{name: "Cancel", call: (*OrderService).Cancel, path: "/user/cancel/123", status: domain.OrderStatusCanceled},
		{name: "Ban", call: (*OrderService).Ban, path: "/user/ban/123", status: domain.OrderStatusBanned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				w.Write([]byte(`{"id":123,"status":"` + string(tt.status) + `"}`))
			})
			svc := NewOrderService(rs.client("k"), zap.NewNop())

			order, err := tt.call(svc, ctx, "123")
			require.NoError(t, err)
			assert.Equal(t, tt.status, order.Status())
			assert.True(t, order.Status().IsTerminal())
		})

		t.Run(tt.name+" with empty id", func(t *testing.T) {
			rs := newRecordingServer(t, respond(http.StatusOK, `{}`))
			svc := NewOrderService(rs.client("k"), zap.NewNop())

			_, err := tt.call(svc, ctx, "")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, rs.hits())
		})

		t.Run(tt.name+" with dot segment id", func(t *testing.T) {
			rs := newRecordingServer(t, respond(http.StatusOK, `{}`))
			svc := NewOrderService(rs.client("k"), zap.NewNop())

			for _, id := range []string{".", "..", " .. "} {
				_, err := tt.call(svc, ctx, id)
				assert.ErrorIs(t, err, domain.ErrInvalidInput, "id %q", id)
			}
			assert.Equal(t, 0, rs.hits())
		})
	}

	t.Run("Cancel unknown order", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusNotFound, "order not found"))
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		_, err := svc.Cancel(ctx, "999")
		assert.ErrorIs(t, err, domain.ErrRemote)
		assert.NotErrorIs(t, err, domain.ErrTransport)
		assert.Equal(t, domain.KindRemote, domain.KindOf(err))
		assert.Equal(t, "order not found", domain.MessageOf(err))
	})
}

func TestOrderService_SMSInbox(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rs := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user/sms/inbox/123", r.URL.Path)
			w.Write([]byte(`{"Data":[{"ID":1,"text":"code 4521","code":"4521"},{"ID":2,"text":"code 1111","code":"1111"}],"Total":2}`))
		})
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		inbox, err := svc.SMSInbox(ctx, "123")
		require.NoError(t, err)
		messages := inbox.Messages()
		require.Len(t, messages, 2)
		assert.Equal(t, "4521", messages[0].Code())
		assert.Equal(t, "1111", messages[1].Code())
	})

	t.Run("Empty id", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusOK, `{}`))
		svc := NewOrderService(rs.client("k"), zap.NewNop())

		_, err := svc.SMSInbox(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, 0, rs.hits())
	})
}
