package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/avc/smsrent/internal/domain"
	domainmocks "github.com/avc/smsrent/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		transport := domainmocks.NewTransportMock(t)
		svc := NewAccountService(transport)

		transport.EXPECT().Call(mock.Anything, http.MethodGet, "/user/profile", url.Values(nil)).
			Return(mustPayload(t, `{"id":1,"email":"user@example.com","balance":100.25,"rating":96}`), nil).Once()

		balance, err := svc.GetBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, "100.25", balance.Amount.String())
		assert.Equal(t, "user@example.com", balance.Raw.String("email"))
	})

	t.Run("Missing balance means zero", func(t *testing.T) {
		transport := domainmocks.NewTransportMock(t)
		svc := NewAccountService(transport)

		transport.EXPECT().Call(mock.Anything, http.MethodGet, "/user/profile", url.Values(nil)).
			Return(mustPayload(t, `{"id":1}`), nil).Once()

		balance, err := svc.GetBalance(ctx)
		require.NoError(t, err)
		assert.True(t, balance.Amount.IsZero())
	})

	t.Run("Non-numeric balance", func(t *testing.T) {
		transport := domainmocks.NewTransportMock(t)
		svc := NewAccountService(transport)

		transport.EXPECT().Call(mock.Anything, http.MethodGet, "/user/profile", url.Values(nil)).
			Return(mustPayload(t, `{"balance":"lots"}`), nil).Once()

		_, err := svc.GetBalance(ctx)
		assert.ErrorIs(t, err, domain.ErrProtocol)
	})

	t.Run("Absent credential", func(t *testing.T) {
		rs := newRecordingServer(t, respond(http.StatusOK, `{"balance":1}`))
		svc := NewAccountService(rs.client(""))

		_, err := svc.GetBalance(ctx)
		assert.ErrorIs(t, err, domain.ErrAuth)
		assert.Equal(t, 0, rs.hits())
	})
}
