package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/smsrent/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountService реализует domain.AccountService
type AccountService struct {
	transport domain.Transport
}

// NewAccountService создает новый AccountService
func NewAccountService(transport domain.Transport) *AccountService {
	return &AccountService{
		transport: transport,
	}
}

// GetBalance запрашивает профиль и возвращает баланс. Значение не кешируется.
func (s *AccountService) GetBalance(ctx context.Context) (*domain.Balance, error) {
	profile, err := s.transport.Call(ctx, http.MethodGet, "/user/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("account service: failed to get balance: %w", err)
	}

	balance := &domain.Balance{
		Amount: decimal.Zero,
		Raw:    profile,
	}

	if !profile.Has("balance") {
		return balance, nil
	}

	num, ok := profile.Number("balance")
	if !ok {
		return nil, &domain.Error{
			Kind:    domain.KindProtocol,
			Op:      "get balance",
			Message: fmt.Sprintf("balance is not a number: %q", profile.String("balance")),
		}
	}

	amount, err := decimal.NewFromString(num.String())
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindProtocol, Op: "get balance", Message: "failed to parse balance", Err: err}
	}
	balance.Amount = amount

	return balance, nil
}
