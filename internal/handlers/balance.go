package handlers

import (
	"net/http"

	"github.com/avc/smsrent/internal/domain"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	account domain.AccountService
	logger  *zap.Logger
}

func NewBalanceHandler(account domain.AccountService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		account: account,
		logger:  logger,
	}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.account.GetBalance(r.Context())
	if err != nil {
		writeError(w, r, h.logger, "failed to get balance", err)
		return
	}
	writeJSON(w, http.StatusOK, balance, h.logger)
}
