package handlers

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// maxKeySize ограничивает размер тела запроса с ключом
const maxKeySize = 4 << 10

// CredentialReplacer заменяет ключ API
type CredentialReplacer interface {
	Replace(ctx context.Context, key string) error
}

type CredentialHandler struct {
	credentials CredentialReplacer
	logger      *zap.Logger
}

func NewCredentialHandler(credentials CredentialReplacer, logger *zap.Logger) *CredentialHandler {
	return &CredentialHandler{
		credentials: credentials,
		logger:      logger,
	}
}

// Replace принимает новый ключ API в теле запроса как текст
func (h *CredentialHandler) Replace(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxKeySize))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.credentials.Replace(r.Context(), string(body)); err != nil {
		writeError(w, r, h.logger, "failed to replace api key", err)
		return
	}

	operator, _ := GetOperator(r.Context())
	h.logger.Info("api key replaced via gateway", zap.String("operator", operator))
	w.WriteHeader(http.StatusNoContent)
}
