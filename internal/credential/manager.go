package credential

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc/smsrent/internal/domain"
	"go.uber.org/zap"
)

// Manager связывает Holder с постоянным хранилищем ключа
type Manager struct {
	holder *Holder
	store  domain.CredentialStore
	logger *zap.Logger
}

// NewManager создает новый Manager
func NewManager(holder *Holder, store domain.CredentialStore, logger *zap.Logger) *Manager {
	return &Manager{
		holder: holder,
		store:  store,
		logger: logger,
	}
}

// Holder возвращает общий Holder
func (m *Manager) Holder() *Holder {
	return m.holder
}

// Init загружает сохраненный ключ при старте
func (m *Manager) Init(ctx context.Context) error {
	key, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("credential manager: failed to load api key: %w", err)
	}
	if key == "" {
		m.logger.Warn("api key is not configured")
		return nil
	}
	m.holder.Set(key)
	m.logger.Info("api key loaded")
	return nil
}

// Replace сохраняет новый ключ и делает его текущим
func (m *Manager) Replace(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.NewInvalidInput("replace api key", "api key is required")
	}
	if err := m.store.Save(ctx, key); err != nil {
		return fmt.Errorf("credential manager: failed to save api key: %w", err)
	}
	m.holder.Set(key)
	m.logger.Info("api key replaced")
	return nil
}
