// Package credential хранит ключ API провайдера и управляет его сохранением.
package credential

import (
	"errors"
	"strings"
	"sync"
)

// ErrAbsent возвращается, когда ключ API еще не задан
var ErrAbsent = errors.New("api key is not set")

// Holder хранит текущий ключ API. Запись редкая (явное действие пользователя),
// чтение выполняется при каждом запросе.
type Holder struct {
	mu  sync.RWMutex
	key string
}

// NewHolder создает Holder с начальным ключом (может быть пустым)
func NewHolder(key string) *Holder {
	return &Holder{key: strings.TrimSpace(key)}
}

// Set заменяет ключ для всех последующих запросов
func (h *Holder) Set(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.key = strings.TrimSpace(key)
}

// Get возвращает текущий ключ или ErrAbsent
func (h *Holder) Get() (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.key == "" {
		return "", ErrAbsent
	}
	return h.key, nil
}

// Present сообщает, задан ли ключ
func (h *Holder) Present() bool {
	_, err := h.Get()
	return err == nil
}
