package worker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/avc/smsrent/internal/domain"
	"go.uber.org/zap"
)

var (
	// ErrQueueFull возвращается, если очередь наблюдения заполнена
	ErrQueueFull = errors.New("watch queue is full")
	// ErrPoolStopped возвращается после остановки пула
	ErrPoolStopped = errors.New("watch pool is stopped")
)

// WatchState представляет состояние наблюдения за заказом
type WatchState string

const (
	WatchStateQueued WatchState = "QUEUED"
	WatchStateDone   WatchState = "DONE"
	WatchStateFailed WatchState = "FAILED"
)

// WatchResult - последний известный результат наблюдения
type WatchResult struct {
	OrderID   string        `json:"order_id"`
	State     WatchState    `json:"state"`
	Order     *domain.Order `json:"order,omitempty"`
	Error     string        `json:"error,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// PoolConfig задает параметры пула
type PoolConfig struct {
	Workers   int
	QueueSize int
	Poll      PollConfig
}

// Pool представляет пул воркеров, ожидающих SMS по заказам
type Pool struct {
	workers int
	queue   chan string
	poller  *Poller
	poll    PollConfig
	logger  *zap.Logger
	wg      sync.WaitGroup

	mu      sync.RWMutex
	results map[string]WatchResult
	stopped bool
}

// NewPool создает новый worker pool
func NewPool(cfg PoolConfig, poller *Poller, logger *zap.Logger) *Pool {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}
	return &Pool{
		workers: cfg.Workers,
		queue:   make(chan string, cfg.QueueSize),
		poller:  poller,
		poll:    cfg.Poll,
		logger:  logger,
		results: make(map[string]WatchResult),
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop останавливает прием заказов и ждет завершения воркеров
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// Watch ставит заказ в очередь наблюдения.
// Повторный вызов для заказа, который еще в очереди, ничего не делает.
func (p *Pool) Watch(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return domain.NewInvalidInput("watch order", "order id is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrPoolStopped
	}
	if res, ok := p.results[orderID]; ok && res.State == WatchStateQueued {
		return nil
	}

	select {
	case p.queue <- orderID:
	default:
		p.logger.Warn("queue is full, skipping order", zap.String("order_id", orderID))
		return ErrQueueFull
	}

	p.results[orderID] = WatchResult{
		OrderID:   orderID,
		State:     WatchStateQueued,
		UpdatedAt: time.Now(),
	}
	return nil
}

// Result возвращает результат наблюдения за заказом
func (p *Pool) Result(orderID string) (WatchResult, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	res, ok := p.results[strings.TrimSpace(orderID)]
	return res, ok
}

// worker обрабатывает заказы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case orderID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processOrder(ctx, orderID)
		}
	}
}

// processOrder ожидает SMS по одному заказу и сохраняет результат
func (p *Pool) processOrder(ctx context.Context, orderID string) {
	p.logger.Debug("watching order", zap.String("order_id", orderID))

	order, err := p.poller.WaitForSMS(ctx, orderID, p.poll)

	res := WatchResult{
		OrderID:   orderID,
		State:     WatchStateDone,
		Order:     order,
		UpdatedAt: time.Now(),
	}
	if err != nil {
		res.State = WatchStateFailed
		res.Error = err.Error()
		p.logger.Warn("order watch failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	} else {
		p.logger.Info("order watch completed",
			zap.String("order_id", orderID),
			zap.String("status", string(order.Status())),
			zap.Strings("codes", order.Codes()),
		)
	}

	p.mu.Lock()
	p.results[orderID] = res
	p.mu.Unlock()
}
