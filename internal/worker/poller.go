package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/smsrent/internal/domain"
	"github.com/avc/smsrent/internal/service"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// ErrPollTimeout возвращается, если SMS не пришло за отведенное время
var ErrPollTimeout = errors.New("timed out waiting for sms")

var errStillPending = errors.New("order has no sms yet")

// PollConfig задает параметры ожидания SMS
type PollConfig struct {
	Interval    time.Duration
	MaxInterval time.Duration
	Timeout     time.Duration
}

func (c PollConfig) backoff() retry.Backoff {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second
	}

	b := retry.NewExponential(interval)
	if c.MaxInterval > 0 {
		b = retry.WithCappedDuration(c.MaxInterval, b)
	}
	if c.Timeout > 0 {
		b = retry.WithMaxDuration(c.Timeout, b)
	}
	return b
}

// Poller ожидает SMS, повторяя однократные проверки заказа
type Poller struct {
	orders domain.OrderChecker
	logger *zap.Logger
}

// NewPoller создает новый Poller
func NewPoller(orders domain.OrderChecker, logger *zap.Logger) *Poller {
	return &Poller{
		orders: orders,
		logger: logger,
	}
}

// WaitForSMS проверяет заказ, пока в нем не появится SMS или статус не станет конечным.
// Повторяются только транспортные ошибки, остальные возвращаются сразу.
func (p *Poller) WaitForSMS(ctx context.Context, orderID string, cfg PollConfig) (*domain.Order, error) {
	var last *domain.Order
	attempt := 0

	err := retry.Do(ctx, cfg.backoff(), func(ctx context.Context) error {
		attempt++

		order, err := p.orders.Check(ctx, orderID)
		if err != nil {
			if !errors.Is(err, domain.ErrTransport) {
				return err
			}
			fields := []zap.Field{
				zap.String("order_id", orderID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			}
			if rateLimitErr, ok := service.IsRateLimited(err); ok {
				fields = append(fields, zap.Duration("retry_after", rateLimitErr.RetryAfter))
			}
			p.logger.Warn("order check failed, retrying", fields...)
			return retry.RetryableError(err)
		}

		last = order
		if len(order.SMS()) > 0 || order.Status().IsTerminal() {
			return nil
		}

		p.logger.Debug("order still waiting for sms",
			zap.String("order_id", orderID),
			zap.Int("attempt", attempt),
			zap.String("status", string(order.Status())),
		)
		return retry.RetryableError(errStillPending)
	})

	switch {
	case err == nil:
		return last, nil
	case ctx.Err() != nil:
		return last, fmt.Errorf("poller: wait for order %q aborted: %w", orderID, err)
	case errors.Is(err, errStillPending):
		return last, fmt.Errorf("%w: order %q is still %s", ErrPollTimeout, orderID, last.Status())
	case errors.Is(err, domain.ErrTransport):
		return last, fmt.Errorf("%w: order %q: %w", ErrPollTimeout, orderID, err)
	default:
		return last, fmt.Errorf("poller: wait for order %q: %w", orderID, err)
	}
}
