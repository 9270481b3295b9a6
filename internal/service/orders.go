package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/avc/smsrent/internal/domain"
	"go.uber.org/zap"
)

// OrderService реализует domain.OrderService.
// Переходы статусов не проверяются локально: решение принимает провайдер.
type OrderService struct {
	transport domain.Transport
	logger    *zap.Logger
}

// NewOrderService создает новый OrderService
func NewOrderService(transport domain.Transport, logger *zap.Logger) *OrderService {
	return &OrderService{
		transport: transport,
		logger:    logger,
	}
}

// Buy покупает номер для активации продукта
func (s *OrderService) Buy(ctx context.Context, country, operator, product string) (*domain.Order, error) {
	values, err := requireParams("buy",
		param{"country", country},
		param{"operator", operator},
		param{"product", product},
	)
	if err != nil {
		return nil, err
	}

	order, err := s.call(ctx, "/user/buy/activation"+escapeSegments(values...))
	if err != nil {
		return nil, fmt.Errorf("order service: failed to buy %s/%s/%s: %w", values[0], values[1], values[2], err)
	}

	s.logger.Info("number purchased",
		zap.String("order_id", order.ID()),
		zap.String("product", values[2]),
		zap.String("status", string(order.Status())),
	)
	return order, nil
}

// Rebuy повторно покупает ранее использованный номер для продукта
func (s *OrderService) Rebuy(ctx context.Context, product, number string) (*domain.Order, error) {
	values, err := requireParams("rebuy", param{"product", product}, param{"number", number})
	if err != nil {
		return nil, err
	}
	// провайдер ожидает номер без ведущего "+"
	values[1] = strings.TrimPrefix(values[1], "+")

	order, err := s.call(ctx, "/user/reuse"+escapeSegments(values...))
	if err != nil {
		return nil, fmt.Errorf("order service: failed to rebuy %s for %s: %w", values[1], values[0], err)
	}

	s.logger.Info("number repurchased",
		zap.String("order_id", order.ID()),
		zap.String("product", values[0]),
	)
	return order, nil
}

// Check возвращает текущий снимок заказа. Состояние заказа не меняется.
func (s *OrderService) Check(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderAction(ctx, "check", orderID)
}

// Finish завершает заказ
func (s *OrderService) Finish(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderAction(ctx, "finish", orderID)
}

// Cancel отменяет заказ
func (s *OrderService) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderAction(ctx, "cancel", orderID)
}

// Ban помечает номер как непригодный
func (s *OrderService) Ban(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderAction(ctx, "ban", orderID)
}

// SMSInbox возвращает список сообщений заказа
func (s *OrderService) SMSInbox(ctx context.Context, orderID string) (*domain.Inbox, error) {
	values, err := requireParams("sms inbox", param{"order id", orderID})
	if err != nil {
		return nil, err
	}

	payload, err := s.transport.Call(ctx, http.MethodGet, "/user/sms/inbox"+escapeSegments(values[0]), nil)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list sms inbox of order %q: %w", values[0], err)
	}
	return &domain.Inbox{Payload: payload}, nil
}

func (s *OrderService) orderAction(ctx context.Context, action, orderID string) (*domain.Order, error) {
	values, err := requireParams(action+" order", param{"order id", orderID})
	if err != nil {
		return nil, err
	}

	order, err := s.call(ctx, "/user/"+action+escapeSegments(values[0]))
	if err != nil {
		return nil, fmt.Errorf("order service: failed to %s order %q: %w", action, values[0], err)
	}

	if action != "check" {
		s.logger.Info("order updated",
			zap.String("order_id", values[0]),
			zap.String("action", action),
			zap.String("status", string(order.Status())),
		)
	}
	return order, nil
}

func (s *OrderService) call(ctx context.Context, path string) (*domain.Order, error) {
	payload, err := s.transport.Call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return &domain.Order{Payload: payload}, nil
}
