package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc/smsrent/internal/domain"
	"github.com/avc/smsrent/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Watcher определяет фоновое ожидание SMS по заказам
type Watcher interface {
	Watch(orderID string) error
	Result(orderID string) (worker.WatchResult, bool)
}

type OrdersHandler struct {
	orders  domain.OrderService
	watcher Watcher
	logger  *zap.Logger
}

func NewOrdersHandler(orders domain.OrderService, watcher Watcher, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders:  orders,
		watcher: watcher,
		logger:  logger,
	}
}

type buyRequest struct {
	Country  string `json:"country"`
	Operator string `json:"operator"`
	Product  string `json:"product"`
}

type rebuyRequest struct {
	Product string `json:"product"`
	Number  string `json:"number"`
}

func (h *OrdersHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req buyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orders.Buy(r.Context(), req.Country, req.Operator, req.Product)
	if err != nil {
		writeError(w, r, h.logger, "failed to buy number", err)
		return
	}

	operator, _ := GetOperator(r.Context())
	h.logger.Info("number purchased via gateway",
		zap.String("operator", operator),
		zap.String("order_id", order.ID()),
	)
	writeJSON(w, http.StatusOK, order, h.logger)
}

func (h *OrdersHandler) Rebuy(w http.ResponseWriter, r *http.Request) {
	var req rebuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orders.Rebuy(r.Context(), req.Product, req.Number)
	if err != nil {
		writeError(w, r, h.logger, "failed to rebuy number", err)
		return
	}
	writeJSON(w, http.StatusOK, order, h.logger)
}

func (h *OrdersHandler) Check(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "check", h.orders.Check)
}

func (h *OrdersHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "finish", h.orders.Finish)
}

func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "cancel", h.orders.Cancel)
}

func (h *OrdersHandler) Ban(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "ban", h.orders.Ban)
}

func (h *OrdersHandler) SMSInbox(w http.ResponseWriter, r *http.Request) {
	inbox, err := h.orders.SMSInbox(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, "failed to get sms inbox", err)
		return
	}
	writeJSON(w, http.StatusOK, inbox, h.logger)
}

// Watch ставит заказ в очередь фонового ожидания SMS
func (h *OrdersHandler) Watch(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if err := h.watcher.Watch(orderID); err != nil {
		writeError(w, r, h.logger, "failed to watch order", err)
		return
	}

	res, _ := h.watcher.Result(orderID)
	writeJSON(w, http.StatusAccepted, res, h.logger)
}

// WatchResult возвращает результат фонового ожидания
func (h *OrdersHandler) WatchResult(w http.ResponseWriter, r *http.Request) {
	res, ok := h.watcher.Result(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, res, h.logger)
}

func (h *OrdersHandler) action(w http.ResponseWriter, r *http.Request, name string,
	fn func(ctx context.Context, orderID string) (*domain.Order, error)) {
	order, err := fn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, "failed to "+name+" order", err)
		return
	}
	writeJSON(w, http.StatusOK, order, h.logger)
}
