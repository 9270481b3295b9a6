package domain

import (
	"github.com/shopspring/decimal"
)

// OperatorAny означает отсутствие ограничения по оператору
const OperatorAny = "any"

// countryAttributes - ключи записи страны, не являющиеся операторами
var countryAttributes = map[string]struct{}{
	"iso":     {},
	"prefix":  {},
	"text_en": {},
	"text_ru": {},
}

// Operators возвращает операторов страны из записи каталога в порядке ответа.
// Если операторов нет, возвращается ["any"].
func Operators(country Payload) []string {
	var operators []string
	for _, key := range country.Keys() {
		if _, skip := countryAttributes[key]; skip {
			continue
		}
		operators = append(operators, key)
	}
	if len(operators) == 0 {
		return []string{OperatorAny}
	}
	return operators
}

// OrderStatus представляет статус заказа. Набор значений определяет провайдер,
// неизвестные значения допустимы.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusReceived OrderStatus = "RECEIVED"
	OrderStatusCanceled OrderStatus = "CANCELED"
	OrderStatusTimeout  OrderStatus = "TIMEOUT"
	OrderStatusFinished OrderStatus = "FINISHED"
	OrderStatusBanned   OrderStatus = "BANNED"
)

// IsTerminal сообщает, что статус больше не изменится
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCanceled, OrderStatusTimeout, OrderStatusFinished, OrderStatusBanned:
		return true
	default:
		return false
	}
}

// Known сообщает, что статус входит в список известных
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusPending, OrderStatusReceived, OrderStatusCanceled,
		OrderStatusTimeout, OrderStatusFinished, OrderStatusBanned:
		return true
	default:
		return false
	}
}

// Order представляет снимок заказа в том виде, в каком его вернул провайдер
type Order struct {
	Payload
}

// ID возвращает идентификатор заказа в точности как он пришел в ответе
func (o Order) ID() string {
	return o.String("id")
}

// Phone возвращает арендованный номер
func (o Order) Phone() string {
	return o.String("phone")
}

// Status возвращает текущий статус заказа
func (o Order) Status() OrderStatus {
	return OrderStatus(o.String("status"))
}

func (o Order) Product() string {
	return o.String("product")
}

func (o Order) Operator() string {
	return o.String("operator")
}

func (o Order) Country() string {
	return o.String("country")
}

// Price возвращает стоимость заказа
func (o Order) Price() decimal.Decimal {
	num, ok := o.Number("price")
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(num.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SMS возвращает полученные сообщения
func (o Order) SMS() []SMS {
	objects := o.Objects("sms")
	out := make([]SMS, 0, len(objects))
	for _, obj := range objects {
		out = append(out, SMS{Payload: obj})
	}
	return out
}

// Codes возвращает непустые коды из полученных сообщений
func (o Order) Codes() []string {
	var codes []string
	for _, sms := range o.SMS() {
		if code := sms.Code(); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// SMS представляет одно полученное сообщение
type SMS struct {
	Payload
}

func (s SMS) Code() string {
	return s.String("code")
}

func (s SMS) Text() string {
	return s.String("text")
}

func (s SMS) Sender() string {
	return s.String("sender")
}

func (s SMS) Date() string {
	return s.String("date")
}

// Inbox представляет список сообщений заказа
type Inbox struct {
	Payload
}

// Messages возвращает сообщения из поля Data
func (i Inbox) Messages() []SMS {
	objects := i.Objects("Data")
	out := make([]SMS, 0, len(objects))
	for _, obj := range objects {
		out = append(out, SMS{Payload: obj})
	}
	return out
}

// Balance представляет баланс аккаунта у провайдера
type Balance struct {
	Amount decimal.Decimal `json:"balance"`
	Raw    Payload         `json:"profile"`
}
