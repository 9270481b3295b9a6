package domain

import (
	"context"
	"net/url"
)

// Transport выполняет аутентифицированный запрос к удаленному сервису
type Transport interface {
	Call(ctx context.Context, method, path string, query url.Values) (Payload, error)
}

// CatalogService определяет запросы к каталогу провайдера
type CatalogService interface {
	ListCountries(ctx context.Context) (Payload, error)
	ListOperators(ctx context.Context, country string) ([]string, error)
	ListProducts(ctx context.Context, country, operator string) (Payload, error)
	ListPrices(ctx context.Context) (Payload, error)
	ListPricesByCountry(ctx context.Context, country string) (Payload, error)
	ListPricesByProduct(ctx context.Context, product string) (Payload, error)
	ListPricesByCountryAndProduct(ctx context.Context, country, product string) (Payload, error)
}

// OrderChecker определяет однократную проверку заказа
type OrderChecker interface {
	Check(ctx context.Context, orderID string) (*Order, error)
}

// OrderService определяет операции жизненного цикла заказа
type OrderService interface {
	OrderChecker
	Buy(ctx context.Context, country, operator, product string) (*Order, error)
	Rebuy(ctx context.Context, product, number string) (*Order, error)
	Finish(ctx context.Context, orderID string) (*Order, error)
	Cancel(ctx context.Context, orderID string) (*Order, error)
	Ban(ctx context.Context, orderID string) (*Order, error)
	SMSInbox(ctx context.Context, orderID string) (*Inbox, error)
}

// AccountService определяет запросы по аккаунту
type AccountService interface {
	GetBalance(ctx context.Context) (*Balance, error)
}

// CredentialStore хранит единственный ключ API между запусками
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, key string) error
}
