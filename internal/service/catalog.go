package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avc/smsrent/internal/domain"
)

// CatalogService реализует domain.CatalogService
type CatalogService struct {
	transport domain.Transport
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(transport domain.Transport) *CatalogService {
	return &CatalogService{
		transport: transport,
	}
}

// ListCountries возвращает страны с их атрибутами и операторами
func (s *CatalogService) ListCountries(ctx context.Context) (domain.Payload, error) {
	countries, err := s.transport.Call(ctx, http.MethodGet, "/guest/countries", nil)
	if err != nil {
		return domain.Payload{}, fmt.Errorf("catalog service: failed to list countries: %w", err)
	}
	return countries, nil
}

// ListOperators возвращает операторов страны. Неизвестная страна дает ["any"].
func (s *CatalogService) ListOperators(ctx context.Context, country string) ([]string, error) {
	values, err := requireParams("list operators", param{"country", country})
	if err != nil {
		return nil, err
	}

	countries, err := s.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	info, _ := countries.Object(values[0])
	return domain.Operators(info), nil
}

// ListProducts возвращает продукты для страны и оператора
func (s *CatalogService) ListProducts(ctx context.Context, country, operator string) (domain.Payload, error) {
	values, err := requireParams("list products", param{"country", country}, param{"operator", operator})
	if err != nil {
		return domain.Payload{}, err
	}

	products, err := s.transport.Call(ctx, http.MethodGet, "/guest/products"+escapeSegments(values...), nil)
	if err != nil {
		return domain.Payload{}, fmt.Errorf("catalog service: failed to list products for %s/%s: %w", values[0], values[1], err)
	}
	return products, nil
}

// ListPrices возвращает все цены
func (s *CatalogService) ListPrices(ctx context.Context) (domain.Payload, error) {
	return s.prices(ctx, nil)
}

// ListPricesByCountry возвращает цены по стране
func (s *CatalogService) ListPricesByCountry(ctx context.Context, country string) (domain.Payload, error) {
	values, err := requireParams("list prices by country", param{"country", country})
	if err != nil {
		return domain.Payload{}, err
	}
	return s.prices(ctx, url.Values{"country": {values[0]}})
}

// ListPricesByProduct возвращает цены по продукту
func (s *CatalogService) ListPricesByProduct(ctx context.Context, product string) (domain.Payload, error) {
	values, err := requireParams("list prices by product", param{"product", product})
	if err != nil {
		return domain.Payload{}, err
	}
	return s.prices(ctx, url.Values{"product": {values[0]}})
}

// ListPricesByCountryAndProduct возвращает цены по стране и продукту
func (s *CatalogService) ListPricesByCountryAndProduct(ctx context.Context, country, product string) (domain.Payload, error) {
	values, err := requireParams("list prices by country and product", param{"country", country}, param{"product", product})
	if err != nil {
		return domain.Payload{}, err
	}
	return s.prices(ctx, url.Values{"country": {values[0]}, "product": {values[1]}})
}

func (s *CatalogService) prices(ctx context.Context, filter url.Values) (domain.Payload, error) {
	prices, err := s.transport.Call(ctx, http.MethodGet, "/guest/prices", filter)
	if err != nil {
		return domain.Payload{}, fmt.Errorf("catalog service: failed to list prices: %w", err)
	}
	return prices, nil
}
