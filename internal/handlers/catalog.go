package handlers

import (
	"net/http"

	"github.com/avc/smsrent/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog domain.CatalogService
	logger  *zap.Logger
}

func NewCatalogHandler(catalog domain.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

func (h *CatalogHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.catalog.ListCountries(r.Context())
	if err != nil {
		writeError(w, r, h.logger, "failed to list countries", err)
		return
	}
	writeJSON(w, http.StatusOK, countries, h.logger)
}

func (h *CatalogHandler) Operators(w http.ResponseWriter, r *http.Request) {
	operators, err := h.catalog.ListOperators(r.Context(), chi.URLParam(r, "country"))
	if err != nil {
		writeError(w, r, h.logger, "failed to list operators", err)
		return
	}
	writeJSON(w, http.StatusOK, operators, h.logger)
}

func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context(), chi.URLParam(r, "country"), chi.URLParam(r, "operator"))
	if err != nil {
		writeError(w, r, h.logger, "failed to list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products, h.logger)
}

// Prices выбирает вариант запроса цен по заданным параметрам country и product
func (h *CatalogHandler) Prices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	country, product := query.Get("country"), query.Get("product")

	var (
		prices domain.Payload
		err    error
	)
	switch {
	case country != "" && product != "":
		prices, err = h.catalog.ListPricesByCountryAndProduct(r.Context(), country, product)
	case country != "":
		prices, err = h.catalog.ListPricesByCountry(r.Context(), country)
	case product != "":
		prices, err = h.catalog.ListPricesByProduct(r.Context(), product)
	default:
		prices, err = h.catalog.ListPrices(r.Context())
	}
	if err != nil {
		writeError(w, r, h.logger, "failed to list prices", err)
		return
	}
	writeJSON(w, http.StatusOK, prices, h.logger)
}
