// Package exchange exposes the currency endpoints backed by the external
// exchange rate provider.
package exchange

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/rates"
)

const (
	defaultBase    = "UAH"
	defaultTargets = "USD,EUR,GBP"
)

// rateProvider is the interface for the external exchange rate client.
type rateProvider interface {
	Latest(ctx context.Context, base, targets string) (*rates.Rates, error)
	Convert(ctx context.Context, from, to string, amount float64) (*rates.Conversion, error)
}

func providerError(err error, fallback string) error {
	if errors.Is(err, rates.ErrAPIKeyMissing) {
		return httperr.New(500, "Exchange Rate API key is not configured")
	}
	return httperr.New(500, fallback)
}

// RatesInput is the Huma input for fetching exchange rates.
type RatesInput struct {
	Base   string `query:"base" doc:"Base currency code, defaults to UAH"`
	Target string `query:"target" doc:"Comma separated target currency codes, defaults to USD,EUR,GBP"`
}

// RatesResponse is the response body for fetching exchange rates.
type RatesResponse struct {
	BaseCurrency string             `json:"base_currency" doc:"Base currency code"`
	Rates        map[string]float64 `json:"rates" doc:"Conversion rates keyed by currency code"`
	Timestamp    int64              `json:"timestamp" doc:"Unix time the provider last refreshed"`
}

// RatesOutput is the response for fetching exchange rates.
type RatesOutput struct {
	Body RatesResponse
}

// RatesHandler handles GET /api/exchange-rates.
type RatesHandler struct {
	Provider rateProvider
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(provider rateProvider) *RatesHandler {
	return &RatesHandler{Provider: provider}
}

// Register registers the endpoint with the Huma API.
func (h *RatesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-exchange-rates",
		Method:      http.MethodGet,
		Path:        "/api/exchange-rates",
		Summary:     "Get exchange rates",
		Description: "Fetches current rates for a base currency, filtered to the requested targets.",
		Tags:        []string{"Exchange Rates"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *RatesHandler) handle(ctx context.Context, input *RatesInput) (*RatesOutput, error) {
	if _, err := identity.Require(ctx); err != nil {
		return nil, err
	}

	base := input.Base
	if base == "" {
		base = defaultBase
	}
	targets := input.Target
	if targets == "" {
		targets = defaultTargets
	}

	result, err := h.Provider.Latest(ctx, base, targets)
	if err != nil {
		return nil, providerError(err, "Failed to fetch exchange rates")
	}

	return &RatesOutput{
		Body: RatesResponse{
			BaseCurrency: result.BaseCurrency,
			Rates:        result.Rates,
			Timestamp:    result.Timestamp,
		},
	}, nil
}
