package exchange

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
)

// ConvertInput is the Huma input for converting an amount between currencies.
// Amount stays a string so a missing value and a malformed value produce
// distinct errors.
type ConvertInput struct {
	From   string `query:"from" doc:"Source currency code, defaults to UAH"`
	To     string `query:"to" doc:"Target currency code, defaults to USD"`
	Amount string `query:"amount" doc:"Amount to convert"`
}

// Money is one side of a conversion.
type Money struct {
	Currency string  `json:"currency" doc:"Currency code"`
	Amount   float64 `json:"amount" doc:"Amount in that currency"`
}

// ConvertResponse is the response body for a conversion.
type ConvertResponse struct {
	From      Money   `json:"from"`
	To        Money   `json:"to"`
	Rate      float64 `json:"rate" doc:"Applied conversion rate"`
	Timestamp int64   `json:"timestamp" doc:"Unix time the provider last refreshed"`
}

// ConvertOutput is the response for a conversion.
type ConvertOutput struct {
	Body ConvertResponse
}

// ConvertHandler handles GET /api/exchange-rates/convert.
type ConvertHandler struct {
	Provider rateProvider
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(provider rateProvider) *ConvertHandler {
	return &ConvertHandler{Provider: provider}
}

// Register registers the endpoint with the Huma API.
func (h *ConvertHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "convert-currency",
		Method:      http.MethodGet,
		Path:        "/api/exchange-rates/convert",
		Summary:     "Convert currency",
		Description: "Converts an amount from one currency to another at the current rate.",
		Tags:        []string{"Exchange Rates"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *ConvertHandler) handle(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
	if _, err := identity.Require(ctx); err != nil {
		return nil, err
	}

	if input.Amount == "" {
		return nil, httperr.New(400, "Amount is required")
	}
	amount, err := strconv.ParseFloat(input.Amount, 64)
	if err != nil {
		return nil, httperr.New(400, "Amount must be a number")
	}

	from := input.From
	if from == "" {
		from = defaultBase
	}
	to := input.To
	if to == "" {
		to = "USD"
	}

	conversion, err := h.Provider.Convert(ctx, from, to, amount)
	if err != nil {
		return nil, providerError(err, "Failed to convert currency")
	}

	return &ConvertOutput{
		Body: ConvertResponse{
			From:      Money{Currency: conversion.FromCurrency, Amount: conversion.Amount},
			To:        Money{Currency: conversion.ToCurrency, Amount: conversion.Result},
			Rate:      conversion.Rate,
			Timestamp: conversion.Timestamp,
		},
	}, nil
}
