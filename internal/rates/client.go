package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://v6.exchangerate-api.com/v6"

var (
	ErrAPIKeyMissing = errors.New("exchange rate API key is not configured")
	ErrProviderError = errors.New("failed to fetch exchange rates")
)

// Client talks to the exchangerate-api.com v6 API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type latestResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
}

type pairResponse struct {
	Result             string  `json:"result"`
	ErrorType          string  `json:"error-type"`
	ConversionRate     float64 `json:"conversion_rate"`
	ConversionResult   float64 `json:"conversion_result"`
	TimeLastUpdateUnix int64   `json:"time_last_update_unix"`
}

// Rates is the filtered set of conversion rates for one base currency.
type Rates struct {
	BaseCurrency string
	Rates        map[string]float64
	Timestamp    int64
}

// Conversion is the result of converting an amount between two currencies.
type Conversion struct {
	FromCurrency string
	ToCurrency   string
	Amount       float64
	Result       float64
	Rate         float64
	Timestamp    int64
}

// Latest fetches rates for the base currency filtered down to the requested
// targets. Targets is a comma separated currency list.
func (c *Client) Latest(ctx context.Context, base, targets string) (*Rates, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)

	var payload latestResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("%w: %s", ErrProviderError, payload.ErrorType)
	}

	wanted := make(map[string]bool)
	for _, t := range strings.Split(targets, ",") {
		if t = strings.TrimSpace(t); t != "" {
			wanted[t] = true
		}
	}

	filtered := make(map[string]float64)
	for currency, rate := range payload.ConversionRates {
		if wanted[currency] {
			filtered[currency] = rate
		}
	}

	timestamp := payload.TimeLastUpdateUnix
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}

	return &Rates{
		BaseCurrency: base,
		Rates:        filtered,
		Timestamp:    timestamp,
	}, nil
}

// Convert converts an amount from one currency to another.
func (c *Client) Convert(ctx context.Context, from, to string, amount float64) (*Conversion, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	url := fmt.Sprintf("%s/%s/pair/%s/%s/%g", c.baseURL, c.apiKey, from, to, amount)

	var payload pairResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("%w: %s", ErrProviderError, payload.ErrorType)
	}

	timestamp := payload.TimeLastUpdateUnix
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}

	return &Conversion{
		FromCurrency: from,
		ToCurrency:   to,
		Amount:       amount,
		Result:       payload.ConversionResult,
		Rate:         payload.ConversionRate,
		Timestamp:    timestamp,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderError, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrProviderError, err)
	}
	return nil
}
