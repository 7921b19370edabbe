package referenceapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/abanico/internal/config"
	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/domain/units"
)

// APIClient reads reference data from the JSON REST reference server.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a reference API client using the provided configuration values.
func NewClient(cfg config.ReferenceConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.APIBaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.APITimeout)

	return &APIClient{httpClient: restyClient}
}

// apiError is the error body returned by the reference server.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SeedOrigins fetches the seed origin catalogue.
func (c *APIClient) SeedOrigins(ctx context.Context) ([]models.SeedOrigin, error) {
	var origins []models.SeedOrigin
	if err := c.get(ctx, "/seedOrigins", &origins); err != nil {
		return nil, err
	}
	return origins, nil
}

// CalculatorConstants fetches the calculator defaults. The server stores them as a one-row collection.
func (c *APIClient) CalculatorConstants(ctx context.Context) (models.CalculatorConstants, error) {
	var rows []models.CalculatorConstants
	if err := c.get(ctx, "/calculatorConstants", &rows); err != nil {
		return models.CalculatorConstants{}, err
	}
	if len(rows) == 0 {
		return models.CalculatorConstants{}, fmt.Errorf("reference api: calculatorConstants is empty")
	}
	return rows[0], nil
}

// Pricing fetches the price list per size category.
func (c *APIClient) Pricing(ctx context.Context) ([]models.PricingEntry, error) {
	var pricing []models.PricingEntry
	if err := c.get(ctx, "/pricing", &pricing); err != nil {
		return nil, err
	}
	return pricing, nil
}

// Conversions fetches the unit ratios. The server stores them as a one-row collection.
func (c *APIClient) Conversions(ctx context.Context) (units.Conversions, error) {
	var rows []units.Conversions
	if err := c.get(ctx, "/conversionRates", &rows); err != nil {
		return units.Conversions{}, err
	}
	if len(rows) == 0 {
		return units.Conversions{}, fmt.Errorf("reference api: conversionRates is empty")
	}
	return rows[0], nil
}

func (c *APIClient) get(ctx context.Context, path string, result any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return fmt.Errorf("reference api error: path=%s, code=%d, message=%s", path, resp.StatusCode(), message)
	}

	return nil
}
