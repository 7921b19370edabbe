package reference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/domain/units"
)

const (
	keySeedOrigins = "seed-origins"
	keyConstants   = "calculator-constants"
	keyPricing     = "pricing"
	keyConversions = "conversions"
)

// ErrUnknownOrigin is returned when no seed origin matches a code or name.
var ErrUnknownOrigin = errors.New("unknown seed origin")

// Provider is a source of reference data: the REST reference server or a spreadsheet.
type Provider interface {
	SeedOrigins(ctx context.Context) ([]models.SeedOrigin, error)
	CalculatorConstants(ctx context.Context) (models.CalculatorConstants, error)
	Pricing(ctx context.Context) ([]models.PricingEntry, error)
	Conversions(ctx context.Context) (units.Conversions, error)
}

// Cache is the subset of github.com/patrickmn/go-cache used by the service.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Flush()
}

// Service serves reference data from a TTL cache, loading misses from the
// provider and falling back to built-in defaults when the provider fails.
type Service struct {
	provider Provider
	cache    Cache
	ttl      time.Duration
	logger   *zap.Logger
}

// NewService wires a reference service. A nil provider serves defaults only.
func NewService(provider Provider, cache Cache, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cache: cache, ttl: ttl, logger: logger}
}

// SeedOrigins returns the active seed origins.
func (s *Service) SeedOrigins(ctx context.Context) []models.SeedOrigin {
	origins := load(ctx, s, keySeedOrigins, models.DefaultSeedOrigins, func(ctx context.Context, p Provider) ([]models.SeedOrigin, error) {
		return p.SeedOrigins(ctx)
	})

	active := make([]models.SeedOrigin, 0, len(origins))
	for _, o := range origins {
		if o.IsActive {
			active = append(active, o)
		}
	}
	return active
}

// Origin looks up an active seed origin by code or by name, ignoring case.
func (s *Service) Origin(ctx context.Context, codeOrName string) (*models.SeedOrigin, error) {
	needle := strings.TrimSpace(codeOrName)
	for _, o := range s.SeedOrigins(ctx) {
		if strings.EqualFold(o.Code, needle) || strings.EqualFold(o.Name, needle) {
			origin := o
			return &origin, nil
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrUnknownOrigin, models.NewValidationError("originCode", fmt.Sprintf("no active origin %q", codeOrName)))
}

// CalculatorConstants returns the calculator defaults.
func (s *Service) CalculatorConstants(ctx context.Context) models.CalculatorConstants {
	return load(ctx, s, keyConstants, models.DefaultCalculatorConstants, func(ctx context.Context, p Provider) (models.CalculatorConstants, error) {
		return p.CalculatorConstants(ctx)
	})
}

// Pricing returns the price list per size category.
func (s *Service) Pricing(ctx context.Context) []models.PricingEntry {
	return load(ctx, s, keyPricing, DefaultPricing, func(ctx context.Context, p Provider) ([]models.PricingEntry, error) {
		return p.Pricing(ctx)
	})
}

// Conversions returns the unit ratios, falling back to the standard ones when
// the provider answers with an unusable set.
func (s *Service) Conversions(ctx context.Context) units.Conversions {
	conv := load(ctx, s, keyConversions, units.Default, func(ctx context.Context, p Provider) (units.Conversions, error) {
		return p.Conversions(ctx)
	})
	if !conv.Valid() {
		return units.Default()
	}
	return conv
}

// Warm drops the cache and reloads every dataset from the provider.
// It returns the combined provider errors; defaults are served for failed sets.
func (s *Service) Warm(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}
	if s.cache != nil {
		s.cache.Flush()
	}

	var errs error
	errs = multierr.Append(errs, fill(ctx, s, keySeedOrigins, func(ctx context.Context, p Provider) ([]models.SeedOrigin, error) {
		return p.SeedOrigins(ctx)
	}))
	errs = multierr.Append(errs, fill(ctx, s, keyConstants, func(ctx context.Context, p Provider) (models.CalculatorConstants, error) {
		return p.CalculatorConstants(ctx)
	}))
	errs = multierr.Append(errs, fill(ctx, s, keyPricing, func(ctx context.Context, p Provider) ([]models.PricingEntry, error) {
		return p.Pricing(ctx)
	}))
	errs = multierr.Append(errs, fill(ctx, s, keyConversions, func(ctx context.Context, p Provider) (units.Conversions, error) {
		return p.Conversions(ctx)
	}))

	if errs != nil {
		s.logger.Warn("reference data refresh incomplete", zap.Error(errs))
		return errs
	}
	s.logger.Info("reference data refreshed")
	return nil
}

func load[T any](ctx context.Context, s *Service, key string, fallback func() T, fetch func(context.Context, Provider) (T, error)) T {
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			if v, ok := cached.(T); ok {
				return v
			}
		}
	}
	if s.provider == nil {
		return fallback()
	}

	v, err := fetch(ctx, s.provider)
	if err != nil {
		s.logger.Warn("reference provider failed, serving defaults", zap.String("dataset", key), zap.Error(err))
		return fallback()
	}
	if s.cache != nil {
		s.cache.Set(key, v, s.ttl)
	}
	return v
}

func fill[T any](ctx context.Context, s *Service, key string, fetch func(context.Context, Provider) (T, error)) error {
	v, err := fetch(ctx, s.provider)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if s.cache != nil {
		s.cache.Set(key, v, s.ttl)
	}
	return nil
}

// DefaultPricing is the fallback price list per size category.
func DefaultPricing() []models.PricingEntry {
	return []models.PricingEntry{
		{SizeCategory: "XS", PricePerUnit: 0.5, IsActive: true},
		{SizeCategory: "S", PricePerUnit: 0.8, IsActive: true},
		{SizeCategory: "M", PricePerUnit: 1.2, IsActive: true},
		{SizeCategory: "L", PricePerUnit: 1.8, IsActive: true},
		{SizeCategory: "XL", PricePerUnit: 2.5, IsActive: true},
	}
}
