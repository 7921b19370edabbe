package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/domain/units"
)

// Sheet ranges holding reference data. Row 1 of every tab is a header.
const (
	SeedOriginsRange = "SeedOrigins!A2:H"
	PricingRange     = "Pricing!A2:C"
	ConstantsRange   = "Constants!A2:B"
	ConversionsRange = "Conversions!A2:B"
)

// ReferenceProvider reads seed origins, pricing and constants from a spreadsheet.
//
// SeedOrigins columns: code, name, monthly growth mm, monthly mortality %,
// price per unit, price per bundle, quality, active. Pricing columns: size
// category, price per unit, active. Constants and Conversions are key/value pairs.
type ReferenceProvider struct {
	reader RangeReader
	logger *zap.Logger
}

// NewReferenceProvider wraps a range reader.
func NewReferenceProvider(reader RangeReader, logger *zap.Logger) *ReferenceProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceProvider{reader: reader, logger: logger}
}

// SeedOrigins parses the origin tab, skipping malformed rows.
func (p *ReferenceProvider) SeedOrigins(ctx context.Context) ([]models.SeedOrigin, error) {
	rows, err := p.reader.ReadRange(ctx, SeedOriginsRange)
	if err != nil {
		return nil, fmt.Errorf("read seed origins: %w", err)
	}

	origins := make([]models.SeedOrigin, 0, len(rows))
	for i, row := range rows {
		origin, err := parseOrigin(row)
		if err != nil {
			p.logger.Warn("skipping seed origin row", zap.Int("row", i+2), zap.Error(err))
			continue
		}
		origins = append(origins, origin)
	}
	return origins, nil
}

// Pricing parses the pricing tab, skipping malformed rows.
func (p *ReferenceProvider) Pricing(ctx context.Context) ([]models.PricingEntry, error) {
	rows, err := p.reader.ReadRange(ctx, PricingRange)
	if err != nil {
		return nil, fmt.Errorf("read pricing: %w", err)
	}

	pricing := make([]models.PricingEntry, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			p.logger.Warn("skipping short pricing row", zap.Int("row", i+2))
			continue
		}
		price, err := parseFloat(row[1])
		if err != nil {
			p.logger.Warn("skipping pricing row", zap.Int("row", i+2), zap.Error(err))
			continue
		}
		pricing = append(pricing, models.PricingEntry{
			SizeCategory: cell(row, 0),
			PricePerUnit: price,
			IsActive:     parseBool(cell(row, 2), true),
		})
	}
	return pricing, nil
}

// CalculatorConstants reads the constants tab over the stock defaults.
func (p *ReferenceProvider) CalculatorConstants(ctx context.Context) (models.CalculatorConstants, error) {
	values, err := p.keyValues(ctx, ConstantsRange)
	if err != nil {
		return models.CalculatorConstants{}, err
	}

	c := models.DefaultCalculatorConstants()
	for key, raw := range values {
		var perr error
		switch key {
		case "shellsperbundle":
			c.ShellsPerBundle, perr = parseInt(raw)
		case "defaultbundles":
			c.DefaultBundles, perr = parseInt(raw)
		case "defaultsectorsize":
			c.DefaultSectorSize, perr = parseFloat(raw)
		case "defaultadditionalcosts":
			c.DefaultAdditionalCosts, perr = parseFloat(raw)
		case "defaultharvesttime":
			c.DefaultHarvestTime, perr = parseInt(raw)
		case "defaultexpectedmortality":
			c.DefaultExpectedMortality, perr = parseFloat(raw)
		}
		if perr != nil {
			return models.CalculatorConstants{}, fmt.Errorf("constant %s: %w", key, perr)
		}
	}
	return c, nil
}

// Conversions reads the conversions tab over the standard ratios.
func (p *ReferenceProvider) Conversions(ctx context.Context) (units.Conversions, error) {
	values, err := p.keyValues(ctx, ConversionsRange)
	if err != nil {
		return units.Conversions{}, err
	}

	c := units.Default()
	targets := map[string]*float64{
		"conchitasporkg":     &c.ShellsPerKg,
		"conchitaspormanojo": &c.ShellsPerBundle,
		"manojospormalla":    &c.BundlesPerMalla,
		"conchitaspormalla":  &c.ShellsPerMalla,
		"kgpormalla":         &c.KgPerMalla,
	}
	for key, raw := range values {
		target, ok := targets[key]
		if !ok {
			continue
		}
		v, err := parseFloat(raw)
		if err != nil {
			return units.Conversions{}, fmt.Errorf("conversion %s: %w", key, err)
		}
		*target = v
	}
	return c, nil
}

func (p *ReferenceProvider) keyValues(ctx context.Context, sheetRange string) (map[string]string, error) {
	rows, err := p.reader.ReadRange(ctx, sheetRange)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheetRange, err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		key := strings.ToLower(cell(row, 0))
		if key == "" || len(row) < 2 {
			continue
		}
		values[key] = cell(row, 1)
	}
	return values, nil
}

func parseOrigin(row []interface{}) (models.SeedOrigin, error) {
	if len(row) < 6 {
		return models.SeedOrigin{}, fmt.Errorf("expected at least 6 columns, got %d", len(row))
	}

	growth, err := parseFloat(row[2])
	if err != nil {
		return models.SeedOrigin{}, fmt.Errorf("growth rate: %w", err)
	}
	mortality, err := parseFloat(row[3])
	if err != nil {
		return models.SeedOrigin{}, fmt.Errorf("mortality rate: %w", err)
	}
	unitPrice, err := parseFloat(row[4])
	if err != nil {
		return models.SeedOrigin{}, fmt.Errorf("price per unit: %w", err)
	}
	bundlePrice, err := parseFloat(row[5])
	if err != nil {
		return models.SeedOrigin{}, fmt.Errorf("price per bundle: %w", err)
	}

	return models.SeedOrigin{
		Code:                        cell(row, 0),
		Name:                        cell(row, 1),
		MonthlyGrowthRateMm:         growth,
		MonthlyMortalityRatePercent: mortality,
		PricePerUnit:                unitPrice,
		PricePerBundle:              bundlePrice,
		Quality:                     models.SeedQuality(strings.ToLower(cell(row, 6))),
		IsActive:                    parseBool(cell(row, 7), true),
	}, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}

func parseInt(value interface{}) (int, error) {
	str := strings.TrimSpace(fmt.Sprint(value))
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.Atoi(str)
}

// parseFloat accepts a decimal comma as sheets in es-PE locale export it.
func parseFloat(value interface{}) (float64, error) {
	str := strings.TrimSpace(fmt.Sprint(value))
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.ParseFloat(strings.Replace(str, ",", ".", 1), 64)
}

func parseBool(str string, fallback bool) bool {
	switch strings.ToLower(str) {
	case "true", "yes", "si", "sí", "1", "x":
		return true
	case "false", "no", "0":
		return false
	default:
		return fallback
	}
}
