package models

// SeedQuality grades a seed origin.
type SeedQuality string

const (
	QualityStandard SeedQuality = "standard"
	QualityMedia    SeedQuality = "media"
	QualityAlta     SeedQuality = "alta"
	QualityPremium  SeedQuality = "premium"
)

// SeedOrigin is a supplier profile with growth and mortality parameters. Read-only reference data.
type SeedOrigin struct {
	Code                        string      `json:"code" bson:"code"`
	Name                        string      `json:"name" bson:"name"`
	MonthlyGrowthRateMm         float64     `json:"monthlyGrowthRate" bson:"monthly_growth_rate"`
	MonthlyMortalityRatePercent float64     `json:"monthlyMortalityRate" bson:"monthly_mortality_rate"`
	PricePerUnit                float64     `json:"pricePerUnit" bson:"price_per_unit"`
	PricePerBundle              float64     `json:"pricePerBundle" bson:"price_per_bundle"`
	Quality                     SeedQuality `json:"quality" bson:"quality"`
	IsActive                    bool        `json:"isActive" bson:"is_active"`
}

// CalculatorConstants carries the defaults the calculator forms start from.
type CalculatorConstants struct {
	ShellsPerBundle          int     `json:"shellsPerBundle"`
	DefaultBundles           int     `json:"defaultBundles"`
	DefaultSectorSize        float64 `json:"defaultSectorSize"`
	DefaultAdditionalCosts   float64 `json:"defaultAdditionalCosts"`
	DefaultHarvestTime       int     `json:"defaultHarvestTime"`
	DefaultExpectedMortality float64 `json:"defaultExpectedMortality"`
}

// DefaultCalculatorConstants mirrors the values seeded into the reference server.
func DefaultCalculatorConstants() CalculatorConstants {
	return CalculatorConstants{
		ShellsPerBundle:          96,
		DefaultBundles:           50,
		DefaultSectorSize:        1000,
		DefaultAdditionalCosts:   500,
		DefaultHarvestTime:       6,
		DefaultExpectedMortality: 20,
	}
}

// DefaultSeedOrigins is the fallback origin catalogue used when no reference source answers.
func DefaultSeedOrigins() []SeedOrigin {
	return []SeedOrigin{
		{Code: "samanco", Name: "Samanco", MonthlyGrowthRateMm: 3.5, MonthlyMortalityRatePercent: 1.5, PricePerUnit: 0.16, PricePerBundle: 15, Quality: QualityAlta, IsActive: true},
		{Code: "casma", Name: "Casma", MonthlyGrowthRateMm: 3.2, MonthlyMortalityRatePercent: 2.0, PricePerUnit: 0.13, PricePerBundle: 12, Quality: QualityMedia, IsActive: true},
		{Code: "huarmey", Name: "Huarmey", MonthlyGrowthRateMm: 4.0, MonthlyMortalityRatePercent: 1.0, PricePerUnit: 0.19, PricePerBundle: 18, Quality: QualityPremium, IsActive: true},
		{Code: "supe", Name: "Supe", MonthlyGrowthRateMm: 3.3, MonthlyMortalityRatePercent: 1.8, PricePerUnit: 0.15, PricePerBundle: 14, Quality: QualityMedia, IsActive: true},
		{Code: "laboratory", Name: "Laboratorio", MonthlyGrowthRateMm: 4.2, MonthlyMortalityRatePercent: 0.8, PricePerUnit: 0.21, PricePerBundle: 20, Quality: QualityPremium, IsActive: true},
		{Code: "natural", Name: "Natural", MonthlyGrowthRateMm: 3.0, MonthlyMortalityRatePercent: 2.5, PricePerUnit: 0.10, PricePerBundle: 10, Quality: QualityStandard, IsActive: true},
	}
}

// PricingEntry is the price per unit for a harvest size category.
type PricingEntry struct {
	SizeCategory string  `json:"sizeCategory"`
	PricePerUnit float64 `json:"pricePerUnit"`
	IsActive     bool    `json:"isActive"`
}
