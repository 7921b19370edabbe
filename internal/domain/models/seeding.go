package models

// SeedingParameters are the inputs of a seeding calculation.
type SeedingParameters struct {
	NumberOfBundles          int     `json:"numberOfBundles"`
	PricePerBundle           float64 `json:"pricePerBundle"`
	ShellsPerBundle          int     `json:"shellsPerBundle"`
	ExpectedMortalityPercent float64 `json:"expectedMortalityPercent"`
	SectorAreaM2             float64 `json:"sectorAreaM2"`
	AdditionalCosts          float64 `json:"additionalCosts"`
}

// DensityStatus classifies a planting density.
type DensityStatus string

const (
	DensityHigh    DensityStatus = "high"
	DensityLow     DensityStatus = "low"
	DensityOptimal DensityStatus = "optimal"
)

// SeedingResult holds shell counts, densities and the cost breakdown of a seeding.
type SeedingResult struct {
	TotalShells           int           `json:"totalShells"`
	SurvivingShells       int           `json:"survivingShells"`
	ShellsLost            int           `json:"shellsLost"`
	BundleCost            float64       `json:"bundleCost"`
	TotalInitialCost      float64       `json:"totalInitialCost"`
	AdjustedMortality     float64       `json:"adjustedMortality"`
	DensityPerM2          float64       `json:"densityPerM2"`
	SurvivingDensityPerM2 float64       `json:"survivingDensityPerM2"`
	CostPerShell          float64       `json:"costPerShell"`
	CostPerSurvivingShell float64       `json:"costPerSurvivingShell"`
	DensityStatus         DensityStatus `json:"densityStatus"`
	Recommendation        string        `json:"recommendation"`
	OriginQuality         SeedQuality   `json:"originQuality,omitempty"`
}
