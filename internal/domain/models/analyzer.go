package models

// PresentationMeasure is a sellable measure with its price and the weight recorded for it.
type PresentationMeasure struct {
	Name       string  `json:"name"`
	PricePerKg float64 `json:"pricePerKg"`
	WeightKg   float64 `json:"weightKg"`
}

// Presentation groups measures sold in the same presentation (fresh, frozen, half shell...).
type Presentation struct {
	Name     string                `json:"name"`
	Measures []PresentationMeasure `json:"measures"`
}

// CostItem is a named operating cost.
type CostItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// IntegratedInput is the parameter bundle of the integrated analyzer.
type IntegratedInput struct {
	NumberOfBundles          int                `json:"numberOfBundles"`
	InitialQuantity          int                `json:"initialQuantity"`
	NumberOfLines            int                `json:"numberOfLines"`
	Cost                     float64            `json:"cost"`
	AdditionalCosts          float64            `json:"additionalCosts"`
	HarvestMonths            int                `json:"harvestMonths"`
	InitialSizeMm            float64            `json:"initialSizeMm"`
	ExpectedMonthlyMortality float64            `json:"expectedMonthlyMortality"`
	OperatingCosts           map[string]float64 `json:"operatingCosts"`
	CustomCosts              []CostItem         `json:"customCosts"`
	Presentations            []Presentation     `json:"presentations"`
}

// PresentationTotals aggregates recorded weight, revenue and unit conversions.
type PresentationTotals struct {
	TotalWeightKg float64 `json:"totalWeightKg"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalShells   float64 `json:"totalShells"`
	TotalMallas   float64 `json:"totalMallas"`
	TotalBundles  float64 `json:"totalBundles"`
}

// RevenueScenario is a price multiplier applied to recorded revenue.
type RevenueScenario struct {
	Name            string  `json:"name"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

// RevenueScenarioResult is the outcome of one revenue scenario. Costs are held constant.
type RevenueScenarioResult struct {
	Name            string  `json:"name"`
	PriceMultiplier float64 `json:"priceMultiplier"`
	NetRevenue      float64 `json:"netRevenue"`
	Profit          float64 `json:"profit"`
	ROI             float64 `json:"roi"`
}

// DensityAnalysis grades initial and final densities.
type DensityAnalysis struct {
	InitialStatus  DensityStatus `json:"initialStatus"`
	FinalStatus    DensityStatus `json:"finalStatus"`
	Recommendation string        `json:"recommendation"`
}

// HarvestComparison contrasts theoretical surviving stock against recorded harvest.
type HarvestComparison struct {
	TheoreticalShells  float64 `json:"theoreticalShells"`
	RecordedShells     float64 `json:"recordedShells"`
	TheoreticalBundles float64 `json:"theoreticalBundles"`
	RecordedBundles    float64 `json:"recordedBundles"`
	TheoreticalMallas  float64 `json:"theoreticalMallas"`
	RecordedMallas     float64 `json:"recordedMallas"`
	ShellsDiffPercent  float64 `json:"shellsDiffPercent"`
}

// IntegratedAnalysis is the combined seeding, growth, revenue and scenario report.
type IntegratedAnalysis struct {
	Seeding             SeedingResult           `json:"seeding"`
	SectorAreaM2        float64                 `json:"sectorAreaM2"`
	CumulativeMortality float64                 `json:"cumulativeMortality"`
	Trajectory          []TrajectoryPoint       `json:"trajectory"`
	FinalSizeMm         float64                 `json:"finalSizeMm"`
	FinalWeightGrams    float64                 `json:"finalWeightGrams"`
	Totals              PresentationTotals      `json:"totals"`
	GrossRevenue        float64                 `json:"grossRevenue"`
	OperatingCosts      float64                 `json:"operatingCosts"`
	NetRevenue          float64                 `json:"netRevenue"`
	NetProfit           float64                 `json:"netProfit"`
	ROI                 float64                 `json:"roi"`
	AveragePricePerKg   float64                 `json:"averagePricePerKg"`
	CostPerKg           float64                 `json:"costPerKg"`
	RevenuePerShell     float64                 `json:"revenuePerShell"`
	ProfitPerM2         float64                 `json:"profitPerM2"`
	Scenarios           []RevenueScenarioResult `json:"scenarios"`
	Density             DensityAnalysis         `json:"density"`
	Comparison          HarvestComparison       `json:"comparison"`
}
