package models

// MarketVariables drive revenue in a projection. Rates are percentages.
type MarketVariables struct {
	PricePerUnit  float64 `json:"pricePerUnit" bson:"price_per_unit"`
	MortalityRate float64 `json:"mortalityRate" bson:"mortality_rate"`
	GrowthRate    float64 `json:"growthRate" bson:"growth_rate"`
	HarvestCycles int     `json:"harvestCycles" bson:"harvest_cycles"`
	CycleMonths   int     `json:"cycleMonths" bson:"cycle_months"`
}

// CostStructure drives costs in a projection.
type CostStructure struct {
	SeedCostPerUnit        float64 `json:"seedCostPerUnit" bson:"seed_cost_per_unit"`
	MaintenanceCostMonthly float64 `json:"maintenanceCostMonthly" bson:"maintenance_cost_monthly"`
	HarvestCostPerUnit     float64 `json:"harvestCostPerUnit" bson:"harvest_cost_per_unit"`
	FixedCostsMonthly      float64 `json:"fixedCostsMonthly" bson:"fixed_costs_monthly"`
}

// RiskFactors are risk scores, each between 0 and 30.
type RiskFactors struct {
	ClimaticRisk    float64 `json:"climaticRisk" bson:"climatic_risk"`
	MarketRisk      float64 `json:"marketRisk" bson:"market_risk"`
	OperationalRisk float64 `json:"operationalRisk" bson:"operational_risk"`
	FinancialRisk   float64 `json:"financialRisk" bson:"financial_risk"`
}

// Total returns the sum of all risk scores.
func (r RiskFactors) Total() float64 {
	return r.ClimaticRisk + r.MarketRisk + r.OperationalRisk + r.FinancialRisk
}

// ScenarioAdjustments are percentage perturbations applied to a projection.
type ScenarioAdjustments struct {
	PriceAdjustmentPercent     float64 `json:"priceAdjustmentPercent" bson:"price_adjustment_percent"`
	MortalityAdjustmentPercent float64 `json:"mortalityAdjustmentPercent" bson:"mortality_adjustment_percent"`
	CostAdjustmentPercent      float64 `json:"costAdjustmentPercent" bson:"cost_adjustment_percent"`
	VolumeAdjustmentPercent    float64 `json:"volumeAdjustmentPercent" bson:"volume_adjustment_percent"`
}

// ScenarioDefinition is a named, weighted perturbation of a projection.
type ScenarioDefinition struct {
	Name               string              `json:"name" bson:"name"`
	ProbabilityPercent float64             `json:"probabilityPercent" bson:"probability_percent"`
	Adjustments        ScenarioAdjustments `json:"adjustments" bson:"adjustments"`
}

// ProjectionInput is the full parameter bundle of an investment projection.
type ProjectionInput struct {
	BaseInvestment   float64              `json:"baseInvestment" bson:"base_investment"`
	ProjectionMonths int                  `json:"projectionMonths" bson:"projection_months"`
	MarketVariables  MarketVariables      `json:"marketVariables" bson:"market_variables"`
	CostStructure    CostStructure        `json:"costStructure" bson:"cost_structure"`
	RiskFactors      RiskFactors          `json:"riskFactors" bson:"risk_factors"`
	Scenarios        []ScenarioDefinition `json:"scenarios" bson:"scenarios"`
}

// MonthlyCashFlow is one month of the projection cash-flow model.
type MonthlyCashFlow struct {
	Month              int     `json:"month" bson:"month"`
	Revenue            float64 `json:"revenue" bson:"revenue"`
	Costs              float64 `json:"costs" bson:"costs"`
	NetIncome          float64 `json:"netIncome" bson:"net_income"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow" bson:"cumulative_cash_flow"`
	ROI                float64 `json:"roi" bson:"roi"`
}

// BaseResults is the outcome of one run of the cash-flow model.
type BaseResults struct {
	MonthlyData          []MonthlyCashFlow `json:"monthlyData" bson:"monthly_data"`
	TotalRevenue         float64           `json:"totalRevenue" bson:"total_revenue"`
	TotalCosts           float64           `json:"totalCosts" bson:"total_costs"`
	NetProfit            float64           `json:"netProfit" bson:"net_profit"`
	ROI                  float64           `json:"roi" bson:"roi"`
	PaybackPeriod        int               `json:"paybackPeriod" bson:"payback_period"`
	IRR                  float64           `json:"irr" bson:"irr"`
	Cycles               int               `json:"cycles" bson:"cycles"`
	AverageMonthlyReturn float64           `json:"averageMonthlyReturn" bson:"average_monthly_return"`
}

// RiskAdjustedResults are base results scaled down by the total risk score.
type RiskAdjustedResults struct {
	BaseResults     `bson:",inline"`
	RiskAdjustment  float64 `json:"riskAdjustment" bson:"risk_adjustment"`
	ConfidenceLevel float64 `json:"confidenceLevel" bson:"confidence_level"`
}

// ScenarioResult pairs a scenario definition with its computed results.
type ScenarioResult struct {
	Name        string      `json:"name" bson:"name"`
	Probability float64     `json:"probability" bson:"probability"`
	Results     BaseResults `json:"results" bson:"results"`
}

// WeightedResults are probability-weighted averages across scenarios.
type WeightedResults struct {
	TotalRevenue        float64 `json:"totalRevenue" bson:"total_revenue"`
	TotalCosts          float64 `json:"totalCosts" bson:"total_costs"`
	NetProfit           float64 `json:"netProfit" bson:"net_profit"`
	ROI                 float64 `json:"roi" bson:"roi"`
	PaybackPeriod       float64 `json:"paybackPeriod" bson:"payback_period"`
	IRR                 float64 `json:"irr" bson:"irr"`
	TotalProbability    float64 `json:"totalProbability" bson:"total_probability"`
	ProbabilityMismatch bool    `json:"probabilityMismatch" bson:"probability_mismatch"`
}

// Recommendation is the investment verdict derived from ROI.
type Recommendation string

const (
	HighlyRecommended Recommendation = "highlyRecommended"
	Recommended       Recommendation = "recommended"
	Acceptable        Recommendation = "acceptable"
	Marginal          Recommendation = "marginal"
	NotRecommended    Recommendation = "notRecommended"
)

// ProjectionRiskLevel grades the size of the risk adjustment.
type ProjectionRiskLevel string

const (
	ProjectionRiskLow      ProjectionRiskLevel = "low"
	ProjectionRiskModerate ProjectionRiskLevel = "moderate"
	ProjectionRiskHigh     ProjectionRiskLevel = "high"
	ProjectionRiskVeryHigh ProjectionRiskLevel = "veryHigh"
)

// Profitability grades base ROI.
type Profitability string

const (
	ProfitabilityExcellent Profitability = "excellent"
	ProfitabilityVeryGood  Profitability = "veryGood"
	ProfitabilityGood      Profitability = "good"
	ProfitabilityModerate  Profitability = "moderate"
	ProfitabilityLow       Profitability = "low"
	ProfitabilityNegative  Profitability = "negative"
)

// KeyMetrics are the headline figures of a projection.
type KeyMetrics struct {
	ExpectedROI     float64 `json:"expectedROI" bson:"expected_roi"`
	PaybackMonths   int     `json:"paybackMonths" bson:"payback_months"`
	NetProfit       float64 `json:"netProfit" bson:"net_profit"`
	ConfidenceLevel float64 `json:"confidenceLevel" bson:"confidence_level"`
}

// ScenarioAnalysis summarises the weighted scenario view.
type ScenarioAnalysis struct {
	WeightedROI    float64        `json:"weightedROI" bson:"weighted_roi"`
	WeightedProfit float64        `json:"weightedProfit" bson:"weighted_profit"`
	Recommendation Recommendation `json:"recommendation" bson:"recommendation"`
}

// ProjectionSummary carries the verdicts of a projection.
type ProjectionSummary struct {
	Recommendation   Recommendation      `json:"recommendation" bson:"recommendation"`
	RiskLevel        ProjectionRiskLevel `json:"riskLevel" bson:"risk_level"`
	Profitability    Profitability       `json:"profitability" bson:"profitability"`
	KeyMetrics       KeyMetrics          `json:"keyMetrics" bson:"key_metrics"`
	ScenarioAnalysis *ScenarioAnalysis   `json:"scenarioAnalysis,omitempty" bson:"scenario_analysis,omitempty"`
}

// ProjectionResult is the complete output of a projection.
type ProjectionResult struct {
	BaseResults         BaseResults         `json:"baseResults" bson:"base_results"`
	RiskAdjustedResults RiskAdjustedResults `json:"riskAdjustedResults" bson:"risk_adjusted_results"`
	ScenarioResults     []ScenarioResult    `json:"scenarioResults" bson:"scenario_results"`
	WeightedResults     *WeightedResults    `json:"weightedResults,omitempty" bson:"weighted_results,omitempty"`
	Summary             ProjectionSummary   `json:"summary" bson:"summary"`
}

// MonteCarloStats describe the simulated ROI distribution. Probabilities are percentages.
type MonteCarloStats struct {
	Iterations          int        `json:"iterations" bson:"iterations"`
	Mean                float64    `json:"mean" bson:"mean"`
	Median              float64    `json:"median" bson:"median"`
	StdDev              float64    `json:"stdDev" bson:"std_dev"`
	Percentile5         float64    `json:"percentile5" bson:"percentile5"`
	Percentile95        float64    `json:"percentile95" bson:"percentile95"`
	ConfidenceInterval  [2]float64 `json:"confidenceInterval" bson:"confidence_interval"`
	ProbabilityPositive float64    `json:"probabilityPositive" bson:"probability_positive"`
	ProbabilityAbove10  float64    `json:"probabilityAbove10" bson:"probability_above10"`
	ProbabilityAbove20  float64    `json:"probabilityAbove20" bson:"probability_above20"`
}
