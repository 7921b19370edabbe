package models

// RiskLevel is the investor-facing risk appetite used by the investment calculator.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// InvestmentScenario is one row of the investment scenario table.
type InvestmentScenario struct {
	Name          string  `json:"name"`
	ROIMultiplier float64 `json:"roiMultiplier"`
	Probability   float64 `json:"probability"`
	Description   string  `json:"description"`
}

// InvestmentInput are the investment calculator inputs.
type InvestmentInput struct {
	InvestmentAmount   float64   `json:"investmentAmount"`
	ExpectedROIPercent float64   `json:"expectedROIPercent"`
	PeriodMonths       int       `json:"periodMonths"`
	RiskLevel          RiskLevel `json:"riskLevel"`
}

// ScenarioOutcome is the result of one investment scenario.
type ScenarioOutcome struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	ROIMultiplier      float64 `json:"roiMultiplier"`
	Probability        float64 `json:"probability"`
	AdjustedROIPercent float64 `json:"adjustedROIPercent"`
	FinalAmount        float64 `json:"finalAmount"`
	Profit             float64 `json:"profit"`
	MonthlyReturn      float64 `json:"monthlyReturn"`
}

// ExpectedValueSummary is the probability-weighted view over all scenarios.
type ExpectedValueSummary struct {
	ExpectedValue        float64           `json:"expectedValue"`
	ExpectedProfit       float64           `json:"expectedProfit"`
	ExpectedROIPercent   float64           `json:"expectedROIPercent"`
	BreakEvenProbability float64           `json:"breakEvenProbability"`
	Scenarios            []ScenarioOutcome `json:"scenarios"`
}
