package investment

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

// DefaultPeriodMonths is the investment period used when none is given.
const DefaultPeriodMonths = 6

// Engine evaluates an investment against a fixed scenario table.
type Engine struct {
	table       []models.InvestmentScenario
	riskFactors map[models.RiskLevel]float64
	logger      *zap.Logger
}

// NewEngine validates the tables and builds an engine.
func NewEngine(table []models.InvestmentScenario, riskFactors map[models.RiskLevel]float64, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ValidateTable(table); err != nil {
		return nil, fmt.Errorf("investment scenario table: %w", err)
	}
	if len(riskFactors) == 0 {
		return nil, models.NewValidationError("risk factors", "must not be empty")
	}

	tableCopy := make([]models.InvestmentScenario, len(table))
	copy(tableCopy, table)
	factorsCopy := make(map[models.RiskLevel]float64, len(riskFactors))
	for k, v := range riskFactors {
		factorsCopy[k] = v
	}

	return &Engine{table: tableCopy, riskFactors: factorsCopy, logger: logger}, nil
}

// NewDefaultEngine builds an engine over the stock tables.
func NewDefaultEngine(logger *zap.Logger) *Engine {
	engine, err := NewEngine(DefaultScenarioTable(), DefaultRiskFactors(), logger)
	if err != nil {
		panic(err)
	}
	return engine
}

// Table returns a copy of the scenario table.
func (e *Engine) Table() []models.InvestmentScenario {
	out := make([]models.InvestmentScenario, len(e.table))
	copy(out, e.table)
	return out
}

// CalculateScenarios applies every scenario to the investment.
func (e *Engine) CalculateScenarios(in models.InvestmentInput) ([]models.ScenarioOutcome, error) {
	in, factor, err := e.prepare(in)
	if err != nil {
		return nil, err
	}

	baseROI := in.ExpectedROIPercent / 100
	outcomes := make([]models.ScenarioOutcome, 0, len(e.table))
	for _, sc := range e.table {
		adjusted := baseROI * sc.ROIMultiplier * factor
		final := in.InvestmentAmount * (1 + adjusted)
		profit := final - in.InvestmentAmount

		outcomes = append(outcomes, models.ScenarioOutcome{
			Name:               sc.Name,
			Description:        sc.Description,
			ROIMultiplier:      sc.ROIMultiplier,
			Probability:        sc.Probability,
			AdjustedROIPercent: adjusted * 100,
			FinalAmount:        final,
			Profit:             profit,
			MonthlyReturn:      profit / float64(in.PeriodMonths),
		})
	}
	return outcomes, nil
}

// CalculateExpectedValue weights every scenario's final amount by its probability.
func (e *Engine) CalculateExpectedValue(in models.InvestmentInput) (models.ExpectedValueSummary, error) {
	outcomes, err := e.CalculateScenarios(in)
	if err != nil {
		return models.ExpectedValueSummary{}, err
	}

	summary := ExpectedValue(outcomes, in.InvestmentAmount)

	e.logger.Debug("investment expected value computed",
		zap.Float64("investment", in.InvestmentAmount),
		zap.Float64("expected_value", summary.ExpectedValue),
		zap.Float64("break_even_probability", summary.BreakEvenProbability))

	return summary, nil
}

// ExpectedValue aggregates scenario outcomes. investmentAmount must be positive.
func ExpectedValue(outcomes []models.ScenarioOutcome, investmentAmount float64) models.ExpectedValueSummary {
	var expected, breakEven float64
	for _, o := range outcomes {
		expected += o.FinalAmount * o.Probability / 100
		if o.Profit >= 0 {
			breakEven += o.Probability
		}
	}

	profit := expected - investmentAmount
	var roi float64
	if investmentAmount != 0 {
		roi = profit / investmentAmount * 100
	}

	return models.ExpectedValueSummary{
		ExpectedValue:        expected,
		ExpectedProfit:       profit,
		ExpectedROIPercent:   roi,
		BreakEvenProbability: breakEven,
		Scenarios:            outcomes,
	}
}

func (e *Engine) prepare(in models.InvestmentInput) (models.InvestmentInput, float64, error) {
	if in.InvestmentAmount <= 0 {
		return in, 0, models.NewValidationError("investmentAmount", "must be greater than 0")
	}
	if in.PeriodMonths == 0 {
		in.PeriodMonths = DefaultPeriodMonths
	}
	if in.PeriodMonths < 0 {
		return in, 0, models.NewValidationError("periodMonths", "must be positive")
	}
	if in.RiskLevel == "" {
		in.RiskLevel = models.RiskModerate
	}

	factor, ok := e.riskFactors[in.RiskLevel]
	if !ok {
		return in, 0, models.NewValidationError("riskLevel", fmt.Sprintf("unknown risk level %q", in.RiskLevel))
	}
	return in, factor, nil
}
