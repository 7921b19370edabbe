package projection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

const (
	maxRiskScore = 30

	// MaxProjectionMonths bounds the horizon of one projection (50 years).
	MaxProjectionMonths = 600
)

// Engine computes investment projections.
type Engine struct {
	thresholds Thresholds
	jitter     Jitter
	logger     *zap.Logger
}

// NewEngine builds a projection engine with the given classification bands.
func NewEngine(thresholds Thresholds, jitter Jitter, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		thresholds: thresholds.normalized(),
		jitter:     jitter,
		logger:     logger,
	}
}

// NewDefaultEngine builds an engine over the stock bands and jitter.
func NewDefaultEngine(logger *zap.Logger) *Engine {
	return NewEngine(DefaultThresholds(), DefaultJitter(), logger)
}

// Thresholds exposes the bands the engine classifies with.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// StandardScenarios returns the optimistic / realistic / pessimistic set.
func StandardScenarios() []models.ScenarioDefinition {
	return []models.ScenarioDefinition{
		{
			Name:               "optimistic",
			ProbabilityPercent: 25,
			Adjustments: models.ScenarioAdjustments{
				PriceAdjustmentPercent:     15,
				MortalityAdjustmentPercent: -20,
				CostAdjustmentPercent:      -10,
				VolumeAdjustmentPercent:    10,
			},
		},
		{Name: "realistic", ProbabilityPercent: 50},
		{
			Name:               "pessimistic",
			ProbabilityPercent: 25,
			Adjustments: models.ScenarioAdjustments{
				PriceAdjustmentPercent:     -15,
				MortalityAdjustmentPercent: 30,
				CostAdjustmentPercent:      15,
				VolumeAdjustmentPercent:    -10,
			},
		},
	}
}

// Calculate runs the base case, the risk adjustment and every scenario.
func (e *Engine) Calculate(in models.ProjectionInput) (models.ProjectionResult, error) {
	if err := Validate(in); err != nil {
		return models.ProjectionResult{}, err
	}

	base := runCashFlow(in.BaseInvestment, in.ProjectionMonths, in.MarketVariables, in.CostStructure)
	riskAdjusted := applyRisk(base, in.RiskFactors)

	scenarios := make([]models.ScenarioResult, 0, len(in.Scenarios))
	for _, sc := range in.Scenarios {
		market, costs := adjust(in.MarketVariables, in.CostStructure, sc.Adjustments)
		scenarios = append(scenarios, models.ScenarioResult{
			Name:        sc.Name,
			Probability: sc.ProbabilityPercent,
			Results:     runCashFlow(in.BaseInvestment, in.ProjectionMonths, market, costs),
		})
	}
	weightedResults := weighted(scenarios)

	if weightedResults != nil && weightedResults.ProbabilityMismatch {
		e.logger.Warn("scenario probabilities do not sum to 100, results normalised",
			zap.Float64("total_probability", weightedResults.TotalProbability))
	}

	result := models.ProjectionResult{
		BaseResults:         base,
		RiskAdjustedResults: riskAdjusted,
		ScenarioResults:     scenarios,
		WeightedResults:     weightedResults,
		Summary:             e.summarize(base, riskAdjusted, weightedResults),
	}

	e.logger.Debug("projection calculated",
		zap.Float64("investment", in.BaseInvestment),
		zap.Int("months", in.ProjectionMonths),
		zap.Float64("roi", base.ROI),
		zap.String("recommendation", string(result.Summary.Recommendation)))

	return result, nil
}

func (e *Engine) summarize(base models.BaseResults, risk models.RiskAdjustedResults, w *models.WeightedResults) models.ProjectionSummary {
	summary := models.ProjectionSummary{
		Recommendation: e.thresholds.Recommend(risk.ROI),
		RiskLevel:      e.thresholds.RiskLevel(risk.RiskAdjustment),
		Profitability:  e.thresholds.Grade(base.ROI),
		KeyMetrics: models.KeyMetrics{
			ExpectedROI:     risk.ROI,
			PaybackMonths:   risk.PaybackPeriod,
			NetProfit:       risk.NetProfit,
			ConfidenceLevel: risk.ConfidenceLevel,
		},
	}
	if w != nil {
		summary.ScenarioAnalysis = &models.ScenarioAnalysis{
			WeightedROI:    w.ROI,
			WeightedProfit: w.NetProfit,
			Recommendation: e.thresholds.Recommend(w.ROI),
		}
	}
	return summary
}

// Validate rejects inputs the cash-flow model cannot evaluate.
func Validate(in models.ProjectionInput) error {
	switch {
	case in.BaseInvestment <= 0:
		return models.NewValidationError("baseInvestment", "must be greater than 0")
	case in.ProjectionMonths < 1 || in.ProjectionMonths > MaxProjectionMonths:
		return models.NewValidationError("projectionMonths", fmt.Sprintf("must be between 1 and %d", MaxProjectionMonths))
	case in.MarketVariables.CycleMonths < 1:
		return models.NewValidationError("marketVariables.cycleMonths", "must be at least 1")
	case in.CostStructure.SeedCostPerUnit <= 0:
		return models.NewValidationError("costStructure.seedCostPerUnit", "must be greater than 0")
	case in.MarketVariables.MortalityRate < 0 || in.MarketVariables.MortalityRate > 100:
		return models.NewValidationError("marketVariables.mortalityRate", "must be between 0 and 100")
	case in.MarketVariables.PricePerUnit < 0:
		return models.NewValidationError("marketVariables.pricePerUnit", "must not be negative")
	case in.MarketVariables.GrowthRate < 0:
		return models.NewValidationError("marketVariables.growthRate", "must not be negative")
	}

	c := in.CostStructure
	if c.MaintenanceCostMonthly < 0 || c.HarvestCostPerUnit < 0 || c.FixedCostsMonthly < 0 {
		return models.NewValidationError("costStructure", "costs must not be negative")
	}

	r := in.RiskFactors
	for _, f := range []struct {
		name  string
		score float64
	}{
		{"climaticRisk", r.ClimaticRisk},
		{"marketRisk", r.MarketRisk},
		{"operationalRisk", r.OperationalRisk},
		{"financialRisk", r.FinancialRisk},
	} {
		if f.score < 0 || f.score > maxRiskScore {
			return models.NewValidationError("riskFactors."+f.name, fmt.Sprintf("must be between 0 and %d", maxRiskScore))
		}
	}

	for i, sc := range in.Scenarios {
		field := fmt.Sprintf("scenarios[%d]", i)
		if sc.ProbabilityPercent < 0 {
			return models.NewValidationError(field+".probabilityPercent", "must not be negative")
		}
		if sc.Adjustments.PriceAdjustmentPercent < -100 {
			return models.NewValidationError(field+".adjustments.priceAdjustmentPercent", "must not be below -100")
		}
		if sc.Adjustments.CostAdjustmentPercent <= -100 {
			return models.NewValidationError(field+".adjustments.costAdjustmentPercent", "must be greater than -100")
		}
	}
	return nil
}
