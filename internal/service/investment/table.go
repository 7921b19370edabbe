package investment

import (
	"fmt"
	"math"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

const probabilityTolerance = 0.01

// DefaultScenarioTable is the stock pessimistic/conservative/moderate/optimistic table.
func DefaultScenarioTable() []models.InvestmentScenario {
	return []models.InvestmentScenario{
		{Name: "pessimistic", ROIMultiplier: -0.5, Probability: 15, Description: "losses from mortality or environmental problems"},
		{Name: "conservative", ROIMultiplier: 0.6, Probability: 25, Description: "below-average return"},
		{Name: "moderate", ROIMultiplier: 1.0, Probability: 40, Description: "average market return"},
		{Name: "optimistic", ROIMultiplier: 1.4, Probability: 20, Description: "above-average return"},
	}
}

// DefaultRiskFactors maps investor risk levels to ROI multipliers.
func DefaultRiskFactors() map[models.RiskLevel]float64 {
	return map[models.RiskLevel]float64{
		models.RiskLow:      0.7,
		models.RiskModerate: 1.0,
		models.RiskHigh:     1.3,
	}
}

// ValidateTable checks that a scenario table is usable and its probabilities sum to 100.
func ValidateTable(table []models.InvestmentScenario) error {
	if len(table) == 0 {
		return models.NewValidationError("scenario table", "must contain at least one scenario")
	}

	var total float64
	seen := make(map[string]struct{}, len(table))
	for _, sc := range table {
		if sc.Name == "" {
			return models.NewValidationError("scenario table", "scenario name must not be empty")
		}
		if _, dup := seen[sc.Name]; dup {
			return models.NewValidationError("scenario table", fmt.Sprintf("duplicate scenario %q", sc.Name))
		}
		seen[sc.Name] = struct{}{}
		if sc.Probability < 0 {
			return models.NewValidationError("scenario table", fmt.Sprintf("scenario %q has negative probability", sc.Name))
		}
		total += sc.Probability
	}

	if math.Abs(total-100) > probabilityTolerance {
		return models.NewValidationError("scenario table", fmt.Sprintf("probabilities sum to %.2f, expected 100", total))
	}
	return nil
}
