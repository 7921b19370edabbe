package projection

import (
	"sort"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

// RecommendationBand assigns Verdict to any ROI at or above MinROI.
type RecommendationBand struct {
	MinROI  float64
	Verdict models.Recommendation
}

// RiskBand assigns Level to any risk adjustment at or below MaxAdjustment.
type RiskBand struct {
	MaxAdjustment float64
	Level         models.ProjectionRiskLevel
}

// ProfitabilityBand assigns Grade to any base ROI at or above MinROI.
type ProfitabilityBand struct {
	MinROI float64
	Grade  models.Profitability
}

// Thresholds classify projection results. Bands are searched in order; the
// fallback applies when no band matches.
type Thresholds struct {
	Recommendation         []RecommendationBand
	RecommendationFallback models.Recommendation
	Risk                   []RiskBand
	RiskFallback           models.ProjectionRiskLevel
	Profitability          []ProfitabilityBand
	ProfitabilityFallback  models.Profitability
}

// DefaultThresholds returns the stock classification bands.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Recommendation: []RecommendationBand{
			{MinROI: 25, Verdict: models.HighlyRecommended},
			{MinROI: 15, Verdict: models.Recommended},
			{MinROI: 8, Verdict: models.Acceptable},
			{MinROI: 0, Verdict: models.Marginal},
		},
		RecommendationFallback: models.NotRecommended,
		Risk: []RiskBand{
			{MaxAdjustment: 10, Level: models.ProjectionRiskLow},
			{MaxAdjustment: 20, Level: models.ProjectionRiskModerate},
			{MaxAdjustment: 30, Level: models.ProjectionRiskHigh},
		},
		RiskFallback: models.ProjectionRiskVeryHigh,
		Profitability: []ProfitabilityBand{
			{MinROI: 30, Grade: models.ProfitabilityExcellent},
			{MinROI: 20, Grade: models.ProfitabilityVeryGood},
			{MinROI: 10, Grade: models.ProfitabilityGood},
			{MinROI: 5, Grade: models.ProfitabilityModerate},
			{MinROI: 0, Grade: models.ProfitabilityLow},
		},
		ProfitabilityFallback: models.ProfitabilityNegative,
	}
}

// normalized returns a copy with every band list sorted so the first match wins.
func (t Thresholds) normalized() Thresholds {
	out := t
	out.Recommendation = append([]RecommendationBand(nil), t.Recommendation...)
	sort.SliceStable(out.Recommendation, func(i, j int) bool {
		return out.Recommendation[i].MinROI > out.Recommendation[j].MinROI
	})
	out.Risk = append([]RiskBand(nil), t.Risk...)
	sort.SliceStable(out.Risk, func(i, j int) bool {
		return out.Risk[i].MaxAdjustment < out.Risk[j].MaxAdjustment
	})
	out.Profitability = append([]ProfitabilityBand(nil), t.Profitability...)
	sort.SliceStable(out.Profitability, func(i, j int) bool {
		return out.Profitability[i].MinROI > out.Profitability[j].MinROI
	})
	return out
}

// Recommend maps an ROI percentage to a verdict.
func (t Thresholds) Recommend(roi float64) models.Recommendation {
	for _, band := range t.Recommendation {
		if roi >= band.MinROI {
			return band.Verdict
		}
	}
	return t.RecommendationFallback
}

// RiskLevel maps a risk adjustment percentage to a level.
func (t Thresholds) RiskLevel(adjustment float64) models.ProjectionRiskLevel {
	for _, band := range t.Risk {
		if adjustment <= band.MaxAdjustment {
			return band.Level
		}
	}
	return t.RiskFallback
}

// Grade maps a base ROI percentage to a profitability grade.
func (t Thresholds) Grade(roi float64) models.Profitability {
	for _, band := range t.Profitability {
		if roi >= band.MinROI {
			return band.Grade
		}
	}
	return t.ProfitabilityFallback
}
