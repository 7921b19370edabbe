package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/domain/units"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(DefaultScenarios(), units.Default(), nil)
	require.NoError(t, err)
	return svc
}

func baseInput() models.IntegratedInput {
	return models.IntegratedInput{
		NumberOfBundles:          50,
		NumberOfLines:            4,
		Cost:                     1250,
		AdditionalCosts:          500,
		HarvestMonths:            6,
		InitialSizeMm:            15,
		ExpectedMonthlyMortality: 2,
		OperatingCosts:           map[string]float64{"labor": 200, "fuel": 100},
		CustomCosts:              []models.CostItem{{Name: "permits", Amount: 50}},
		Presentations: []models.Presentation{
			{
				Name: "fresh",
				Measures: []models.PresentationMeasure{
					{Name: "standard", PricePerKg: 20, WeightKg: 260},
					{Name: "large", PricePerKg: 30, WeightKg: 26},
				},
			},
		},
	}
}

func TestAnalyze(t *testing.T) {
	res, err := newTestService(t).Analyze(baseInput(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, res.SectorAreaM2)
	assert.InDelta(t, 12.0, res.CumulativeMortality, 1e-9)
	assert.Equal(t, 4800, res.Seeding.TotalShells)
	assert.Equal(t, 4224, res.Seeding.SurvivingShells)
	assert.InDelta(t, 1750.0, res.Seeding.TotalInitialCost, 1e-9)

	assert.InDelta(t, 286.0, res.Totals.TotalWeightKg, 1e-9)
	assert.InDelta(t, 5980.0, res.GrossRevenue, 1e-9)
	assert.InDelta(t, 110.0, res.Totals.TotalMallas, 1e-9)
	assert.InDelta(t, 31680.0, res.Totals.TotalShells, 1e-6)
	assert.InDelta(t, 330.0, res.Totals.TotalBundles, 1e-6)

	assert.InDelta(t, 850.0, res.OperatingCosts, 1e-9)
	assert.InDelta(t, 5130.0, res.NetRevenue, 1e-9)
	assert.InDelta(t, 3380.0, res.NetProfit, 1e-9)
	assert.InDelta(t, 3380.0/1750*100, res.ROI, 1e-9)

	assert.InDelta(t, 33.0, res.FinalSizeMm, 1e-9)
	assert.InDelta(t, math.Pow(3.3, 2.3)*2.5, res.FinalWeightGrams, 1e-9)
	require.Len(t, res.Trajectory, 6)

	assert.InDelta(t, 5980.0/286, res.AveragePricePerKg, 1e-9)
	assert.InDelta(t, 1750.0/286, res.CostPerKg, 1e-9)
	assert.InDelta(t, 5980.0/4224, res.RevenuePerShell, 1e-9)
	assert.InDelta(t, 3.38, res.ProfitPerM2, 1e-9)

	assert.Equal(t, models.DensityLow, res.Density.InitialStatus)
	assert.Equal(t, models.DensityLow, res.Density.FinalStatus)

	assert.InDelta(t, 4224.0, res.Comparison.TheoreticalShells, 1e-9)
	assert.InDelta(t, 44.0, res.Comparison.TheoreticalBundles, 1e-9)
	assert.InDelta(t, 44.0/3, res.Comparison.TheoreticalMallas, 1e-9)
	assert.InDelta(t, 110.0, res.Comparison.RecordedMallas, 1e-9)
}

func TestAnalyze_RevenueScenariosHoldCostsConstant(t *testing.T) {
	res, err := newTestService(t).Analyze(baseInput(), nil)
	require.NoError(t, err)
	require.Len(t, res.Scenarios, 3)

	conservative, expected, optimistic := res.Scenarios[0], res.Scenarios[1], res.Scenarios[2]
	assert.InDelta(t, 4532.0, conservative.NetRevenue, 1e-9)
	assert.InDelta(t, 2782.0, conservative.Profit, 1e-9)
	assert.InDelta(t, res.NetProfit, expected.Profit, 1e-9)
	assert.InDelta(t, res.ROI, expected.ROI, 1e-9)
	assert.InDelta(t, 6027.0, optimistic.NetRevenue, 1e-9)
	assert.InDelta(t, 4277.0, optimistic.Profit, 1e-9)
}

func TestAnalyze_WithOrigin(t *testing.T) {
	origin := &models.SeedOrigin{Code: "samanco", PricePerUnit: 0.16, MonthlyMortalityRatePercent: 1.5, MonthlyGrowthRateMm: 3.5}

	res, err := newTestService(t).Analyze(baseInput(), origin)
	require.NoError(t, err)

	assert.InDelta(t, 768.0, res.Seeding.BundleCost, 1e-6)
	assert.InDelta(t, 1268.0, res.Seeding.TotalInitialCost, 1e-6)
	assert.InDelta(t, 9.0, res.CumulativeMortality, 1e-9)
	assert.Equal(t, 4368, res.Seeding.SurvivingShells)
	assert.InDelta(t, 36.0, res.FinalSizeMm, 1e-9)
}

func TestAnalyze_OriginWithoutMortalityKeepsInputRate(t *testing.T) {
	origin := &models.SeedOrigin{Code: "samanco", PricePerUnit: 0.16, MonthlyGrowthRateMm: 3.5}

	res, err := newTestService(t).Analyze(baseInput(), origin)
	require.NoError(t, err)

	assert.InDelta(t, 12.0, res.CumulativeMortality, 1e-9)
	assert.Equal(t, 4224, res.Seeding.SurvivingShells)
}

func TestAnalyze_InitialQuantityOverridesBundles(t *testing.T) {
	in := baseInput()
	in.InitialQuantity = 6000

	res, err := newTestService(t).Analyze(in, nil)
	require.NoError(t, err)

	assert.Equal(t, 6000, res.Seeding.TotalShells)
	assert.InDelta(t, 1250.0, res.Seeding.BundleCost, 1e-9)
	assert.InDelta(t, 6.0, res.Seeding.DensityPerM2, 1e-9)
}

func TestAnalyze_NoRecordedWeight(t *testing.T) {
	in := baseInput()
	in.Presentations = nil

	_, err := newTestService(t).Analyze(in, nil)
	assert.ErrorIs(t, err, models.ErrInsufficientData)
}

func TestAnalyze_TotalMortality(t *testing.T) {
	in := baseInput()
	in.ExpectedMonthlyMortality = 20

	_, err := newTestService(t).Analyze(in, nil)
	assert.ErrorIs(t, err, models.ErrDivisionByZero)
}

func TestAnalyze_Validation(t *testing.T) {
	svc := newTestService(t)

	in := baseInput()
	in.NumberOfLines = 0
	_, err := svc.Analyze(in, nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	in = baseInput()
	in.OperatingCosts["labor"] = -1
	_, err = svc.Analyze(in, nil)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestNewService_RejectsBadTables(t *testing.T) {
	_, err := NewService(nil, units.Default(), nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = NewService([]models.RevenueScenario{{Name: "free", PriceMultiplier: 0}}, units.Default(), nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = NewService(DefaultScenarios(), units.Conversions{}, nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	fractional := units.Default()
	fractional.ShellsPerBundle = 95.7
	_, err = NewService(DefaultScenarios(), fractional, nil)
	assert.ErrorIs(t, err, models.ErrValidation)
}
