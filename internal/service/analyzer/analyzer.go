package analyzer

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/calc"
	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/domain/units"
	"github.com/mamadbah2/abanico/internal/service/growth"
	"github.com/mamadbah2/abanico/internal/service/seeding"
)

const (
	lineLengthM  = 100.0
	lineSpacingM = 2.5

	defaultGrowthMmPerMonth = 3.0
	defaultHarvestMonths    = 6

	highFinalDensityPerM2 = 12
	lowFinalDensityPerM2  = 6
)

// DefaultScenarios are the conservative, expected and optimistic price multipliers.
func DefaultScenarios() []models.RevenueScenario {
	return []models.RevenueScenario{
		{Name: "conservative", PriceMultiplier: 0.9},
		{Name: "expected", PriceMultiplier: 1.0},
		{Name: "optimistic", PriceMultiplier: 1.15},
	}
}

// Service chains the seeding, growth and revenue calculators over one production cycle.
type Service struct {
	scenarios   []models.RevenueScenario
	conversions units.Conversions
	logger      *zap.Logger
}

// NewService builds an analyzer over the given revenue scenarios and unit ratios.
func NewService(scenarios []models.RevenueScenario, conversions units.Conversions, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(scenarios) == 0 {
		return nil, models.NewValidationError("scenarios", "must contain at least one multiplier")
	}
	for _, sc := range scenarios {
		if sc.PriceMultiplier <= 0 {
			return nil, models.NewValidationError("scenarios", fmt.Sprintf("multiplier of %q must be positive", sc.Name))
		}
	}
	if !conversions.Valid() {
		return nil, models.NewValidationError("conversions", "every ratio must be positive and shells per bundle whole")
	}

	return &Service{
		scenarios:   append([]models.RevenueScenario(nil), scenarios...),
		conversions: conversions,
		logger:      logger,
	}, nil
}

// Analyze runs the full chain. When origin is not nil its price, growth and
// mortality rates replace the ones in the input.
func (s *Service) Analyze(in models.IntegratedInput, origin *models.SeedOrigin) (models.IntegratedAnalysis, error) {
	if err := validate(in); err != nil {
		return models.IntegratedAnalysis{}, err
	}
	if in.HarvestMonths == 0 {
		in.HarvestMonths = defaultHarvestMonths
	}
	if in.InitialSizeMm == 0 {
		in.InitialSizeMm = growth.DefaultInitialSizeMm
	}

	totals := s.presentationTotals(in.Presentations)
	if totals.TotalWeightKg <= 0 {
		return models.IntegratedAnalysis{}, models.NewInsufficientDataError("recorded presentation weight")
	}

	area := float64(in.NumberOfLines) * lineLengthM * lineSpacingM
	shellsPerBundle := int(s.conversions.ShellsPerBundle)

	bundleCost := in.Cost
	monthlyMortality := in.ExpectedMonthlyMortality
	growthRate := defaultGrowthMmPerMonth
	if origin != nil {
		bundleCost = float64(in.NumberOfBundles) * origin.PricePerUnit * float64(shellsPerBundle)
		if origin.MonthlyMortalityRatePercent > 0 {
			monthlyMortality = origin.MonthlyMortalityRatePercent
		}
		if origin.MonthlyGrowthRateMm > 0 {
			growthRate = origin.MonthlyGrowthRateMm
		}
	}
	cumulativeMortality := math.Min(monthlyMortality*float64(in.HarvestMonths), 100)

	params := models.SeedingParameters{
		NumberOfBundles:          in.NumberOfBundles,
		PricePerBundle:           bundleCost / float64(in.NumberOfBundles),
		ShellsPerBundle:          shellsPerBundle,
		ExpectedMortalityPercent: cumulativeMortality,
		SectorAreaM2:             area,
		AdditionalCosts:          in.AdditionalCosts,
	}
	if in.InitialQuantity > 0 {
		// A counted quantity replaces the bundle estimate; treat it as one lot.
		params.NumberOfBundles = 1
		params.ShellsPerBundle = in.InitialQuantity
		params.PricePerBundle = bundleCost
	}

	seeded, err := seeding.Calculate(params, nil)
	if err != nil {
		return models.IntegratedAnalysis{}, fmt.Errorf("seeding step: %w", err)
	}

	trajectory, finalSize, err := growth.ProjectTrajectory(in.InitialSizeMm, growthRate, in.HarvestMonths)
	if err != nil {
		return models.IntegratedAnalysis{}, fmt.Errorf("growth step: %w", err)
	}

	operating := operatingCosts(in)
	investment := seeded.TotalInitialCost
	netRevenue := totals.TotalRevenue - operating
	netProfit := netRevenue - investment

	roi, err := calc.Percent(netProfit, investment, "roi")
	if err != nil {
		return models.IntegratedAnalysis{}, err
	}

	scenarios := make([]models.RevenueScenarioResult, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		net := totals.TotalRevenue*sc.PriceMultiplier - operating
		profit := net - investment
		scenarios = append(scenarios, models.RevenueScenarioResult{
			Name:            sc.Name,
			PriceMultiplier: sc.PriceMultiplier,
			NetRevenue:      net,
			Profit:          profit,
			ROI:             profit / investment * 100,
		})
	}

	revenuePerShell, err := calc.Divide(totals.TotalRevenue, float64(seeded.SurvivingShells), "revenue per shell")
	if err != nil {
		return models.IntegratedAnalysis{}, err
	}

	analysis := models.IntegratedAnalysis{
		Seeding:             seeded,
		SectorAreaM2:        area,
		CumulativeMortality: cumulativeMortality,
		Trajectory:          trajectory,
		FinalSizeMm:         finalSize,
		FinalWeightGrams:    growth.EstimateWeightFromSize(finalSize),
		Totals:              totals,
		GrossRevenue:        totals.TotalRevenue,
		OperatingCosts:      operating,
		NetRevenue:          netRevenue,
		NetProfit:           netProfit,
		ROI:                 roi,
		AveragePricePerKg:   totals.TotalRevenue / totals.TotalWeightKg,
		CostPerKg:           investment / totals.TotalWeightKg,
		RevenuePerShell:     revenuePerShell,
		ProfitPerM2:         netProfit / area,
		Scenarios:           scenarios,
		Density: models.DensityAnalysis{
			InitialStatus:  seeded.DensityStatus,
			FinalStatus:    classifyFinalDensity(seeded.SurvivingDensityPerM2),
			Recommendation: seeded.Recommendation,
		},
		Comparison: s.compare(seeded.SurvivingShells, totals),
	}

	s.logger.Debug("integrated analysis completed",
		zap.Int("lines", in.NumberOfLines),
		zap.Int("harvest_months", in.HarvestMonths),
		zap.Float64("total_weight_kg", totals.TotalWeightKg),
		zap.Float64("roi", roi))

	return analysis, nil
}

func (s *Service) presentationTotals(presentations []models.Presentation) models.PresentationTotals {
	var weight, revenue float64
	for _, p := range presentations {
		for _, m := range p.Measures {
			weight += m.WeightKg
			revenue += m.WeightKg * m.PricePerKg
		}
	}

	b := s.conversions.FromKg(weight)
	return models.PresentationTotals{
		TotalWeightKg: weight,
		TotalRevenue:  revenue,
		TotalShells:   b.Shells,
		TotalMallas:   b.Mallas,
		TotalBundles:  b.Bundles,
	}
}

func (s *Service) compare(survivingShells int, totals models.PresentationTotals) models.HarvestComparison {
	theoretical := s.conversions.FromShells(float64(survivingShells))
	theoreticalMallas := theoretical.Bundles / s.conversions.BundlesPerMalla

	diff := calc.DivideOr(totals.TotalShells-theoretical.Shells, theoretical.Shells, 0)

	return models.HarvestComparison{
		TheoreticalShells:  theoretical.Shells,
		RecordedShells:     totals.TotalShells,
		TheoreticalBundles: theoretical.Bundles,
		RecordedBundles:    totals.TotalBundles,
		TheoreticalMallas:  theoreticalMallas,
		RecordedMallas:     totals.TotalMallas,
		ShellsDiffPercent:  diff * 100,
	}
}

func operatingCosts(in models.IntegratedInput) float64 {
	total := in.AdditionalCosts
	for _, amount := range in.OperatingCosts {
		total += amount
	}
	for _, c := range in.CustomCosts {
		total += c.Amount
	}
	return total
}

func classifyFinalDensity(densityPerM2 float64) models.DensityStatus {
	switch {
	case densityPerM2 > highFinalDensityPerM2:
		return models.DensityHigh
	case densityPerM2 < lowFinalDensityPerM2:
		return models.DensityLow
	default:
		return models.DensityOptimal
	}
}

func validate(in models.IntegratedInput) error {
	switch {
	case in.NumberOfBundles < 1:
		return models.NewValidationError("numberOfBundles", "must be at least 1")
	case in.NumberOfLines < 1:
		return models.NewValidationError("numberOfLines", "must be at least 1")
	case in.InitialQuantity < 0:
		return models.NewValidationError("initialQuantity", "must not be negative")
	case in.Cost < 0:
		return models.NewValidationError("cost", "must not be negative")
	case in.AdditionalCosts < 0:
		return models.NewValidationError("additionalCosts", "must not be negative")
	case in.HarvestMonths < 0:
		return models.NewValidationError("harvestMonths", "must not be negative")
	case in.InitialSizeMm < 0:
		return models.NewValidationError("initialSizeMm", "must not be negative")
	case in.ExpectedMonthlyMortality < 0 || in.ExpectedMonthlyMortality > 100:
		return models.NewValidationError("expectedMonthlyMortality", "must be between 0 and 100")
	}

	for name, amount := range in.OperatingCosts {
		if amount < 0 {
			return models.NewValidationError("operatingCosts."+name, "must not be negative")
		}
	}
	for _, c := range in.CustomCosts {
		if c.Amount < 0 {
			return models.NewValidationError("customCosts."+c.Name, "must not be negative")
		}
	}
	for _, p := range in.Presentations {
		for _, m := range p.Measures {
			if m.WeightKg < 0 || m.PricePerKg < 0 {
				return models.NewValidationError("presentations."+p.Name+"."+m.Name, "weight and price must not be negative")
			}
		}
	}
	return nil
}
