package seeding

import (
	"fmt"
	"math"

	"github.com/mamadbah2/abanico/internal/calc"
	"github.com/mamadbah2/abanico/internal/domain/models"
)

// DefaultShellsPerBundle is the number of shells in one bundle (manojo).
const DefaultShellsPerBundle = 96

const (
	highDensityPerM2 = 15
	lowDensityPerM2  = 8
)

// maxTotalShells keeps shell counts exact as float64 (2^53).
const maxTotalShells int64 = 1 << 53

// Calculate computes shell counts, densities and costs for a seeding.
// When origin carries a positive monthly mortality it replaces the expected mortality in params.
func Calculate(params models.SeedingParameters, origin *models.SeedOrigin) (models.SeedingResult, error) {
	if params.ShellsPerBundle == 0 {
		params.ShellsPerBundle = DefaultShellsPerBundle
	}
	if err := validate(params); err != nil {
		return models.SeedingResult{}, err
	}

	mortality := params.ExpectedMortalityPercent
	var quality models.SeedQuality
	if origin != nil {
		quality = origin.Quality
		if origin.MonthlyMortalityRatePercent > 0 {
			mortality = origin.MonthlyMortalityRatePercent
		}
	}
	mortality = math.Min(math.Max(mortality, 0), 100)

	totalShells := params.NumberOfBundles * params.ShellsPerBundle
	bundleCost := float64(params.NumberOfBundles) * params.PricePerBundle
	totalInitialCost := bundleCost + params.AdditionalCosts
	survivingShells := SurvivingShells(totalShells, mortality)

	costPerShell, err := calc.Divide(totalInitialCost, float64(totalShells), "cost per shell")
	if err != nil {
		return models.SeedingResult{}, err
	}
	costPerSurvivingShell, err := calc.Divide(totalInitialCost, float64(survivingShells), "cost per surviving shell")
	if err != nil {
		return models.SeedingResult{}, err
	}

	density := float64(totalShells) / params.SectorAreaM2
	status, recommendation := ClassifyDensity(density)

	return models.SeedingResult{
		TotalShells:           totalShells,
		SurvivingShells:       survivingShells,
		ShellsLost:            totalShells - survivingShells,
		BundleCost:            bundleCost,
		TotalInitialCost:      totalInitialCost,
		AdjustedMortality:     mortality,
		DensityPerM2:          density,
		SurvivingDensityPerM2: float64(survivingShells) / params.SectorAreaM2,
		CostPerShell:          costPerShell,
		CostPerSurvivingShell: costPerSurvivingShell,
		DensityStatus:         status,
		Recommendation:        recommendation,
		OriginQuality:         quality,
	}, nil
}

// SurvivingShells applies a mortality percentage to a shell count, rounding to the nearest shell.
func SurvivingShells(totalShells int, mortalityPercent float64) int {
	return int(math.Round(float64(totalShells) * (1 - mortalityPercent/100)))
}

// ClassifyDensity grades a planting density in shells per m². Display heuristic only.
func ClassifyDensity(densityPerM2 float64) (models.DensityStatus, string) {
	switch {
	case densityPerM2 > highDensityPerM2:
		return models.DensityHigh, "reduce density"
	case densityPerM2 < lowDensityPerM2:
		return models.DensityLow, "increase density"
	default:
		return models.DensityOptimal, "keep density"
	}
}

func validate(p models.SeedingParameters) error {
	switch {
	case p.NumberOfBundles < 1:
		return models.NewValidationError("numberOfBundles", "must be at least 1")
	case p.ShellsPerBundle < 0:
		return models.NewValidationError("shellsPerBundle", "must not be negative")
	case p.ShellsPerBundle > 0 && int64(p.NumberOfBundles) > maxTotalShells/int64(p.ShellsPerBundle):
		return models.NewValidationError("numberOfBundles", fmt.Sprintf("total shells must not exceed %d", maxTotalShells))
	case p.PricePerBundle < 0:
		return models.NewValidationError("pricePerBundle", "must not be negative")
	case p.ExpectedMortalityPercent < 0 || p.ExpectedMortalityPercent > 100:
		return models.NewValidationError("expectedMortalityPercent", "must be between 0 and 100")
	case p.SectorAreaM2 <= 0:
		return models.NewValidationError("sectorAreaM2", "must be greater than 0")
	case p.AdditionalCosts < 0:
		return models.NewValidationError("additionalCosts", "must not be negative")
	}
	return nil
}
