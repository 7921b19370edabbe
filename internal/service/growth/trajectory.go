package growth

import (
	"math"

	"github.com/mamadbah2/abanico/internal/calc"
	"github.com/mamadbah2/abanico/internal/domain/models"
)

// ProjectTrajectory grows a shell linearly from initialSizeMm for the given months.
// It returns the monthly points and the unrounded final size.
func ProjectTrajectory(initialSizeMm, monthlyGrowthMm float64, months int) ([]models.TrajectoryPoint, float64, error) {
	if months < 0 {
		return nil, 0, models.NewValidationError("months", "must not be negative")
	}
	if initialSizeMm < 0 {
		return nil, 0, models.NewValidationError("initialSizeMm", "must not be negative")
	}

	size := initialSizeMm
	points := make([]models.TrajectoryPoint, 0, months)
	for month := 1; month <= months; month++ {
		size += monthlyGrowthMm
		points = append(points, models.TrajectoryPoint{
			Month:  month,
			Size:   calc.Round(size, 1),
			Growth: monthlyGrowthMm,
		})
	}
	return points, size, nil
}

// EstimateWeightFromSize approximates live weight in grams from shell size in millimetres.
func EstimateWeightFromSize(sizeMm float64) float64 {
	return math.Pow(sizeMm/10, 2.3) * 2.5
}
