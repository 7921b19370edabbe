package growth

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/calc"
	"github.com/mamadbah2/abanico/internal/domain/models"
)

const (
	// DefaultMonthlyGrowthMm is the growth rate assumed when none is supplied.
	DefaultMonthlyGrowthMm = 0.8
	// DefaultInitialSizeMm is the seed size assumed for lots without one.
	DefaultInitialSizeMm = 20.0

	daysPerMonth      = 30
	forecastMonths    = 6
	belowThresholdPct = -5
	dateLayout        = "2006-01-02"
)

// Service projects lot growth relative to a clock.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewService constructs a growth projector using the wall clock.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger, now: time.Now}
}

// WithClock returns a copy of the service that reads time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	clone := *s
	clone.now = now
	return &clone
}

// ProjectGrowth compares a lot's measured size with its linear projection since
// entry and forecasts the next six months.
func (s *Service) ProjectGrowth(lot *models.Lot, monthlyGrowthMm float64) (models.GrowthProjection, error) {
	if lot == nil || lot.EntryDate == nil || lot.EntryDate.IsZero() {
		return models.GrowthProjection{}, models.NewInsufficientDataError("lot entry date")
	}
	if monthlyGrowthMm <= 0 {
		monthlyGrowthMm = DefaultMonthlyGrowthMm
	}

	entry := *lot.EntryDate
	monthsElapsed := s.now().Sub(entry).Hours() / 24 / daysPerMonth

	initial := lot.InitialSize
	if initial <= 0 {
		initial = DefaultInitialSizeMm
	}
	actual := lot.AverageSize
	if actual <= 0 {
		actual = initial
	}

	projected := initial + monthsElapsed*monthlyGrowthMm
	variance := actual - projected
	variancePct, err := calc.Percent(variance, projected, "size variance percent")
	if err != nil {
		return models.GrowthProjection{}, err
	}

	points := make([]models.MonthlySizePoint, 0, forecastMonths)
	for i := 1; i <= forecastMonths; i++ {
		future := monthsElapsed + float64(i)
		size := initial + future*monthlyGrowthMm
		points = append(points, models.MonthlySizePoint{
			Month:         i,
			Date:          entry.AddDate(0, int(math.Floor(future)), 0).Format(dateLayout),
			ProjectedSize: calc.Round(size, 1),
			SizeCategory:  SizeCategory(size),
		})
	}

	s.logger.Debug("growth projected",
		zap.String("lot_id", lot.ID),
		zap.Float64("months_elapsed", monthsElapsed),
		zap.Float64("variance_percent", variancePct))

	return models.GrowthProjection{
		MonthsElapsed:   calc.Round(monthsElapsed, 1),
		InitialSize:     initial,
		ProjectedSize:   calc.Round(projected, 1),
		ActualSize:      actual,
		SizeVariance:    calc.Round(variance, 1),
		VariancePercent: calc.Round(variancePct, 1),
		Performance:     classify(variancePct),
		Projections:     points,
	}, nil
}

func classify(variancePct float64) models.GrowthPerformance {
	switch {
	case variancePct > 0:
		return models.PerformanceAbove
	case variancePct < belowThresholdPct:
		return models.PerformanceBelow
	default:
		return models.PerformanceOnTrack
	}
}

// SizeCategory maps a shell size in millimetres to its commercial category.
func SizeCategory(sizeMm float64) string {
	switch {
	case sizeMm < 30:
		return "XS"
	case sizeMm < 40:
		return "S"
	case sizeMm < 50:
		return "M"
	case sizeMm < 60:
		return "L"
	default:
		return "XL"
	}
}
