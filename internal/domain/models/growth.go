package models

// GrowthPerformance compares measured size against the projection.
type GrowthPerformance string

const (
	PerformanceAbove   GrowthPerformance = "above"
	PerformanceBelow   GrowthPerformance = "below"
	PerformanceOnTrack GrowthPerformance = "on-track"
)

// MonthlySizePoint is one future month of a growth projection.
type MonthlySizePoint struct {
	Month         int     `json:"month"`
	Date          string  `json:"date"`
	ProjectedSize float64 `json:"projectedSize"`
	SizeCategory  string  `json:"sizeCategory"`
}

// GrowthProjection is the projected vs actual size of a lot plus six future months.
type GrowthProjection struct {
	MonthsElapsed   float64            `json:"monthsElapsed"`
	InitialSize     float64            `json:"initialSize"`
	ProjectedSize   float64            `json:"projectedSize"`
	ActualSize      float64            `json:"actualSize"`
	SizeVariance    float64            `json:"sizeVariance"`
	VariancePercent float64            `json:"variancePercent"`
	Performance     GrowthPerformance  `json:"performance"`
	Projections     []MonthlySizePoint `json:"projections"`
}

// TrajectoryPoint is a month of linear growth from a starting size.
type TrajectoryPoint struct {
	Month  int     `json:"month"`
	Size   float64 `json:"size"`
	Growth float64 `json:"growth"`
}
