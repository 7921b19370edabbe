package projection

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

// DefaultIterations is the Monte Carlo sample count used when none is given.
const DefaultIterations = 1000

const (
	maxIterations = 100000

	// maxSimulatedMonths caps iterations × projection months per run.
	maxSimulatedMonths = 12_000_000
)

// Jitter holds the half-width, in percent, of the uniform perturbation
// applied to each variable on every draw.
type Jitter struct {
	PricePercent     float64 `json:"pricePercent"`
	MortalityPercent float64 `json:"mortalityPercent"`
	CostPercent      float64 `json:"costPercent"`
	VolumePercent    float64 `json:"volumePercent"`
}

// DefaultJitter is ±15% price, ±20% mortality, ±10% cost and ±10% volume.
func DefaultJitter() Jitter {
	return Jitter{PricePercent: 15, MortalityPercent: 20, CostPercent: 10, VolumePercent: 10}
}

// MonteCarloOptions configure one simulation. A zero Seed draws one from the clock;
// a nil Jitter uses the engine's.
type MonteCarloOptions struct {
	Iterations int
	Seed       uint64
	Jitter     *Jitter
}

// RunMonteCarlo samples perturbed projections and summarises the ROI distribution.
func (e *Engine) RunMonteCarlo(in models.ProjectionInput, opts MonteCarloOptions) (models.MonteCarloStats, error) {
	if err := Validate(in); err != nil {
		return models.MonteCarloStats{}, err
	}

	iterations := opts.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < 1 || iterations > maxIterations {
		return models.MonteCarloStats{}, models.NewValidationError("iterations", "must be between 1 and 100000")
	}
	if iterations*in.ProjectionMonths > maxSimulatedMonths {
		return models.MonteCarloStats{}, models.NewValidationError("iterations",
			fmt.Sprintf("%d iterations over %d months exceed the limit of %d simulated months", iterations, in.ProjectionMonths, maxSimulatedMonths))
	}

	jitter := e.jitter
	if opts.Jitter != nil {
		jitter = *opts.Jitter
	}
	if jitter.PricePercent < 0 || jitter.MortalityPercent < 0 || jitter.CostPercent < 0 || jitter.VolumePercent < 0 {
		return models.MonteCarloStats{}, models.NewValidationError("jitter", "widths must not be negative")
	}
	if jitter.CostPercent >= 100 {
		return models.MonteCarloStats{}, models.NewValidationError("jitter.costPercent", "must be below 100")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)

	price := uniform(jitter.PricePercent, src)
	mortality := uniform(jitter.MortalityPercent, src)
	cost := uniform(jitter.CostPercent, src)
	volume := uniform(jitter.VolumePercent, src)

	rois := make([]float64, iterations)
	for i := range rois {
		adj := models.ScenarioAdjustments{
			PriceAdjustmentPercent:     price.Rand(),
			MortalityAdjustmentPercent: mortality.Rand(),
			CostAdjustmentPercent:      cost.Rand(),
			VolumeAdjustmentPercent:    volume.Rand(),
		}
		market, costs := adjust(in.MarketVariables, in.CostStructure, adj)
		rois[i] = runCashFlow(in.BaseInvestment, in.ProjectionMonths, market, costs).ROI
	}

	result := summarizeDistribution(rois)

	e.logger.Debug("monte carlo simulation finished",
		zap.Int("iterations", iterations),
		zap.Uint64("seed", seed),
		zap.Float64("mean_roi", result.Mean),
		zap.Float64("p_positive", result.ProbabilityPositive))

	return result, nil
}

// uniform returns a sampler on [-halfWidth, +halfWidth]. A zero width always yields 0.
func uniform(halfWidth float64, src rand.Source) distuv.Uniform {
	return distuv.Uniform{Min: -halfWidth, Max: halfWidth, Src: src}
}

// summarizeDistribution computes the ROI statistics. samples must not be empty.
func summarizeDistribution(samples []float64) models.MonteCarloStats {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	p5 := stat.Quantile(0.05, stat.Empirical, sorted, nil)
	p95 := stat.Quantile(0.95, stat.Empirical, sorted, nil)

	n := float64(len(sorted))
	return models.MonteCarloStats{
		Iterations:          len(sorted),
		Mean:                mean,
		Median:              stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDev:              std,
		Percentile5:         p5,
		Percentile95:        p95,
		ConfidenceInterval:  [2]float64{p5, p95},
		ProbabilityPositive: float64(countAbove(sorted, 0)) / n * 100,
		ProbabilityAbove10:  float64(countAbove(sorted, 10)) / n * 100,
		ProbabilityAbove20:  float64(countAbove(sorted, 20)) / n * 100,
	}
}

// countAbove counts values strictly greater than threshold in an ascending slice.
func countAbove(sorted []float64, threshold float64) int {
	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i] > threshold })
	return len(sorted) - idx
}
