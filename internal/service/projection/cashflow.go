package projection

import (
	"math"

	"github.com/mamadbah2/abanico/internal/calc"
	"github.com/mamadbah2/abanico/internal/domain/models"
)

// runCashFlow walks the projection month by month. Every month carries the
// maintenance and fixed costs; the closing month of each complete cycle
// harvests an equal share of the seed bought with the investment.
func runCashFlow(investment float64, months int, market models.MarketVariables, costs models.CostStructure) models.BaseResults {
	cycles := months / market.CycleMonths
	monthly := make([]models.MonthlyCashFlow, 0, months)

	cumulative := -investment
	totalRevenue := 0.0
	totalCosts := investment

	var harvestQty float64
	if cycles > 0 {
		seedQty := investment / (costs.SeedCostPerUnit * float64(cycles))
		surviving := seedQty * (1 - market.MortalityRate/100)
		harvestQty = surviving * market.GrowthRate / 100
	}

	for month := 1; month <= months; month++ {
		cycle := (month-1)/market.CycleMonths + 1
		monthInCycle := (month-1)%market.CycleMonths + 1

		monthCosts := costs.MaintenanceCostMonthly + costs.FixedCostsMonthly
		totalCosts += monthCosts
		cumulative -= monthCosts

		revenue := 0.0
		if monthInCycle == market.CycleMonths && cycle <= cycles {
			revenue = harvestQty * market.PricePerUnit
			harvestCost := harvestQty * costs.HarvestCostPerUnit

			totalRevenue += revenue
			totalCosts += harvestCost
			cumulative += revenue - harvestCost
		}

		monthly = append(monthly, models.MonthlyCashFlow{
			Month:              month,
			Revenue:            revenue,
			Costs:              monthCosts,
			NetIncome:          revenue - monthCosts,
			CumulativeCashFlow: cumulative,
			ROI:                ((cumulative+investment)/investment - 1) * 100,
		})
	}

	netProfit := totalRevenue - totalCosts
	return models.BaseResults{
		MonthlyData:          monthly,
		TotalRevenue:         totalRevenue,
		TotalCosts:           totalCosts,
		NetProfit:            netProfit,
		ROI:                  netProfit / investment * 100,
		PaybackPeriod:        paybackPeriod(monthly),
		IRR:                  annualisedIRR(monthly, investment),
		Cycles:               cycles,
		AverageMonthlyReturn: netProfit / float64(months),
	}
}

// adjust applies percentage perturbations to market and cost inputs.
func adjust(market models.MarketVariables, costs models.CostStructure, adj models.ScenarioAdjustments) (models.MarketVariables, models.CostStructure) {
	price := 1 + adj.PriceAdjustmentPercent/100
	mortality := 1 + adj.MortalityAdjustmentPercent/100
	volume := 1 + adj.VolumeAdjustmentPercent/100
	cost := 1 + adj.CostAdjustmentPercent/100

	market.PricePerUnit = math.Max(market.PricePerUnit*price, 0)
	market.MortalityRate = math.Min(math.Max(market.MortalityRate*mortality, 0), 100)
	market.GrowthRate = math.Max(market.GrowthRate*volume, 0)

	costs.SeedCostPerUnit *= cost
	costs.MaintenanceCostMonthly *= cost
	costs.HarvestCostPerUnit *= cost
	costs.FixedCostsMonthly *= cost

	return market, costs
}

func paybackPeriod(monthly []models.MonthlyCashFlow) int {
	for i, m := range monthly {
		if m.CumulativeCashFlow >= 0 {
			return i + 1
		}
	}
	return len(monthly) + 1
}

// annualisedIRR is a simplified rate: the monthly compound growth of the
// final position over the investment, scaled to a year.
func annualisedIRR(monthly []models.MonthlyCashFlow, investment float64) float64 {
	if len(monthly) == 0 {
		return 0
	}
	final := monthly[len(monthly)-1].CumulativeCashFlow + investment
	if final <= 0 {
		return 0
	}
	rate := math.Pow(final/investment, 1/float64(len(monthly))) - 1
	return rate * 12 * 100
}

// applyRisk scales revenue, profit and ROI down by half the total risk score.
// Confidence is 100 less the total risk score.
func applyRisk(base models.BaseResults, risk models.RiskFactors) models.RiskAdjustedResults {
	totalRisk := risk.Total()
	multiplier := 1 - totalRisk/100/2

	adjusted := base
	adjusted.TotalRevenue *= multiplier
	adjusted.NetProfit *= multiplier
	adjusted.ROI *= multiplier

	return models.RiskAdjustedResults{
		BaseResults:     adjusted,
		RiskAdjustment:  (1 - multiplier) * 100,
		ConfidenceLevel: 100 - totalRisk,
	}
}

// weighted averages scenario results by probability, normalised by the total
// probability. It returns nil when there is nothing to weight.
func weighted(results []models.ScenarioResult) *models.WeightedResults {
	total := 0.0
	for _, r := range results {
		total += r.Probability
	}
	if total <= 0 {
		return nil
	}

	out := &models.WeightedResults{
		TotalProbability:    total,
		ProbabilityMismatch: math.Abs(total-100) > 0.01,
	}
	for _, r := range results {
		w := calc.DivideOr(r.Probability, total, 0)
		out.TotalRevenue += r.Results.TotalRevenue * w
		out.TotalCosts += r.Results.TotalCosts * w
		out.NetProfit += r.Results.NetProfit * w
		out.ROI += r.Results.ROI * w
		out.PaybackPeriod += float64(r.Results.PaybackPeriod) * w
		out.IRR += r.Results.IRR * w
	}
	return out
}
