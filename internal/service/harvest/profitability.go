package harvest

import (
	"github.com/mamadbah2/abanico/internal/calc"
	"github.com/mamadbah2/abanico/internal/domain/models"
)

// CalculateProfitability prices a harvest's size distribution against the active
// pricing table and compares the revenue with the lot's accumulated cost.
func CalculateProfitability(lot *models.Lot, harvest *models.HarvestData, pricing []models.PricingEntry, expenses []models.ExpenseRecord) (models.ProfitabilityResult, error) {
	switch {
	case lot == nil:
		return models.ProfitabilityResult{}, models.NewInsufficientDataError("lot")
	case harvest == nil:
		return models.ProfitabilityResult{}, models.NewInsufficientDataError("harvest data")
	case len(pricing) == 0:
		return models.ProfitabilityResult{}, models.NewInsufficientDataError("pricing")
	}

	revenueBySize := make(map[string]float64, len(harvest.SizeDistribution))
	var totalRevenue float64
	for size, quantity := range harvest.SizeDistribution {
		price, ok := activePrice(pricing, size)
		if !ok {
			continue
		}
		revenue := quantity * price
		revenueBySize[size] = revenue
		totalRevenue += revenue
	}

	costs := costTotals(lot, expenses, nil)
	profit := totalRevenue - costs.TotalCost

	margin, err := calc.Percent(profit, totalRevenue, "profit margin")
	if err != nil {
		return models.ProfitabilityResult{}, err
	}
	roi, err := calc.Percent(profit, costs.TotalCost, "roi")
	if err != nil {
		return models.ProfitabilityResult{}, err
	}

	if costs.EstimatedBundles > 0 {
		costs.CostPerBundle = calc.Round(costs.TotalCost/float64(costs.EstimatedBundles), 2)
	}

	return models.ProfitabilityResult{
		TotalRevenue:        totalRevenue,
		TotalCost:           costs.TotalCost,
		Profit:              profit,
		ProfitMarginPercent: calc.Round(margin, 1),
		ROIPercent:          calc.Round(roi, 1),
		RevenueBySize:       revenueBySize,
		CostBreakdown:       costs,
	}, nil
}

func activePrice(pricing []models.PricingEntry, size string) (float64, bool) {
	for _, p := range pricing {
		if p.IsActive && p.SizeCategory == size {
			return p.PricePerUnit, true
		}
	}
	return 0, false
}
