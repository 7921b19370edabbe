package harvest

import (
	"math"

	"github.com/mamadbah2/abanico/internal/calc"
	"github.com/mamadbah2/abanico/internal/domain/models"
)

// Bundle estimate heuristic: every started thousand live shells counts as one
// malla of three bundles. Not an exact count.
const (
	shellsPerEstimateUnit  = 1000
	bundlesPerEstimateUnit = 3
)

// CalculateCostPerBundle returns the cost composition of a lot and its cost per estimated bundle.
func CalculateCostPerBundle(lot *models.Lot, expenses []models.ExpenseRecord, inventoryUsed []models.InventoryUsage) (models.CostBreakdown, error) {
	if lot == nil {
		return models.CostBreakdown{}, models.NewInsufficientDataError("lot")
	}

	breakdown := costTotals(lot, expenses, inventoryUsed)

	perBundle, err := calc.Divide(breakdown.TotalCost, float64(breakdown.EstimatedBundles), "cost per bundle")
	if err != nil {
		return models.CostBreakdown{}, err
	}
	breakdown.CostPerBundle = calc.Round(perBundle, 2)

	return breakdown, nil
}

// EstimateBundles converts a live shell count into bundles with the thousand-shell heuristic.
func EstimateBundles(currentQuantity int) int {
	if currentQuantity <= 0 {
		return 0
	}
	return int(math.Ceil(float64(currentQuantity)/shellsPerEstimateUnit)) * bundlesPerEstimateUnit
}

func costTotals(lot *models.Lot, expenses []models.ExpenseRecord, inventoryUsed []models.InventoryUsage) models.CostBreakdown {
	var operational, harvest, materials float64

	for _, e := range expenses {
		if e.LotID != lot.ID {
			continue
		}
		switch e.Category {
		case models.ExpenseOperational:
			operational += e.Amount
		case models.ExpenseHarvest:
			harvest += e.Amount
		}
	}

	for _, item := range inventoryUsed {
		if item.RelatedID == lot.ID {
			materials += item.Quantity * item.UnitCost
		}
	}

	b := models.CostBreakdown{
		InitialCost:         lot.Cost,
		OperationalExpenses: operational,
		HarvestExpenses:     harvest,
		MaterialsCost:       materials,
		TotalCost:           calc.Sum(lot.Cost, operational, harvest, materials),
		EstimatedBundles:    EstimateBundles(lot.CurrentQuantity),
	}

	if b.TotalCost != 0 {
		b.Shares = &models.CostShares{
			Initial:     calc.Round(b.InitialCost/b.TotalCost*100, 1),
			Operational: calc.Round(b.OperationalExpenses/b.TotalCost*100, 1),
			Harvest:     calc.Round(b.HarvestExpenses/b.TotalCost*100, 1),
			Materials:   calc.Round(b.MaterialsCost/b.TotalCost*100, 1),
		}
	}

	return b
}
