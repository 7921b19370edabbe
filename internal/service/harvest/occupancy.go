package harvest

import (
	"math"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

// CalculateSectorOccupancy counts seeded or growing lots per sector against its capacity.
func CalculateSectorOccupancy(sectors []models.Sector, lots []models.Lot) (models.OccupancySummary, error) {
	if len(sectors) == 0 {
		return models.OccupancySummary{}, models.NewInsufficientDataError("sectors")
	}

	active := make(map[string]int)
	for _, lot := range lots {
		if lot.Status == models.LotSeeded || lot.Status == models.LotGrowing {
			active[lot.SectorID]++
		}
	}

	summary := models.OccupancySummary{
		Sectors:      make([]models.SectorOccupancy, 0, len(sectors)),
		TotalSectors: len(sectors),
	}

	var rateSum float64
	for _, s := range sectors {
		capacity := s.MaxCapacity
		if capacity <= 0 {
			capacity = 1
		}
		count := active[s.ID]
		rate := float64(count) / float64(capacity) * 100

		summary.Sectors = append(summary.Sectors, models.SectorOccupancy{
			SectorID:      s.ID,
			SectorName:    s.Name,
			ActiveLots:    count,
			MaxCapacity:   capacity,
			OccupancyRate: int(math.Round(rate)),
			Available:     capacity-count > 0,
		})

		if count > 0 {
			summary.OccupiedSectors++
		}
		rateSum += math.Round(rate)
	}

	summary.AvailableSectors = summary.TotalSectors - summary.OccupiedSectors
	summary.AverageOccupancy = int(math.Round(rateSum / float64(summary.TotalSectors)))

	return summary, nil
}
