package models

import "time"

// Expense categories the harvest cost calculator understands.
const (
	ExpenseOperational = "operational"
	ExpenseHarvest     = "harvest"
)

// Lot statuses that count as occupying a sector.
const (
	LotSeeded  = "seeded"
	LotGrowing = "growing"
)

// Lot is a batch of shells seeded into a sector.
type Lot struct {
	ID              string     `json:"id"`
	SectorID        string     `json:"sectorId"`
	Status          string     `json:"status"`
	Cost            float64    `json:"cost"`
	CurrentQuantity int        `json:"currentQuantity"`
	EntryDate       *time.Time `json:"entryDate,omitempty"`
	InitialSize     float64    `json:"initialSize"`
	AverageSize     float64    `json:"averageSize"`
}

// ExpenseRecord is one bookkept expense attributed to a lot.
type ExpenseRecord struct {
	LotID    string  `json:"lotId"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// InventoryUsage is material drawn from inventory for a related entity.
type InventoryUsage struct {
	RelatedID string  `json:"relatedId"`
	Quantity  float64 `json:"quantity"`
	UnitCost  float64 `json:"unitCost"`
}

// HarvestData holds the harvested quantity per size category.
type HarvestData struct {
	SizeDistribution map[string]float64 `json:"sizeDistribution"`
}

// Sector is a cultivation area able to host a number of lots.
type Sector struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxCapacity int    `json:"maxCapacity"`
}

// CostShares is the percentage of total cost per component.
type CostShares struct {
	Initial     float64 `json:"initial"`
	Operational float64 `json:"operational"`
	Harvest     float64 `json:"harvest"`
	Materials   float64 `json:"materials"`
}

// CostBreakdown is the cost composition of a lot. TotalCost is the sum of the four components.
type CostBreakdown struct {
	InitialCost         float64     `json:"initialCost"`
	OperationalExpenses float64     `json:"operationalExpenses"`
	HarvestExpenses     float64     `json:"harvestExpenses"`
	MaterialsCost       float64     `json:"materialsCost"`
	TotalCost           float64     `json:"totalCost"`
	EstimatedBundles    int         `json:"estimatedBundles"`
	CostPerBundle       float64     `json:"costPerBundle"`
	Shares              *CostShares `json:"shares,omitempty"`
}

// ProfitabilityResult summarises revenue against cost for a harvested lot.
type ProfitabilityResult struct {
	TotalRevenue        float64            `json:"totalRevenue"`
	TotalCost           float64            `json:"totalCost"`
	Profit              float64            `json:"profit"`
	ProfitMarginPercent float64            `json:"profitMarginPercent"`
	ROIPercent          float64            `json:"roiPercent"`
	RevenueBySize       map[string]float64 `json:"revenueBySize"`
	CostBreakdown       CostBreakdown      `json:"costBreakdown"`
}

// SectorOccupancy is the active-lot load of one sector.
type SectorOccupancy struct {
	SectorID      string `json:"sectorId"`
	SectorName    string `json:"sectorName"`
	ActiveLots    int    `json:"activeLots"`
	MaxCapacity   int    `json:"maxCapacity"`
	OccupancyRate int    `json:"occupancyRate"`
	Available     bool   `json:"available"`
}

// OccupancySummary aggregates occupancy across sectors.
type OccupancySummary struct {
	Sectors          []SectorOccupancy `json:"sectors"`
	TotalSectors     int               `json:"totalSectors"`
	OccupiedSectors  int               `json:"occupiedSectors"`
	AvailableSectors int               `json:"availableSectors"`
	AverageOccupancy int               `json:"averageOccupancy"`
}
