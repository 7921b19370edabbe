package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/domain/units"
	"github.com/mamadbah2/abanico/internal/service/analyzer"
	"github.com/mamadbah2/abanico/internal/service/growth"
	"github.com/mamadbah2/abanico/internal/service/harvest"
	"github.com/mamadbah2/abanico/internal/service/investment"
	"github.com/mamadbah2/abanico/internal/service/seeding"
)

// ReferenceData serves cached seed origins, pricing and constants.
type ReferenceData interface {
	SeedOrigins(ctx context.Context) []models.SeedOrigin
	Origin(ctx context.Context, codeOrName string) (*models.SeedOrigin, error)
	CalculatorConstants(ctx context.Context) models.CalculatorConstants
	Pricing(ctx context.Context) []models.PricingEntry
	Conversions(ctx context.Context) units.Conversions
}

// CalculatorHandler exposes the stateless calculators over HTTP.
type CalculatorHandler struct {
	refs             ReferenceData
	investment       *investment.Engine
	growth           *growth.Service
	revenueScenarios []models.RevenueScenario
	logger           *zap.Logger
}

// NewCalculatorHandler constructs the HTTP handler adapter.
func NewCalculatorHandler(refs ReferenceData, investmentEngine *investment.Engine, growthSvc *growth.Service, revenueScenarios []models.RevenueScenario, logger *zap.Logger) *CalculatorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorHandler{
		refs:             refs,
		investment:       investmentEngine,
		growth:           growthSvc,
		revenueScenarios: revenueScenarios,
		logger:           logger,
	}
}

// SeedOrigins lists the active seed origins.
func (h *CalculatorHandler) SeedOrigins(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewOutcome(h.refs.SeedOrigins(c.Request.Context()), nil))
}

type constantsResponse struct {
	Calculator  models.CalculatorConstants `json:"calculator"`
	Conversions units.Conversions          `json:"conversions"`
	Pricing     []models.PricingEntry      `json:"pricing"`
}

// Constants returns calculator defaults, unit ratios and the price list.
func (h *CalculatorHandler) Constants(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, models.NewOutcome(constantsResponse{
		Calculator:  h.refs.CalculatorConstants(ctx),
		Conversions: h.refs.Conversions(ctx),
		Pricing:     h.refs.Pricing(ctx),
	}, nil))
}

type seedingRequest struct {
	Params     models.SeedingParameters `json:"params"`
	OriginCode string                   `json:"originCode"`
}

// Seeding runs the seeding calculator, optionally against a named origin.
func (h *CalculatorHandler) Seeding(c *gin.Context) {
	var req seedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	origin, err := h.lookupOrigin(c.Request.Context(), req.OriginCode)
	if err != nil {
		writeOutcome(c, h.logger, models.SeedingResult{}, err)
		return
	}

	result, err := seeding.Calculate(req.Params, origin)
	writeOutcome(c, h.logger, result, err)
}

type harvestCostRequest struct {
	Lot           *models.Lot             `json:"lot"`
	Expenses      []models.ExpenseRecord  `json:"expenses"`
	InventoryUsed []models.InventoryUsage `json:"inventoryUsed"`
}

// HarvestCost computes the cost per bundle of a lot.
func (h *CalculatorHandler) HarvestCost(c *gin.Context) {
	var req harvestCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	result, err := harvest.CalculateCostPerBundle(req.Lot, req.Expenses, req.InventoryUsed)
	writeOutcome(c, h.logger, result, err)
}

type profitabilityRequest struct {
	Lot      *models.Lot            `json:"lot"`
	Harvest  *models.HarvestData    `json:"harvest"`
	Pricing  []models.PricingEntry  `json:"pricing"`
	Expenses []models.ExpenseRecord `json:"expenses"`
}

// HarvestProfitability computes revenue, margin and ROI of a harvest.
// The reference price list is used when the request carries none.
func (h *CalculatorHandler) HarvestProfitability(c *gin.Context) {
	var req profitabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	pricing := req.Pricing
	if len(pricing) == 0 {
		pricing = h.refs.Pricing(c.Request.Context())
	}

	result, err := harvest.CalculateProfitability(req.Lot, req.Harvest, pricing, req.Expenses)
	writeOutcome(c, h.logger, result, err)
}

type occupancyRequest struct {
	Sectors []models.Sector `json:"sectors"`
	Lots    []models.Lot    `json:"lots"`
}

// SectorOccupancy reports active lots per sector.
func (h *CalculatorHandler) SectorOccupancy(c *gin.Context) {
	var req occupancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	result, err := harvest.CalculateSectorOccupancy(req.Sectors, req.Lots)
	writeOutcome(c, h.logger, result, err)
}

type growthRequest struct {
	Lot                 *models.Lot `json:"lot"`
	MonthlyGrowthRateMm float64     `json:"monthlyGrowthRateMm"`
}

// Growth projects a lot's size against its expected growth.
func (h *CalculatorHandler) Growth(c *gin.Context) {
	var req growthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	result, err := h.growth.ProjectGrowth(req.Lot, req.MonthlyGrowthRateMm)
	writeOutcome(c, h.logger, result, err)
}

// Investment evaluates an investment against the scenario table.
func (h *CalculatorHandler) Investment(c *gin.Context) {
	var req models.InvestmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	result, err := h.investment.CalculateExpectedValue(req)
	writeOutcome(c, h.logger, result, err)
}

type integratedRequest struct {
	models.IntegratedInput
	OriginCode string `json:"originCode"`
}

// Integrated runs the full seeding, growth and revenue analysis.
func (h *CalculatorHandler) Integrated(c *gin.Context) {
	var req integratedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	ctx := c.Request.Context()
	origin, err := h.lookupOrigin(ctx, req.OriginCode)
	if err != nil {
		writeOutcome(c, h.logger, models.IntegratedAnalysis{}, err)
		return
	}

	svc, err := analyzer.NewService(h.revenueScenarios, h.refs.Conversions(ctx), h.logger)
	if err != nil {
		writeOutcome(c, h.logger, models.IntegratedAnalysis{}, err)
		return
	}

	result, err := svc.Analyze(req.IntegratedInput, origin)
	writeOutcome(c, h.logger, result, err)
}

func (h *CalculatorHandler) lookupOrigin(ctx context.Context, code string) (*models.SeedOrigin, error) {
	if code == "" {
		return nil, nil
	}
	return h.refs.Origin(ctx, code)
}
