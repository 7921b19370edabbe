package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/config"
	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/repository/mongodb"
	"github.com/mamadbah2/abanico/internal/service/projection"
)

const storeTimeout = 10 * time.Second

// ProjectionStore persists calculated projections.
type ProjectionStore interface {
	SaveProjection(ctx context.Context, record models.ProjectionRecord) error
	FindProjection(ctx context.Context, id string) (models.ProjectionRecord, error)
}

// ProjectionHandler serves the investment projection endpoints.
type ProjectionHandler struct {
	engine *projection.Engine
	store  ProjectionStore
	sim    config.SimulationConfig
	now    func() time.Time
	newID  func() string
	logger *zap.Logger
}

// NewProjectionHandler wires the projection engine. store may be nil, in
// which case projections are calculated but not kept.
func NewProjectionHandler(engine *projection.Engine, store ProjectionStore, sim config.SimulationConfig, logger *zap.Logger) *ProjectionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectionHandler{
		engine: engine,
		store:  store,
		sim:    sim,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logger,
	}
}

type projectionRequest struct {
	models.ProjectionInput
	UseStandardScenarios bool `json:"useStandardScenarios"`
}

// Create calculates a projection and stores it when persistence is enabled.
func (h *ProjectionHandler) Create(c *gin.Context) {
	var req projectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	in := req.ProjectionInput
	if req.UseStandardScenarios && len(in.Scenarios) == 0 {
		in.Scenarios = projection.StandardScenarios()
	}

	result, err := h.engine.Calculate(in)
	if err != nil {
		writeOutcome(c, h.logger, models.ProjectionRecord{}, err)
		return
	}

	record := models.ProjectionRecord{
		ID:           h.newID(),
		Input:        in,
		Result:       result,
		CalculatedAt: h.now().UTC(),
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		if err := h.store.SaveProjection(ctx, record); err != nil {
			writeOutcome(c, h.logger, models.ProjectionRecord{}, err)
			return
		}
		h.logger.Info("projection stored", zap.String("id", record.ID))
	}

	writeOutcome(c, h.logger, record, nil)
}

// Get returns a stored projection by id.
func (h *ProjectionHandler) Get(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, models.Failure[models.ProjectionRecord](models.KindInternal, "projection storage is disabled"))
		return
	}

	id := c.Param("id")
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	record, err := h.store.FindProjection(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.Failure[models.ProjectionRecord](models.KindNotFound, "projection "+id+" not found"))
		return
	}
	writeOutcome(c, h.logger, record, err)
}

type monteCarloRequest struct {
	Input      models.ProjectionInput `json:"input"`
	Iterations int                    `json:"iterations"`
	Seed       uint64                 `json:"seed"`
	Jitter     *projection.Jitter     `json:"jitter"`
}

// MonteCarlo runs a simulation; iterations and seed default to the server configuration.
func (h *ProjectionHandler) MonteCarlo(c *gin.Context) {
	var req monteCarloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}

	opts := projection.MonteCarloOptions{
		Iterations: req.Iterations,
		Seed:       req.Seed,
		Jitter:     req.Jitter,
	}
	if opts.Iterations == 0 {
		opts.Iterations = h.sim.Iterations
	}
	if opts.Seed == 0 {
		opts.Seed = h.sim.Seed
	}

	start := h.now()
	stats, err := h.engine.RunMonteCarlo(req.Input, opts)
	if err == nil {
		h.logger.Debug("monte carlo finished",
			zap.Int("iterations", stats.Iterations),
			zap.Duration("elapsed", h.now().Sub(start)))
	}
	writeOutcome(c, h.logger, stats, err)
}
