package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/abanico/internal/config"
	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/repository/mongodb"
	"github.com/mamadbah2/abanico/internal/service/projection"
)

type memoryStore struct {
	records map[string]models.ProjectionRecord
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]models.ProjectionRecord{}}
}

func (s *memoryStore) SaveProjection(_ context.Context, record models.ProjectionRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[record.ID] = record
	return nil
}

func (s *memoryStore) FindProjection(_ context.Context, id string) (models.ProjectionRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return models.ProjectionRecord{}, mongodb.ErrNotFound
	}
	return record, nil
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newProjectionHandler(store ProjectionStore) *ProjectionHandler {
	h := NewProjectionHandler(projection.NewDefaultEngine(nil), store, config.SimulationConfig{Iterations: 200, Seed: 42}, nil)
	h.now = func() time.Time { return fixedNow }
	h.newID = func() string { return "abc" }
	return h
}

func projectionInput() models.ProjectionInput {
	return models.ProjectionInput{
		BaseInvestment:   10000,
		ProjectionMonths: 12,
		MarketVariables: models.MarketVariables{
			PricePerUnit:  5,
			MortalityRate: 20,
			GrowthRate:    100,
			HarvestCycles: 2,
			CycleMonths:   6,
		},
		CostStructure: models.CostStructure{
			SeedCostPerUnit:        1,
			MaintenanceCostMonthly: 100,
			HarvestCostPerUnit:     0.5,
			FixedCostsMonthly:      100,
		},
		RiskFactors: models.RiskFactors{ClimaticRisk: 10, MarketRisk: 10, OperationalRisk: 5, FinancialRisk: 5},
	}
}

func TestCreateProjection_Stored(t *testing.T) {
	store := newMemoryStore()
	h := newProjectionHandler(store)

	w := serve(t, http.MethodPost, "/projections", h.Create, projectionRequest{ProjectionInput: projectionInput()})
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[models.ProjectionRecord](t, w)
	require.NotNil(t, out.Data)
	assert.Equal(t, "abc", out.Data.ID)
	assert.True(t, fixedNow.Equal(out.Data.CalculatedAt))
	assert.InDelta(t, 236.0, out.Data.Result.BaseResults.ROI, 1e-6)
	assert.Nil(t, out.Data.Result.WeightedResults)

	saved, ok := store.records["abc"]
	require.True(t, ok)
	assert.InDelta(t, 23600.0, saved.Result.BaseResults.NetProfit, 1e-6)
}

func TestCreateProjection_StandardScenarios(t *testing.T) {
	h := newProjectionHandler(nil)

	w := serve(t, http.MethodPost, "/projections", h.Create, projectionRequest{
		ProjectionInput:      projectionInput(),
		UseStandardScenarios: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[models.ProjectionRecord](t, w)
	require.NotNil(t, out.Data)
	assert.Len(t, out.Data.Input.Scenarios, len(projection.StandardScenarios()))
	assert.Len(t, out.Data.Result.ScenarioResults, len(projection.StandardScenarios()))
	assert.NotNil(t, out.Data.Result.WeightedResults)
}

func TestCreateProjection_Invalid(t *testing.T) {
	in := projectionInput()
	in.BaseInvestment = 0

	w := serve(t, http.MethodPost, "/projections", newProjectionHandler(nil).Create, projectionRequest{ProjectionInput: in})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	out := decode[models.ProjectionRecord](t, w)
	assert.Equal(t, models.KindValidation, out.Kind)
}

func TestCreateProjection_StoreFailure(t *testing.T) {
	store := newMemoryStore()
	store.saveErr = errors.New("connection reset")

	w := serve(t, http.MethodPost, "/projections", newProjectionHandler(store).Create, projectionRequest{ProjectionInput: projectionInput()})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	out := decode[models.ProjectionRecord](t, w)
	assert.Equal(t, models.KindInternal, out.Kind)
	assert.NotContains(t, out.Message, "connection reset")
}

func TestGetProjection(t *testing.T) {
	store := newMemoryStore()
	store.records["abc"] = models.ProjectionRecord{ID: "abc", CalculatedAt: fixedNow}

	w := serve(t, http.MethodGet, "/projections/:id", newProjectionHandler(store).Get, nil)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[models.ProjectionRecord](t, w)
	require.NotNil(t, out.Data)
	assert.Equal(t, "abc", out.Data.ID)
}

func TestGetProjection_NotFound(t *testing.T) {
	w := serve(t, http.MethodGet, "/projections/:id", newProjectionHandler(newMemoryStore()).Get, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	out := decode[models.ProjectionRecord](t, w)
	assert.Equal(t, models.KindNotFound, out.Kind)
}

func TestGetProjection_StorageDisabled(t *testing.T) {
	w := serve(t, http.MethodGet, "/projections/:id", newProjectionHandler(nil).Get, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMonteCarlo_UsesConfiguredDefaults(t *testing.T) {
	h := newProjectionHandler(nil)

	first := serve(t, http.MethodPost, "/projections/monte-carlo", h.MonteCarlo, monteCarloRequest{Input: projectionInput()})
	require.Equal(t, http.StatusOK, first.Code)
	second := serve(t, http.MethodPost, "/projections/monte-carlo", h.MonteCarlo, monteCarloRequest{Input: projectionInput()})
	require.Equal(t, http.StatusOK, second.Code)

	a := decode[models.MonteCarloStats](t, first)
	b := decode[models.MonteCarloStats](t, second)
	require.NotNil(t, a.Data)
	require.NotNil(t, b.Data)
	assert.Equal(t, 200, a.Data.Iterations)
	assert.Equal(t, *a.Data, *b.Data)
}

func TestMonteCarlo_TooManyIterations(t *testing.T) {
	w := serve(t, http.MethodPost, "/projections/monte-carlo", newProjectionHandler(nil).MonteCarlo, monteCarloRequest{
		Input:      projectionInput(),
		Iterations: 1_000_000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
