package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/service/analyzer"
	"github.com/mamadbah2/abanico/internal/service/growth"
	"github.com/mamadbah2/abanico/internal/service/investment"
	"github.com/mamadbah2/abanico/internal/service/reference"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCalculatorHandler() *CalculatorHandler {
	refs := reference.NewService(nil, nil, 0, nil)
	return NewCalculatorHandler(refs, investment.NewDefaultEngine(nil), growth.NewService(nil), analyzer.DefaultScenarios(), nil)
}

func serve(t *testing.T, method, path string, handler gin.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	r := gin.New()
	r.Handle(method, path, handler)

	target := path
	if strings.Contains(path, ":id") {
		target = strings.Replace(path, ":id", "abc", 1)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) models.Outcome[T] {
	t.Helper()
	var out models.Outcome[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedingParams() models.SeedingParameters {
	return models.SeedingParameters{
		NumberOfBundles:          50,
		PricePerBundle:           15,
		ShellsPerBundle:          96,
		ExpectedMortalityPercent: 20,
		SectorAreaM2:             1000,
		AdditionalCosts:          500,
	}
}

func TestSeeding(t *testing.T) {
	h := newCalculatorHandler()

	w := serve(t, http.MethodPost, "/calculators/seeding", h.Seeding, seedingRequest{Params: seedingParams()})
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[models.SeedingResult](t, w)
	assert.Equal(t, models.StatusSuccess, out.Status)
	require.NotNil(t, out.Data)
	assert.Equal(t, 4800, out.Data.TotalShells)
	assert.Equal(t, 3840, out.Data.SurvivingShells)
}

func TestSeeding_WithOrigin(t *testing.T) {
	h := newCalculatorHandler()

	w := serve(t, http.MethodPost, "/calculators/seeding", h.Seeding, seedingRequest{Params: seedingParams(), OriginCode: "Casma"})
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[models.SeedingResult](t, w)
	require.NotNil(t, out.Data)
	assert.Equal(t, 2.0, out.Data.AdjustedMortality)
	assert.Equal(t, 4704, out.Data.SurvivingShells)
	assert.Equal(t, models.QualityMedia, out.Data.OriginQuality)
}

func TestSeeding_UnknownOrigin(t *testing.T) {
	h := newCalculatorHandler()

	w := serve(t, http.MethodPost, "/calculators/seeding", h.Seeding, seedingRequest{Params: seedingParams(), OriginCode: "atlantis"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	out := decode[models.SeedingResult](t, w)
	assert.Equal(t, models.StatusError, out.Status)
	assert.Equal(t, models.KindValidation, out.Kind)
	assert.Nil(t, out.Data)
}

func TestSeeding_ValidationError(t *testing.T) {
	h := newCalculatorHandler()
	params := seedingParams()
	params.NumberOfBundles = 0

	w := serve(t, http.MethodPost, "/calculators/seeding", h.Seeding, seedingRequest{Params: params})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	out := decode[models.SeedingResult](t, w)
	assert.Equal(t, models.KindValidation, out.Kind)
	assert.Contains(t, out.Message, "numberOfBundles")
}

func TestSeeding_MalformedBody(t *testing.T) {
	h := newCalculatorHandler()

	w := serve(t, http.MethodPost, "/calculators/seeding", h.Seeding, `{"params": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvestment(t *testing.T) {
	h := newCalculatorHandler()

	w := serve(t, http.MethodPost, "/calculators/investment", h.Investment, models.InvestmentInput{
		InvestmentAmount:   10000,
		ExpectedROIPercent: 25,
		RiskLevel:          models.RiskModerate,
	})
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[models.ExpectedValueSummary](t, w)
	require.NotNil(t, out.Data)
	assert.InDelta(t, 11887.5, out.Data.ExpectedValue, 1e-6)
	assert.InDelta(t, 85.0, out.Data.BreakEvenProbability, 1e-9)
	assert.Len(t, out.Data.Scenarios, len(investment.DefaultScenarioTable()))
}

func TestInvestment_UnknownRisk(t *testing.T) {
	h := newCalculatorHandler()

	w := serve(t, http.MethodPost, "/calculators/investment", h.Investment, models.InvestmentInput{
		InvestmentAmount:   10000,
		ExpectedROIPercent: 25,
		RiskLevel:          "reckless",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSeedOriginsAndConstants(t *testing.T) {
	h := newCalculatorHandler()

	w := serve(t, http.MethodGet, "/reference/seed-origins", h.SeedOrigins, nil)
	require.Equal(t, http.StatusOK, w.Code)
	origins := decode[[]models.SeedOrigin](t, w)
	require.NotNil(t, origins.Data)
	assert.Len(t, *origins.Data, len(models.DefaultSeedOrigins()))

	w = serve(t, http.MethodGet, "/reference/constants", h.Constants, nil)
	require.Equal(t, http.StatusOK, w.Code)
	constants := decode[constantsResponse](t, w)
	require.NotNil(t, constants.Data)
	assert.Equal(t, 96, constants.Data.Calculator.ShellsPerBundle)
	assert.Equal(t, reference.DefaultPricing(), constants.Data.Pricing)
}

func TestIntegrated(t *testing.T) {
	h := newCalculatorHandler()

	req := integratedRequest{IntegratedInput: models.IntegratedInput{
		NumberOfBundles:          50,
		NumberOfLines:            4,
		Cost:                     1250,
		AdditionalCosts:          500,
		HarvestMonths:            6,
		InitialSizeMm:            15,
		ExpectedMonthlyMortality: 2,
		OperatingCosts:           map[string]float64{"labor": 200, "fuel": 100},
		CustomCosts:              []models.CostItem{{Name: "permits", Amount: 50}},
		Presentations: []models.Presentation{{
			Name: "fresh",
			Measures: []models.PresentationMeasure{
				{Name: "standard", PricePerKg: 20, WeightKg: 260},
				{Name: "large", PricePerKg: 30, WeightKg: 26},
			},
		}},
	}}

	w := serve(t, http.MethodPost, "/calculators/integrated", h.Integrated, req)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[models.IntegratedAnalysis](t, w)
	require.NotNil(t, out.Data)
	assert.Equal(t, 4224, out.Data.Seeding.SurvivingShells)
	assert.InDelta(t, 5980.0, out.Data.GrossRevenue, 1e-9)
	assert.InDelta(t, 3380.0, out.Data.NetProfit, 1e-9)
}

func TestIntegrated_NoRecordedWeight(t *testing.T) {
	h := newCalculatorHandler()

	req := integratedRequest{IntegratedInput: models.IntegratedInput{
		NumberOfBundles: 50,
		NumberOfLines:   4,
		Cost:            1250,
	}}

	w := serve(t, http.MethodPost, "/calculators/integrated", h.Integrated, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	out := decode[models.IntegratedAnalysis](t, w)
	assert.Equal(t, models.KindInsufficientData, out.Kind)
}
