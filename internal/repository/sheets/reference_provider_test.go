package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/abanico/internal/domain/models"
	"github.com/mamadbah2/abanico/internal/domain/units"
)

type fakeReader struct {
	ranges map[string][][]interface{}
	err    error
}

func (f *fakeReader) ReadRange(_ context.Context, sheetRange string) ([][]interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ranges[sheetRange], nil
}

func TestSeedOrigins(t *testing.T) {
	reader := &fakeReader{ranges: map[string][][]interface{}{
		SeedOriginsRange: {
			{"samanco", "Samanco", "3.5", "1,5", "0.16", "15", "Alta", "TRUE"},
			{"broken", "Broken", "fast"},
			{"natural", "Natural", "3", "2.5", "0.10", "10"},
			{"old", "Old", "2", "3", "0.05", "5", "standard", "no"},
		},
	}}

	origins, err := NewReferenceProvider(reader, nil).SeedOrigins(context.Background())
	require.NoError(t, err)
	require.Len(t, origins, 3)

	assert.Equal(t, "samanco", origins[0].Code)
	assert.Equal(t, 1.5, origins[0].MonthlyMortalityRatePercent)
	assert.Equal(t, models.QualityAlta, origins[0].Quality)
	assert.True(t, origins[0].IsActive)

	assert.True(t, origins[1].IsActive, "missing flag defaults to active")
	assert.False(t, origins[2].IsActive)
}

func TestPricing(t *testing.T) {
	reader := &fakeReader{ranges: map[string][][]interface{}{
		PricingRange: {
			{"M", "1.2"},
			{"L", "n/a"},
			{"XL", 2.5, "false"},
		},
	}}

	pricing, err := NewReferenceProvider(reader, nil).Pricing(context.Background())
	require.NoError(t, err)
	require.Len(t, pricing, 2)
	assert.Equal(t, models.PricingEntry{SizeCategory: "M", PricePerUnit: 1.2, IsActive: true}, pricing[0])
	assert.False(t, pricing[1].IsActive)
}

func TestCalculatorConstants(t *testing.T) {
	reader := &fakeReader{ranges: map[string][][]interface{}{
		ConstantsRange: {
			{"defaultBundles", "80"},
			{"defaultExpectedMortality", "15.5"},
			{"unrelated", "ignored"},
		},
	}}

	c, err := NewReferenceProvider(reader, nil).CalculatorConstants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 80, c.DefaultBundles)
	assert.Equal(t, 15.5, c.DefaultExpectedMortality)
	assert.Equal(t, 96, c.ShellsPerBundle)

	reader.ranges[ConstantsRange] = [][]interface{}{{"defaultHarvestTime", "six"}}
	_, err = NewReferenceProvider(reader, nil).CalculatorConstants(context.Background())
	assert.Error(t, err)
}

func TestConversions(t *testing.T) {
	reader := &fakeReader{ranges: map[string][][]interface{}{
		ConversionsRange: {{"kgPorMalla", "2.5"}},
	}}

	c, err := NewReferenceProvider(reader, nil).Conversions(context.Background())
	require.NoError(t, err)
	want := units.Default()
	want.KgPerMalla = 2.5
	assert.Equal(t, want, c)
}

func TestReaderFailure(t *testing.T) {
	provider := NewReferenceProvider(&fakeReader{err: errors.New("quota exceeded")}, nil)

	_, err := provider.SeedOrigins(context.Background())
	assert.ErrorContains(t, err, "quota exceeded")
	_, err = provider.Conversions(context.Background())
	assert.ErrorContains(t, err, "quota exceeded")
}
