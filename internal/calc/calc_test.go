package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

func TestDivide(t *testing.T) {
	v, err := Divide(10, 4, "ratio")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = Divide(10, 0, "cost per shell")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrDivisionByZero))

	var dz *models.DivisionByZeroError
	require.True(t, errors.As(err, &dz))
	assert.Equal(t, "cost per shell", dz.Quantity)
}

func TestPercent(t *testing.T) {
	v, err := Percent(25, 200, "share")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	_, err = Percent(1, 0, "share")
	assert.ErrorIs(t, err, models.ErrDivisionByZero)
}

func TestDivideOr(t *testing.T) {
	assert.Equal(t, 3.0, DivideOr(6, 2, -1))
	assert.Equal(t, -1.0, DivideOr(6, 0, -1))
}

func TestRound(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		want     float64
	}{
		{1.2345, 2, 1.23},
		{1.235, 1, 1.2},
		{-2.56, 1, -2.6},
		{26.041666, 2, 26.04},
		{7, 0, 7},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.in, tt.decimals), 1e-9)
	}
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(1))
	v, _ := Divide(1, 0, "x")
	assert.True(t, Finite(v))
}
