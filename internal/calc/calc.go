// Package calc holds the guarded arithmetic shared by the calculators.
// Ratios never yield NaN or Inf: a zero denominator is reported as a
// *models.DivisionByZeroError naming the quantity being computed.
package calc

import (
	"math"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

// Divide returns num/den, or a DivisionByZeroError for quantity when den is zero.
func Divide(num, den float64, quantity string) (float64, error) {
	if den == 0 {
		return 0, &models.DivisionByZeroError{Quantity: quantity}
	}
	return num / den, nil
}

// Percent returns part/whole*100 with the same guard as Divide.
func Percent(part, whole float64, quantity string) (float64, error) {
	ratio, err := Divide(part, whole, quantity)
	if err != nil {
		return 0, err
	}
	return ratio * 100, nil
}

// DivideOr returns num/den, or fallback when den is zero.
func DivideOr(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}

// Round rounds v to the given number of decimals, half away from zero.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Sum adds values.
func Sum(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
