package models

import (
	"errors"
	"fmt"
)

// Sentinel errors used to classify calculator failures with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInsufficientData = errors.New("insufficient data")
)

// ValidationError reports a missing or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DivisionByZeroError reports a ratio whose denominator was exactly zero.
type DivisionByZeroError struct {
	Quantity string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("cannot compute %s: denominator is zero", e.Quantity)
}

// Is makes DivisionByZeroError match ErrDivisionByZero.
func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// InsufficientDataError reports that a related entity required by a calculation is missing.
type InsufficientDataError struct {
	Missing string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s is missing", e.Missing)
}

// Is makes InsufficientDataError match ErrInsufficientData.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// NewInsufficientDataError builds an InsufficientDataError.
func NewInsufficientDataError(missing string) error {
	return &InsufficientDataError{Missing: missing}
}

// IsDomainError reports whether err belongs to the calculator error taxonomy.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrDivisionByZero) || errors.Is(err, ErrInsufficientData)
}
