package models

import "errors"

// OutcomeStatus tags an Outcome as success or error.
type OutcomeStatus string

const (
	StatusSuccess OutcomeStatus = "success"
	StatusError   OutcomeStatus = "error"
)

// ErrorKind names the class of a failed calculation.
type ErrorKind string

const (
	KindValidation       ErrorKind = "validation"
	KindDivisionByZero   ErrorKind = "division_by_zero"
	KindInsufficientData ErrorKind = "insufficient_data"
	KindNotFound         ErrorKind = "not_found"
	KindInternal         ErrorKind = "internal"
)

// Outcome is the tagged result handed to callers that display calculator output.
type Outcome[T any] struct {
	Status  OutcomeStatus `json:"status"`
	Kind    ErrorKind     `json:"kind,omitempty"`
	Message string        `json:"message,omitempty"`
	Data    *T            `json:"data"`
}

// NewOutcome folds a calculator's (value, error) pair into a tagged Outcome.
func NewOutcome[T any](data T, err error) Outcome[T] {
	if err != nil {
		return Outcome[T]{Status: StatusError, Kind: KindOf(err), Message: err.Error()}
	}
	return Outcome[T]{Status: StatusSuccess, Data: &data}
}

// Failure builds an error Outcome with an explicit kind.
func Failure[T any](kind ErrorKind, message string) Outcome[T] {
	return Outcome[T]{Status: StatusError, Kind: kind, Message: message}
}

// KindOf classifies err.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrInsufficientData):
		return KindInsufficientData
	default:
		return KindInternal
	}
}
