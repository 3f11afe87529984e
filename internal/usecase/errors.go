package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrPredictionWindowClosed is the gate violation: a prediction write
	// attempted at or past its cutoff.
	ErrPredictionWindowClosed = errors.New("prediction window closed")

	// ErrBudgetExhausted means the daily feed call budget is spent; the
	// caller should retry after local-date rollover.
	ErrBudgetExhausted = errors.New("daily feed budget exhausted")

	// ErrScoresMissing guards the scoring invariant: a match cannot be
	// scored without both final scores present.
	ErrScoresMissing = errors.New("final scores missing")
)
