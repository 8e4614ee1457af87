package analysis

import "errors"

var (
	// ErrInsufficientData is returned when a computation's minimum
	// sample size is not met (empty series, single-point variance).
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDivisionUndefined is returned when a chronic load of zero
	// makes the requested ratio mathematically undefined. The engine
	// always errors here rather than yielding NaN.
	ErrDivisionUndefined = errors.New("division undefined: chronic load is zero")

	// ErrInvalidParameter is returned for non-positive windows, an
	// acute window larger than the chronic one, unknown methods,
	// unsupported confidence levels and malformed weight vectors.
	ErrInvalidParameter = errors.New("invalid parameter")
)
