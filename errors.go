package main

import (
	"errors"
	"fmt"
)

// Domain errors for the solver pipeline.
var (
	// ErrInvalidParameter indicates a ParameterSet field outside its valid
	// range (autocorrelation, standard deviation, damping, ...).
	ErrInvalidParameter = errors.New("nkzlb: invalid parameter")

	// ErrNotConverged indicates the time iteration hit its iteration cap
	// before the convergence metric dropped below tolerance.
	ErrNotConverged = errors.New("nkzlb: time iteration did not converge")

	// ErrNonFinite indicates a NaN or Inf appeared in the expectation
	// targets, i.e. the current iterate left the model's valid region.
	ErrNonFinite = errors.New("nkzlb: non-finite expectation target")

	// ErrDimensionMismatch indicates inputs with incompatible shapes.
	ErrDimensionMismatch = errors.New("nkzlb: dimension mismatch")
)

// SolveError wraps a solver failure with the continuation stage and
// iteration it occurred at.
type SolveError struct {
	Degree    int
	Iteration int
	Wrapped   error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("degree %d, iteration %d: %v", e.Degree, e.Iteration, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
