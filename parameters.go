package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultParameters returns the baseline calibration of the model: a yearly
// Calvo economy with a binding zero lower bound, six AR(1) shock processes
// and a second-degree approximation fitted on 200 Halton points.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		Gamma:    1.0,
		Beta:     0.99,
		Vartheta: 2.09,
		Epsilon:  4.45,
		PhiY:     0.07,
		PhiPi:    2.21,
		Mu:       0.82,
		Theta:    0.83,
		PiStar:   1.0,
		GBar:     0.23,

		NuR: ShockProcess{Rho: 0.15, Sigma: 0.0028},
		NuA: ShockProcess{Rho: 0.95, Sigma: 0.0045},
		NuL: ShockProcess{Rho: 0.25, Sigma: 0.4054},
		NuU: ShockProcess{Rho: 0.92, Sigma: 0.0054},
		NuB: ShockProcess{Rho: 0.22, Sigma: 0.0023},
		NuG: ShockProcess{Rho: 0.95, Sigma: 0.0038},

		Degree:   2,
		Damp:     0.1,
		Tol:      1e-7,
		GridSize: 200,
		Scheme:   SchemeHalton,
		ZLB:      true,
	}
}

// shockProcesses returns the six processes in state-column order.
func (p ParameterSet) shockProcesses() [NumShocks]ShockProcess {
	return [NumShocks]ShockProcess{
		ShockR: p.NuR,
		ShockA: p.NuA,
		ShockL: p.NuL,
		ShockU: p.NuU,
		ShockB: p.NuB,
		ShockG: p.NuG,
	}
}

// Validate rejects parameter values outside the model's valid region.
// Autocorrelations must lie in (-1,1) so the unconditional shock variances
// are finite; standard deviations must be non-negative; damping in (0,1].
func (p ParameterSet) Validate() error {
	names := [NumShocks]string{"nuR", "nuA", "nuL", "nuU", "nuB", "nuG"}
	for i, sp := range p.shockProcesses() {
		if math.Abs(sp.Rho) >= 1 {
			return fmt.Errorf("%w: %s autocorrelation %g outside (-1,1)",
				ErrInvalidParameter, names[i], sp.Rho)
		}
		if sp.Sigma < 0 || math.IsNaN(sp.Sigma) {
			return fmt.Errorf("%w: %s standard deviation %g negative",
				ErrInvalidParameter, names[i], sp.Sigma)
		}
	}
	if !(p.Damp > 0 && p.Damp <= 1) {
		return fmt.Errorf("%w: damping %g outside (0,1]", ErrInvalidParameter, p.Damp)
	}
	if p.Tol <= 0 {
		return fmt.Errorf("%w: tolerance %g must be positive", ErrInvalidParameter, p.Tol)
	}
	if p.Degree < 1 {
		return fmt.Errorf("%w: polynomial degree %d must be >= 1", ErrInvalidParameter, p.Degree)
	}
	if p.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d must be >= 1", ErrInvalidParameter, p.GridSize)
	}
	if p.MaxIter < 0 {
		return fmt.Errorf("%w: iteration cap %d must be >= 0", ErrInvalidParameter, p.MaxIter)
	}
	return nil
}

// ShockCovariance returns the 6x6 covariance matrix of the shock
// innovations: diagonal with the squared standard deviations.
func (p ParameterSet) ShockCovariance() *mat.SymDense {
	cov := mat.NewSymDense(NumShocks, nil)
	for i, sp := range p.shockProcesses() {
		cov.SetSym(i, i, sp.Sigma*sp.Sigma)
	}
	return cov
}
