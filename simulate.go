package main

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultHorizon is long enough for stable moments of the simulated path.
const DefaultHorizon = 10200

// Simulate draws fresh AR(1) shock paths from the supplied source and
// evaluates the fitted policy functions period by period. The state series
// (dispersion and rate) have length T+1 and start at the deterministic
// steady-state normalization of 1.0; reproducibility is the caller's
// concern, via the seed of src.
func Simulate(p ParameterSet, coef *mat.Dense, T int, src rand.Source) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if T < 1 {
		return nil, fmt.Errorf("%w: horizon %d must be >= 1", ErrInvalidParameter, T)
	}

	sim := &Simulation{
		T:      T,
		Shocks: mat.NewDense(T, NumShocks, nil),
		Delta:  make([]float64, T+1),
		R:      make([]float64, T+1),
		S:      make([]float64, T),
		F:      make([]float64, T),
		C:      make([]float64, T),
		Pi:     make([]float64, T),
		Y:      make([]float64, T),
		L:      make([]float64, T),
		Yn:     make([]float64, T),
		W:      make([]float64, T),
	}
	sim.Delta[0] = 1
	sim.R[0] = 1

	// Shock paths start at zero with fresh standard-normal innovations.
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	procs := p.shockProcesses()
	for t := 0; t < T-1; t++ {
		for s := 0; s < NumShocks; s++ {
			next := procs[s].Rho*sim.Shocks.At(t, s) + procs[s].Sigma*norm.Rand()
			sim.Shocks.Set(t+1, s, next)
		}
	}

	state := mat.NewDense(1, StateDim, nil)
	for t := 0; t < T; t++ {
		state.Set(0, 0, math.Log(sim.R[t]))
		state.Set(0, 1, math.Log(sim.Delta[t]))
		for s := 0; s < NumShocks; s++ {
			state.Set(0, 2+s, sim.Shocks.At(t, s))
		}
		basis := PolynomialBasis(state, p.Degree)
		ctrl, err := evalControls(basis, coef)
		if err != nil {
			return nil, err
		}
		sim.S[t] = ctrl.At(0, 0)
		sim.F[t] = ctrl.At(0, 1)
		sim.C[t] = math.Pow(ctrl.At(0, 2), -1/p.Gamma)

		fl := EquilibriumStep(p, sim.S[t], sim.F[t], sim.C[t],
			sim.Delta[t], sim.R[t],
			sim.Shocks.At(t, ShockG), sim.Shocks.At(t, ShockA),
			sim.Shocks.At(t, ShockL), sim.Shocks.At(t, ShockR))

		sim.Pi[t] = fl.Pi
		sim.Y[t] = fl.Y
		sim.L[t] = fl.L
		sim.Yn[t] = fl.Yn
		sim.Delta[t+1] = fl.Delta
		sim.R[t+1] = fl.R

		// Real wage from the household labor supply condition.
		sim.W[t] = math.Exp(sim.Shocks.At(t, ShockL)) *
			math.Pow(sim.L[t], p.Vartheta) * math.Pow(sim.C[t], p.Gamma)
	}
	return sim, nil
}
