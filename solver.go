package main

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// seedValue initializes every non-constant coefficient at the first stage.
const seedValue = 1e-5

// seedCoefficients builds the degree-1 initial guess: every entry at a small
// constant except the constant-term row, which carries the steady-state
// values of S, F and C^(-gamma).
func seedCoefficients(p ParameterSet, ss SteadyState, nTerms int) *mat.Dense {
	coef := mat.NewDense(nTerms, NumControls, nil)
	for r := 0; r < nTerms; r++ {
		for c := 0; c < NumControls; c++ {
			coef.Set(r, c, seedValue)
		}
	}
	coef.Set(0, 0, ss.S)
	coef.Set(0, 1, ss.F)
	coef.Set(0, 2, math.Pow(ss.C, -p.Gamma))
	return coef
}

// relChange is the mean absolute relative change between two control arrays.
func relChange(cur, old []float64) float64 {
	sum := 0.0
	for i := range cur {
		sum += math.Abs(1 - cur[i]/old[i])
	}
	return sum / float64(len(cur))
}

// Solve fits the three policy functions by damped time iteration with
// degree escalation: a degree-1 stage supplies the initial guess and each
// later stage is warm-started by regressing the previous stage's final
// expectation targets on the previous stage's basis matrix (the new rows of
// the higher-degree coefficient matrix start at zero; see DESIGN.md), then
// refined with the new basis until the summed mean absolute relative change
// of the control values drops below tolerance.
func Solve(p ParameterSet, ss SteadyState, g *Grid) (*SolveResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	degrees := []int{1}
	if p.Degree > 1 {
		degrees = append(degrees, p.Degree)
	}

	var (
		coef      *mat.Dense
		lastE     *mat.Dense
		prevBasis *mat.Dense
	)
	res := &SolveResult{}

	for si, deg := range degrees {
		basis := g.Basis
		if deg == 1 {
			basis = g.Basis1
		}
		_, nTerms := basis.Dims()

		if si == 0 {
			coef = seedCoefficients(p, ss, nTerms)
		} else {
			seed, err := leastSquares(prevBasis, lastE)
			if err != nil {
				return nil, &SolveError{Degree: deg, Wrapped: err}
			}
			next := mat.NewDense(nTerms, NumControls, nil)
			pr, _ := seed.Dims()
			for r := 0; r < pr; r++ {
				for c := 0; c < NumControls; c++ {
					next.Set(r, c, seed.At(r, c))
				}
			}
			coef = next
		}

		e, iters, diff, err := timeIterate(p, g, basis, deg, coef)
		if err != nil {
			return nil, err
		}
		res.Stages = append(res.Stages, StageStats{Degree: deg, Iterations: iters, FinalDiff: diff})
		lastE = e
		prevBasis = basis
	}

	res.Coef = coef
	return res, nil
}

// timeIterate runs the fixed-point loop of one continuation stage, updating
// coef in place. It returns the expectation-target array of the converged
// iteration, which seeds the next stage.
func timeIterate(p ParameterSet, g *Grid, basis *mat.Dense, deg int, coef *mat.Dense) (*mat.Dense, int, float64, error) {
	m := g.M
	k := len(g.Weights)
	betaTheta := p.Beta * p.Theta

	s0 := make([]float64, m)
	f0 := make([]float64, m)
	c0 := make([]float64, m)
	mu0 := make([]float64, m)
	sOld := make([]float64, m)
	fOld := make([]float64, m)
	cOld := make([]float64, m)
	for i := 0; i < m; i++ {
		sOld[i] = math.Inf(1)
		fOld[i] = math.Inf(1)
		cOld[i] = math.Inf(1)
	}

	flows := make([]Flow, m)
	eS := make([]float64, m)
	eF := make([]float64, m)
	eMU := make([]float64, m)
	e := mat.NewDense(m, NumControls, nil)
	future := mat.NewDense(m, StateDim, nil)

	iter := 0
	for {
		iter++
		if p.MaxIter > 0 && iter > p.MaxIter {
			return nil, iter - 1, math.NaN(),
				&SolveError{Degree: deg, Iteration: iter - 1, Wrapped: ErrNotConverged}
		}

		// Current-period controls from the stage's basis matrix; consumption
		// is recovered from fitted marginal utility by the -1/gamma power.
		ctrl, err := evalControls(basis, coef)
		if err != nil {
			return nil, iter, math.NaN(), &SolveError{Degree: deg, Iteration: iter, Wrapped: err}
		}
		for i := 0; i < m; i++ {
			s0[i] = ctrl.At(i, 0)
			f0[i] = ctrl.At(i, 1)
			mu0[i] = ctrl.At(i, 2)
			c0[i] = math.Pow(mu0[i], -1/p.Gamma)
		}

		// Equilibrium-implied quantities on the grid.
		for i := 0; i < m; i++ {
			flows[i] = EquilibriumStep(p, s0[i], f0[i], c0[i],
				g.Delta[i], g.R[i],
				g.Shocks.At(i, ShockG), g.Shocks.At(i, ShockA),
				g.Shocks.At(i, ShockL), g.Shocks.At(i, ShockR))
		}

		// Conditional expectations: one future-state basis per quadrature
		// node, weighted into the three expectation accumulators.
		for i := 0; i < m; i++ {
			eS[i], eF[i], eMU[i] = 0, 0, 0
		}
		for j := 0; j < k; j++ {
			for i := 0; i < m; i++ {
				future.Set(i, 0, math.Log(flows[i].R))
				future.Set(i, 1, math.Log(flows[i].Delta))
				for s := 0; s < NumShocks; s++ {
					future.Set(i, 2+s, g.Future[s].At(i, j))
				}
			}
			fb := PolynomialBasis(future, deg)
			ctrl1, err := evalControls(fb, coef)
			if err != nil {
				return nil, iter, math.NaN(), &SolveError{Degree: deg, Iteration: iter, Wrapped: err}
			}
			w := g.Weights[j]
			for i := 0; i < m; i++ {
				s1 := ctrl1.At(i, 0)
				f1 := ctrl1.At(i, 1)
				mu1 := ctrl1.At(i, 2)
				pi1 := inflationFromRatio(p, s1, f1)
				eS[i] += w * math.Pow(pi1, p.Epsilon) * s1
				eF[i] += w * math.Pow(pi1, p.Epsilon-1) * f1
				eMU[i] += w * math.Exp(g.Future[ShockU].At(i, j)) * mu1 / pi1
			}
		}

		// Expectation-equation targets: pricing numerator, pricing
		// denominator, consumption Euler with the preference-shifter ratio.
		for i := 0; i < m; i++ {
			nuU := g.Shocks.At(i, ShockU)
			nuL := g.Shocks.At(i, ShockL)
			nuA := g.Shocks.At(i, ShockA)
			nuB := g.Shocks.At(i, ShockB)
			e.Set(i, 0, math.Exp(nuU+nuL)/math.Exp(nuA)*
				math.Pow(flows[i].L, p.Vartheta)*flows[i].Y+betaTheta*eS[i])
			e.Set(i, 1, math.Exp(nuU)*mu0[i]*flows[i].Y+betaTheta*eF[i])
			e.Set(i, 2, p.Beta*math.Exp(nuB)/math.Exp(nuU)*flows[i].R*eMU[i])
		}
		for i := 0; i < m; i++ {
			for c := 0; c < NumControls; c++ {
				if v := e.At(i, c); math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, iter, math.NaN(),
						&SolveError{Degree: deg, Iteration: iter, Wrapped: ErrNonFinite}
				}
			}
		}

		coefHat, err := leastSquares(basis, e)
		if err != nil {
			return nil, iter, math.NaN(), &SolveError{Degree: deg, Iteration: iter, Wrapped: err}
		}

		// Damped convex update, in place.
		rows, cols := coef.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				coef.Set(r, c, p.Damp*coefHat.At(r, c)+(1-p.Damp)*coef.At(r, c))
			}
		}

		diff := relChange(s0, sOld) + relChange(f0, fOld) + relChange(c0, cOld)
		copy(sOld, s0)
		copy(fOld, f0)
		copy(cOld, c0)
		if diff <= p.Tol {
			return e, iter, diff, nil
		}
	}
}
