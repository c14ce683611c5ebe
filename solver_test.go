package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// TestSeedCoefficients verifies the degree-1 seeding invariant: the
// constant-term row carries (S, F, C^-gamma) and every other entry the
// small seeding constant.
func TestSeedCoefficients(t *testing.T) {
	p := DefaultParameters()
	ss := NewSteadyState(p)
	n := NumBasisTerms(StateDim, 1)

	coef := seedCoefficients(p, ss, n)

	require.Equal(t, ss.S, coef.At(0, 0))
	require.Equal(t, ss.F, coef.At(0, 1))
	require.Equal(t, math.Pow(ss.C, -p.Gamma), coef.At(0, 2))
	for r := 1; r < n; r++ {
		for c := 0; c < NumControls; c++ {
			assert.Equal(t, seedValue, coef.At(r, c))
		}
	}
}

// TestSolve_DegenerateOneIteration runs the degenerate case: all shock
// standard deviations zero, full update (damp=1) and a tolerance above the
// first convergence metric. The quadrature collapses to a single node, the
// metric is exactly 3 on the first pass (each control contributes a mean
// relative change of one against the +Inf initialization) and the loop must
// terminate after one iteration.
func TestSolve_DegenerateOneIteration(t *testing.T) {
	p := DefaultParameters()
	p.NuR.Sigma, p.NuA.Sigma, p.NuL.Sigma = 0, 0, 0
	p.NuU.Sigma, p.NuB.Sigma, p.NuG.Sigma = 0, 0, 0
	p.Degree = 1
	p.Damp = 1
	p.Tol = 4
	p.GridSize = 50

	ss := NewSteadyState(p)
	g, err := BuildGrid(p, rand.NewSource(3))
	require.NoError(t, err)
	require.Len(t, g.Weights, 1, "degenerate covariance collapses the rule")

	res, err := Solve(p, ss, g)
	require.NoError(t, err)
	require.Len(t, res.Stages, 1)
	assert.Equal(t, 1, res.Stages[0].Iterations)
	assert.Equal(t, 3.0, res.Stages[0].FinalDiff)
	assert.GreaterOrEqual(t, res.Stages[0].FinalDiff, 0.0)
}

// TestSolve_IterationCap verifies that exceeding MaxIter surfaces a
// distinguishable non-convergence error carrying the stage degree.
func TestSolve_IterationCap(t *testing.T) {
	p := DefaultParameters()
	p.Degree = 1
	p.GridSize = 50
	p.Tol = 1e-14
	p.MaxIter = 2

	ss := NewSteadyState(p)
	g, err := BuildGrid(p, rand.NewSource(3))
	require.NoError(t, err)

	_, err = Solve(p, ss, g)
	require.ErrorIs(t, err, ErrNotConverged)

	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Degree)
	assert.Equal(t, 2, se.Iteration)
}

// TestSolve_DegreeOneConverges fits a degree-1 approximation with the
// baseline shocks and checks convergence and the shape of the output.
func TestSolve_DegreeOneConverges(t *testing.T) {
	p := DefaultParameters()
	p.Degree = 1
	p.GridSize = 100
	p.Tol = 1e-6
	p.MaxIter = 20000

	ss := NewSteadyState(p)
	g, err := BuildGrid(p, rand.NewSource(4))
	require.NoError(t, err)

	res, err := Solve(p, ss, g)
	require.NoError(t, err)
	require.Len(t, res.Stages, 1)
	assert.LessOrEqual(t, res.Stages[0].FinalDiff, p.Tol)
	assert.GreaterOrEqual(t, res.Stages[0].FinalDiff, 0.0)

	rows, cols := res.Coef.Dims()
	assert.Equal(t, NumBasisTerms(StateDim, 1), rows)
	assert.Equal(t, NumControls, cols)

	// The converged constant term stays in the neighborhood of the seed.
	assert.InEpsilon(t, ss.S, res.Coef.At(0, 0), 0.15)
	assert.InEpsilon(t, ss.F, res.Coef.At(0, 1), 0.15)
}
