package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
)

// TestBuildGrid_Shapes verifies the sample bounds, the state stacking and
// the shapes of the basis, quadrature and future-shock blocks.
func TestBuildGrid_Shapes(t *testing.T) {
	p := DefaultParameters()
	p.GridSize = 64
	g, err := BuildGrid(p, rand.NewSource(5))
	require.NoError(t, err)

	require.Equal(t, 64, g.M)
	procs := p.shockProcesses()
	for i := 0; i < g.M; i++ {
		assert.GreaterOrEqual(t, g.R[i], 1.0)
		assert.LessOrEqual(t, g.R[i], 1.05)
		assert.GreaterOrEqual(t, g.Delta[i], 0.95)
		assert.LessOrEqual(t, g.Delta[i], 1.0)
		assert.InDelta(t, math.Log(g.R[i]), g.State.At(i, 0), 1e-15)
		assert.InDelta(t, math.Log(g.Delta[i]), g.State.At(i, 1), 1e-15)
		for s := 0; s < NumShocks; s++ {
			half := 2 * procs[s].Sigma / math.Sqrt(1-procs[s].Rho*procs[s].Rho)
			assert.LessOrEqual(t, math.Abs(g.Shocks.At(i, s)), half+1e-12)
			assert.Equal(t, g.Shocks.At(i, s), g.State.At(i, 2+s))
		}
	}

	_, k1 := g.Basis1.Dims()
	_, kd := g.Basis.Dims()
	assert.Equal(t, NumBasisTerms(StateDim, 1), k1)
	assert.Equal(t, NumBasisTerms(StateDim, p.Degree), kd)

	nNodes, _ := g.Nodes.Dims()
	require.Equal(t, 2*NumShocks+1, nNodes)
	require.Len(t, g.Weights, nNodes)

	// Future shocks follow the AR propagation rho*current + node.
	for s := 0; s < NumShocks; s++ {
		rows, cols := g.Future[s].Dims()
		require.Equal(t, g.M, rows)
		require.Equal(t, nNodes, cols)
		for j := 0; j < cols; j++ {
			want := procs[s].Rho*g.Shocks.At(0, s) + g.Nodes.At(j, s)
			assert.InDelta(t, want, g.Future[s].At(0, j), 1e-15)
		}
	}
}

// TestGridBounds verifies the sampling hyperrectangle: fixed intervals for
// the rate and dispersion, symmetric unconditional-deviation intervals for
// the shocks.
func TestGridBounds(t *testing.T) {
	p := DefaultParameters()
	bounds := gridBounds(p)

	require.Len(t, bounds, StateDim)
	assert.Equal(t, r1.Interval{Min: 1.0, Max: 1.05}, bounds[0])
	assert.Equal(t, r1.Interval{Min: 0.95, Max: 1.0}, bounds[1])
	for i, sp := range p.shockProcesses() {
		half := 2 * sp.Sigma / math.Sqrt(1-sp.Rho*sp.Rho)
		assert.InDelta(t, -half, bounds[2+i].Min, 1e-15)
		assert.InDelta(t, half, bounds[2+i].Max, 1e-15)
	}
}

// TestBuildGrid_Deterministic verifies equal seeds reproduce the same draws
// for both sampling schemes.
func TestBuildGrid_Deterministic(t *testing.T) {
	for _, scheme := range []SamplingScheme{SchemeHalton, SchemePseudoRandom} {
		p := DefaultParameters()
		p.GridSize = 32
		p.Scheme = scheme

		a, err := BuildGrid(p, rand.NewSource(9))
		require.NoError(t, err)
		b, err := BuildGrid(p, rand.NewSource(9))
		require.NoError(t, err)

		for i := 0; i < p.GridSize; i++ {
			for d := 0; d < StateDim; d++ {
				assert.Equal(t, a.State.At(i, d), b.State.At(i, d))
			}
		}
	}
}

// TestBuildGrid_InvalidParameters verifies construction-time rejection.
func TestBuildGrid_InvalidParameters(t *testing.T) {
	p := DefaultParameters()
	p.Damp = 0
	_, err := BuildGrid(p, rand.NewSource(1))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
