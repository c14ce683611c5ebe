package main

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// Bounds of the endogenous-state draws. The shock bounds are +-2 unconditional
// standard deviations around zero.
const (
	rateLo  = 1.0
	rateHi  = 1.05
	dispLo  = 0.95
	dispHi  = 1.0
	sdWidth = 2.0
)

// gridBounds returns the sampling hyperrectangle in the order
// [rate, dispersion, six shocks].
func gridBounds(p ParameterSet) []r1.Interval {
	bounds := make([]r1.Interval, StateDim)
	bounds[0] = r1.Interval{Min: rateLo, Max: rateHi}
	bounds[1] = r1.Interval{Min: dispLo, Max: dispHi}
	for i, sp := range p.shockProcesses() {
		half := sdWidth * sp.Sigma / math.Sqrt(1-sp.Rho*sp.Rho)
		bounds[2+i] = r1.Interval{Min: -half, Max: half}
	}
	return bounds
}

// BuildGrid draws the fitting sample, evaluates the degree-1 and
// target-degree basis matrices at the stacked current state, computes the
// economical quadrature rule from the shock covariance, and propagates each
// shock one step ahead at every quadrature node.
func BuildGrid(p ParameterSet, src rand.Source) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := p.GridSize
	bounds := gridBounds(p)

	var sampler Sampler
	if p.Scheme == SchemePseudoRandom {
		sampler = NewUniformSampler(bounds, src)
	} else {
		sampler = NewHaltonSampler(bounds, src)
	}
	draws := mat.NewDense(m, StateDim, nil)
	sampler.Sample(draws)

	g := &Grid{
		M:      m,
		R:      make([]float64, m),
		Delta:  make([]float64, m),
		Shocks: mat.NewDense(m, NumShocks, nil),
		State:  mat.NewDense(m, StateDim, nil),
	}
	for i := 0; i < m; i++ {
		g.R[i] = draws.At(i, 0)
		g.Delta[i] = draws.At(i, 1)
		g.State.Set(i, 0, math.Log(g.R[i]))
		g.State.Set(i, 1, math.Log(g.Delta[i]))
		for s := 0; s < NumShocks; s++ {
			v := draws.At(i, 2+s)
			g.Shocks.Set(i, s, v)
			g.State.Set(i, 2+s, v)
		}
	}

	g.Basis1 = PolynomialBasis(g.State, 1)
	g.Basis = PolynomialBasis(g.State, p.Degree)

	g.Nodes, g.Weights = QuadratureRule(p.ShockCovariance(), QuadEconomical)
	k, _ := g.Nodes.Dims()

	procs := p.shockProcesses()
	for s := 0; s < NumShocks; s++ {
		fut := mat.NewDense(m, k, nil)
		for i := 0; i < m; i++ {
			cur := g.Shocks.At(i, s)
			for j := 0; j < k; j++ {
				fut.Set(i, j, procs[s].Rho*cur+g.Nodes.At(j, s))
			}
		}
		g.Future[s] = fut
	}
	return g, nil
}
