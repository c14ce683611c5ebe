package main

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// QuadratureAccuracy selects between the economical rule used while fitting
// and the high-order rule used by the accuracy evaluator.
type QuadratureAccuracy int

const (
	// QuadEconomical is the degree-3 monomial rule: a centre node plus two
	// nodes per dimension, 2N+1 nodes in total.
	QuadEconomical QuadratureAccuracy = iota
	// QuadHighAccuracy is the degree-5 monomial rule with 2N^2+1 nodes.
	QuadHighAccuracy
)

// covarianceFactor returns a matrix L with L*L^T = cov. It tries a Cholesky
// factorization first and falls back to the elementwise square root of the
// diagonal when cov is not positive definite (shock covariances here are
// diagonal, possibly with zero variances).
func covarianceFactor(cov *mat.SymDense) *mat.Dense {
	n, _ := cov.Dims()
	var chol mat.Cholesky
	if chol.Factorize(cov) {
		L := mat.NewTriDense(n, mat.Lower, nil)
		chol.LTo(L)
		out := mat.NewDense(n, n, nil)
		out.Copy(L)
		return out
	}
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, math.Sqrt(cov.At(i, i)))
	}
	return out
}

// QuadratureRule returns nodes (k x N) and weights (k) approximating the
// expectation of a function of N jointly Gaussian shocks with the given
// covariance. The economical rule is exact for polynomials of total degree
// 3, the high-accuracy rule for degree 5 (its axial weights are negative
// for N > 4, which is inherent to the rule). A degenerate all-zero
// covariance yields a single node at the origin with unit weight.
func QuadratureRule(cov *mat.SymDense, accuracy QuadratureAccuracy) (*mat.Dense, []float64) {
	n, _ := cov.Dims()

	degenerate := true
	for i := 0; i < n && degenerate; i++ {
		if cov.At(i, i) != 0 {
			degenerate = false
		}
	}
	if degenerate {
		return mat.NewDense(1, n, nil), []float64{1}
	}

	L := covarianceFactor(cov)
	fn := float64(n)
	r := math.Sqrt(fn + 2)

	switch accuracy {
	case QuadHighAccuracy:
		k := 2*n*n + 1
		nodes := mat.NewDense(k, n, nil)
		weights := make([]float64, k)

		weights[0] = 2 / (fn + 2)
		row := 1

		// Axial nodes at +-sqrt(N+2) standard deviations.
		wAxis := (4 - fn) / (2 * (fn + 2) * (fn + 2))
		for d := 0; d < n; d++ {
			for _, sign := range []float64{1, -1} {
				for j := 0; j < n; j++ {
					nodes.Set(row, j, sign*r*L.At(j, d))
				}
				weights[row] = wAxis
				row++
			}
		}

		// Pair nodes at +-sqrt((N+2)/2) along every pair of directions.
		rp := math.Sqrt((fn + 2) / 2)
		wPair := 1 / ((fn + 2) * (fn + 2))
		for d1 := 0; d1 < n; d1++ {
			for d2 := d1 + 1; d2 < n; d2++ {
				for _, s1 := range []float64{1, -1} {
					for _, s2 := range []float64{1, -1} {
						for j := 0; j < n; j++ {
							nodes.Set(row, j, rp*(s1*L.At(j, d1)+s2*L.At(j, d2)))
						}
						weights[row] = wPair
						row++
					}
				}
			}
		}
		return nodes, weights

	default:
		k := 2*n + 1
		nodes := mat.NewDense(k, n, nil)
		weights := make([]float64, k)

		weights[0] = 2 / (fn + 2)
		wAxis := 1 / (2 * (fn + 2))
		row := 1
		for d := 0; d < n; d++ {
			for _, sign := range []float64{1, -1} {
				for j := 0; j < n; j++ {
					nodes.Set(row, j, sign*r*L.At(j, d))
				}
				weights[row] = wAxis
				row++
			}
		}
		return nodes, weights
	}
}
