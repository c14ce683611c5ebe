package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NumBasisTerms returns the number of terms in the complete polynomial
// basis of the given total degree in dim variables: C(dim+deg, deg).
func NumBasisTerms(dim, deg int) int {
	n := 1
	for i := 1; i <= deg; i++ {
		n = n * (dim + i) / i
	}
	return n
}

// basisExponents enumerates the exponent vectors of the complete basis in a
// fixed nested order: ascending total degree, lexicographic within a degree.
// The degree-d terms are therefore a prefix of the degree-d' terms for
// d < d', which the solver's continuation seeding relies on.
func basisExponents(dim, deg int) [][]int {
	out := make([][]int, 0, NumBasisTerms(dim, deg))
	cur := make([]int, dim)

	var rec func(pos, rem int)
	rec = func(pos, rem int) {
		if pos == dim-1 {
			cur[pos] = rem
			e := make([]int, dim)
			copy(e, cur)
			out = append(out, e)
			return
		}
		for k := rem; k >= 0; k-- {
			cur[pos] = k
			rec(pos+1, rem-k)
		}
	}
	for total := 0; total <= deg; total++ {
		rec(0, total)
	}
	return out
}

// PolynomialBasis evaluates the complete multivariate monomial basis of the
// given total degree at every row of pts (n x dim), producing the
// n x NumBasisTerms(dim, deg) basis matrix. The first column is the
// constant term.
func PolynomialBasis(pts mat.Matrix, deg int) *mat.Dense {
	n, dim := pts.Dims()
	exps := basisExponents(dim, deg)
	b := mat.NewDense(n, len(exps), nil)

	// Per-row powers of each coordinate up to deg, then term products.
	pow := make([][]float64, dim)
	for d := 0; d < dim; d++ {
		pow[d] = make([]float64, deg+1)
		pow[d][0] = 1
	}
	for i := 0; i < n; i++ {
		for d := 0; d < dim; d++ {
			x := pts.At(i, d)
			for k := 1; k <= deg; k++ {
				pow[d][k] = pow[d][k-1] * x
			}
		}
		for j, e := range exps {
			v := 1.0
			for d, k := range e {
				if k > 0 {
					v *= pow[d][k]
				}
			}
			b.Set(i, j, v)
		}
	}
	return b
}

// evalControls computes the fitted control values basis*coef and checks the
// shapes line up.
func evalControls(basis, coef *mat.Dense) (*mat.Dense, error) {
	_, k := basis.Dims()
	rows, cols := coef.Dims()
	if rows != k || cols != NumControls {
		return nil, fmt.Errorf("%w: basis has %d terms, coefficients are %dx%d",
			ErrDimensionMismatch, k, rows, cols)
	}
	var out mat.Dense
	out.Mul(basis, coef)
	return &out, nil
}
