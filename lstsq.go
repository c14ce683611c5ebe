package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// svdRankCutoff is the relative singular-value cutoff for the least-squares
// rank decision.
const svdRankCutoff = 1e-14

// leastSquares solves X*B ~ Y in the least-squares sense for a multi-column
// right-hand side, returning the minimum-norm B (p x cols).
//
// The design matrices here are monomial bases over narrow state intervals,
// so higher-order columns are nearly collinear with lower-order ones and
// cond(X'X) can exceed 1e12. The solve therefore goes through the SVD, whose
// error scales with cond(X) rather than cond(X)^2; rank-deficient systems
// get the minimum-norm solution.
func leastSquares(X, Y *mat.Dense) (*mat.Dense, error) {
	n, p := X.Dims()
	ny, cols := Y.Dims()
	if n != ny {
		return nil, fmt.Errorf("%w: %d design rows vs %d target rows",
			ErrDimensionMismatch, n, ny)
	}

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, fmt.Errorf("least squares: SVD factorization did not converge")
	}

	rank := svd.Rank(svdRankCutoff)
	if rank == 0 {
		// The design matrix is (numerically) all-zero; the minimum-norm
		// solution is B = 0.
		return mat.NewDense(p, cols, nil), nil
	}

	var B mat.Dense
	svd.SolveTo(&B, Y, rank)
	return &B, nil
}
