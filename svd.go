// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.30
//

package golsq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Thin SVD of A
// - Singular values come back in non-increasing order
func DecompSVD(A mat.Matrix) (*mat.SVD, error) {
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		n, m := A.Dims()
		return nil, fmt.Errorf("SVD factorization of A(%d x %d) failed: %w", n, m, ErrSingularMatrix)
	}
	return &svd, nil
}

// Condition number from an SVD decomposition
// - Ratio of the largest to the smallest singular value
// - Rank deficiency gives +Inf, or a finite value near 1/eps when the
//   backend rounds the smallest singular value to a tiny non-zero
// - NaN for an identically zero (or empty) spectrum
func CondNumSVD(svd *mat.SVD) float64 {
	s := svd.Values(nil)
	if len(s) == 0 {
		return math.NaN()
	}
	return s[0] / s[len(s)-1]
}

// Condition number of a matrix (via SVD decomposition)
func CondNum(A mat.Matrix) (float64, error) {
	svd, err := DecompSVD(A)
	if err != nil {
		return math.Inf(1), err
	}
	return CondNumSVD(svd), nil
}
