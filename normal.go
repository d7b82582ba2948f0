// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.23
//

package golsq

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Multiply the information matrix by the diagonal weight matrix
// - Row i of H is scaled by w[i] (diag(w) H, without materializing the
//   diagonal matrix)
// - Weights are assumed uncorrelated across observations
func WeightInfoMat(H mat.Matrix, w mat.Vector) (*mat.Dense, error) {
	n, m := H.Dims()
	if n != w.Len() {
		return nil, fmt.Errorf("%w: H(%d x %d), w(%d x 1)", ErrDimensionMismatch, n, m, w.Len())
	}

	WH := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		wi := w.AtVec(i)
		for j := 0; j < m; j++ {
			WH.Set(i, j, wi*H.At(i, j))
		}
	}
	return WH, nil
}

// Inverse of the updated covariance matrix (information form)
// - N = P0inv + H^t W H
// - nil P0inv means no a priori constraint (zero matrix)
// - Symmetric by construction for symmetric P0inv; each batch of
//   observations adds to the prior information
func InvUpdatedCov(H mat.Matrix, w mat.Vector, P0inv mat.Matrix) (*mat.Dense, error) {
	_, m := H.Dims()

	WH, err := WeightInfoMat(H, w)
	if err != nil {
		return nil, err
	}
	var N mat.Dense
	N.Mul(H.T(), WH)

	if P0inv != nil {
		r, c := P0inv.Dims()
		if r != m || c != m {
			return nil, fmt.Errorf("%w: P0inv(%d x %d), H has %d columns", ErrDimensionMismatch, r, c, m)
		}
		N.Add(&N, P0inv)
	}
	return &N, nil
}
