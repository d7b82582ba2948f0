// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.24
//

package golsq

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Perform one least squares adjustment from the information matrix,
// weights and residuals, as is typically done in orbit determination
// - dx solves (P0inv + H^t W H) dx = H^t W r
// - Returns the inverse covariance N = P0inv + H^t W H alongside the
//   correction; the caller inverts N if the covariance itself is needed
// - nil w means unit weights, nil P0inv means no a priori constraint,
//   nil opt means DefaultOptions
func Adjust(H mat.Matrix, r, w mat.Vector, P0inv mat.Matrix, opt *Options) (dx mat.Vector, invCov *mat.Dense, err error) {

	n, m := H.Dims()
	if n != r.Len() {
		return nil, nil, fmt.Errorf("%w: H(%d x %d), r(%d x 1)", ErrDimensionMismatch, n, m, r.Len())
	}
	if w == nil {
		w = unitWeights(n)
	}
	if n != w.Len() {
		return nil, nil, fmt.Errorf("%w: H(%d x %d), w(%d x 1)", ErrDimensionMismatch, n, m, w.Len())
	}

	// g (H^t (w o r))
	var wr mat.VecDense
	wr.MulElemVec(w, r)
	var g mat.VecDense
	g.MulVec(H.T(), &wr)

	// N (P0inv + H^t W H)
	N, err := InvUpdatedCov(H, w, P0inv)
	if err != nil {
		return nil, nil, err
	}

	// Solve N dx = g
	x, err := SolveSVD(N, &g, opt)
	if err != nil {
		return nil, nil, err
	}
	return x, N, nil
}

func unitWeights(n int) mat.Vector {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0
	}
	return mat.NewVecDense(n, w)
}
