// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.24
//

package golsq

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Covariance including the effect of consider parameters
// - Pn = (P0inv + H^t W H)^-1 is the noise-only covariance; the call
//   fails with ErrSingularMatrix when it is not invertible
// - S = Pn (W H)^t maps consider-parameter errors into the estimate
// - Returns Pn + (S Hc) Pc (Hc^t S^t): the uncertainty of the solved
//   parameters inflated by the uncertainty of the unsolved ones
// - Hc has one row per observation and one column per consider
//   parameter; Pc is the consider covariance (square, size cols(Hc))
// - nil w means unit weights, nil P0inv means no a priori constraint,
//   nil opt means DefaultOptions
func CovWithConsider(H mat.Matrix, w mat.Vector, P0inv mat.Matrix, Hc, Pc mat.Matrix, opt *Options) (*mat.Dense, error) {
	o := opt.withDefaults()

	n, m := H.Dims()
	nc, kc := Hc.Dims()
	if nc != n {
		return nil, fmt.Errorf("%w: H(%d x %d), Hc(%d x %d)", ErrDimensionMismatch, n, m, nc, kc)
	}
	rp, cp := Pc.Dims()
	if rp != kc || cp != kc {
		return nil, fmt.Errorf("%w: Pc(%d x %d), Hc has %d columns", ErrDimensionMismatch, rp, cp, kc)
	}
	if w == nil {
		w = unitWeights(n)
	}

	N, err := InvUpdatedCov(H, w, P0inv)
	if err != nil {
		return nil, err
	}

	// Pn (N^-1), the covariance ignoring consider parameters
	var Pn mat.Dense
	if err := Pn.Inverse(N); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			// Near-singular but solvable: advisory, keep the result
			o.Sink.Warnf("consider covariance: condition number of inverse covariance is %e\n", float64(cond))
		} else {
			return nil, fmt.Errorf("inverse covariance N(%d x %d) is not invertible: %w", m, m, ErrSingularMatrix)
		}
	}

	// S (Pn (W H)^t)
	WH, err := WeightInfoMat(H, w)
	if err != nil {
		return nil, err
	}
	var S mat.Dense
	S.Mul(&Pn, WH.T())

	// Pn + (S Hc) Pc (Hc^t S^t)
	var SHc mat.Dense
	SHc.Mul(&S, Hc)
	var SHcPc mat.Dense
	SHcPc.Mul(&SHc, Pc)
	var infl mat.Dense
	infl.Mul(&SHcPc, SHc.T())

	var cov mat.Dense
	cov.Add(&Pn, &infl)
	return &cov, nil
}
