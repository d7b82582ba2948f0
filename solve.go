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

const machEps = 2.220446049250313e-16

// Solve A x = b with SVD, checking the condition number in the process
// - Returns the minimum-norm least-squares solution, so A may be
//   rectangular or rank deficient
// - A condition number above opt.MaxCondNum is advisory only: one
//   warning goes to the sink and the solve proceeds
// - nil opt means DefaultOptions
func SolveSVD(A mat.Matrix, b mat.Vector, opt *Options) (mat.Vector, error) {
	o := opt.withDefaults()

	n, m := A.Dims()
	if n != b.Len() {
		return nil, fmt.Errorf("%w: A(%d x %d), b(%d x 1)", ErrDimensionMismatch, n, m, b.Len())
	}

	svd, err := DecompSVD(A)
	if err != nil {
		return nil, err
	}
	if o.CheckCondNum {
		if c := CondNumSVD(svd); c > o.MaxCondNum {
			o.Sink.Warnf("least squares solve: condition number is %e\n", c)
		}
	}
	return pinvSolve(svd, n, m, b), nil
}

// Apply the pseudo-inverse through the factors: x = V S^+ U^t b
// - Singular values below eps * max(n, m) * s[0] count as zero, which
//   yields the minimum-norm solution on rank-deficient systems
func pinvSolve(svd *mat.SVD, n, m int, b mat.Vector) mat.Vector {
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)
	tol := machEps * float64(max(n, m)) * s[0]

	// c (U^t b), then scale by the inverted singular values
	var c mat.VecDense
	c.MulVec(u.T(), b)
	for i, sv := range s {
		if sv > tol {
			c.SetVec(i, c.AtVec(i)/sv)
		} else {
			c.SetVec(i, 0)
		}
	}

	// x (V c)
	var x mat.VecDense
	x.MulVec(&v, &c)
	return &x
}
