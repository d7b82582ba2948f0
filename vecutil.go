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

// ------------------------------------
// Small vector helpers
// ------------------------------------

// Cross-product matrix [v]x, so that [v]x u = v x u
func CrossProdMat(v mat.Vector) (*mat.Dense, error) {
	if v.Len() != 3 {
		return nil, fmt.Errorf("%w: v(%d x 1), need 3 x 1", ErrDimensionMismatch, v.Len())
	}
	x, y, z := v.AtVec(0), v.AtVec(1), v.AtVec(2)
	return mat.NewDense(3, 3, []float64{
		0, -z, y,
		z, 0, -x,
		-y, x, 0,
	}), nil
}

// Cosine of the angle between two vectors
// - Clamped to [-1, 1] so that Acos never sees a rounding overshoot
func CosAngleBetween(a, b mat.Vector) (float64, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: a(%d x 1), b(%d x 1)", ErrDimensionMismatch, a.Len(), b.Len())
	}
	c := mat.Dot(a, b) / (mat.Norm(a, 2) * mat.Norm(b, 2))
	if c >= 1.0 {
		return 1.0, nil
	}
	if c <= -1.0 {
		return -1.0, nil
	}
	return c, nil
}

// Angle between two vectors
func AngleBetween(a, b mat.Vector) (float64, error) {
	c, err := CosAngleBetween(a, b)
	if err != nil {
		return 0, err
	}
	return math.Acos(c), nil
}

// Euclidean norm of the difference a - b
func DiffNorm(a, b mat.Vector) (float64, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: a(%d x 1), b(%d x 1)", ErrDimensionMismatch, a.Len(), b.Len())
	}
	var d mat.VecDense
	d.SubVec(a, b)
	return mat.Norm(&d, 2), nil
}

// Norm of a vector produced by a deferred evaluation
// - f is called exactly once, synchronously
func NormFromFunc(f func() mat.Vector) float64 {
	return mat.Norm(f(), 2)
}

// Sub-block of a vector-valued function of time
// - f is called exactly once with t; elements [from, from+n) of the
//   result are returned (e.g. the velocity block of a 6-state)
func SubVecFromFunc(f func(float64) mat.Vector, t float64, from, n int) (mat.Vector, error) {
	v := f(t)
	if from < 0 || n <= 0 || from+n > v.Len() {
		return nil, fmt.Errorf("%w: v(%d x 1), block [%d, %d)", ErrDimensionMismatch, v.Len(), from, from+n)
	}
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, v.AtVec(from+i))
	}
	return out, nil
}
