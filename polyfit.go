// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.24
//

package golsq

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Least squares polynomial fit of (x, y) samples
// - H[i][j] = x[i]^powers[j], unit weights, no a priori constraint
// - Returns the coefficient per power
func PolyFit(x, y mat.Vector, powers []float64) (mat.Vector, error) {
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("%w: x(%d x 1), y(%d x 1)", ErrDimensionMismatch, x.Len(), y.Len())
	}

	H := mat.NewDense(x.Len(), len(powers), nil)
	for i := 0; i < x.Len(); i++ {
		for j, p := range powers {
			H.Set(i, j, math.Pow(x.AtVec(i), p))
		}
	}

	coef, _, err := Adjust(H, y, nil, nil, nil)
	return coef, err
}

// Least squares polynomial fit of (x -> y) sample pairs
// - Keys are sorted ascending before fitting
func PolyFitMap(xy map[float64]float64, powers []float64) ([]float64, error) {
	if len(xy) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrDimensionMismatch)
	}

	xs := maps.Keys(xy)
	slices.Sort(xs)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = xy[x]
	}

	coef, err := PolyFit(mat.NewVecDense(len(xs), xs), mat.NewVecDense(len(ys), ys), powers)
	if err != nil {
		return nil, err
	}
	out := make([]float64, coef.Len())
	for i := range out {
		out[i] = coef.AtVec(i)
	}
	return out, nil
}
