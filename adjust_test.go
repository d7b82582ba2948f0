// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.25
//

package golsq_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	m "github.com/mkhts/golsq"
)

// TestAdjust_OLSReduction verifies that with unit weights and no prior
// the adjustment equals the closed-form OLS solution (H^t H)^-1 H^t r.
func TestAdjust_OLSReduction(t *testing.T) {
	H := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		2, 1,
	})
	r := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	dx, _, err := m.Adjust(H, r, nil, nil, nil)
	require.NoError(t, err)

	// Closed form
	var HtH mat.Dense
	HtH.Mul(H.T(), H)
	var inv mat.Dense
	require.NoError(t, inv.Inverse(&HtH))
	var Htr mat.VecDense
	Htr.MulVec(H.T(), r)
	var want mat.VecDense
	want.MulVec(&inv, &Htr)

	for i := 0; i < dx.Len(); i++ {
		assert.InDelta(t, want.AtVec(i), dx.AtVec(i), 1e-9)
	}
}

// TestAdjust_ConsistentSystem verifies the 3-observation, 2-parameter
// scenario with an exactly compatible system.
func TestAdjust_ConsistentSystem(t *testing.T) {
	H := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	r := mat.NewVecDense(3, []float64{1, 2, 3})
	w := mat.NewVecDense(3, []float64{1, 1, 1})

	dx, N, err := m.Adjust(H, r, w, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dx.AtVec(0), 1e-9)
	assert.InDelta(t, 2.0, dx.AtVec(1), 1e-9)

	// Post-fit residuals vanish for a compatible system
	var fit mat.VecDense
	fit.MulVec(H, dx)
	for i := 0; i < r.Len(); i++ {
		assert.InDelta(t, r.AtVec(i), fit.AtVec(i), 1e-9)
	}

	// N = H^t H for unit weights and no prior
	want := mat.NewDense(2, 2, []float64{
		2, 1,
		1, 2,
	})
	assert.True(t, mat.EqualApprox(want, N, 1e-12))
}

// TestAdjust_NilWeightsAreUnit verifies nil w matches all-ones weights.
func TestAdjust_NilWeightsAreUnit(t *testing.T) {
	H := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	r := mat.NewVecDense(3, []float64{1, 2, 3})
	ones := mat.NewVecDense(3, []float64{1, 1, 1})

	dxNil, nNil, err := m.Adjust(H, r, nil, nil, nil)
	require.NoError(t, err)
	dxOnes, nOnes, err := m.Adjust(H, r, ones, nil, nil)
	require.NoError(t, err)

	for i := 0; i < dxNil.Len(); i++ {
		assert.Equal(t, dxOnes.AtVec(i), dxNil.AtVec(i))
	}
	assert.True(t, mat.Equal(nOnes, nNil))
}

// TestAdjust_WithPrior verifies the prior pulls the correction toward
// zero: with H = I, r = [1 1] and P0inv = I, N = 2I and dx = [0.5 0.5].
func TestAdjust_WithPrior(t *testing.T) {
	H := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
	r := mat.NewVecDense(2, []float64{1, 1})
	w := mat.NewVecDense(2, []float64{1, 1})
	P0inv := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})

	dx, N, err := m.Adjust(H, r, w, P0inv, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dx.AtVec(0), 1e-12)
	assert.InDelta(t, 0.5, dx.AtVec(1), 1e-12)

	want := mat.NewDense(2, 2, []float64{
		2, 0,
		0, 2,
	})
	assert.True(t, mat.EqualApprox(want, N, 1e-12))
}

// TestAdjust_DimensionMismatch verifies mismatched residual or weight
// lengths fail with ErrDimensionMismatch.
func TestAdjust_DimensionMismatch(t *testing.T) {
	H := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})

	_, _, err := m.Adjust(H, mat.NewVecDense(2, []float64{1, 2}), nil, nil, nil)
	assert.ErrorIs(t, err, m.ErrDimensionMismatch, "short residual vector")

	r := mat.NewVecDense(3, []float64{1, 2, 3})
	_, _, err = m.Adjust(H, r, mat.NewVecDense(2, []float64{1, 1}), nil, nil)
	assert.ErrorIs(t, err, m.ErrDimensionMismatch, "short weight vector")
}

// TestAdjust_ConcurrentCalls verifies independent adjustments can run
// concurrently sharing one capture sink.
func TestAdjust_ConcurrentCalls(t *testing.T) {
	H := mat.NewDense(2, 2, []float64{
		1, 1,
		1, 1.0000001,
	})
	r := mat.NewVecDense(2, []float64{2, 2})
	sink := &m.CaptureSink{}
	opt := m.Options{CheckCondNum: true, MaxCondNum: 1e3, Sink: sink}

	const calls = 8
	var wg sync.WaitGroup
	errs := make([]error, calls)
	for k := 0; k < calls; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			_, _, errs[k] = m.Adjust(H, r, nil, nil, &opt)
		}(k)
	}
	wg.Wait()

	for k := 0; k < calls; k++ {
		assert.NoError(t, errs[k])
	}
	assert.Len(t, sink.Warnings(), calls, "one warning per ill-conditioned solve")
}
