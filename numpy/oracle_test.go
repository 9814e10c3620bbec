// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy_test

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"

	"github.com/born-ml/numpy/numpy"
)

func TestComparisons(t *testing.T) {
	a := arr(t, []int{1, 2, 3})
	assertArray(t, []bool{false, true, false}, must.M1(a.Equal(2)))
	assertArray(t, []bool{true, false, true}, must.M1(a.NotEqual(2)))
	assertArray(t, []bool{true, false, false}, must.M1(numpy.Less(a, 2)))
	assertArray(t, []bool{true, true, false}, must.M1(numpy.LessEqual(a, 2)))
	assertArray(t, []bool{false, false, true}, must.M1(numpy.Greater(a, 2)))
	assertArray(t, []bool{false, true, true}, must.M1(numpy.GreaterEqual(a, 2.0)))
	assertArray(t, []bool{true, false}, must.M1(numpy.Less([]float64{0.5, 3}, []int{1, 2})))

	nan := arr(t, []float64{math.NaN()})
	assertArray(t, []bool{false}, must.M1(nan.Equal(nan)))
	assertArray(t, []bool{true}, must.M1(nan.NotEqual(nan)))

	_, err := a.Equal([]int{1, 2})
	assert.ErrorIs(t, err, numpy.ErrBroadcast)
}

func TestTruth(t *testing.T) {
	assert.True(t, must.M1(arr(t, []int{1, 2}).Equal([]int{1, 2})).Truth())
	assert.False(t, must.M1(arr(t, []int{1, 2}).Equal([]int{1, 3})).Truth())
	assert.True(t, arr(t, []bool{}).Truth())
	assert.False(t, arr(t, 0).Truth())
}

func TestArrayEqual(t *testing.T) {
	assert.True(t, numpy.ArrayEqual([]int{1, 2}, []float64{1, 2}))
	assert.True(t, numpy.ArrayEqual([][]int{{1, 1}}, 1))
	assert.False(t, numpy.ArrayEqual([]int{1, 2}, []int{1, 2, 3}))
	assert.False(t, numpy.ArrayEqual([]int{1, 2}, []int{2, 1}))
	assert.False(t, numpy.ArrayEqual([][]int{{1}, {2}}, "x"))
}

func TestAllclose(t *testing.T) {
	a := arr(t, []float64{1, 2, math.Inf(1)})
	assert.True(t, numpy.Allclose(a, a))
	assert.True(t, numpy.Allclose(a, []float64{1 + 1e-9, 2, math.Inf(1)}))
	assert.False(t, numpy.Allclose(a, []float64{1.001, 2, math.Inf(1)}))
	assert.True(t, numpy.Allclose([]float64{1.633e16}, math.Inf(1)))
	assert.False(t, numpy.Allclose(math.Inf(1), []float64{1.633e16}))
	assert.True(t, numpy.AllcloseTol(a, []float64{1.001, 2, math.Inf(1)}, 1e-2, 0))

	nan := arr(t, []float64{math.NaN()})
	assert.False(t, numpy.Allclose(nan, nan))

	assert.True(t, numpy.Allclose([]int{1, 2}, []float64{1, 2}))
	assert.True(t, numpy.Allclose([][]float64{{1, 1}, {1, 1}}, 1))
	assert.False(t, numpy.Allclose([]int{1, 2}, []int{1, 2, 3}))
}
