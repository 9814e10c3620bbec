// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numpy/numpy"
)

func TestArray_Inference(t *testing.T) {
	tests := []struct {
		name    string
		literal any
		shape   []int
		dtype   numpy.DType
	}{
		{"ints", []int{1, 2, 3}, []int{3}, numpy.Int()},
		{"floats", [][]float64{{1.5, 2}, {3, 4}}, []int{2, 2}, numpy.Float()},
		{"bools", []bool{true, false}, []int{2}, numpy.Bool},
		{"mixed", []any{1, 2.5, true}, []int{3}, numpy.Float()},
		{"scalar", 7, []int{}, numpy.Int()},
		{"empty", []float64{}, []int{0}, numpy.Float()},
		{"five dims", [][][][][]float64{{{{{1, 2}, {3, 4}, {5, 6}}}}}, []int{1, 1, 1, 3, 2}, numpy.Float()},
		{"wide ints", []int64{1 << 40}, []int{1}, numpy.Int64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := arr(t, tt.literal)
			assert.Equal(t, tt.shape, a.Shape())
			assert.Equal(t, tt.dtype, a.DType())
		})
	}
}

func TestArray_Properties(t *testing.T) {
	a := arr(t, []int{1, 2, 3})
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 1, a.Ndim())
	assert.Equal(t, []int{3}, a.Shape())
	assert.Equal(t, 3, a.Len())

	b := arr(t, [][][][][]float64{{{{{1.5, -1.5}, {3.5, -3.5}, {5.5, -5.5}}}}})
	assert.Equal(t, []int{1, 1, 1, 3, 2}, b.Shape())
	assert.Equal(t, []int{6, 6, 6, 2, 1}, b.Strides())
	assert.Equal(t, 48, b.Nbytes())
	assert.Equal(t, 1, b.Len())

	assert.Equal(t, 3, arr(t, [][]int{{1, 2}, {3, 4}, {5, 6}}).Len())
	assert.Equal(t, 0, arr(t, 2.5).Len())
}

func TestArray_Ragged(t *testing.T) {
	_, err := numpy.Array([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, numpy.ErrRaggedShape)

	_, err = numpy.Array([]any{1, []int{2}})
	assert.ErrorIs(t, err, numpy.ErrRaggedShape)

	_, err = numpy.Array("text")
	assert.ErrorIs(t, err, numpy.ErrDtype)
}

func TestArray_CopiesInput(t *testing.T) {
	a := arr(t, []int{1, 2, 3})
	b := must.M1(numpy.Array(a))
	require.NoError(t, b.Set(9, 0))
	assertArray(t, []int{1, 2, 3}, a)
	assertArray(t, []int{9, 2, 3}, b)
}

func TestArrayOf(t *testing.T) {
	a := must.M1(numpy.ArrayOf([]int{1, 2}, numpy.Float32))
	assert.Equal(t, numpy.Float32, a.DType())
	assertArray(t, []float64{1, 2}, a)
}

func TestZerosOnesFull(t *testing.T) {
	z := must.M1(numpy.Zeros(2, 3))
	assert.Equal(t, numpy.Float(), z.DType())
	assertArray(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	assertArray(t, [][]float64{{1, 1}, {1, 1}}, must.M1(numpy.Ones(2, 2)))
	assertArray(t, [][]float64{{-1e9}}, must.M1(numpy.Full([]int{1, 1}, -1e9)))
	assertArray(t, []float64{7, 7, 7}, must.M1(numpy.Full([]int{3}, 7)))

	_, err := numpy.Zeros(-1)
	assert.ErrorIs(t, err, numpy.ErrShape)
	_, err = numpy.Full([]int{2}, []int{1, 2})
	assert.ErrorIs(t, err, numpy.ErrDtype)
}

func TestIdentity(t *testing.T) {
	assertArray(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, must.M1(numpy.Identity(3)))
}

func TestArange(t *testing.T) {
	a := must.M1(numpy.Arange(10))
	assert.Equal(t, numpy.Int(), a.DType())
	assertArray(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, a)
	assertArray(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, must.M1(numpy.Arange(1, 10)))
	assertArray(t, []int{1, 3, 5, 7, 9}, must.M1(numpy.Arange(1, 10, 2)))
	assertArray(t, []int{5, 3, 1}, must.M1(numpy.Arange(5, 0, -2)))
	assertArray(t, []int{}, must.M1(numpy.Arange(3, 1)))

	f := must.M1(numpy.Arange(0, 1, 0.25))
	assert.Equal(t, numpy.Float(), f.DType())
	assertArray(t, []float64{0, 0.25, 0.5, 0.75}, f)

	_, err := numpy.Arange(0, 5, 0)
	assert.ErrorIs(t, err, numpy.ErrShape)
	_, err = numpy.Arange()
	assert.ErrorIs(t, err, numpy.ErrShape)
	_, err = numpy.Arange("a")
	assert.ErrorIs(t, err, numpy.ErrDtype)
}

func TestLinspace(t *testing.T) {
	assertArray(t, []float64{0, 0.25, 0.5, 0.75, 1.0}, must.M1(numpy.Linspace(0, 1, 5, true)))
	assertClose(t, []float64{0, 0.2, 0.4, 0.6, 0.8}, must.M1(numpy.Linspace(0, 1, 5, false)))
	assertArray(t, []float64{3}, must.M1(numpy.Linspace(3, 7, 1, true)))
	assertArray(t, []float64{}, must.M1(numpy.Linspace(0, 1, 0, true)))

	_, err := numpy.Linspace(0, 1, -1, true)
	assert.ErrorIs(t, err, numpy.ErrShape)
}

func TestAstype(t *testing.T) {
	a := arr(t, []float64{1.7, -1.7, 0})
	i := must.M1(a.Astype(numpy.Int32))
	assert.Equal(t, numpy.Int32, i.DType())
	assertArray(t, []int{1, -1, 0}, i)

	b := must.M1(a.Astype(numpy.Bool))
	assertArray(t, []bool{true, true, false}, b)

	_, err := a.Astype(numpy.DType(99))
	assert.ErrorIs(t, err, numpy.ErrDtype)
}
