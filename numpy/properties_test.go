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

// samples returns arrays of several ranks and dtypes used by the property tests.
func samples(t *testing.T) map[string]*numpy.NDArray {
	return map[string]*numpy.NDArray{
		"int vector":   arr(t, []int{4, -2, 7, 0, 3}),
		"int matrix":   arr(t, [][]int{{1, 5, 2}, {8, -3, 6}}),
		"float cube":   arr(t, [][][]float64{{{1.5, -0.25}, {3, 9.75}}, {{-4.5, 2}, {0.1, 0.2}}}),
		"float 5d":     signed5D(t),
		"float32 rows": must.M1(numpy.ArrayOf([][]float64{{0.3, 0.1, 0.2}}, numpy.Float32)),
		"scalar":       arr(t, 2.5),
	}
}

func TestProperty_AddSubRoundTrip(t *testing.T) {
	for name, a := range samples(t) {
		t.Run(name, func(t *testing.T) {
			for _, s := range []any{3, 1.25} {
				back := must.M1(must.M1(a.Add(s)).Sub(s))
				if a.DType().IsInt() && s == 3 {
					assertArray(t, a, back)
				} else {
					assertClose(t, a, back)
				}
			}
		})
	}
}

func TestProperty_TransposeInvolution(t *testing.T) {
	for name, a := range samples(t) {
		t.Run(name, func(t *testing.T) {
			assertArray(t, a, must.M1(must.M1(a.Transpose()).Transpose()))
		})
	}
}

func TestProperty_ReshapeIdentity(t *testing.T) {
	for name, a := range samples(t) {
		t.Run(name, func(t *testing.T) {
			assertArray(t, a, must.M1(a.Reshape(a.Shape()...)))
			assertArray(t, a, must.M1(must.M1(a.Flatten()).Reshape(a.Shape()...)))
		})
	}
}

func TestProperty_Sort(t *testing.T) {
	for name, a := range samples(t) {
		t.Run(name, func(t *testing.T) {
			once := a.Copy()
			require.NoError(t, once.Sort())
			twice := once.Copy()
			require.NoError(t, twice.Sort())
			assertArray(t, once, twice)

			if a.Ndim() == 1 {
				order := must.M1(a.Argsort())
				indices := make([]int, order.Size())
				for i := range indices {
					indices[i] = int(must.M1(order.Item(i)).(int64))
				}
				assertArray(t, once, must.M1(a.Take(indices...)))
			}
		})
	}
}

func TestProperty_SumAllAxes(t *testing.T) {
	for name, a := range samples(t) {
		t.Run(name, func(t *testing.T) {
			axes := make([]int, a.Ndim())
			for i := range axes {
				axes[i] = i
			}
			assertArray(t, must.M1(a.Sum()), must.M1(a.Sum(axes...)))
		})
	}
}

func TestProperty_MinMeanMax(t *testing.T) {
	for name, a := range samples(t) {
		t.Run(name, func(t *testing.T) {
			low := must.M1(a.Min())
			mean := must.M1(a.Mean())
			high := must.M1(a.Max())
			assert.True(t, must.M1(numpy.LessEqual(low, mean)).Truth(), "min %v > mean %v", low, mean)
			assert.True(t, must.M1(numpy.LessEqual(mean, high)).Truth(), "mean %v > max %v", mean, high)
		})
	}
}

func TestProperty_Commutative(t *testing.T) {
	pairs := []struct {
		name string
		a, b *numpy.NDArray
	}{
		{"same shape", arr(t, []int{1, 2, 3}), arr(t, []int{-4, 5, 6})},
		{"broadcast", arr(t, [][]float64{{1.5}, {2.5}}), arr(t, []int{1, 2, 3})},
		{"scalar", arr(t, 3), arr(t, [][]float64{{0.5, 1}})},
		{"bools", arr(t, []bool{true, false}), arr(t, [][]bool{{true}, {false}})},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			assertArray(t, must.M1(p.a.Add(p.b)), must.M1(p.b.Add(p.a)))
			assertArray(t, must.M1(p.a.Mul(p.b)), must.M1(p.b.Mul(p.a)))
		})
	}
}

func TestProperty_AllcloseReflexive(t *testing.T) {
	for name, a := range samples(t) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, numpy.Allclose(a, a))
		})
	}
}

func TestScenarios(t *testing.T) {
	t.Run("zeros plus one", func(t *testing.T) {
		sum := must.M1(must.M1(numpy.Zeros(2, 2)).Add(1))
		assertArray(t, must.M1(numpy.Ones(2, 2)), sum)
	})
	t.Run("arange with step", func(t *testing.T) {
		assertArray(t, []int{1, 3, 5, 7, 9}, must.M1(numpy.Arange(1, 10, 2)))
	})
	t.Run("matmul", func(t *testing.T) {
		a := arr(t, [][]int{{1, 2}, {3, 4}})
		b := arr(t, [][]int{{5, 6}, {7, 8}})
		assertArray(t, [][]int{{19, 22}, {43, 50}}, must.M1(numpy.MatMul(a, b)))
	})
	t.Run("argsort then sort", func(t *testing.T) {
		a := arr(t, []int{3, 1, 2})
		assertArray(t, []int{1, 2, 0}, must.M1(a.Argsort()))
		require.NoError(t, a.Sort())
		assertArray(t, []int{1, 2, 3}, a)
	})
	t.Run("linspace", func(t *testing.T) {
		assertArray(t, []float64{0, 0.25, 0.5, 0.75, 1}, must.M1(numpy.Linspace(0, 1, 5, true)))
	})
	t.Run("population std", func(t *testing.T) {
		std := must.M1(arr(t, []float64{1.5, 2.5, 3.5}).Std())
		assert.InDelta(t, 0.81649658, must.M1(std.Item()), 1e-8)
	})
}
