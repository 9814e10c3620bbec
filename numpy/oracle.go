// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// Default tolerances of Allclose.
const (
	DefaultRtol = 1e-5
	DefaultAtol = 1e-8
)

// Equal returns x == y element-wise as a bool array.
func Equal(x, y any) (*NDArray, error) { return binary(x, y, tensor.Backend.Equal) }

// NotEqual returns x != y element-wise as a bool array.
func NotEqual(x, y any) (*NDArray, error) { return binary(x, y, tensor.Backend.NotEqual) }

// Less returns x < y element-wise as a bool array.
func Less(x, y any) (*NDArray, error) { return binary(x, y, tensor.Backend.Less) }

// LessEqual returns x <= y element-wise as a bool array.
func LessEqual(x, y any) (*NDArray, error) { return binary(x, y, tensor.Backend.LessEqual) }

// Greater returns x > y element-wise as a bool array.
func Greater(x, y any) (*NDArray, error) { return binary(x, y, tensor.Backend.Greater) }

// GreaterEqual returns x >= y element-wise as a bool array.
func GreaterEqual(x, y any) (*NDArray, error) { return binary(x, y, tensor.Backend.GreaterEqual) }

// Equal returns a == y element-wise.
func (a *NDArray) Equal(y any) (*NDArray, error) { return Equal(a, y) }

// NotEqual returns a != y element-wise.
func (a *NDArray) NotEqual(y any) (*NDArray, error) { return NotEqual(a, y) }

// Truth returns the array's value in a boolean context: true iff every
// element is truthy. An empty array is true.
func (a *NDArray) Truth() bool {
	all := backend().All(a.raw, allAxes(a.raw.Rank()))
	return all.AsBool()[0]
}

func allAxes(rank int) []int {
	axes := make([]int, rank)
	for i := range axes {
		axes[i] = i
	}
	return axes
}

// ArrayEqual reports whether x and y broadcast together and all their
// element pairs are equal. Any error, including a shape mismatch, gives false.
func ArrayEqual(x, y any) bool {
	eq, err := Equal(x, y)
	if err != nil {
		return false
	}
	return eq.Truth()
}

// Allclose reports whether x and y are element-wise equal within the
// default tolerances. See AllcloseTol.
func Allclose(x, y any) bool {
	return AllcloseTol(x, y, DefaultRtol, DefaultAtol)
}

// AllcloseTol reports whether every broadcast element pair satisfies
// a == b or |a - b| <= atol + rtol*|b|. The tolerance grows with |b|, so an
// infinite b accepts any a that is not NaN. NaN never matches. Any error gives
// false.
func AllcloseTol(x, y any, rtol, atol float64) bool {
	a, b, err := binaryOperands(x, y)
	if err != nil {
		return false
	}
	be := backend()
	within, err := run(func() *tensor.RawTensor {
		a64, b64 := be.Cast(a, tensor.Float64), be.Cast(b, tensor.Float64)
		diff := be.Abs(be.Sub(a64, b64))
		tol := be.Add(scalar64(atol), be.Mul(scalar64(rtol), be.Abs(b64)))
		return be.Or(be.Equal(a64, b64), be.LessEqual(diff, tol))
	})
	if err != nil {
		return false
	}
	return within.Truth()
}

func scalar64(v float64) *tensor.RawTensor {
	raw := tensor.MustNewRaw(tensor.Shape{}, tensor.Float64)
	raw.AsFloat64()[0] = v
	return raw
}
