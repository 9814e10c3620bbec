// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/tensor"
)

// Reductions take the axes to reduce. No axes reduces every element into a
// rank-0 array; otherwise the named axes (negative values count from the
// end, order does not matter) are removed from the result shape. Out of
// range or duplicate axes fail with ErrShape.

type reduceKernel func(be tensor.Backend, x *tensor.RawTensor, axes []int) *tensor.RawTensor

func (a *NDArray) reduce(op string, axes []int, kernel reduceKernel) (*NDArray, error) {
	resolved, err := a.reduceAxes(axes)
	if err != nil {
		return nil, errors.WithMessage(err, op)
	}
	be := backend()
	return run(func() *tensor.RawTensor { return kernel(be, a.raw, resolved) })
}

func (a *NDArray) reduceAxes(axes []int) ([]int, error) {
	rank := a.raw.Rank()
	if len(axes) == 0 {
		all := make([]int, rank)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	return tensor.NormalizeAxes(axes, rank)
}

// Sum returns the sum over axes. Bool and narrow integer inputs sum in the
// default int; floats keep their dtype.
func (a *NDArray) Sum(axes ...int) (*NDArray, error) {
	return a.reduce("sum", axes, tensor.Backend.Sum)
}

// Prod returns the product over axes, with Sum's result dtype.
func (a *NDArray) Prod(axes ...int) (*NDArray, error) {
	return a.reduce("prod", axes, tensor.Backend.Prod)
}

// Min returns the minimum over axes in the input dtype. NaN propagates.
// Reducing an empty axis fails with ErrShape.
func (a *NDArray) Min(axes ...int) (*NDArray, error) {
	return a.reduce("min", axes, tensor.Backend.Min)
}

// Max returns the maximum over axes in the input dtype. NaN propagates.
// Reducing an empty axis fails with ErrShape.
func (a *NDArray) Max(axes ...int) (*NDArray, error) {
	return a.reduce("max", axes, tensor.Backend.Max)
}

// Mean returns the arithmetic mean over axes: float32 for float32 input,
// float64 otherwise.
func (a *NDArray) Mean(axes ...int) (*NDArray, error) {
	return a.reduce("mean", axes, tensor.Backend.Mean)
}

// Var returns the population variance mean((x - mean(x))**2) over axes.
func (a *NDArray) Var(axes ...int) (*NDArray, error) {
	return a.reduce("var", axes, tensor.Backend.Var)
}

// Std returns the population standard deviation sqrt(Var) over axes.
func (a *NDArray) Std(axes ...int) (*NDArray, error) {
	return a.reduce("std", axes, tensor.Backend.Std)
}

// All reports, as a bool array, whether every element over axes is non-zero.
func (a *NDArray) All(axes ...int) (*NDArray, error) {
	return a.reduce("all", axes, tensor.Backend.All)
}

// Any reports, as a bool array, whether some element over axes is non-zero.
func (a *NDArray) Any(axes ...int) (*NDArray, error) {
	return a.reduce("any", axes, tensor.Backend.Any)
}

// Argmin returns the int64 index of the first minimum. Without an axis the
// index refers to the row-major flattened array.
func (a *NDArray) Argmin(axis ...int) (*NDArray, error) {
	return a.argReduce("argmin", axis, tensor.Backend.Argmin)
}

// Argmax returns the int64 index of the first maximum. Without an axis the
// index refers to the row-major flattened array.
func (a *NDArray) Argmax(axis ...int) (*NDArray, error) {
	return a.argReduce("argmax", axis, tensor.Backend.Argmax)
}

func (a *NDArray) argReduce(op string, axis []int,
	kernel func(be tensor.Backend, x *tensor.RawTensor, axis int) *tensor.RawTensor,
) (*NDArray, error) {
	be := backend()
	switch len(axis) {
	case 0:
		return run(func() *tensor.RawTensor {
			flat := be.Reshape(a.raw, tensor.Shape{a.raw.NumElements()})
			return kernel(be, flat, 0)
		})
	case 1:
		ax, err := tensor.NormalizeAxis(axis[0], a.raw.Rank())
		if err != nil {
			return nil, errors.WithMessage(err, op)
		}
		return run(func() *tensor.RawTensor { return kernel(be, a.raw, ax) })
	}
	return nil, errors.Wrapf(ErrShape, "%s: expected at most one axis, got %d", op, len(axis))
}
