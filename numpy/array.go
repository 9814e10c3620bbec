// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/tensor"
)

// NDArray is a dense n-dimensional array.
//
// The zero value is not usable; create arrays with Array, Zeros, Arange and
// the other constructors.
type NDArray struct {
	raw *tensor.RawTensor
}

func wrap(raw *tensor.RawTensor) *NDArray {
	return &NDArray{raw: raw}
}

// FromRaw wraps raw in an NDArray without copying. raw must not be used
// elsewhere afterwards.
func FromRaw(raw *tensor.RawTensor) *NDArray {
	return wrap(raw)
}

// Raw returns the underlying storage. Mutating it mutates the array.
func (a *NDArray) Raw() *tensor.RawTensor {
	return a.raw
}

// Shape returns a copy of the array's dimensions.
func (a *NDArray) Shape() []int {
	return a.raw.Shape().Clone()
}

// Strides returns the row-major element strides of each axis.
func (a *NDArray) Strides() []int {
	return append([]int(nil), a.raw.Strides()...)
}

// DType returns the element type.
func (a *NDArray) DType() DType {
	return a.raw.DType()
}

// Ndim returns the number of dimensions.
func (a *NDArray) Ndim() int {
	return a.raw.Rank()
}

// Size returns the number of elements.
func (a *NDArray) Size() int {
	return a.raw.NumElements()
}

// Nbytes returns the size of the element buffer in bytes.
func (a *NDArray) Nbytes() int {
	return a.raw.ByteSize()
}

// Len returns the extent of the first axis, or 0 for a rank-0 array.
func (a *NDArray) Len() int {
	if a.raw.Rank() == 0 {
		return 0
	}
	return a.raw.Shape()[0]
}

// Copy returns a deep copy of the array.
func (a *NDArray) Copy() *NDArray {
	return wrap(a.raw.Clone())
}

// Astype returns a copy of the array converted to dtype.
// Floats convert to integers by truncation toward zero.
func (a *NDArray) Astype(dtype DType) (*NDArray, error) {
	if !dtype.IsValid() {
		return nil, errors.Wrapf(ErrDtype, "astype: invalid dtype %d", int(dtype))
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.Cast(a.raw, dtype) })
}

// scalarKind reports the kind of a Go scalar, and false if v is not one.
func scalarKind(v any) (tensor.Kind, bool) {
	switch v.(type) {
	case bool:
		return tensor.KindBool, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return tensor.KindInt, true
	case float32, float64:
		return tensor.KindFloat, true
	}
	return 0, false
}

// toRaw converts an operand into storage: arrays are used as is (and must
// not be modified), anything else is parsed as a literal.
func toRaw(v any) (*tensor.RawTensor, error) {
	switch x := v.(type) {
	case *NDArray:
		if x == nil || x.raw == nil {
			return nil, errors.Wrap(ErrDtype, "nil array operand")
		}
		return x.raw, nil
	case *tensor.RawTensor:
		if x == nil {
			return nil, errors.Wrap(ErrDtype, "nil array operand")
		}
		return x, nil
	}
	return tensor.FromLiteral(v)
}

// binaryOperands resolves two operands. A Go scalar takes its literal dtype
// (bool, default int or default float) and promotes like any other array.
func binaryOperands(x, y any) (a, b *tensor.RawTensor, err error) {
	if a, err = toRaw(x); err != nil {
		return nil, nil, err
	}
	if b, err = toRaw(y); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

type binaryKernel func(be tensor.Backend, a, b *tensor.RawTensor) *tensor.RawTensor

type unaryKernel func(be tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor

func binary(x, y any, kernel binaryKernel) (*NDArray, error) {
	a, b, err := binaryOperands(x, y)
	if err != nil {
		return nil, err
	}
	be := backend()
	return run(func() *tensor.RawTensor { return kernel(be, a, b) })
}

func unary(x any, kernel unaryKernel) (*NDArray, error) {
	raw, err := toRaw(x)
	if err != nil {
		return nil, err
	}
	be := backend()
	return run(func() *tensor.RawTensor { return kernel(be, raw) })
}
