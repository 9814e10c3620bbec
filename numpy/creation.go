// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/tensor"
)

// Array creates an array from a Go scalar, an *NDArray (copied) or an
// arbitrarily nested slice or array literal.
//
// The shape is inferred from the nesting; siblings of different lengths fail
// with ErrRaggedShape. The dtype is bool for all-bool leaves, the default int
// for integer (and bool) leaves and the default float as soon as one leaf is
// a float.
//
// Example:
//
//	a, _ := numpy.Array([][]float64{{1, 2}, {3, 4}})      // float64 (2, 2)
//	b, _ := numpy.Array([]any{[]any{1, 2}, []any{3, 4}}) // default int (2, 2)
//	c, _ := numpy.Array(true)                            // bool ()
func Array(value any) (*NDArray, error) {
	if x, ok := value.(*NDArray); ok {
		if x == nil {
			return nil, errors.Wrap(ErrDtype, "array: nil array")
		}
		return x.Copy(), nil
	}
	raw, err := tensor.FromLiteral(value)
	if err != nil {
		return nil, errors.WithMessage(err, "array")
	}
	return wrap(raw), nil
}

// ArrayOf is Array followed by a conversion to dtype.
func ArrayOf(value any, dtype DType) (*NDArray, error) {
	a, err := Array(value)
	if err != nil {
		return nil, err
	}
	if a.DType() == dtype {
		return a, nil
	}
	return a.Astype(dtype)
}

// newFilled allocates an array of the default float dtype filled with value.
func newFilled(shape []int, value float64) (*NDArray, error) {
	raw, err := tensor.NewRaw(tensor.Shape(shape), tensor.CurrentConfig().DefaultFloat)
	if err != nil {
		return nil, err
	}
	if value != 0 {
		switch raw.DType() {
		case tensor.Float32:
			data := raw.AsFloat32()
			for i := range data {
				data[i] = float32(value)
			}
		default:
			data := raw.AsFloat64()
			for i := range data {
				data[i] = value
			}
		}
	}
	return wrap(raw), nil
}

// Zeros returns a default float array of the given shape filled with 0.
func Zeros(shape ...int) (*NDArray, error) {
	return newFilled(shape, 0)
}

// Ones returns a default float array of the given shape filled with 1.
func Ones(shape ...int) (*NDArray, error) {
	return newFilled(shape, 1)
}

// Full returns a default float array of the given shape filled with value,
// which may be any Go scalar.
func Full(shape []int, value any) (*NDArray, error) {
	if _, ok := scalarKind(value); !ok {
		return nil, errors.Wrapf(ErrDtype, "full: fill value must be a scalar, got %T", value)
	}
	fill, err := ArrayOf(value, tensor.CurrentConfig().DefaultFloat)
	if err != nil {
		return nil, err
	}
	if err := tensor.Shape(shape).Validate(); err != nil {
		return nil, err
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.BroadcastTo(fill.raw, tensor.Shape(shape).Clone()) })
}

// Identity returns the n×n default float identity matrix.
func Identity(n int) (*NDArray, error) {
	a, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := a.Set(1, i, i); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Arange returns evenly spaced values in [start, stop).
//
//	Arange(stop)
//	Arange(start, stop)
//	Arange(start, stop, step)
//
// Integer arguments give the default int dtype; any float argument gives the
// default float. The length is max(0, ceil((stop-start)/step)). A zero step
// or a wrong argument count fails with ErrShape.
func Arange(args ...any) (*NDArray, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, errors.Wrapf(ErrShape, "arange: expected 1 to 3 arguments, got %d", len(args))
	}

	isFloat := false
	for _, arg := range args {
		kind, ok := scalarKind(arg)
		if !ok {
			return nil, errors.Wrapf(ErrDtype, "arange: argument must be a scalar, got %T", arg)
		}
		isFloat = isFloat || kind == tensor.KindFloat
	}
	if isFloat {
		return arangeFloat(args)
	}
	return arangeInt(args)
}

func arangeBounds[T int64 | float64](args []T) (start, stop, step T) {
	step = 1
	switch len(args) {
	case 1:
		stop = args[0]
	case 2:
		start, stop = args[0], args[1]
	default:
		start, stop, step = args[0], args[1], args[2]
	}
	return start, stop, step
}

func arangeInt(args []any) (*NDArray, error) {
	values := make([]int64, len(args))
	for i, arg := range args {
		v, err := ArrayOf(arg, Int64)
		if err != nil {
			return nil, err
		}
		values[i] = v.raw.AsInt64()[0]
	}
	start, stop, step := arangeBounds(values)
	if step == 0 {
		return nil, errors.Wrap(ErrShape, "arange: step must not be zero")
	}

	n := int64(0)
	if span := stop - start; (span > 0 && step > 0) || (span < 0 && step < 0) {
		// Ceiling division for same-sign operands.
		n = (span + step - sign(step)) / step
	}
	raw, err := tensor.NewRaw(tensor.Shape{int(n)}, Int64)
	if err != nil {
		return nil, err
	}
	data := raw.AsInt64()
	for i := range data {
		data[i] = start + int64(i)*step
	}
	return wrap(raw).Astype(tensor.CurrentConfig().DefaultInt)
}

func sign(v int64) int64 {
	if v < 0 {
		return -1
	}
	return 1
}

func arangeFloat(args []any) (*NDArray, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := ArrayOf(arg, Float64)
		if err != nil {
			return nil, err
		}
		values[i] = v.raw.AsFloat64()[0]
	}
	start, stop, step := arangeBounds(values)
	if step == 0 {
		return nil, errors.Wrap(ErrShape, "arange: step must not be zero")
	}

	n := math.Ceil((stop - start) / step)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, errors.Wrapf(ErrShape, "arange: cannot compute length for (%g, %g, %g)", start, stop, step)
	}
	raw, err := tensor.NewRaw(tensor.Shape{max(int(n), 0)}, Float64)
	if err != nil {
		return nil, err
	}
	data := raw.AsFloat64()
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return wrap(raw).Astype(tensor.CurrentConfig().DefaultFloat)
}

// Linspace returns num evenly spaced default float values from start to stop.
// With endpoint the spacing is (stop-start)/(num-1) and the last value is
// exactly stop; without it the spacing is (stop-start)/num and stop is excluded.
func Linspace(start, stop float64, num int, endpoint bool) (*NDArray, error) {
	if num < 0 {
		return nil, errors.Wrapf(ErrShape, "linspace: number of samples %d must be non-negative", num)
	}
	raw, err := tensor.NewRaw(tensor.Shape{num}, Float64)
	if err != nil {
		return nil, err
	}

	div := num
	if endpoint {
		div = num - 1
	}
	data := raw.AsFloat64()
	if div > 0 {
		step := (stop - start) / float64(div)
		for i := range data {
			data[i] = start + float64(i)*step
		}
	} else if num > 0 {
		data[0] = start
	}
	if endpoint && num > 1 {
		data[num-1] = stop
	}
	return wrap(raw).Astype(tensor.CurrentConfig().DefaultFloat)
}
