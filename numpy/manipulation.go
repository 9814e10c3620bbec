// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/tensor"
)

// Shape transforms always copy: the result never shares memory with the receiver.

// inferShape resolves a single -1 dimension against size.
func inferShape(op string, shape []int, size int) (tensor.Shape, error) {
	out := tensor.Shape(shape).Clone()
	unknown := -1
	known := 1
	for i, dim := range out {
		switch {
		case dim == -1 && unknown >= 0:
			return nil, errors.Wrapf(ErrShape, "%s: can only specify one unknown dimension", op)
		case dim == -1:
			unknown = i
		case dim < 0:
			return nil, errors.Wrapf(ErrShape, "%s: negative dimension %d", op, dim)
		default:
			known *= dim
		}
	}
	if unknown >= 0 {
		if known == 0 || size%known != 0 {
			return nil, errors.Wrapf(ErrShape, "%s: cannot reshape array of size %d into shape %v", op, size, shape)
		}
		out[unknown] = size / known
	}
	return out, nil
}

// Reshape returns the array's row-major elements under a new shape with the
// same element count. One dimension may be -1 and is then inferred.
func (a *NDArray) Reshape(shape ...int) (*NDArray, error) {
	newShape, err := inferShape("reshape", shape, a.raw.NumElements())
	if err != nil {
		return nil, err
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.Reshape(a.raw, newShape) })
}

// Squeeze removes size-1 axes: all of them, or only the named ones, which
// must have size 1.
func (a *NDArray) Squeeze(axes ...int) (*NDArray, error) {
	shape := a.raw.Shape()
	drop := make([]bool, len(shape))
	if len(axes) == 0 {
		for i, dim := range shape {
			drop[i] = dim == 1
		}
	} else {
		resolved, err := tensor.NormalizeAxes(axes, len(shape))
		if err != nil {
			return nil, errors.WithMessage(err, "squeeze")
		}
		for _, ax := range resolved {
			if shape[ax] != 1 {
				return nil, errors.Wrapf(ErrShape,
					"squeeze: cannot select an axis to squeeze out which has size not equal to one (axis %d has size %d)",
					ax, shape[ax])
			}
			drop[ax] = true
		}
	}

	newShape := make(tensor.Shape, 0, len(shape))
	for i, dim := range shape {
		if !drop[i] {
			newShape = append(newShape, dim)
		}
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.Reshape(a.raw, newShape) })
}

// Transpose permutes the axes. Without arguments the axis order is reversed;
// otherwise axes must be a permutation of 0..Ndim()-1 (negative values count
// from the end). The result is a copy.
func (a *NDArray) Transpose(axes ...int) (*NDArray, error) {
	rank := a.raw.Rank()
	var perm []int
	if len(axes) > 0 {
		perm = make([]int, len(axes))
		for i, ax := range axes {
			if ax < 0 {
				ax += rank
			}
			perm[i] = ax
		}
		if err := tensor.ValidatePermutation(perm, rank); err != nil {
			return nil, errors.WithMessage(err, "transpose")
		}
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.Transpose(a.raw, perm...) })
}

// T returns the transpose with the axis order reversed.
func (a *NDArray) T() (*NDArray, error) {
	return a.Transpose()
}

// Flatten returns a row-major 1-D copy.
func (a *NDArray) Flatten() (*NDArray, error) {
	return a.Reshape(a.raw.NumElements())
}

// Repeat repeats every slice along axis repeats times, contiguously.
// Without an axis the array is flattened first.
//
// Example:
//
//	[1 2 3].Repeat(2)           -> [1 1 2 2 3 3]
//	[[1 2] [3 4]].Repeat(2, 0)  -> [[1 2] [1 2] [3 4] [3 4]]
func (a *NDArray) Repeat(repeats int, axis ...int) (*NDArray, error) {
	if len(axis) > 1 {
		return nil, errors.Wrapf(ErrShape, "repeat: expected at most one axis, got %d", len(axis))
	}
	return a.repeat([]int{repeats}, axis)
}

// RepeatEach repeats slice i along axis repeats[i] times; len(repeats) must
// equal the axis extent.
func (a *NDArray) RepeatEach(repeats []int, axis int) (*NDArray, error) {
	return a.repeat(repeats, []int{axis})
}

func (a *NDArray) repeat(repeats []int, axis []int) (*NDArray, error) {
	for _, r := range repeats {
		if r < 0 {
			return nil, errors.Wrapf(ErrShape, "repeat: negative dimensions are not allowed (%d)", r)
		}
	}
	src := a.raw
	ax := 0
	if len(axis) == 0 {
		src = src.Reshaped(tensor.Shape{src.NumElements()})
	} else {
		var err error
		if ax, err = tensor.NormalizeAxis(axis[0], src.Rank()); err != nil {
			return nil, errors.WithMessage(err, "repeat")
		}
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.Repeat(src, repeats, ax) })
}

// Resize changes the array's shape in place. The row-major elements are kept;
// a larger size pads with zeros and a smaller size truncates. On error the
// array is left unchanged.
func (a *NDArray) Resize(shape ...int) error {
	newShape := tensor.Shape(shape).Clone()
	if err := newShape.Validate(); err != nil {
		return errors.WithMessage(err, "resize")
	}
	be := backend()
	resized, err := run(func() *tensor.RawTensor { return be.Resize(a.raw, newShape) })
	if err != nil {
		return err
	}
	a.raw.Assign(resized.raw)
	return nil
}

// Concatenate joins arrays along an existing axis. Operands are promoted to
// a common dtype; every other dimension must match.
func Concatenate(arrays []*NDArray, axis int) (*NDArray, error) {
	if len(arrays) == 0 {
		return nil, errors.Wrap(ErrShape, "concatenate: need at least one array")
	}
	dt := arrays[0].DType()
	for _, x := range arrays[1:] {
		dt = tensor.Promote(dt, x.DType())
	}
	rank := arrays[0].Ndim()
	ax, err := tensor.NormalizeAxis(axis, rank)
	if err != nil {
		return nil, errors.WithMessage(err, "concatenate")
	}

	be := backend()
	return run(func() *tensor.RawTensor {
		raws := make([]*tensor.RawTensor, len(arrays))
		for i, x := range arrays {
			raws[i] = x.raw
			if x.DType() != dt {
				raws[i] = be.Cast(x.raw, dt)
			}
		}
		return be.Concatenate(raws, ax)
	})
}

// Take returns the slices at indices along the first axis.
// Negative indices count from the end.
func (a *NDArray) Take(indices ...int) (*NDArray, error) {
	if a.raw.Rank() == 0 {
		return nil, errors.Wrap(ErrIndex, "take: cannot index a 0-d array")
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.Take(a.raw, indices, 0) })
}

// Slice returns the slices start, start+step, ... before stop along the
// first axis, with Go-style clamping of out of range bounds. Negative start
// and stop count from the end; step must be positive.
func (a *NDArray) Slice(start, stop, step int) (*NDArray, error) {
	if a.raw.Rank() == 0 {
		return nil, errors.Wrap(ErrIndex, "slice: cannot slice a 0-d array")
	}
	if step <= 0 {
		return nil, errors.Wrapf(ErrShape, "slice: step must be positive, got %d", step)
	}
	n := a.raw.Shape()[0]
	start, stop = clampBound(start, n), clampBound(stop, n)
	var indices []int
	for i := start; i < stop; i += step {
		indices = append(indices, i)
	}
	return a.Take(indices...)
}

func clampBound(v, n int) int {
	if v < 0 {
		v += n
	}
	return min(max(v, 0), n)
}
