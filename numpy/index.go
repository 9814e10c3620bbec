// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/tensor"
)

// Get returns a copy of the sub-array at the leading indices: a[i], a[i, j]
// and so on. Negative indices count from the end; out of range indices fail
// with ErrIndex. Indexing every axis yields a rank-0 array.
func (a *NDArray) Get(indices ...int) (*NDArray, error) {
	be := backend()
	return run(func() *tensor.RawTensor { return be.Index(a.raw, indices) })
}

// Item returns a single element as a Go value: bool, int64 or float64
// depending on the dtype kind. Without indices the array must hold exactly
// one element; otherwise every axis must be indexed.
func (a *NDArray) Item(indices ...int) (any, error) {
	switch {
	case len(indices) == 0 && a.Size() != 1:
		return nil, errors.Wrapf(ErrIndex, "item: can only convert an array of size 1, got size %d", a.Size())
	case len(indices) != 0 && len(indices) != a.Ndim():
		return nil, errors.Wrapf(ErrIndex, "item: expected %d indices, got %d", a.Ndim(), len(indices))
	}
	offset := 0
	if len(indices) > 0 {
		var err error
		if offset, err = a.raw.FlatIndex(indices); err != nil {
			return nil, errors.WithMessage(err, "item")
		}
	}
	return elementAt(a.raw, offset), nil
}

// elementAt returns the element at flat offset as bool, int64 or float64.
func elementAt(raw *tensor.RawTensor, offset int) any {
	switch raw.DType() {
	case tensor.Bool:
		return raw.AsBool()[offset]
	case tensor.Int8:
		return int64(raw.AsInt8()[offset])
	case tensor.Int16:
		return int64(raw.AsInt16()[offset])
	case tensor.Int32:
		return int64(raw.AsInt32()[offset])
	case tensor.Int64:
		return raw.AsInt64()[offset]
	case tensor.Float32:
		return float64(raw.AsFloat32()[offset])
	default:
		return raw.AsFloat64()[offset]
	}
}

// Set assigns value to the sub-array at the leading indices, in place.
// value may be a Go scalar, a nested literal or an *NDArray; it is converted
// to the array's dtype and broadcast to the sub-array shape. On error the
// array is left unchanged.
func (a *NDArray) Set(value any, indices ...int) error {
	raw, err := toRaw(value)
	if err != nil {
		return err
	}

	be := backend()
	updated, err := run(func() *tensor.RawTensor { return be.SetIndex(a.raw, indices, raw) })
	if err != nil {
		return err
	}
	a.raw.Assign(updated.raw)
	return nil
}

// ToList returns the array as nested []any values holding bool, int64 or
// float64 elements. A rank-0 array returns its single element.
func (a *NDArray) ToList() any {
	if a.raw.Rank() == 0 {
		return elementAt(a.raw, 0)
	}
	offset := 0
	return toList(a.raw, 0, &offset)
}

func toList(raw *tensor.RawTensor, axis int, offset *int) []any {
	n := raw.Shape()[axis]
	out := make([]any, n)
	for i := range out {
		if axis == raw.Rank()-1 {
			out[i] = elementAt(raw, *offset)
			*offset++
		} else {
			out[i] = toList(raw, axis+1, offset)
		}
	}
	return out
}
