// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// RawTensor is the low-level array representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Strides()
//   - Typed zero-copy data access via AsFloat64(), AsInt64(), etc.
//   - Deep copies via Clone()
//
// Most users should use numpy.NDArray instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()  // Typed access
//	clone := raw.Clone()     // Independent copy
type RawTensor = tensor.RawTensor

// NewRaw allocates a zero-filled RawTensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromLiteral builds a RawTensor from a Go scalar or a nested slice/array,
// inferring its shape and dtype.
func FromLiteral(value any) (*RawTensor, error) {
	return tensor.FromLiteral(value)
}
