// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// Type aliases for public API

// DataType represents the element type of an array.
type DataType = tensor.DataType

// Data type constants, in promotion order.
const (
	Bool    DataType = tensor.Bool
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Config holds engine-wide defaults.
type Config = tensor.Config

// Error kinds, matched with errors.Is.
var (
	ErrShape       = tensor.ErrShape
	ErrBroadcast   = tensor.ErrBroadcast
	ErrRaggedShape = tensor.ErrRaggedShape
	ErrDtype       = tensor.ErrDtype
	ErrIndex       = tensor.ErrIndex
)

// Promote returns the more general of two data types.
func Promote(a, b DataType) DataType {
	return tensor.Promote(a, b)
}

// ParseDataType resolves a NumPy dtype name such as "int32" or "float_".
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return tensor.DefaultConfig()
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	return tensor.CurrentConfig()
}

// SetConfig validates and installs cfg as the active configuration.
func SetConfig(cfg Config) error {
	return tensor.SetConfig(cfg)
}

// BroadcastShapes returns the broadcast shape of a and b and whether any
// dimension had to be expanded.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
