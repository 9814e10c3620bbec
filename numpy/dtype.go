// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// DType identifies the element type of an array.
type DType = tensor.DataType

// Concrete dtypes, in promotion order.
const (
	Bool    DType = tensor.Bool
	Int8    DType = tensor.Int8
	Int16   DType = tensor.Int16
	Int32   DType = tensor.Int32
	Int64   DType = tensor.Int64
	Float32 DType = tensor.Float32
	Float64 DType = tensor.Float64
)

// Int returns the configured default integer dtype (NumPy's int_).
func Int() DType {
	return tensor.CurrentConfig().DefaultInt
}

// Float returns the configured default float dtype (NumPy's float_).
func Float() DType {
	return tensor.CurrentConfig().DefaultFloat
}

// ParseDType resolves a dtype name: bool, int8, int16, int32, int64,
// float32, float64, or the int_/float_ aliases of the configured defaults.
func ParseDType(name string) (DType, error) {
	return tensor.ParseDataType(name)
}
