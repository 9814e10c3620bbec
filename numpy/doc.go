// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numpy provides NumPy-style n-dimensional arrays for Go.
//
// # Overview
//
// NDArray is a dense, homogeneous, row-major array of one of the dtypes
// bool, int8, int16, int32, int64, float32 or float64. The package offers:
//   - Construction from nested Go literals with shape and dtype inference
//   - Broadcasting arithmetic, comparisons and boolean logic
//   - Element-wise math (trigonometry, exponentials, logarithms, rounding)
//   - Reductions over any set of axes
//   - Stable sort and argsort along an axis
//   - Shape transforms: reshape, squeeze, transpose, flatten, repeat, resize
//   - Matrix multiplication
//   - Saving and loading named arrays as SafeTensors archives
//
// # Basic Usage
//
//	a := must.M1(numpy.Array([][]int{{1, 2}, {3, 4}}))
//	b := must.M1(numpy.Array([][]int{{5, 6}, {7, 8}}))
//	c := must.M1(numpy.MatMul(a, b))       // [[19 22] [43 50]]
//	s := must.M1(c.Sum(0))                  // [62 72]
//	m := must.M1(numpy.Add(a, 0.5))         // float64: [[1.5 2.5] [3.5 4.5]]
//
// # Dtype Promotion
//
// Dtypes are totally ordered: bool < int8 < int16 < int32 < int64 < float32 <
// float64. Combining two operands yields the larger dtype. A Go scalar counts
// as a rank-0 array of its literal dtype: bool, the configured default int or
// the configured default float. An int8 array plus 1000 is therefore int64
// (with the native default int) and a float32 array times 0.1 is float64.
//
// # Memory Model
//
// Every NDArray owns its buffer. Transpose, Reshape, Squeeze and Get return
// copies, never views. Sort, Resize and Set modify the receiver in place.
//
// # Errors
//
// Operations return errors wrapping ErrShape, ErrBroadcast, ErrRaggedShape,
// ErrDtype or ErrIndex; match them with errors.Is. A failing in-place
// operation leaves its receiver unchanged.
package numpy
