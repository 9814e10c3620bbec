// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the storage layer of the numpy engine.
//
// # Overview
//
// A RawTensor is a contiguous row-major byte buffer tagged with a DataType and
// a Shape. Every RawTensor owns its buffer; no two arrays alias memory.
// Compute backends (see backend/cpu) implement the Backend interface over
// RawTensors, and the numpy package builds its NDArray API on top of them.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/numpy/backend/cpu"
//	    "github.com/born-ml/numpy/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromLiteral([][]float64{{1, 2}, {3, 4}})
//	    y := backend.Transpose(x)
//	    z := backend.MatMul(x, y)
//	}
//
// # Supported Data Types
//
// In promotion order:
//   - bool
//   - int8, int16, int32, int64
//   - float32, float64
//
// Combining two dtypes yields the later one in this list.
//
// # Configuration
//
// Config selects the default integer and float dtypes and the number of
// worker goroutines. It is read once from the NUMPY_DEFAULT_INT,
// NUMPY_DEFAULT_FLOAT and NUMPY_WORKERS environment variables and can be
// replaced with SetConfig.
package tensor
