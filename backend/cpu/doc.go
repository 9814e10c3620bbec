// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for array operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Generic kernels for bool, int8..int64, float32 and float64
//   - gonum BLAS for float64 matrix multiplication
//   - NumPy-compatible broadcasting and dtype promotion
//   - Optional row/lane parallelism (tensor.Config.Workers)
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
//	    x, _ := tensor.FromLiteral([]float64{3, 1, 2})
//	    sorted := backend.Sort(x, 0)
//	    order := backend.Argsort(x, 0)
//	}
//
// # Thread Safety
//
// The CPU backend holds no mutable state. Operations never modify their
// inputs, so concurrent operations on shared inputs are safe.
package cpu
