// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/numpy/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for array operations.
//
// Implementations:
//   - backend/cpu: Pure Go kernels, gonum BLAS for float64 matmul
//
// Backend methods panic on contract violations with an error wrapping one of
// the Err* sentinels. The numpy package converts those panics into returned
// errors.
//
// Example:
//
//	import (
//	    "github.com/born-ml/numpy/backend/cpu"
//	    "github.com/born-ml/numpy/tensor"
//	)
//
//	backend := cpu.New()
//	a, _ := tensor.FromLiteral([]int{1, 2, 3})
//	b, _ := tensor.FromLiteral(10)
//	c := backend.Add(a, b)  // [11 12 13]
type Backend = tensor.Backend
