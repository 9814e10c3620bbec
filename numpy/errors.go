// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/numpy/internal/tensor"
)

// Error kinds returned by this package, matched with errors.Is.
var (
	// ErrShape reports element-count mismatches, invalid axes, squeezing a
	// non-unit axis and matmul inner-dimension mismatches.
	ErrShape = tensor.ErrShape

	// ErrBroadcast reports operand shapes that cannot be broadcast together.
	ErrBroadcast = tensor.ErrBroadcast

	// ErrRaggedShape reports nested literals with inconsistent sub-lengths.
	ErrRaggedShape = tensor.ErrRaggedShape

	// ErrDtype reports unsupported or invalid data types.
	ErrDtype = tensor.ErrDtype

	// ErrIndex reports an element index outside the array bounds.
	ErrIndex = tensor.ErrIndex
)

// run calls fn, converting a panic carrying an error into a returned error.
// Backend kernels report contract violations by panicking.
func run(fn func() *tensor.RawTensor) (*NDArray, error) {
	var raw *tensor.RawTensor
	if err := exceptions.TryCatch[error](func() { raw = fn() }); err != nil {
		return nil, err
	}
	return wrap(raw), nil
}
