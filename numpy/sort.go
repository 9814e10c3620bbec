// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/tensor"
)

// sortAxis resolves the optional axis of Sort and Argsort (default: last).
func (a *NDArray) sortAxis(op string, axis []int) (int, error) {
	if len(axis) > 1 {
		return 0, errors.Wrapf(ErrShape, "%s: expected at most one axis, got %d", op, len(axis))
	}
	rank := a.raw.Rank()
	if rank == 0 {
		return 0, nil
	}
	ax := -1
	if len(axis) == 1 {
		ax = axis[0]
	}
	resolved, err := tensor.NormalizeAxis(ax, rank)
	if err != nil {
		return 0, errors.WithMessage(err, op)
	}
	return resolved, nil
}

// Sort sorts the array in place, ascending along axis (default: the last
// axis), independently for every 1-D lane. The sort is stable; NaN sorts last
// and false before true. On error the array is left unchanged.
func (a *NDArray) Sort(axis ...int) error {
	ax, err := a.sortAxis("sort", axis)
	if err != nil {
		return err
	}
	be := backend()
	sorted, err := run(func() *tensor.RawTensor { return be.Sort(a.raw, ax) })
	if err != nil {
		return err
	}
	a.raw.Assign(sorted.raw)
	return nil
}

// Argsort returns the int64 indices that would sort the array along axis
// (default: the last axis). Ties keep their original order, matching Sort.
func (a *NDArray) Argsort(axis ...int) (*NDArray, error) {
	ax, err := a.sortAxis("argsort", axis)
	if err != nil {
		return nil, err
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.Argsort(a.raw, ax) })
}
