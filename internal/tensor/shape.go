package tensor

import "github.com/pkg/errors"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions >= 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrShape, "negative dimension at index %d: %d", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Permute returns the shape with its axes reordered: result[i] = s[axes[i]].
func (s Shape) Permute(axes []int) Shape {
	result := make(Shape, len(axes))
	for i, ax := range axes {
		result[i] = s[ax]
	}
	return result
}

// NormalizeAxis resolves a possibly negative axis against rank.
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, errors.Wrapf(ErrShape, "axis %d out of range for %dD array", axis, rank)
	}
	return axis, nil
}

// NormalizeAxes resolves a set of axes, rejecting duplicates.
// The result preserves the given order.
func NormalizeAxes(axes []int, rank int) ([]int, error) {
	seen := make([]bool, rank)
	result := make([]int, len(axes))
	for i, ax := range axes {
		n, err := NormalizeAxis(ax, rank)
		if err != nil {
			return nil, err
		}
		if seen[n] {
			return nil, errors.Wrapf(ErrShape, "duplicate axis %d", ax)
		}
		seen[n] = true
		result[i] = n
	}
	return result, nil
}

// ValidatePermutation checks that axes is a bijection over 0..rank-1.
func ValidatePermutation(axes []int, rank int) error {
	if len(axes) != rank {
		return errors.Wrapf(ErrShape, "axes length %d != ndim %d", len(axes), rank)
	}
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			return errors.Wrapf(ErrShape, "invalid axis %d for %dD array", ax, rank)
		}
		if seen[ax] {
			return errors.Wrapf(ErrShape, "repeated axis %d in permutation", ax)
		}
		seen[ax] = true
	}
	return nil
}

// InversePermutation returns inv such that inv[axes[i]] = i.
func InversePermutation(axes []int) []int {
	inv := make([]int, len(axes))
	for i, ax := range axes {
		inv[ax] = i
	}
	return inv
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an
// ErrBroadcast error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, errors.Wrapf(ErrBroadcast,
				"shapes %v and %v not compatible (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}
