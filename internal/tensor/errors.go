package tensor

import "github.com/pkg/errors"

// Error kinds. Operations wrap one of these with context; match them with errors.Is.
var (
	// ErrShape reports element-count mismatches, invalid axes, squeezing a
	// non-unit axis and matmul inner-dimension mismatches.
	ErrShape = errors.New("shape error")

	// ErrBroadcast reports operand shapes that cannot be broadcast together.
	ErrBroadcast = errors.New("broadcast error")

	// ErrRaggedShape reports nested literals with inconsistent sub-lengths.
	ErrRaggedShape = errors.New("ragged nested sequence")

	// ErrDtype reports unsupported or invalid data types for an operation.
	ErrDtype = errors.New("dtype error")

	// ErrIndex reports an element index outside the array bounds.
	ErrIndex = errors.New("index out of range")
)
