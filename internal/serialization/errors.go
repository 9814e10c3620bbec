package serialization

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	// ErrFormat reports an archive that does not follow the layout.
	ErrFormat = errors.New("malformed archive")

	ErrChecksumMismatch = errors.New("checksum mismatch: archive may be corrupted")
	ErrHeaderTooLarge   = errors.New("header exceeds maximum size")
)

// ValidationError provides detailed information about validation failures.
// It matches ErrFormat with errors.Is.
type ValidationError struct {
	Type    string // e.g. "offset_overlap", "out_of_bounds"
	Array   string
	Array2  string // second array for overlap errors
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Array2 != "" {
		return fmt.Sprintf("%s: arrays %q and %q: %s", e.Type, e.Array, e.Array2, e.Details)
	}
	if e.Array != "" {
		return fmt.Sprintf("%s: array %q: %s", e.Type, e.Array, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns ErrFormat.
func (e *ValidationError) Unwrap() error {
	return ErrFormat
}
