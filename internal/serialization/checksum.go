package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/pkg/errors"
)

// checksummer accumulates the SHA-256 of the data section.
type checksummer struct {
	h hash.Hash
}

func newChecksummer() *checksummer {
	return &checksummer{h: sha256.New()}
}

func (c *checksummer) add(data []byte) {
	_, _ = c.h.Write(data)
}

// String returns the hex digest.
func (c *checksummer) String() string {
	return hex.EncodeToString(c.h.Sum(nil))
}

// ComputeChecksum returns the hex SHA-256 of data.
func ComputeChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ValidateChecksum compares the checksum of data against stored.
// Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(data []byte, stored string) error {
	if got := ComputeChecksum(data); got != stored {
		return errors.Wrapf(ErrChecksumMismatch, "stored %.12s..., computed %.12s...", stored, got)
	}
	return nil
}
