// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"io"

	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/serialization"
	"github.com/born-ml/numpy/internal/tensor"
)

// Errors returned when reading archives.
var (
	// ErrFormat reports a malformed archive.
	ErrFormat = serialization.ErrFormat

	// ErrChecksumMismatch reports an archive whose data does not match its stored checksum.
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
)

// Save writes the named arrays to a SafeTensors file at path, replacing it.
// Names must be non-empty and must not contain path separators or "..".
func Save(path string, arrays map[string]*NDArray) error {
	raws, err := rawArrays(arrays)
	if err != nil {
		return err
	}
	return serialization.WriteFile(path, raws, nil)
}

// SaveTo writes the named arrays to w in SafeTensors layout.
func SaveTo(w io.Writer, arrays map[string]*NDArray) error {
	raws, err := rawArrays(arrays)
	if err != nil {
		return err
	}
	return serialization.Write(w, raws, nil)
}

// Load reads every array of the SafeTensors file at path.
func Load(path string) (map[string]*NDArray, error) {
	archive, err := serialization.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return wrapArchive(archive), nil
}

// LoadFrom reads every array of a SafeTensors archive from r.
func LoadFrom(r io.Reader) (map[string]*NDArray, error) {
	archive, err := serialization.Read(r)
	if err != nil {
		return nil, err
	}
	return wrapArchive(archive), nil
}

func rawArrays(arrays map[string]*NDArray) (map[string]*tensor.RawTensor, error) {
	raws := make(map[string]*tensor.RawTensor, len(arrays))
	for name, a := range arrays {
		if a == nil {
			return nil, errors.Errorf("array %q is nil", name)
		}
		raws[name] = a.raw
	}
	return raws, nil
}

func wrapArchive(archive *serialization.Archive) map[string]*NDArray {
	arrays := make(map[string]*NDArray, len(archive.Arrays))
	for name, raw := range archive.Arrays {
		arrays[name] = wrap(raw)
	}
	return arrays
}
