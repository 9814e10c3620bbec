package serialization

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/born-ml/numpy/internal/tensor"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize   = 100 * 1024 * 1024
	MaxArrayCount   = 100_000
	MaxArrayNameLen = 4096
)

// ValidateName checks an array name for path traversal and control patterns.
func ValidateName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Type: "invalid_name", Details: "empty name"}
	case name == MetadataKey:
		return &ValidationError{Type: "invalid_name", Array: name, Details: "reserved for metadata"}
	case len(name) > MaxArrayNameLen:
		return &ValidationError{
			Type:    "name_too_long",
			Array:   name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxArrayNameLen),
		}
	case strings.Contains(name, ".."):
		return &ValidationError{Type: "invalid_name", Array: name, Details: "contains '..'"}
	case strings.ContainsAny(name, "/\\"):
		return &ValidationError{Type: "invalid_name", Array: name, Details: "contains path separator (/ or \\)"}
	case strings.Contains(name, "\x00"):
		return &ValidationError{Type: "invalid_name", Array: name, Details: "contains null byte"}
	}
	return nil
}

// ValidateEntry checks that the entry's byte range matches its dtype and shape.
func ValidateEntry(name string, e Entry) (tensor.DataType, tensor.Shape, error) {
	dt, err := parseDTypeName(e.DType)
	if err != nil {
		return 0, nil, err
	}
	shape := make(tensor.Shape, len(e.Shape))
	want := int64(dt.Size())
	for i, dim := range e.Shape {
		if dim < 0 {
			return 0, nil, &ValidationError{
				Type:    "invalid_shape",
				Array:   name,
				Details: fmt.Sprintf("negative dimension %d", dim),
			}
		}
		// The byte count must fit an int so the buffer can be allocated.
		if dim > math.MaxInt || (dim != 0 && want > math.MaxInt/dim) {
			return 0, nil, &ValidationError{
				Type:    "invalid_shape",
				Array:   name,
				Details: fmt.Sprintf("shape %v overflows the addressable size", e.Shape),
			}
		}
		want *= dim
		shape[i] = int(dim)
	}
	if e.Size() != want {
		return 0, nil, &ValidationError{
			Type:    "size_mismatch",
			Array:   name,
			Details: fmt.Sprintf("%s%v needs %d bytes, offsets cover %d", e.DType, e.Shape, want, e.Size()),
		}
	}
	return dt, shape, nil
}

// ValidateOffsets checks for negative, overlapping and out-of-bounds byte
// ranges, and that the ranges cover the data section without gaps.
func ValidateOffsets(entries map[string]Entry, dataSize int64) error {
	if len(entries) > MaxArrayCount {
		return &ValidationError{
			Type:    "too_many_arrays",
			Details: fmt.Sprintf("got %d, max %d", len(entries), MaxArrayCount),
		}
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		ea, eb := entries[a].DataOffsets, entries[b].DataOffsets
		return cmp.Or(cmp.Compare(ea[0], eb[0]), cmp.Compare(ea[1], eb[1]), strings.Compare(a, b))
	})

	var end int64
	for i, name := range names {
		e := entries[name]
		begin, stop := e.DataOffsets[0], e.DataOffsets[1]
		if begin < 0 || stop < begin {
			return &ValidationError{
				Type:    "negative_offset",
				Array:   name,
				Details: fmt.Sprintf("offsets [%d, %d]", begin, stop),
			}
		}
		if stop > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Array:   name,
				Details: fmt.Sprintf("end %d > data size %d", stop, dataSize),
			}
		}
		if begin < end {
			return &ValidationError{
				Type:    "offset_overlap",
				Array:   names[i-1],
				Array2:  name,
				Details: fmt.Sprintf("region ending at %d overlaps region starting at %d", end, begin),
			}
		}
		if begin > end {
			return &ValidationError{
				Type:    "gap",
				Array:   name,
				Details: fmt.Sprintf("bytes [%d, %d) belong to no array", end, begin),
			}
		}
		end = stop
	}
	if end != dataSize {
		return &ValidationError{
			Type:    "trailing_data",
			Details: fmt.Sprintf("%d bytes after the last array", dataSize-end),
		}
	}
	return nil
}
