package serialization

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/tensor"
)

// Format constants.
const (
	MetadataKey    = "__metadata__"
	ChecksumKey    = "sha256"
	HeaderAlign    = 8
	headerSizeSize = 8
)

// Entry describes one array in the JSON header.
type Entry struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// Size returns the number of data bytes the entry covers.
func (e Entry) Size() int64 {
	return e.DataOffsets[1] - e.DataOffsets[0]
}

var hostLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// dtypeName converts a DataType to its SafeTensors name.
func dtypeName(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Bool:
		return "BOOL", nil
	case tensor.Int8:
		return "I8", nil
	case tensor.Int16:
		return "I16", nil
	case tensor.Int32:
		return "I32", nil
	case tensor.Int64:
		return "I64", nil
	case tensor.Float32:
		return "F32", nil
	case tensor.Float64:
		return "F64", nil
	}
	return "", errors.Wrapf(tensor.ErrDtype, "cannot store dtype %s", dt)
}

// parseDTypeName converts a SafeTensors dtype name to a DataType.
func parseDTypeName(name string) (tensor.DataType, error) {
	switch name {
	case "BOOL":
		return tensor.Bool, nil
	case "I8":
		return tensor.Int8, nil
	case "I16":
		return tensor.Int16, nil
	case "I32":
		return tensor.Int32, nil
	case "I64":
		return tensor.Int64, nil
	case "F32":
		return tensor.Float32, nil
	case "F64":
		return tensor.Float64, nil
	}
	return 0, errors.Wrapf(tensor.ErrDtype, "unsupported archive dtype %q", name)
}

// swapBytes reverses the byte order of every element of size width in data.
func swapBytes(data []byte, width int) {
	if width == 1 {
		return
	}
	for start := 0; start+width <= len(data); start += width {
		elem := data[start : start+width]
		for i, j := 0, width-1; i < j; i, j = i+1, j-1 {
			elem[i], elem[j] = elem[j], elem[i]
		}
	}
}
