package cpu

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// Cast converts the array to a different data type.
// Float to integer conversion truncates toward zero; numeric to bool is x != 0.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if !dtype.IsValid() {
		throwf(tensor.ErrDtype, "cast", "invalid target dtype %d", int(dtype))
	}
	if x.DType() == dtype {
		return x.Clone()
	}

	result := tensor.MustNewRaw(x.Shape(), dtype)
	switch x.DType() {
	case tensor.Bool:
		castFromBool(result, x.AsBool())
	case tensor.Int8:
		castFrom(result, x.AsInt8())
	case tensor.Int16:
		castFrom(result, x.AsInt16())
	case tensor.Int32:
		castFrom(result, x.AsInt32())
	case tensor.Int64:
		castFrom(result, x.AsInt64())
	case tensor.Float32:
		castFrom(result, x.AsFloat32())
	case tensor.Float64:
		castFrom(result, x.AsFloat64())
	default:
		throwf(tensor.ErrDtype, "cast", "unsupported source dtype %s", x.DType())
	}
	return result
}

func castFrom[S tensor.Numeric](result *tensor.RawTensor, src []S) {
	switch result.DType() {
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	case tensor.Int8:
		convert(result.AsInt8(), src)
	case tensor.Int16:
		convert(result.AsInt16(), src)
	case tensor.Int32:
		convert(result.AsInt32(), src)
	case tensor.Int64:
		convert(result.AsInt64(), src)
	case tensor.Float32:
		convert(result.AsFloat32(), src)
	case tensor.Float64:
		convert(result.AsFloat64(), src)
	}
}

func castFromBool(result *tensor.RawTensor, src []bool) {
	switch result.DType() {
	case tensor.Int8:
		fromBool(result.AsInt8(), src)
	case tensor.Int16:
		fromBool(result.AsInt16(), src)
	case tensor.Int32:
		fromBool(result.AsInt32(), src)
	case tensor.Int64:
		fromBool(result.AsInt64(), src)
	case tensor.Float32:
		fromBool(result.AsFloat32(), src)
	case tensor.Float64:
		fromBool(result.AsFloat64(), src)
	}
}

func convert[D, S tensor.Numeric](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}

func fromBool[D tensor.Numeric](dst []D, src []bool) {
	for i, v := range src {
		if v {
			dst[i] = 1
		}
	}
}
