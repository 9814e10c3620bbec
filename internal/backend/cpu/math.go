package cpu

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/numpy/internal/tensor"
)

// Sin computes element-wise sine.
func (cpu *CPUBackend) Sin(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Sin)
}

// Cos computes element-wise cosine.
func (cpu *CPUBackend) Cos(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Cos)
}

// Tan computes element-wise tangent.
func (cpu *CPUBackend) Tan(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Tan)
}

// Arcsin computes element-wise inverse sine; |x| > 1 gives NaN.
func (cpu *CPUBackend) Arcsin(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Asin)
}

// Arccos computes element-wise inverse cosine; |x| > 1 gives NaN.
func (cpu *CPUBackend) Arccos(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Acos)
}

// Arctan computes element-wise inverse tangent.
func (cpu *CPUBackend) Arctan(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Atan)
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Exp)
}

// Log computes element-wise natural logarithm: log(0) = -Inf, log(x<0) = NaN.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Log)
}

// Log2 computes element-wise base-2 logarithm.
func (cpu *CPUBackend) Log2(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Log2)
}

// Log10 computes element-wise base-10 logarithm.
func (cpu *CPUBackend) Log10(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Log10)
}

// Sqrt computes element-wise square root: sqrt(x).
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat(x, math.Sqrt)
}

// unaryFloat applies fn in double precision. Float32 input produces float32
// output; every other dtype is promoted to float64.
func (cpu *CPUBackend) unaryFloat(x *tensor.RawTensor, fn func(float64) float64) *tensor.RawTensor {
	if x.DType() == tensor.Float32 {
		result := tensor.MustNewRaw(x.Shape(), tensor.Float32)
		dst := result.AsFloat32()
		for i, v := range x.AsFloat32() {
			dst[i] = float32(fn(float64(v)))
		}
		return result
	}

	src := cpu.asType(x, tensor.Float64).AsFloat64()
	result := tensor.MustNewRaw(x.Shape(), tensor.Float64)
	dst := result.AsFloat64()
	for i, v := range src {
		dst[i] = fn(v)
	}
	return result
}

// Abs computes element-wise absolute value, keeping the dtype.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryKeep("abs", x, false, math.Abs, absInt)
}

// Negative computes element-wise negation. Bool arrays are rejected.
func (cpu *CPUBackend) Negative(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() == tensor.Bool {
		throwf(tensor.ErrDtype, "negative", "boolean negative is not supported, use Not instead")
	}
	return cpu.unaryKeep("negative", x, false,
		func(v float64) float64 { return -v },
		func(v int64) int64 { return -v })
}

// Floor rounds toward -Inf; integer arrays are returned unchanged.
func (cpu *CPUBackend) Floor(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryKeep("floor", x, true, math.Floor, nil)
}

// Ceil rounds toward +Inf; integer arrays are returned unchanged.
func (cpu *CPUBackend) Ceil(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryKeep("ceil", x, true, math.Ceil, nil)
}

// Round rounds half to even; integer arrays are returned unchanged.
func (cpu *CPUBackend) Round(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryKeep("round", x, true, math.RoundToEven, nil)
}

// unaryKeep applies floatFn to float arrays and intFn to integer arrays,
// preserving the dtype. A nil intFn, or identityOnInt, copies integers as is.
// Bools are always copied.
func (cpu *CPUBackend) unaryKeep(op string, x *tensor.RawTensor, identityOnInt bool,
	floatFn func(float64) float64, intFn func(int64) int64,
) *tensor.RawTensor {
	if x.DType() == tensor.Bool || (x.DType().IsInt() && (identityOnInt || intFn == nil)) {
		return x.Clone()
	}

	result := tensor.MustNewRaw(x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Int8:
		mapInt(result.AsInt8(), x.AsInt8(), intFn)
	case tensor.Int16:
		mapInt(result.AsInt16(), x.AsInt16(), intFn)
	case tensor.Int32:
		mapInt(result.AsInt32(), x.AsInt32(), intFn)
	case tensor.Int64:
		mapInt(result.AsInt64(), x.AsInt64(), intFn)
	case tensor.Float32:
		mapFloat(result.AsFloat32(), x.AsFloat32(), floatFn)
	case tensor.Float64:
		mapFloat(result.AsFloat64(), x.AsFloat64(), floatFn)
	default:
		throwf(tensor.ErrDtype, op, "unsupported dtype %s", x.DType())
	}
	return result
}

func mapInt[T constraints.Signed](dst, src []T, fn func(int64) int64) {
	for i, v := range src {
		dst[i] = T(fn(int64(v)))
	}
}

func mapFloat[T constraints.Float](dst, src []T, fn func(float64) float64) {
	for i, v := range src {
		dst[i] = T(fn(float64(v)))
	}
}

func absInt(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
