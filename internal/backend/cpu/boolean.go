package cpu

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// Boolean operations - work on bool arrays only.

// Or computes element-wise logical OR.
func (cpu *CPUBackend) Or(a, b *tensor.RawTensor) *tensor.RawTensor {
	return logical("or", a, b, func(x, y bool) bool { return x || y })
}

// And computes element-wise logical AND.
func (cpu *CPUBackend) And(a, b *tensor.RawTensor) *tensor.RawTensor {
	return logical("and", a, b, func(x, y bool) bool { return x && y })
}

// Xor computes element-wise logical XOR.
func (cpu *CPUBackend) Xor(a, b *tensor.RawTensor) *tensor.RawTensor {
	return logical("xor", a, b, func(x, y bool) bool { return x != y })
}

// Not computes element-wise logical NOT.
func (cpu *CPUBackend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		throwf(tensor.ErrDtype, "not", "array must be bool dtype, got %s", x.DType())
	}

	result := tensor.MustNewRaw(x.Shape(), tensor.Bool)
	dst := result.AsBool()
	for i, v := range x.AsBool() {
		dst[i] = !v
	}
	return result
}

func logical(op string, a, b *tensor.RawTensor, fn func(x, y bool) bool) *tensor.RawTensor {
	if a.DType() != tensor.Bool || b.DType() != tensor.Bool {
		throwf(tensor.ErrDtype, op, "both arrays must be bool dtype, got %s and %s", a.DType(), b.DType())
	}

	outShape := broadcastOrThrow(op, a, b)
	result := tensor.MustNewRaw(outShape, tensor.Bool)
	broadcastApply(result.AsBool(), a.AsBool(), b.AsBool(), a.Shape(), b.Shape(), outShape, fn)
	return result
}
