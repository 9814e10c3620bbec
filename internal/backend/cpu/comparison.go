package cpu

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// Comparison operations - return bool arrays.
// Operands are compared in their promoted dtype; bools order false < true.

type cmpOp int

const (
	cmpEq cmpOp = iota
	cmpNe
	cmpLt
	cmpLe
	cmpGt
	cmpGe
)

var cmpNames = [...]string{"equal", "not_equal", "less", "less_equal", "greater", "greater_equal"}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(cmpEq, a, b)
}

// NotEqual returns a != b element-wise.
func (cpu *CPUBackend) NotEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(cmpNe, a, b)
}

// Less returns a < b element-wise.
func (cpu *CPUBackend) Less(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(cmpLt, a, b)
}

// LessEqual returns a <= b element-wise.
func (cpu *CPUBackend) LessEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(cmpLe, a, b)
}

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(cmpGt, a, b)
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(cmpGe, a, b)
}

func (cpu *CPUBackend) compare(op cmpOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape := broadcastOrThrow(cmpNames[op], a, b)
	dt := tensor.Promote(a.DType(), b.DType())
	if dt == tensor.Bool {
		dt = tensor.Int8
	}
	a, b = cpu.asType(a, dt), cpu.asType(b, dt)
	result := tensor.MustNewRaw(outShape, tensor.Bool)
	dst := result.AsBool()

	switch dt {
	case tensor.Int8:
		broadcastApply(dst, a.AsInt8(), b.AsInt8(), a.Shape(), b.Shape(), outShape, compareFunc[int8](op))
	case tensor.Int16:
		broadcastApply(dst, a.AsInt16(), b.AsInt16(), a.Shape(), b.Shape(), outShape, compareFunc[int16](op))
	case tensor.Int32:
		broadcastApply(dst, a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, compareFunc[int32](op))
	case tensor.Int64:
		broadcastApply(dst, a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, compareFunc[int64](op))
	case tensor.Float32:
		broadcastApply(dst, a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, compareFunc[float32](op))
	case tensor.Float64:
		broadcastApply(dst, a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, compareFunc[float64](op))
	default:
		throwf(tensor.ErrDtype, cmpNames[op], "unsupported dtype %s", dt)
	}
	return result
}

func compareFunc[T tensor.Numeric](op cmpOp) func(x, y T) bool {
	switch op {
	case cmpEq:
		return func(x, y T) bool { return x == y }
	case cmpNe:
		return func(x, y T) bool { return x != y }
	case cmpLt:
		return func(x, y T) bool { return x < y }
	case cmpLe:
		return func(x, y T) bool { return x <= y }
	case cmpGt:
		return func(x, y T) bool { return x > y }
	default:
		return func(x, y T) bool { return x >= y }
	}
}
