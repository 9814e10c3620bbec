package cpu

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/numpy/internal/tensor"
)

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
	opPow
)

var arithNames = [...]string{"add", "sub", "mul", "div", "pow"}

// Add performs element-wise addition with NumPy-style broadcasting.
// For bool operands it is a logical OR.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	dt := tensor.Promote(a.DType(), b.DType())
	if dt == tensor.Bool {
		return cpu.Or(a, b)
	}
	return cpu.arith(opAdd, a, b, dt)
}

// Sub performs element-wise subtraction with broadcasting.
// Boolean subtraction is not supported.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	dt := tensor.Promote(a.DType(), b.DType())
	if dt == tensor.Bool {
		throwf(tensor.ErrDtype, "sub", "boolean subtract is not supported, use Xor instead")
	}
	return cpu.arith(opSub, a, b, dt)
}

// Mul performs element-wise multiplication with broadcasting.
// For bool operands it is a logical AND.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	dt := tensor.Promote(a.DType(), b.DType())
	if dt == tensor.Bool {
		return cpu.And(a, b)
	}
	return cpu.arith(opMul, a, b, dt)
}

// Div performs true division with broadcasting. Non-float operands are
// computed in the configured default float, so integer division by zero
// yields ±Inf or NaN.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	dt := tensor.Promote(a.DType(), b.DType())
	if !dt.IsFloat() {
		dt = tensor.CurrentConfig().DefaultFloat
	}
	return cpu.arith(opDiv, a, b, dt)
}

// Pow raises a to the power b element-wise with broadcasting.
// Integer operands stay integral unless some exponent is negative, in which
// case the result is computed in the default float. Bool operands are
// computed in the default int.
func (cpu *CPUBackend) Pow(a, b *tensor.RawTensor) *tensor.RawTensor {
	dt := tensor.Promote(a.DType(), b.DType())
	switch {
	case dt == tensor.Bool:
		dt = tensor.CurrentConfig().DefaultInt
	case dt.IsInt() && hasNegative(b):
		dt = tensor.CurrentConfig().DefaultFloat
	}
	return cpu.arith(opPow, a, b, dt)
}

func (cpu *CPUBackend) arith(op arithOp, a, b *tensor.RawTensor, dt tensor.DataType) *tensor.RawTensor {
	name := arithNames[op]
	outShape := broadcastOrThrow(name, a, b)
	a, b = cpu.asType(a, dt), cpu.asType(b, dt)
	result := tensor.MustNewRaw(outShape, dt)

	switch dt {
	case tensor.Int8:
		broadcastApply(result.AsInt8(), a.AsInt8(), b.AsInt8(), a.Shape(), b.Shape(), outShape, intArith[int8](op))
	case tensor.Int16:
		broadcastApply(result.AsInt16(), a.AsInt16(), b.AsInt16(), a.Shape(), b.Shape(), outShape, intArith[int16](op))
	case tensor.Int32:
		broadcastApply(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, intArith[int32](op))
	case tensor.Int64:
		broadcastApply(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, intArith[int64](op))
	case tensor.Float32:
		broadcastApply(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, floatArith[float32](op))
	case tensor.Float64:
		broadcastApply(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, floatArith[float64](op))
	default:
		throwf(tensor.ErrDtype, name, "unsupported dtype %s", dt)
	}
	return result
}

func intArith[T constraints.Signed](op arithOp) func(x, y T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	case opMul:
		return func(x, y T) T { return x * y }
	case opPow:
		return intPow[T]
	}
	// Integer true division is routed through floats by Div.
	throwf(tensor.ErrDtype, arithNames[op], "integer kernel not available")
	return nil
}

func floatArith[T constraints.Float](op arithOp) func(x, y T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	case opMul:
		return func(x, y T) T { return x * y }
	case opDiv:
		return func(x, y T) T { return x / y }
	default:
		return func(x, y T) T { return T(math.Pow(float64(x), float64(y))) }
	}
}

// intPow computes base**exp by squaring; exp must be non-negative.
// Overflow wraps around like the underlying machine integers.
func intPow[T constraints.Signed](base, exp T) T {
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// hasNegative reports whether an integer array holds any negative element.
func hasNegative(x *tensor.RawTensor) bool {
	switch x.DType() {
	case tensor.Int8:
		return anyNegative(x.AsInt8())
	case tensor.Int16:
		return anyNegative(x.AsInt16())
	case tensor.Int32:
		return anyNegative(x.AsInt32())
	case tensor.Int64:
		return anyNegative(x.AsInt64())
	}
	return false
}

func anyNegative[T constraints.Signed](values []T) bool {
	for _, v := range values {
		if v < 0 {
			return true
		}
	}
	return false
}
