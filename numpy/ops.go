// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// Binary operands may be *NDArray values, Go scalars or nested literals.
// Operands broadcast against each other; incompatible shapes fail with
// ErrBroadcast.

// Add returns x + y element-wise. For bool operands it is a logical OR.
func Add(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.Add)
}

// Sub returns x - y element-wise. Bool operands fail with ErrDtype.
func Sub(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.Sub)
}

// Mul returns x * y element-wise. For bool operands it is a logical AND.
func Mul(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.Mul)
}

// Div returns the true division x / y. Integer and bool operands produce the
// default float dtype; division by zero gives ±Inf or NaN.
func Div(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.Div)
}

// Pow returns x ** y element-wise. Integer operands stay integral unless an
// exponent is negative, which makes the result the default float.
func Pow(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.Pow)
}

// MatMul returns the matrix product x @ y: (m,k) @ (k,n) -> (m,n).
// 1-D operands act as a row vector on the left and a column vector on the
// right. Mismatched inner dimensions fail with ErrShape.
func MatMul(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.MatMul)
}

// And returns the element-wise logical AND of two bool operands.
func And(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.And)
}

// Or returns the element-wise logical OR of two bool operands.
func Or(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.Or)
}

// Xor returns the element-wise logical XOR of two bool operands.
func Xor(x, y any) (*NDArray, error) {
	return binary(x, y, tensor.Backend.Xor)
}

// Invert returns the element-wise logical NOT of a bool operand (NumPy's ~).
func Invert(x any) (*NDArray, error) {
	return unary(x, tensor.Backend.Not)
}

// Where picks elements of x where cond is truthy and of y elsewhere.
// All three operands broadcast together.
func Where(cond, x, y any) (*NDArray, error) {
	c, err := toRaw(cond)
	if err != nil {
		return nil, err
	}
	a, b, err := binaryOperands(x, y)
	if err != nil {
		return nil, err
	}
	be := backend()
	return run(func() *tensor.RawTensor { return be.Where(c, a, b) })
}

// Add returns a + y. See the package-level Add.
func (a *NDArray) Add(y any) (*NDArray, error) { return Add(a, y) }

// Sub returns a - y.
func (a *NDArray) Sub(y any) (*NDArray, error) { return Sub(a, y) }

// Mul returns a * y.
func (a *NDArray) Mul(y any) (*NDArray, error) { return Mul(a, y) }

// Div returns a / y.
func (a *NDArray) Div(y any) (*NDArray, error) { return Div(a, y) }

// Pow returns a ** y.
func (a *NDArray) Pow(y any) (*NDArray, error) { return Pow(a, y) }

// MatMul returns a @ y.
func (a *NDArray) MatMul(y any) (*NDArray, error) { return MatMul(a, y) }

// And returns a & y for bool arrays.
func (a *NDArray) And(y any) (*NDArray, error) { return And(a, y) }

// Or returns a | y for bool arrays.
func (a *NDArray) Or(y any) (*NDArray, error) { return Or(a, y) }

// Xor returns a ^ y for bool arrays.
func (a *NDArray) Xor(y any) (*NDArray, error) { return Xor(a, y) }

// Invert returns ~a for a bool array.
func (a *NDArray) Invert() (*NDArray, error) { return Invert(a) }
