// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// Element-wise math. The transcendental functions compute in double precision
// and return float32 for float32 input, float64 for anything else. IEEE-754
// edge cases apply: Log(0) = -Inf, Log(-1) = NaN, Arcsin(2) = NaN.

// Sin returns the element-wise sine of x (radians).
func Sin(x any) (*NDArray, error) { return unary(x, tensor.Backend.Sin) }

// Cos returns the element-wise cosine of x (radians).
func Cos(x any) (*NDArray, error) { return unary(x, tensor.Backend.Cos) }

// Tan returns the element-wise tangent of x (radians).
func Tan(x any) (*NDArray, error) { return unary(x, tensor.Backend.Tan) }

// Arcsin returns the element-wise inverse sine of x.
func Arcsin(x any) (*NDArray, error) { return unary(x, tensor.Backend.Arcsin) }

// Arccos returns the element-wise inverse cosine of x.
func Arccos(x any) (*NDArray, error) { return unary(x, tensor.Backend.Arccos) }

// Arctan returns the element-wise inverse tangent of x.
func Arctan(x any) (*NDArray, error) { return unary(x, tensor.Backend.Arctan) }

// Exp returns e**x element-wise.
func Exp(x any) (*NDArray, error) { return unary(x, tensor.Backend.Exp) }

// Log returns the element-wise natural logarithm of x.
func Log(x any) (*NDArray, error) { return unary(x, tensor.Backend.Log) }

// Log2 returns the element-wise base-2 logarithm of x.
func Log2(x any) (*NDArray, error) { return unary(x, tensor.Backend.Log2) }

// Log10 returns the element-wise base-10 logarithm of x.
func Log10(x any) (*NDArray, error) { return unary(x, tensor.Backend.Log10) }

// Sqrt returns the element-wise square root of x.
func Sqrt(x any) (*NDArray, error) { return unary(x, tensor.Backend.Sqrt) }

// Abs returns |x| element-wise, keeping the dtype.
func Abs(x any) (*NDArray, error) { return unary(x, tensor.Backend.Abs) }

// Negative returns -x element-wise, keeping the dtype. Bool input fails with ErrDtype.
func Negative(x any) (*NDArray, error) { return unary(x, tensor.Backend.Negative) }

// Floor rounds x toward -Inf element-wise; integer arrays are unchanged.
func Floor(x any) (*NDArray, error) { return unary(x, tensor.Backend.Floor) }

// Ceil rounds x toward +Inf element-wise; integer arrays are unchanged.
func Ceil(x any) (*NDArray, error) { return unary(x, tensor.Backend.Ceil) }

// Round rounds x half to even element-wise; integer arrays are unchanged.
func Round(x any) (*NDArray, error) { return unary(x, tensor.Backend.Round) }

// Sqrt returns the element-wise square root.
func (a *NDArray) Sqrt() (*NDArray, error) { return Sqrt(a) }

// Exp returns e**a element-wise.
func (a *NDArray) Exp() (*NDArray, error) { return Exp(a) }

// Log returns the element-wise natural logarithm.
func (a *NDArray) Log() (*NDArray, error) { return Log(a) }

// Abs returns |a| element-wise.
func (a *NDArray) Abs() (*NDArray, error) { return Abs(a) }

// Negative returns -a element-wise.
func (a *NDArray) Negative() (*NDArray, error) { return Negative(a) }

// Floor rounds toward -Inf element-wise.
func (a *NDArray) Floor() (*NDArray, error) { return Floor(a) }

// Ceil rounds toward +Inf element-wise.
func (a *NDArray) Ceil() (*NDArray, error) { return Ceil(a) }

// Round rounds half to even element-wise.
func (a *NDArray) Round() (*NDArray, error) { return Round(a) }
