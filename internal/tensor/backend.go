package tensor

// Backend defines the interface that compute backends implement.
// Backends handle the actual computation for array operations.
//
// Operations never modify their inputs and always return freshly allocated
// arrays. Contract violations (bad shapes, axes or dtypes) panic with an error
// wrapping one of the package sentinels; callers that want returned errors
// recover them at their API boundary.
//
// Axes passed to a Backend are already normalized (non-negative, in range).
type Backend interface {
	// Name returns a short backend identifier.
	Name() string

	// Cast converts x to dtype.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Element-wise binary arithmetic with broadcasting. The result dtype is the
	// promotion of both operands, except that Div always yields a float and Pow
	// yields a float for negative integer exponents.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor
	Pow(a, b *RawTensor) *RawTensor

	// MatMul computes the matrix product of 1-D or 2-D operands.
	MatMul(a, b *RawTensor) *RawTensor

	// Boolean operations (element-wise on bool arrays)
	And(a, b *RawTensor) *RawTensor
	Or(a, b *RawTensor) *RawTensor
	Xor(a, b *RawTensor) *RawTensor
	Not(x *RawTensor) *RawTensor

	// Comparison operations (element-wise with broadcasting, return bool arrays)
	Equal(a, b *RawTensor) *RawTensor
	NotEqual(a, b *RawTensor) *RawTensor
	Less(a, b *RawTensor) *RawTensor
	LessEqual(a, b *RawTensor) *RawTensor
	Greater(a, b *RawTensor) *RawTensor
	GreaterEqual(a, b *RawTensor) *RawTensor

	// Math operations (element-wise). Transcendental functions return float32
	// for float32 input and float64 otherwise.
	Sin(x *RawTensor) *RawTensor
	Cos(x *RawTensor) *RawTensor
	Tan(x *RawTensor) *RawTensor
	Arcsin(x *RawTensor) *RawTensor
	Arccos(x *RawTensor) *RawTensor
	Arctan(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Log2(x *RawTensor) *RawTensor
	Log10(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor

	// Dtype-preserving math.
	Abs(x *RawTensor) *RawTensor
	Negative(x *RawTensor) *RawTensor
	Floor(x *RawTensor) *RawTensor
	Ceil(x *RawTensor) *RawTensor
	Round(x *RawTensor) *RawTensor

	// Reductions over a set of axes; the reduced axes are removed from the
	// result shape. An empty set reduces nothing.
	Sum(x *RawTensor, axes []int) *RawTensor
	Prod(x *RawTensor, axes []int) *RawTensor
	Min(x *RawTensor, axes []int) *RawTensor
	Max(x *RawTensor, axes []int) *RawTensor
	Mean(x *RawTensor, axes []int) *RawTensor
	Var(x *RawTensor, axes []int) *RawTensor
	Std(x *RawTensor, axes []int) *RawTensor
	All(x *RawTensor, axes []int) *RawTensor
	Any(x *RawTensor, axes []int) *RawTensor
	Argmin(x *RawTensor, axis int) *RawTensor
	Argmax(x *RawTensor, axis int) *RawTensor

	// Ordering along one axis (stable).
	Sort(x *RawTensor, axis int) *RawTensor
	Argsort(x *RawTensor, axis int) *RawTensor

	// Shape operations
	Reshape(x *RawTensor, newShape Shape) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	Repeat(x *RawTensor, repeats []int, axis int) *RawTensor
	Resize(x *RawTensor, newShape Shape) *RawTensor
	Concatenate(xs []*RawTensor, axis int) *RawTensor
	Take(x *RawTensor, indices []int, axis int) *RawTensor
	BroadcastTo(x *RawTensor, shape Shape) *RawTensor

	// Indexing operations
	Index(x *RawTensor, indices []int) *RawTensor
	SetIndex(x *RawTensor, indices []int, value *RawTensor) *RawTensor
	Where(condition, x, y *RawTensor) *RawTensor
}
