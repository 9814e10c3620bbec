package cpu

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/numpy/internal/parallel"
	"github.com/born-ml/numpy/internal/tensor"
)

// Reductions move the reduced axes to the end (a transposed copy) so that
// every output element reduces one contiguous lane of the input.

type reduceOp int

const (
	redSum reduceOp = iota
	redProd
	redMin
	redMax
)

var reduceNames = [...]string{"sum", "prod", "min", "max"}

// Sum adds elements over axes. Bool and integers narrower than the default
// int accumulate in the default int.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	return cpu.reduceNumeric(redSum, x, axes, accumulatorType(x.DType()))
}

// Prod multiplies elements over axes, with Sum's result dtype.
func (cpu *CPUBackend) Prod(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	return cpu.reduceNumeric(redProd, x, axes, accumulatorType(x.DType()))
}

// Min returns the smallest element over axes. NaN propagates.
func (cpu *CPUBackend) Min(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	if x.DType() == tensor.Bool {
		checkNonEmpty("min", x, axes)
		return cpu.All(x, axes)
	}
	return cpu.reduceNumeric(redMin, x, axes, x.DType())
}

// Max returns the largest element over axes. NaN propagates.
func (cpu *CPUBackend) Max(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	if x.DType() == tensor.Bool {
		checkNonEmpty("max", x, axes)
		return cpu.Any(x, axes)
	}
	return cpu.reduceNumeric(redMax, x, axes, x.DType())
}

// Mean returns the arithmetic mean over axes; empty lanes give NaN.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	return cpu.reduceStat("mean", x, axes, meanOf)
}

// Var returns the population variance over axes: mean((x - mean(x))**2).
func (cpu *CPUBackend) Var(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	return cpu.reduceStat("var", x, axes, varianceOf)
}

// Std returns the population standard deviation over axes.
func (cpu *CPUBackend) Std(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	return cpu.reduceStat("std", x, axes, func(values []float64) float64 {
		return math.Sqrt(varianceOf(values))
	})
}

// All reports whether every element over axes is truthy (non-zero).
func (cpu *CPUBackend) All(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	return cpu.reduceBool("all", x, axes, func(values []bool) bool {
		for _, v := range values {
			if !v {
				return false
			}
		}
		return true
	})
}

// Any reports whether some element over axes is truthy (non-zero).
func (cpu *CPUBackend) Any(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	return cpu.reduceBool("any", x, axes, func(values []bool) bool {
		for _, v := range values {
			if v {
				return true
			}
		}
		return false
	})
}

// Argmin returns the int64 index of the first minimum along axis.
// A NaN counts as the minimum.
func (cpu *CPUBackend) Argmin(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	return cpu.argExtreme("argmin", x, axis, false)
}

// Argmax returns the int64 index of the first maximum along axis.
// A NaN counts as the maximum.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	return cpu.argExtreme("argmax", x, axis, true)
}

// accumulatorType returns the dtype Sum and Prod compute in.
func accumulatorType(dt tensor.DataType) tensor.DataType {
	defaultInt := tensor.CurrentConfig().DefaultInt
	if dt == tensor.Bool || (dt.IsInt() && dt < defaultInt) {
		return defaultInt
	}
	return dt
}

// statType returns the dtype Mean, Var and Std produce.
func statType(dt tensor.DataType) tensor.DataType {
	if dt == tensor.Float32 {
		return tensor.Float32
	}
	return tensor.Float64
}

// reductionLayout returns the permutation moving axes last, the shape of the
// kept axes and the number of elements reduced into each output.
func reductionLayout(shape tensor.Shape, axes []int) (perm []int, kept tensor.Shape, lane int) {
	reduced := make([]bool, len(shape))
	for _, ax := range axes {
		reduced[ax] = true
	}

	perm = make([]int, 0, len(shape))
	kept = make(tensor.Shape, 0, len(shape))
	lane = 1
	for i, dim := range shape {
		if !reduced[i] {
			perm = append(perm, i)
			kept = append(kept, dim)
		}
	}
	for i, dim := range shape {
		if reduced[i] {
			perm = append(perm, i)
			lane *= dim
		}
	}
	return perm, kept, lane
}

// lanes lays x out as contiguous lanes over axes.
func (cpu *CPUBackend) lanes(op string, x *tensor.RawTensor, axes []int) (*tensor.RawTensor, tensor.Shape, int) {
	rank := x.Rank()
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			throwf(tensor.ErrShape, op, "axis %d out of range for %dD array", ax, rank)
		}
		if seen[ax] {
			throwf(tensor.ErrShape, op, "duplicate axis %d", ax)
		}
		seen[ax] = true
	}

	perm, kept, lane := reductionLayout(x.Shape(), axes)
	if !isIdentity(perm) {
		x = cpu.Transpose(x, perm...)
	}
	return x, kept, lane
}

func isIdentity(perm []int) bool {
	for i, p := range perm {
		if i != p {
			return false
		}
	}
	return true
}

func checkNonEmpty(op string, x *tensor.RawTensor, axes []int) {
	for _, ax := range axes {
		if ax >= 0 && ax < x.Rank() && x.Shape()[ax] == 0 {
			throwf(tensor.ErrShape, op, "zero-size reduction has no identity")
		}
	}
}

// reduceLanes sets dst[i] = fn(lane i of src).
func reduceLanes[T, R tensor.Element](dst []R, src []T, lane int, fn func(values []T) R) {
	parallel.For(len(dst), func(i int) {
		dst[i] = fn(src[i*lane : (i+1)*lane])
	}, parallelConfig())
}

func (cpu *CPUBackend) reduceNumeric(op reduceOp, x *tensor.RawTensor, axes []int, dt tensor.DataType) *tensor.RawTensor {
	name := reduceNames[op]
	lanes, kept, lane := cpu.lanes(name, cpu.asType(x, dt), axes)
	if lane == 0 && (op == redMin || op == redMax) {
		throwf(tensor.ErrShape, name, "zero-size reduction has no identity")
	}

	result := tensor.MustNewRaw(kept, dt)
	switch dt {
	case tensor.Int8:
		reduceLanes(result.AsInt8(), lanes.AsInt8(), lane, numericReducer[int8](op))
	case tensor.Int16:
		reduceLanes(result.AsInt16(), lanes.AsInt16(), lane, numericReducer[int16](op))
	case tensor.Int32:
		reduceLanes(result.AsInt32(), lanes.AsInt32(), lane, numericReducer[int32](op))
	case tensor.Int64:
		reduceLanes(result.AsInt64(), lanes.AsInt64(), lane, numericReducer[int64](op))
	case tensor.Float32:
		reduceLanes(result.AsFloat32(), lanes.AsFloat32(), lane, numericReducer[float32](op))
	case tensor.Float64:
		reduceLanes(result.AsFloat64(), lanes.AsFloat64(), lane, numericReducer[float64](op))
	default:
		throwf(tensor.ErrDtype, name, "unsupported dtype %s", dt)
	}
	return result
}

func numericReducer[T tensor.Numeric](op reduceOp) func(values []T) T {
	switch op {
	case redSum:
		return func(values []T) T {
			var acc T
			for _, v := range values {
				acc += v
			}
			return acc
		}
	case redProd:
		return func(values []T) T {
			acc := T(1)
			for _, v := range values {
				acc *= v
			}
			return acc
		}
	case redMin:
		return func(values []T) T {
			acc := values[0]
			for _, v := range values[1:] {
				// v != v only holds for NaN; once acc is NaN no comparison replaces it.
				if v < acc || v != v {
					acc = v
				}
			}
			return acc
		}
	default:
		return func(values []T) T {
			acc := values[0]
			for _, v := range values[1:] {
				if v > acc || v != v {
					acc = v
				}
			}
			return acc
		}
	}
}

func (cpu *CPUBackend) reduceStat(op string, x *tensor.RawTensor, axes []int, fn func([]float64) float64) *tensor.RawTensor {
	lanes, kept, lane := cpu.lanes(op, cpu.asType(x, tensor.Float64), axes)
	out := tensor.MustNewRaw(kept, tensor.Float64)
	reduceLanes(out.AsFloat64(), lanes.AsFloat64(), lane, fn)
	if dt := statType(x.DType()); dt != tensor.Float64 {
		return cpu.Cast(out, dt)
	}
	return out
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func varianceOf(values []float64) float64 {
	mean := meanOf(values)
	var acc float64
	for _, v := range values {
		d := v - mean
		acc += d * d
	}
	return acc / float64(len(values))
}

func (cpu *CPUBackend) reduceBool(op string, x *tensor.RawTensor, axes []int, fn func([]bool) bool) *tensor.RawTensor {
	lanes, kept, lane := cpu.lanes(op, cpu.asType(x, tensor.Bool), axes)
	result := tensor.MustNewRaw(kept, tensor.Bool)
	reduceLanes(result.AsBool(), lanes.AsBool(), lane, fn)
	return result
}

func (cpu *CPUBackend) argExtreme(op string, x *tensor.RawTensor, axis int, wantMax bool) *tensor.RawTensor {
	if x.DType() == tensor.Bool {
		x = cpu.Cast(x, tensor.Int8)
	}
	lanes, kept, lane := cpu.lanes(op, x, []int{axis})
	if lane == 0 {
		throwf(tensor.ErrShape, op, "attempt to get %s of an empty sequence", op)
	}

	result := tensor.MustNewRaw(kept, tensor.Int64)
	dst := result.AsInt64()
	switch x.DType() {
	case tensor.Int8:
		reduceLanes(dst, lanes.AsInt8(), lane, argReducer[int8](wantMax))
	case tensor.Int16:
		reduceLanes(dst, lanes.AsInt16(), lane, argReducer[int16](wantMax))
	case tensor.Int32:
		reduceLanes(dst, lanes.AsInt32(), lane, argReducer[int32](wantMax))
	case tensor.Int64:
		reduceLanes(dst, lanes.AsInt64(), lane, argReducer[int64](wantMax))
	case tensor.Float32:
		reduceLanes(dst, lanes.AsFloat32(), lane, argReducer[float32](wantMax))
	case tensor.Float64:
		reduceLanes(dst, lanes.AsFloat64(), lane, argReducer[float64](wantMax))
	default:
		throwf(tensor.ErrDtype, op, "unsupported dtype %s", x.DType())
	}
	return result
}

// argReducer returns the index of the first extreme value; ties keep the lowest index.
func argReducer[T constraints.Integer | constraints.Float](wantMax bool) func(values []T) int64 {
	return func(values []T) int64 {
		best := 0
		for i := 1; i < len(values); i++ {
			b := values[best]
			if b != b {
				break
			}
			v := values[i]
			if v != v || (wantMax && v > b) || (!wantMax && v < b) {
				best = i
			}
		}
		return int64(best)
	}
}
