package cpu

import (
	"cmp"
	"slices"

	"github.com/born-ml/numpy/internal/parallel"
	"github.com/born-ml/numpy/internal/tensor"
)

// Sort returns a copy of x sorted ascending along axis.
// It gathers x by Argsort, so both always agree, ties included.
func (cpu *CPUBackend) Sort(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	if x.Rank() == 0 {
		return x.Clone()
	}
	perm := cpu.checkSortAxis("sort", x, axis)
	lanes := cpu.Transpose(x, perm...)
	order := argsortLanes(lanes, x.Shape()[axis])

	sorted := tensor.MustNewRaw(lanes.Shape(), x.DType())
	gatherLanes(sorted.Data(), lanes.Data(), order, x.Shape()[axis], x.DType().Size())
	return cpu.Transpose(sorted, tensor.InversePermutation(perm)...)
}

// Argsort returns the int64 indices that sort x along axis, using a stable
// sort: equal elements keep their original order. NaN sorts last and false
// sorts before true.
func (cpu *CPUBackend) Argsort(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	if x.Rank() == 0 {
		return tensor.MustNewRaw(tensor.Shape{}, tensor.Int64)
	}
	perm := cpu.checkSortAxis("argsort", x, axis)
	lanes := cpu.Transpose(x, perm...)
	order := argsortLanes(lanes, x.Shape()[axis])

	result := tensor.MustNewRaw(lanes.Shape(), tensor.Int64)
	copy(result.AsInt64(), order)
	return cpu.Transpose(result, tensor.InversePermutation(perm)...)
}

// checkSortAxis validates axis and returns the permutation moving it last.
func (cpu *CPUBackend) checkSortAxis(op string, x *tensor.RawTensor, axis int) []int {
	rank := x.Rank()
	if axis < 0 || axis >= rank {
		throwf(tensor.ErrShape, op, "axis %d out of range for %dD array", axis, rank)
	}
	perm := make([]int, 0, rank)
	for i := 0; i < rank; i++ {
		if i != axis {
			perm = append(perm, i)
		}
	}
	return append(perm, axis)
}

// argsortLanes returns, for each contiguous lane of the given length, the
// lane-local indices in sorted order.
func argsortLanes(x *tensor.RawTensor, lane int) []int64 {
	switch x.DType() {
	case tensor.Bool:
		return argsortTyped(x.AsBool(), lane, compareBool)
	case tensor.Int8:
		return argsortTyped(x.AsInt8(), lane, cmp.Compare[int8])
	case tensor.Int16:
		return argsortTyped(x.AsInt16(), lane, cmp.Compare[int16])
	case tensor.Int32:
		return argsortTyped(x.AsInt32(), lane, cmp.Compare[int32])
	case tensor.Int64:
		return argsortTyped(x.AsInt64(), lane, cmp.Compare[int64])
	case tensor.Float32:
		return argsortTyped(x.AsFloat32(), lane, compareNaNLast[float32])
	case tensor.Float64:
		return argsortTyped(x.AsFloat64(), lane, compareNaNLast[float64])
	}
	throwf(tensor.ErrDtype, "argsort", "unsupported dtype %s", x.DType())
	return nil
}

func argsortTyped[T tensor.Element](values []T, lane int, compare func(a, b T) int) []int64 {
	order := make([]int64, len(values))
	if lane == 0 {
		return order
	}
	parallel.For(len(values)/lane, func(l int) {
		base := l * lane
		idx := order[base : base+lane]
		for i := range idx {
			idx[i] = int64(i)
		}
		laneValues := values[base : base+lane]
		slices.SortStableFunc(idx, func(i, j int64) int {
			return compare(laneValues[i], laneValues[j])
		})
	}, parallelConfig())
	return order
}

// gatherLanes writes dst lane l element i = src lane l element order[l*lane+i].
func gatherLanes(dst, src []byte, order []int64, lane, elemSize int) {
	for i, o := range order {
		base := (i / lane) * lane
		from := (base + int(o)) * elemSize
		copy(dst[i*elemSize:(i+1)*elemSize], src[from:from+elemSize])
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// compareNaNLast orders floats ascending with every NaN after +Inf.
func compareNaNLast[T float32 | float64](a, b T) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
