package cpu

import (
	"github.com/born-ml/numpy/internal/tensor"
)

// Layout operations work on raw bytes, so they are dtype independent.

// Reshape returns a copy of x with the same row-major elements under newShape.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		throwf(tensor.ErrShape, "reshape", "invalid shape %v", []int(newShape))
	}
	if x.NumElements() != newShape.NumElements() {
		throwf(tensor.ErrShape, "reshape", "cannot reshape array of size %d into shape %v",
			x.NumElements(), []int(newShape))
	}
	return x.Reshaped(newShape)
}

// Transpose permutes the axes of x into a new array.
// Without axes the axis order is reversed.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if err := tensor.ValidatePermutation(axes, ndim); err != nil {
		throwf(tensor.ErrShape, "transpose", "%v", err)
	}

	result := tensor.MustNewRaw(shape.Permute(axes), x.DType())
	transposeBytes(result.Data(), x.Data(), shape, axes, x.DType().Size())
	return result
}

// transposeBytes copies src (row-major in shape) into dst (row-major in the permuted shape).
func transposeBytes(dst, src []byte, shape tensor.Shape, axes []int, elemSize int) {
	n := shape.NumElements()
	if n == 0 {
		return
	}
	srcStrides := shape.ComputeStrides()
	outShape := shape.Permute(axes)
	strides := make([]int, len(axes))
	for i, ax := range axes {
		strides[i] = srcStrides[ax]
	}

	// Walk the output in row-major order, tracking the source offset incrementally.
	coords := make([]int, len(outShape))
	srcIdx := 0
	for i := 0; i < n; i++ {
		copy(dst[i*elemSize:(i+1)*elemSize], src[srcIdx*elemSize:(srcIdx+1)*elemSize])
		for d := len(outShape) - 1; d >= 0; d-- {
			coords[d]++
			srcIdx += strides[d]
			if coords[d] < outShape[d] {
				break
			}
			srcIdx -= coords[d] * strides[d]
			coords[d] = 0
		}
	}
}

// splitAt returns the number of outer blocks before axis and the byte size
// of one slice along axis.
func splitAt(shape tensor.Shape, axis, elemSize int) (outer, sliceBytes int) {
	outer = shape[:axis].NumElements()
	sliceBytes = shape[axis+1:].NumElements() * elemSize
	return outer, sliceBytes
}

// Repeat duplicates every slice along axis. A single count applies to all
// slices; otherwise len(repeats) must equal the axis extent.
func (cpu *CPUBackend) Repeat(x *tensor.RawTensor, repeats []int, axis int) *tensor.RawTensor {
	shape := x.Shape()
	if axis < 0 || axis >= len(shape) {
		throwf(tensor.ErrShape, "repeat", "axis %d out of range for %dD array", axis, len(shape))
	}
	extent := shape[axis]
	if len(repeats) == 1 && extent != 1 {
		count := repeats[0]
		repeats = make([]int, extent)
		for i := range repeats {
			repeats[i] = count
		}
	}
	if len(repeats) != extent {
		throwf(tensor.ErrShape, "repeat", "operands could not be broadcast together: %d repeats for axis of size %d",
			len(repeats), extent)
	}
	total := 0
	for _, r := range repeats {
		if r < 0 {
			throwf(tensor.ErrShape, "repeat", "negative repeat count %d", r)
		}
		total += r
	}

	outShape := shape.Clone()
	outShape[axis] = total
	result := tensor.MustNewRaw(outShape, x.DType())

	outer, sliceBytes := splitAt(shape, axis, x.DType().Size())
	src, dst := x.Data(), result.Data()
	pos := 0
	for o := 0; o < outer; o++ {
		for i, r := range repeats {
			from := (o*extent + i) * sliceBytes
			for range r {
				copy(dst[pos:pos+sliceBytes], src[from:from+sliceBytes])
				pos += sliceBytes
			}
		}
	}
	return result
}

// Resize returns x's row-major elements laid out in newShape, truncated or
// zero-padded to the new element count.
func (cpu *CPUBackend) Resize(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		throwf(tensor.ErrShape, "resize", "invalid shape %v", []int(newShape))
	}
	result := tensor.MustNewRaw(newShape, x.DType())
	copy(result.Data(), x.Data())
	return result
}

// Concatenate joins arrays of one dtype along axis. All other dimensions must match.
func (cpu *CPUBackend) Concatenate(xs []*tensor.RawTensor, axis int) *tensor.RawTensor {
	if len(xs) == 0 {
		throwf(tensor.ErrShape, "concatenate", "need at least one array to concatenate")
	}
	first := xs[0]
	rank := first.Rank()
	if rank == 0 {
		throwf(tensor.ErrShape, "concatenate", "zero-dimensional arrays cannot be concatenated")
	}
	if axis < 0 || axis >= rank {
		throwf(tensor.ErrShape, "concatenate", "axis %d out of range for %dD array", axis, rank)
	}

	outShape := first.Shape().Clone()
	outShape[axis] = 0
	for i, x := range xs {
		if x.DType() != first.DType() {
			throwf(tensor.ErrDtype, "concatenate", "array %d has dtype %s, expected %s", i, x.DType(), first.DType())
		}
		if x.Rank() != rank {
			throwf(tensor.ErrShape, "concatenate", "array %d has %d dimension(s), expected %d", i, x.Rank(), rank)
		}
		for d, dim := range x.Shape() {
			if d != axis && dim != outShape[d] {
				throwf(tensor.ErrShape, "concatenate", "dimension %d of array %d is %d, expected %d",
					d, i, dim, outShape[d])
			}
		}
		outShape[axis] += x.Shape()[axis]
	}

	result := tensor.MustNewRaw(outShape, first.DType())
	dst := result.Data()
	outer, _ := splitAt(outShape, axis, 1)
	pos := 0
	for o := 0; o < outer; o++ {
		for _, x := range xs {
			_, sliceBytes := splitAt(x.Shape(), axis, x.DType().Size())
			block := x.Shape()[axis] * sliceBytes
			copy(dst[pos:pos+block], x.Data()[o*block:(o+1)*block])
			pos += block
		}
	}
	return result
}

// Take selects slices along axis by index; negative indices count from the end.
func (cpu *CPUBackend) Take(x *tensor.RawTensor, indices []int, axis int) *tensor.RawTensor {
	shape := x.Shape()
	if axis < 0 || axis >= len(shape) {
		throwf(tensor.ErrShape, "take", "axis %d out of range for %dD array", axis, len(shape))
	}
	extent := shape[axis]
	resolved := make([]int, len(indices))
	for i, idx := range indices {
		if idx < 0 {
			idx += extent
		}
		if idx < 0 || idx >= extent {
			throwf(tensor.ErrIndex, "take", "index %d is out of bounds for axis %d with size %d", indices[i], axis, extent)
		}
		resolved[i] = idx
	}

	outShape := shape.Clone()
	outShape[axis] = len(resolved)
	result := tensor.MustNewRaw(outShape, x.DType())

	outer, sliceBytes := splitAt(shape, axis, x.DType().Size())
	src, dst := x.Data(), result.Data()
	pos := 0
	for o := 0; o < outer; o++ {
		for _, idx := range resolved {
			from := (o*extent + idx) * sliceBytes
			copy(dst[pos:pos+sliceBytes], src[from:from+sliceBytes])
			pos += sliceBytes
		}
	}
	return result
}

// BroadcastTo expands x to shape following the broadcasting rules.
func (cpu *CPUBackend) BroadcastTo(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	outShape, _, err := tensor.BroadcastShapes(x.Shape(), shape)
	if err != nil || !outShape.Equal(shape) {
		throwf(tensor.ErrBroadcast, "broadcast_to", "cannot broadcast shape %v to %v", []int(x.Shape()), []int(shape))
	}

	result := tensor.MustNewRaw(shape, x.DType())
	elemSize := x.DType().Size()
	outStrides := shape.ComputeStrides()
	inStrides := computeBroadcastStridesForShape(x.Shape(), shape)
	src, dst := x.Data(), result.Data()
	for i := 0; i < shape.NumElements(); i++ {
		from := computeFlatIndex(i, outStrides, inStrides) * elemSize
		copy(dst[i*elemSize:(i+1)*elemSize], src[from:from+elemSize])
	}
	return result
}
