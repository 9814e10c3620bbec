package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/tensor"
)

// Index returns a copy of the sub-array of x selected by leading indices.
// Negative indices count from the end of their axis.
//
// Example:
//
//	x: shape [2, 3, 4]
//	Index(x, []int{1})     -> shape [3, 4]
//	Index(x, []int{1, -1}) -> shape [4]
func (cpu *CPUBackend) Index(x *tensor.RawTensor, indices []int) *tensor.RawTensor {
	offset, subShape := subArray("index", x, indices)
	elemSize := x.DType().Size()

	result := tensor.MustNewRaw(subShape, x.DType())
	start := offset * elemSize
	copy(result.Data(), x.Data()[start:start+result.ByteSize()])
	return result
}

// SetIndex returns a copy of x whose sub-array at indices is replaced by value,
// cast to x's dtype and broadcast to the sub-array shape.
func (cpu *CPUBackend) SetIndex(x *tensor.RawTensor, indices []int, value *tensor.RawTensor) *tensor.RawTensor {
	offset, subShape := subArray("setitem", x, indices)
	block := cpu.BroadcastTo(cpu.asType(value, x.DType()), subShape)

	result := x.Clone()
	start := offset * x.DType().Size()
	copy(result.Data()[start:start+block.ByteSize()], block.Data())
	return result
}

func subArray(op string, x *tensor.RawTensor, indices []int) (int, tensor.Shape) {
	offset, err := x.FlatIndex(indices)
	if err != nil {
		panic(errors.WithMessage(err, op))
	}
	return offset, x.Shape()[len(indices):].Clone()
}

// Where selects elements from x where condition is truthy and from y elsewhere.
// All three operands broadcast together; x and y are promoted to a common dtype.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	outShape, _, err := tensor.BroadcastShapes(condition.Shape(), x.Shape())
	if err != nil {
		panic(errors.WithMessage(err, "where: failed to broadcast condition and x"))
	}
	outShape, _, err = tensor.BroadcastShapes(outShape, y.Shape())
	if err != nil {
		panic(errors.WithMessage(err, "where: failed to broadcast with y"))
	}

	dt := tensor.Promote(x.DType(), y.DType())
	cond := cpu.BroadcastTo(cpu.asType(condition, tensor.Bool), outShape).AsBool()
	xb := cpu.BroadcastTo(cpu.asType(x, dt), outShape)
	yb := cpu.BroadcastTo(cpu.asType(y, dt), outShape)

	result := tensor.MustNewRaw(outShape, dt)
	elemSize := dt.Size()
	dst := result.Data()
	for i, c := range cond {
		src := yb.Data()
		if c {
			src = xb.Data()
		}
		copy(dst[i*elemSize:(i+1)*elemSize], src[i*elemSize:(i+1)*elemSize])
	}
	return result
}
