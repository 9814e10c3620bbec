package tensor

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
)

// RawTensor is the low-level array representation: a contiguous row-major byte
// buffer tagged with a dtype and a shape.
//
// Every RawTensor exclusively owns its buffer. Operations that change the layout
// (transpose, reshape, squeeze) copy, so no two arrays alias the same memory.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero initialized.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid shape")
	}
	if !dtype.IsValid() {
		return nil, errors.Wrapf(ErrDtype, "invalid dtype %d", int(dtype))
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// MustNewRaw is like NewRaw but panics on an invalid shape or dtype.
// Kernels use it after they validated their inputs.
func MustNewRaw(shape Shape, dtype DataType) *RawTensor {
	r, err := NewRaw(shape, dtype)
	if err != nil {
		panic(err)
	}
	return r
}

// Shape returns the array's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the array's row-major element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the array's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Rank returns the number of dimensions.
func (r *RawTensor) Rank() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return len(r.data)
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// Clone returns a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// Reshaped returns a copy of r with a new shape holding the same number of elements.
func (r *RawTensor) Reshaped(shape Shape) *RawTensor {
	if shape.NumElements() != r.NumElements() {
		panic(errors.Wrapf(ErrShape, "cannot reshape array of size %d into shape %v", r.NumElements(), shape))
	}
	c := r.Clone()
	c.shape = shape.Clone()
	c.stride = shape.ComputeStrides()
	return c
}

// Assign replaces r's buffer, shape and dtype with those of src, keeping r's identity.
// src must not be used afterwards.
func (r *RawTensor) Assign(src *RawTensor) {
	r.data = src.data
	r.shape = src.shape
	r.stride = src.stride
	r.dtype = src.dtype
}

// FlatIndex converts per-axis indices into a flat element offset.
// Negative indices count from the end of their axis.
func (r *RawTensor) FlatIndex(indices []int) (int, error) {
	if len(indices) > len(r.shape) {
		return 0, errors.Wrapf(ErrIndex, "too many indices for array: array is %dD, but %d were indexed",
			len(r.shape), len(indices))
	}
	offset := 0
	for i, idx := range indices {
		dim := r.shape[i]
		if idx < 0 {
			idx += dim
		}
		if idx < 0 || idx >= dim {
			return 0, errors.Wrapf(ErrIndex, "index %d is out of bounds for axis %d with size %d", indices[i], i, dim)
		}
		offset += idx * r.stride[i]
	}
	return offset, nil
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (r *RawTensor) AsBool() []bool { return Flat[bool](r) }

// AsInt8 interprets the data as []int8.
func (r *RawTensor) AsInt8() []int8 { return Flat[int8](r) }

// AsInt16 interprets the data as []int16.
func (r *RawTensor) AsInt16() []int16 { return Flat[int16](r) }

// AsInt32 interprets the data as []int32.
func (r *RawTensor) AsInt32() []int32 { return Flat[int32](r) }

// AsInt64 interprets the data as []int64.
func (r *RawTensor) AsInt64() []int64 { return Flat[int64](r) }

// AsFloat32 interprets the data as []float32.
func (r *RawTensor) AsFloat32() []float32 { return Flat[float32](r) }

// AsFloat64 interprets the data as []float64.
func (r *RawTensor) AsFloat64() []float64 { return Flat[float64](r) }

// Flat interprets the array's buffer as a typed slice (zero-copy).
// Panics if T does not match the array's dtype.
func Flat[T Element](r *RawTensor) []T {
	if want := DataTypeOf[T](); want != r.dtype {
		panic(errors.Wrapf(ErrDtype, "array dtype is %s, not %s", r.dtype, want))
	}
	n := r.NumElements()
	if n == 0 {
		return []T{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), n)
}

// String returns a short description of the array.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v", r.dtype, []int(r.shape))
}
