// Package cpu implements the CPU backend: generic pure-Go kernels with a
// gonum BLAS path for float64 matrix products.
package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/internal/parallel"
	"github.com/born-ml/numpy/internal/tensor"
)

var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements array operations on the CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// parallelConfig derives the worker pool settings from the engine configuration.
func parallelConfig() parallel.Config {
	return parallel.FromWorkers(tensor.CurrentConfig().Workers)
}

// throwf panics with kind wrapped in a formatted message prefixed by the operation name.
func throwf(kind error, op, format string, args ...any) {
	panic(errors.Wrapf(kind, op+": "+format, args...))
}

// broadcastOrThrow resolves the broadcast shape of a and b or panics with ErrBroadcast.
func broadcastOrThrow(op string, a, b *tensor.RawTensor) tensor.Shape {
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(errors.WithMessage(err, op))
	}
	return outShape
}
