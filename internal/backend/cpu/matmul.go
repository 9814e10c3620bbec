package cpu

import (
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/born-ml/numpy/internal/parallel"
	"github.com/born-ml/numpy/internal/tensor"
)

// MatMul performs matrix multiplication in the promoted dtype.
// For 2D arrays: (M, K) @ (K, N) -> (M, N).
// A 1-D left operand is treated as a row vector and a 1-D right operand as a
// column vector; the added axis is dropped from the result.
// Float64 products go through gonum (BLAS); other dtypes use the native
// kernel, row-parallel when more than one worker is configured.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.Rank() == 0 || b.Rank() == 0 || a.Rank() > 2 || b.Rank() > 2 {
		throwf(tensor.ErrShape, "matmul", "only 1D and 2D arrays supported, got %dD and %dD", a.Rank(), b.Rank())
	}

	aShape, bShape := a.Shape(), b.Shape()
	var outShape tensor.Shape
	if a.Rank() == 1 {
		aShape = tensor.Shape{1, aShape[0]}
	} else {
		outShape = append(outShape, aShape[0])
	}
	if b.Rank() == 1 {
		bShape = tensor.Shape{bShape[0], 1}
	} else {
		outShape = append(outShape, bShape[1])
	}
	if outShape == nil {
		outShape = tensor.Shape{}
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		throwf(tensor.ErrShape, "matmul", "shape mismatch %v @ %v: inner dimensions %d != %d",
			[]int(a.Shape()), []int(b.Shape()), k, kAlt)
	}

	dt := tensor.Promote(a.DType(), b.DType())
	a, b = cpu.asType(a, dt), cpu.asType(b, dt)
	result := tensor.MustNewRaw(outShape, dt)

	switch dt {
	case tensor.Bool:
		matmulBool(result.AsBool(), a.AsBool(), b.AsBool(), m, k, n)
	case tensor.Int8:
		matmulRows(result.AsInt8(), a.AsInt8(), b.AsInt8(), m, k, n)
	case tensor.Int16:
		matmulRows(result.AsInt16(), a.AsInt16(), b.AsInt16(), m, k, n)
	case tensor.Int32:
		matmulRows(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n)
	case tensor.Int64:
		matmulRows(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n)
	case tensor.Float32:
		matmulRows(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	default:
		throwf(tensor.ErrDtype, "matmul", "unsupported dtype %s", dt)
	}
	return result
}

// matmulFloat64 uses gonum's Dense.Mul. gonum rejects zero-sized matrices,
// those fall back to the native kernel.
func matmulFloat64(c, a, b []float64, m, k, n int) {
	if m == 0 || k == 0 || n == 0 {
		matmulRows(c, a, b, m, k, n)
		return
	}
	klog.V(2).Infof("matmul: gonum Dense.Mul (%d,%d)@(%d,%d)", m, k, k, n)
	lhs := mat.NewDense(m, k, a)
	rhs := mat.NewDense(k, n, b)
	out := mat.NewDense(m, n, c)
	out.Mul(lhs, rhs)
}

// matmulRows computes C[i,j] = sum_k A[i,k] * B[k,j] row by row, in i-k-j
// order for sequential access of B and C.
func matmulRows[T tensor.Numeric](c, a, b []T, m, k, n int) {
	parallel.For(m, func(i int) {
		row := c[i*n : (i+1)*n]
		for j := range row {
			row[j] = 0
		}
		for p := 0; p < k; p++ {
			aik := a[i*k+p]
			bRow := b[p*n : (p+1)*n]
			for j, bv := range bRow {
				row[j] += aik * bv
			}
		}
	}, parallelConfig())
}

// matmulBool computes the logical matrix product: C[i,j] = OR_k (A[i,k] AND B[k,j]).
func matmulBool(c, a, b []bool, m, k, n int) {
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			if !a[i*k+p] {
				continue
			}
			for j := 0; j < n; j++ {
				c[i*n+j] = c[i*n+j] || b[p*n+j]
			}
		}
	}
}
