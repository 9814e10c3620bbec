package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/numpy/internal/tensor"
)

func TestMatMul(t *testing.T) {
	backend := newTestBackend()

	t.Run("Int64", func(t *testing.T) {
		a := int64s(tensor.Shape{2, 2}, 1, 2, 3, 4)
		b := int64s(tensor.Shape{2, 2}, 5, 6, 7, 8)
		result := backend.MatMul(a, b)
		if got := result.AsInt64(); !int64SliceEqual(got, []int64{19, 22, 43, 50}) {
			t.Errorf("Got %v", got)
		}
	})

	t.Run("Float64", func(t *testing.T) {
		// (3, 2) @ (2, 3) -> (3, 3)
		a := float64s(tensor.Shape{3, 2}, 1, 2, 2, 3, 4, 5)
		b := float64s(tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		result := backend.MatMul(a, b)
		if !result.Shape().Equal(tensor.Shape{3, 3}) {
			t.Fatalf("Expected shape [3 3], got %v", result.Shape())
		}
		want := []float64{9, 12, 15, 14, 19, 24, 24, 33, 42}
		if got := result.AsFloat64(); !float64SliceEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("Float32", func(t *testing.T) {
		a := backend.Cast(float64s(tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6), tensor.Float32)
		b := backend.Cast(float64s(tensor.Shape{3, 2}, 1, 2, 2, 3, 4, 5), tensor.Float32)
		result := backend.MatMul(a, b)
		if result.DType() != tensor.Float32 {
			t.Fatalf("Expected float32, got %s", result.DType())
		}
		want := []float32{17, 23, 38, 53}
		for i, v := range result.AsFloat32() {
			if v != want[i] {
				t.Errorf("[%d]: expected %v, got %v", i, want[i], v)
			}
		}
	})

	t.Run("Promotion", func(t *testing.T) {
		a := int64s(tensor.Shape{1, 2}, 1, 2)
		b := float64s(tensor.Shape{2, 1}, 0.5, 0.25)
		result := backend.MatMul(a, b)
		if result.DType() != tensor.Float64 || result.AsFloat64()[0] != 1 {
			t.Errorf("Got %s %v", result.DType(), result.AsFloat64())
		}
	})

	t.Run("Bool", func(t *testing.T) {
		a := bools(tensor.Shape{2, 2}, true, false, false, false)
		b := bools(tensor.Shape{2, 2}, true, true, true, false)
		got := backend.MatMul(a, b).AsBool()
		want := []bool{true, true, false, false}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("[%d]: expected %v, got %v", i, want[i], got[i])
			}
		}
	})

	t.Run("Vectors", func(t *testing.T) {
		m := int64s(tensor.Shape{2, 2}, 1, 2, 3, 4)
		v := int64s(tensor.Shape{2}, 1, 1)

		left := backend.MatMul(v, m)
		if !left.Shape().Equal(tensor.Shape{2}) || !int64SliceEqual(left.AsInt64(), []int64{4, 6}) {
			t.Errorf("v @ m: got %v %v", left.Shape(), left.AsInt64())
		}
		right := backend.MatMul(m, v)
		if !right.Shape().Equal(tensor.Shape{2}) || !int64SliceEqual(right.AsInt64(), []int64{3, 7}) {
			t.Errorf("m @ v: got %v %v", right.Shape(), right.AsInt64())
		}
		dot := backend.MatMul(v, v)
		if dot.Rank() != 0 || dot.AsInt64()[0] != 2 {
			t.Errorf("v @ v: got %v %v", dot.Shape(), dot.AsInt64())
		}
	})

	t.Run("ZeroInner", func(t *testing.T) {
		result := backend.MatMul(float64s(tensor.Shape{2, 0}), float64s(tensor.Shape{0, 3}))
		if got := result.AsFloat64(); !float64SliceEqual(got, make([]float64, 6)) {
			t.Errorf("Expected zeros, got %v", got)
		}
	})

	t.Run("NaNPropagates", func(t *testing.T) {
		a := backend.Cast(float64s(tensor.Shape{1, 2}, 0, 1), tensor.Float32)
		b := backend.Cast(float64s(tensor.Shape{2, 1}, math.NaN(), 1), tensor.Float32)
		if got := backend.MatMul(a, b).AsFloat32()[0]; !math.IsNaN(float64(got)) {
			t.Errorf("Expected NaN, got %v", got)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		expectError(t, tensor.ErrShape, func() {
			backend.MatMul(float64s(tensor.Shape{2, 3}), float64s(tensor.Shape{2, 3}))
		})
		expectError(t, tensor.ErrShape, func() {
			backend.MatMul(float64s(tensor.Shape{1, 1, 1}), float64s(tensor.Shape{1, 1}))
		})
		expectError(t, tensor.ErrShape, func() {
			backend.MatMul(float64s(tensor.Shape{}), float64s(tensor.Shape{1}))
		})
	})
}
