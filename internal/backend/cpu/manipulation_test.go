package cpu

import (
	"testing"

	"github.com/born-ml/numpy/internal/tensor"
)

func TestReshape(t *testing.T) {
	backend := newTestBackend()
	x := int64s(tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	result := backend.Reshape(x, tensor.Shape{3, 2})
	if !result.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Expected shape [3 2], got %v", result.Shape())
	}
	if !int64SliceEqual(result.AsInt64(), x.AsInt64()) {
		t.Errorf("Reshape changed element order: %v", result.AsInt64())
	}
	result.AsInt64()[0] = 100
	if x.AsInt64()[0] != 1 {
		t.Error("Reshape must copy")
	}

	expectError(t, tensor.ErrShape, func() { backend.Reshape(x, tensor.Shape{4}) })
}

func TestTranspose(t *testing.T) {
	backend := newTestBackend()

	t.Run("2D", func(t *testing.T) {
		// [[1 2 3]    [[1 4]
		//  [4 5 6]] -> [2 5]
		//              [3 6]]
		x := int64s(tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		result := backend.Transpose(x)
		if !result.Shape().Equal(tensor.Shape{3, 2}) {
			t.Fatalf("Expected shape [3 2], got %v", result.Shape())
		}
		if got := result.AsInt64(); !int64SliceEqual(got, []int64{1, 4, 2, 5, 3, 6}) {
			t.Errorf("Got %v", got)
		}
	})

	t.Run("3D", func(t *testing.T) {
		x := tensor.MustNewRaw(tensor.Shape{2, 3, 4}, tensor.Int64)
		data := x.AsInt64()
		for i := range data {
			data[i] = int64(i)
		}
		result := backend.Transpose(x, 2, 0, 1)
		if !result.Shape().Equal(tensor.Shape{4, 2, 3}) {
			t.Fatalf("Expected shape [4 2 3], got %v", result.Shape())
		}
		got := result.AsInt64()
		for k := 0; k < 4; k++ {
			for i := 0; i < 2; i++ {
				for j := 0; j < 3; j++ {
					want := int64(i*12 + j*4 + k)
					if v := got[k*6+i*3+j]; v != want {
						t.Fatalf("[%d %d %d]: expected %d, got %d", k, i, j, want, v)
					}
				}
			}
		}

		back := backend.Transpose(result, tensor.InversePermutation([]int{2, 0, 1})...)
		if !int64SliceEqual(back.AsInt64(), data) {
			t.Error("Inverse permutation did not restore the input")
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		x := int64s(tensor.Shape{2, 3})
		expectError(t, tensor.ErrShape, func() { backend.Transpose(x, 0, 0) })
		expectError(t, tensor.ErrShape, func() { backend.Transpose(x, 0) })
	})
}

func TestRepeat(t *testing.T) {
	backend := newTestBackend()
	x := int64s(tensor.Shape{2, 2}, 1, 2, 3, 4)

	rows := backend.Repeat(x, []int{2}, 0)
	if got := rows.AsInt64(); !int64SliceEqual(got, []int64{1, 2, 1, 2, 3, 4, 3, 4}) {
		t.Errorf("Repeat axis 0: got %v", got)
	}
	cols := backend.Repeat(x, []int{0, 3}, 1)
	if !cols.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Expected shape [2 3], got %v", cols.Shape())
	}
	if got := cols.AsInt64(); !int64SliceEqual(got, []int64{2, 2, 2, 4, 4, 4}) {
		t.Errorf("Repeat axis 1: got %v", got)
	}

	expectError(t, tensor.ErrShape, func() { backend.Repeat(x, []int{1, 2, 3}, 1) })
	expectError(t, tensor.ErrShape, func() { backend.Repeat(x, []int{-1}, 0) })
	expectError(t, tensor.ErrShape, func() { backend.Repeat(x, []int{1}, 2) })
}

func TestResize(t *testing.T) {
	backend := newTestBackend()
	x := float64s(tensor.Shape{3}, 1, 2, 3)

	grown := backend.Resize(x, tensor.Shape{2, 3})
	if got := grown.AsFloat64(); !float64SliceEqual(got, []float64{1, 2, 3, 0, 0, 0}) {
		t.Errorf("Resize up: got %v", got)
	}
	shrunk := backend.Resize(x, tensor.Shape{2})
	if got := shrunk.AsFloat64(); !float64SliceEqual(got, []float64{1, 2}) {
		t.Errorf("Resize down: got %v", got)
	}
	expectError(t, tensor.ErrShape, func() { backend.Resize(x, tensor.Shape{-2}) })
}

func TestConcatenate(t *testing.T) {
	backend := newTestBackend()
	a := int64s(tensor.Shape{2, 2}, 1, 2, 3, 4)
	b := int64s(tensor.Shape{2, 1}, 5, 6)

	result := backend.Concatenate([]*tensor.RawTensor{a, b}, 1)
	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Expected shape [2 3], got %v", result.Shape())
	}
	if got := result.AsInt64(); !int64SliceEqual(got, []int64{1, 2, 5, 3, 4, 6}) {
		t.Errorf("Got %v", got)
	}

	stacked := backend.Concatenate([]*tensor.RawTensor{a, a}, 0)
	if got := stacked.AsInt64(); !int64SliceEqual(got, []int64{1, 2, 3, 4, 1, 2, 3, 4}) {
		t.Errorf("Got %v", got)
	}

	expectError(t, tensor.ErrShape, func() { backend.Concatenate([]*tensor.RawTensor{a, b}, 0) })
	expectError(t, tensor.ErrDtype, func() {
		backend.Concatenate([]*tensor.RawTensor{a, float64s(tensor.Shape{2, 2})}, 0)
	})
	expectError(t, tensor.ErrShape, func() { backend.Concatenate(nil, 0) })
}

func TestTake(t *testing.T) {
	backend := newTestBackend()
	x := int64s(tensor.Shape{3, 2}, 1, 2, 3, 4, 5, 6)

	rows := backend.Take(x, []int{2, -3, 2}, 0)
	if got := rows.AsInt64(); !int64SliceEqual(got, []int64{5, 6, 1, 2, 5, 6}) {
		t.Errorf("Take axis 0: got %v", got)
	}
	cols := backend.Take(x, []int{1}, 1)
	if got := cols.AsInt64(); !int64SliceEqual(got, []int64{2, 4, 6}) {
		t.Errorf("Take axis 1: got %v", got)
	}
	expectError(t, tensor.ErrIndex, func() { backend.Take(x, []int{3}, 0) })
}

func TestBroadcastTo(t *testing.T) {
	backend := newTestBackend()
	x := int64s(tensor.Shape{2, 1}, 1, 2)

	result := backend.BroadcastTo(x, tensor.Shape{3, 2, 2})
	want := []int64{1, 1, 2, 2, 1, 1, 2, 2, 1, 1, 2, 2}
	if !int64SliceEqual(result.AsInt64(), want) {
		t.Errorf("Expected %v, got %v", want, result.AsInt64())
	}

	expectError(t, tensor.ErrBroadcast, func() { backend.BroadcastTo(x, tensor.Shape{3, 3}) })
	expectError(t, tensor.ErrBroadcast, func() { backend.BroadcastTo(x, tensor.Shape{2}) })
}
