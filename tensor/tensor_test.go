// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/numpy/internal/backend/cpu"
	"github.com/born-ml/numpy/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	shape := raw.Shape()
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}

	if dtype := raw.DType(); dtype != tensor.Float32 {
		t.Errorf("DType() = %v, want float32", dtype)
	}

	if got := raw.Strides(); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("Strides() = %v, want [3 1]", got)
	}

	if got := raw.ByteSize(); got != 24 {
		t.Errorf("ByteSize() = %d, want 24", got)
	}

	data := raw.AsFloat32()
	data[0] = 1.5
	clone := raw.Clone()
	data[0] = 2.5
	if clone.AsFloat32()[0] != 1.5 {
		t.Errorf("Clone shares memory with the original")
	}
}

func TestFromLiteral(t *testing.T) {
	raw, err := tensor.FromLiteral([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		t.Fatalf("FromLiteral failed: %v", err)
	}
	if !raw.Shape().Equal(tensor.Shape{3, 2}) {
		t.Errorf("Shape() = %v, want [3 2]", raw.Shape())
	}
	if raw.DType() != tensor.CurrentConfig().DefaultFloat {
		t.Errorf("DType() = %v, want default float", raw.DType())
	}
}

func TestPromote(t *testing.T) {
	if got := tensor.Promote(tensor.Int32, tensor.Float32); got != tensor.Float32 {
		t.Errorf("Promote(int32, float32) = %v", got)
	}
	if got := tensor.Promote(tensor.Bool, tensor.Int8); got != tensor.Int8 {
		t.Errorf("Promote(bool, int8) = %v", got)
	}
}
