package tensor

import (
	"errors"
	"math"
	"testing"
)

func TestFromLiteral(t *testing.T) {
	def := CurrentConfig()
	tests := []struct {
		name  string
		value any
		shape Shape
		dtype DataType
	}{
		{"int scalar", 3, Shape{}, def.DefaultInt},
		{"float scalar", 2.5, Shape{}, def.DefaultFloat},
		{"bool vector", []bool{true, false}, Shape{2}, Bool},
		{"int matrix", [][]int{{1, 2, 3}, {4, 5, 6}}, Shape{2, 3}, def.DefaultInt},
		{"go array", [2][2]float32{{1, 2}, {3, 4}}, Shape{2, 2}, def.DefaultFloat},
		{"mixed any", []any{true, 2, 3.5}, Shape{3}, def.DefaultFloat},
		{"bools and ints", []any{true, 2}, Shape{2}, def.DefaultInt},
		{"nested any", []any{[]any{1, 2}, []int{3, 4}}, Shape{2, 2}, def.DefaultInt},
		{"empty", []int{}, Shape{0}, def.DefaultFloat},
		{"empty rows", [][]int{{}, {}}, Shape{2, 0}, def.DefaultFloat},
		{"large unsigned", []uint64{math.MaxUint64}, Shape{1}, Float64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := FromLiteral(tt.value)
			if err != nil {
				t.Fatal(err)
			}
			if !raw.Shape().Equal(tt.shape) {
				t.Errorf("shape = %v, want %v", raw.Shape(), tt.shape)
			}
			if raw.DType() != tt.dtype {
				t.Errorf("dtype = %v, want %v", raw.DType(), tt.dtype)
			}
		})
	}
}

func TestFromLiteral_Values(t *testing.T) {
	raw, err := FromLiteral([]any{true, 2, 3.5})
	if err != nil {
		t.Fatal(err)
	}
	if got := raw.AsFloat64(); got[0] != 1 || got[1] != 2 || got[2] != 3.5 {
		t.Errorf("values = %v", got)
	}

	withDefaultInt(t, Int64)
	ints, err := FromLiteral([][]int8{{-1, 2}, {3, -4}})
	if err != nil {
		t.Fatal(err)
	}
	got := ints.AsInt64()
	want := []int64{-1, 2, 3, -4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFromLiteral_Int32Default(t *testing.T) {
	withDefaultInt(t, Int32)

	small, _ := FromLiteral([]int{1, math.MaxInt32})
	if small.DType() != Int32 {
		t.Errorf("small ints: dtype = %v, want int32", small.DType())
	}
	big, _ := FromLiteral([]int64{1, math.MaxInt32 + 1})
	if big.DType() != Int64 {
		t.Errorf("wide ints: dtype = %v, want int64", big.DType())
	}
	if big.AsInt64()[1] != math.MaxInt32+1 {
		t.Errorf("wide value = %d", big.AsInt64()[1])
	}
}

func TestFromLiteral_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  error
	}{
		{"ragged", [][]int{{1, 2}, {3}}, ErrRaggedShape},
		{"scalar beside sequence", []any{1, []int{2}}, ErrRaggedShape},
		{"deep ragged", [][][]int{{{1}, {2}}, {{3}}}, ErrRaggedShape},
		{"nil", nil, ErrDtype},
		{"string", []string{"a"}, ErrDtype},
		{"map", map[int]int{}, ErrDtype},
		{"complex", complex(1, 2), ErrDtype},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromLiteral(tt.value); !errors.Is(err, tt.kind) {
				t.Errorf("got %v, want %v", err, tt.kind)
			}
		})
	}
}

// withDefaultInt switches the default int dtype for the duration of the test.
func withDefaultInt(t *testing.T, dt DataType) {
	t.Helper()
	prev := CurrentConfig()
	cfg := prev
	cfg.DefaultInt = dt
	if err := SetConfig(cfg); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = SetConfig(prev) })
}
