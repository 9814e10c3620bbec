package tensor

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
)

// leaf is one scalar found while walking a nested literal.
type leaf struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	uns  bool // i is unused, value lives in u
}

// FromLiteral builds a RawTensor from a Go scalar or an arbitrarily nested
// slice/array literal ([]any, [][]float64, [2][3]int, ...).
//
// The shape is the recursive length of the sub-sequences; siblings with
// different lengths, or mixing sequences and scalars, fail with ErrRaggedShape.
// The dtype is inferred from the leaves: all bool → Bool; bool/integer leaves
// whose values fit the default int → default int (else Int64, or Float64 for
// unsigned values above MaxInt64); any float leaf → default float.
func FromLiteral(value any) (*RawTensor, error) {
	var leaves []leaf
	shape, err := literalShape(reflect.ValueOf(value), &leaves)
	if err != nil {
		return nil, err
	}

	cfg := CurrentConfig()
	dtype := inferLiteralDType(leaves, cfg)
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	fillFromLeaves(raw, leaves)
	return raw, nil
}

// literalShape walks v, appending its scalars in row-major order and returning its shape.
func literalShape(v reflect.Value, leaves *[]leaf) (Shape, error) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, errors.Wrap(ErrDtype, "cannot build an array from nil")
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		n := v.Len()
		if n == 0 {
			return Shape{0}, nil
		}
		first, err := literalShape(v.Index(0), leaves)
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			sub, err := literalShape(v.Index(i), leaves)
			if err != nil {
				return nil, err
			}
			if !sub.Equal(first) {
				return nil, errors.Wrapf(ErrRaggedShape,
					"sub-sequences have irregular shapes, found %v at index 0 and %v at index %d",
					[]int(first), []int(sub), i)
			}
		}
		return append(Shape{n}, first...), nil

	case reflect.Bool:
		*leaves = append(*leaves, leaf{kind: KindBool, b: v.Bool()})
		return Shape{}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		*leaves = append(*leaves, leaf{kind: KindInt, i: v.Int()})
		return Shape{}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		*leaves = append(*leaves, leaf{kind: KindInt, u: v.Uint(), uns: true})
		return Shape{}, nil

	case reflect.Float32, reflect.Float64:
		*leaves = append(*leaves, leaf{kind: KindFloat, f: v.Float()})
		return Shape{}, nil
	}
	return nil, errors.Wrapf(ErrDtype, "cannot convert value of type %s to an array element", v.Type())
}

func inferLiteralDType(leaves []leaf, cfg Config) DataType {
	if len(leaves) == 0 {
		return cfg.DefaultFloat
	}
	kind := KindBool
	for _, l := range leaves {
		kind = max(kind, l.kind)
	}
	switch kind {
	case KindBool:
		return Bool
	case KindFloat:
		return cfg.DefaultFloat
	}

	lo, hi := intRange(cfg.DefaultInt)
	dtype := cfg.DefaultInt
	for _, l := range leaves {
		if l.kind != KindInt {
			continue
		}
		if l.uns {
			if l.u > math.MaxInt64 {
				return Float64
			}
			if int64(l.u) > hi {
				dtype = Int64
			}
			continue
		}
		if l.i < lo || l.i > hi {
			dtype = Int64
		}
	}
	return dtype
}

// intRange returns the representable range of an integer dtype.
func intRange(dt DataType) (lo, hi int64) {
	switch dt {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func fillFromLeaves(raw *RawTensor, leaves []leaf) {
	switch raw.DType() {
	case Bool:
		dst := raw.AsBool()
		for i, l := range leaves {
			dst[i] = l.b
		}
	case Int8:
		fillNumeric(raw.AsInt8(), leaves)
	case Int16:
		fillNumeric(raw.AsInt16(), leaves)
	case Int32:
		fillNumeric(raw.AsInt32(), leaves)
	case Int64:
		fillNumeric(raw.AsInt64(), leaves)
	case Float32:
		fillNumeric(raw.AsFloat32(), leaves)
	case Float64:
		fillNumeric(raw.AsFloat64(), leaves)
	}
}

func fillNumeric[T Numeric](dst []T, leaves []leaf) {
	for i, l := range leaves {
		switch {
		case l.kind == KindBool:
			if l.b {
				dst[i] = 1
			}
		case l.kind == KindFloat:
			dst[i] = T(l.f)
		case l.uns:
			dst[i] = T(l.u)
		default:
			dst[i] = T(l.i)
		}
	}
}
