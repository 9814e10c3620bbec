// Package tensor provides the core array storage, shape and dtype types of the numpy engine.
package tensor

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Numeric is the constraint for numeric element types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Element is a constraint for supported element types.
// It uses Go generics to ensure compile-time type safety in kernels.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~bool
}

// DataType represents runtime type information for arrays.
//
// The enum values follow the promotion order: combining two dtypes yields the
// larger one.
type DataType int

// Supported data types, in promotion order.
const (
	Bool DataType = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic(errors.Wrapf(ErrDtype, "unknown data type %d", int(dt)))
	}
}

// String returns the NumPy name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsValid reports whether dt is one of the supported data types.
func (dt DataType) IsValid() bool {
	return dt >= Bool && dt <= Float64
}

// IsFloat reports whether dt is a floating point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsInt reports whether dt is a signed integer type.
func (dt DataType) IsInt() bool {
	return dt >= Int8 && dt <= Int64
}

// Kind groups data types into bool < integer < float.
type Kind int

// Kinds, in promotion order.
const (
	KindBool Kind = iota
	KindInt
	KindFloat
)

// Kind returns the category of dt.
func (dt DataType) Kind() Kind {
	switch {
	case dt == Bool:
		return KindBool
	case dt.IsInt():
		return KindInt
	default:
		return KindFloat
	}
}

// Promote returns the more general of two data types.
func Promote(a, b DataType) DataType {
	if a > b {
		return a
	}
	return b
}

// ParseDataType resolves a NumPy dtype name. The aliases int_ and float_ resolve
// to the configured defaults.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bool", "bool_":
		return Bool, nil
	case "int8":
		return Int8, nil
	case "int16":
		return Int16, nil
	case "int32":
		return Int32, nil
	case "int64":
		return Int64, nil
	case "int", "int_":
		return CurrentConfig().DefaultInt, nil
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	case "float", "float_":
		return CurrentConfig().DefaultFloat, nil
	}
	return 0, errors.Wrapf(ErrDtype, "unknown dtype name %q", name)
}

// DataTypeOf returns the DataType for the generic element type T.
func DataTypeOf[T Element]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic(errors.Wrapf(ErrDtype, "unsupported element type %T", dummy))
	}
}
