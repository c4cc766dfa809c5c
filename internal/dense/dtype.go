// Package dense provides the vector and matrix containers, the non-owning
// view types over caller memory, and the backend contract they dispatch to.
package dense

import "golang.org/x/exp/constraints"

// Element is a constraint for supported container element types.
type Element interface {
	constraints.Float
}

// DataType represents runtime type information for container storage.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf maps the element type parameter to its runtime DataType.
func DataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("dense: unsupported element type")
	}
}
