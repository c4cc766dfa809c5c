package algebra

import (
	"github.com/matra-math/matra/internal/dense"
)

// Mul returns the element-wise (Hadamard) product of a and b.
// ErrDimensionMismatch when the lengths differ.
func Mul[T dense.Element](a, b dense.VectorOperand[T]) (*dense.Vector[T], error) {
	if err := sameLen("mul", a, b); err != nil {
		return nil, err
	}
	backend := a.Backend()
	return dense.VectorFromRaw[T](backend, backend.Mul(a.Raw(), b.Raw())), nil
}

// Div returns the element-wise quotient of a and b.
// ErrDimensionMismatch when the lengths differ. Zero elements in b are not
// checked; division follows IEEE semantics.
func Div[T dense.Element](a, b dense.VectorOperand[T]) (*dense.Vector[T], error) {
	if err := sameLen("div", a, b); err != nil {
		return nil, err
	}
	backend := a.Backend()
	return dense.VectorFromRaw[T](backend, backend.Div(a.Raw(), b.Raw())), nil
}

// Apply returns a new vector with f applied to every element. f must be
// pure; the evaluation order over elements is unspecified.
func Apply[T dense.Element](v dense.VectorOperand[T], f func(T) T) *dense.Vector[T] {
	backend := v.Backend()
	var raw *dense.Raw
	switch fn := any(f).(type) {
	case func(float32) float32:
		raw = backend.Apply32(v.Raw(), fn)
	case func(float64) float64:
		raw = backend.Apply64(v.Raw(), fn)
	default:
		panic("apply: unsupported element type")
	}
	return dense.VectorFromRaw[T](backend, raw)
}
