package algebra

import (
	"github.com/matra-math/matra/internal/dense"
)

// Add returns the element-wise sum a + b.
// ErrDimensionMismatch when the lengths differ.
func Add[T dense.Element](a, b dense.VectorOperand[T]) (*dense.Vector[T], error) {
	if err := sameLen("add", a, b); err != nil {
		return nil, err
	}
	backend := a.Backend()
	return dense.VectorFromRaw[T](backend, backend.Add(a.Raw(), b.Raw())), nil
}

// Sub returns the element-wise difference a - b.
// ErrDimensionMismatch when the lengths differ.
func Sub[T dense.Element](a, b dense.VectorOperand[T]) (*dense.Vector[T], error) {
	if err := sameLen("sub", a, b); err != nil {
		return nil, err
	}
	backend := a.Backend()
	return dense.VectorFromRaw[T](backend, backend.Sub(a.Raw(), b.Raw())), nil
}

// AddAssign adds src into dst element-wise: dst += src. Applied to a view,
// the update writes through to the caller's memory.
func AddAssign[T dense.Element](dst, src dense.VectorOperand[T]) error {
	if err := sameLen("addassign", dst, src); err != nil {
		return err
	}
	dst.Backend().AddAssign(dst.Raw(), src.Raw())
	return nil
}

// SubAssign subtracts src from dst element-wise: dst -= src. Applied to a
// view, the update writes through to the caller's memory.
func SubAssign[T dense.Element](dst, src dense.VectorOperand[T]) error {
	if err := sameLen("subassign", dst, src); err != nil {
		return err
	}
	dst.Backend().SubAssign(dst.Raw(), src.Raw())
	return nil
}

// Scale returns v scaled by k: result[i] = v[i] * k.
func Scale[T dense.Element](v dense.VectorOperand[T], k T) *dense.Vector[T] {
	backend := v.Backend()
	return dense.VectorFromRaw[T](backend, backend.Scale(v.Raw(), float64(k)))
}

// DivScalar returns v divided by k: result[i] = v[i] / k.
// A zero k is not checked; division follows IEEE semantics.
func DivScalar[T dense.Element](v dense.VectorOperand[T], k T) *dense.Vector[T] {
	backend := v.Backend()
	return dense.VectorFromRaw[T](backend, backend.DivScalar(v.Raw(), float64(k)))
}

// ScaleAssign scales v in place: v[i] *= k.
func ScaleAssign[T dense.Element](v dense.VectorOperand[T], k T) {
	v.Backend().ScaleAssign(v.Raw(), float64(k))
}

// DivScalarAssign divides v in place: v[i] /= k.
// A zero k is not checked; division follows IEEE semantics.
func DivScalarAssign[T dense.Element](v dense.VectorOperand[T], k T) {
	v.Backend().DivScalarAssign(v.Raw(), float64(k))
}

// Dot returns the inner product of a and b.
// ErrDimensionMismatch when the lengths differ.
func Dot[T dense.Element](a, b dense.VectorOperand[T]) (T, error) {
	if err := sameLen("dot", a, b); err != nil {
		return 0, err
	}
	return T(a.Backend().Dot(a.Raw(), b.Raw())), nil
}
