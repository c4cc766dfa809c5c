package dense

import "fmt"

// Vector is a dense 1-dimensional container owning its storage, generic over
// the element type and carrying the backend it was created on.
//
// Example:
//
//	backend := cpu.New()
//	v, err := dense.NewVector(backend, []float64{1, 2, 3})
type Vector[T Element] struct {
	raw     *Raw
	backend Backend
}

// NewVector creates a vector on the given backend, copying data.
// The data must be non-empty.
func NewVector[T Element](b Backend, data []T) (*Vector[T], error) {
	raw, err := RawFromSlice(data, Shape{len(data)})
	if err != nil {
		return nil, err
	}
	return &Vector[T]{raw: raw, backend: b}, nil
}

// VectorFromRaw wraps a backend representation into an owned vector without
// copying. It is the low-level constructor every wrapping operation uses to
// rebuild a container from a computation result. The raw must be rank 1 with
// element type T; a mismatch is a programmer error and panics.
func VectorFromRaw[T Element](b Backend, r *Raw) *Vector[T] {
	if len(r.Shape()) != 1 {
		panic(fmt.Sprintf("vector from rank %d raw, want rank 1", len(r.Shape())))
	}
	if r.DType() != DataTypeOf[T]() {
		panic(fmt.Sprintf("vector raw dtype is %s, not %s", r.DType(), DataTypeOf[T]()))
	}
	return &Vector[T]{raw: r, backend: b}
}

// Raw returns the underlying backend representation.
// Mutations through it are visible to subsequent reads.
func (v *Vector[T]) Raw() *Raw {
	return v.raw
}

// Backend returns the computation backend.
func (v *Vector[T]) Backend() Backend {
	return v.backend
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.raw.Shape()[0]
}

// Data returns a typed slice view of the vector's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the vector.
func (v *Vector[T]) Data() []T {
	return sliceOf[T](v.raw)
}

// At returns the element at index i.
// Panics if i is out of bounds.
func (v *Vector[T]) At(i int) T {
	return v.Data()[i]
}

// Set sets the element at index i.
// Panics if i is out of bounds.
func (v *Vector[T]) Set(value T, i int) {
	v.Data()[i] = value
}

// Clone creates a deep copy on the same backend.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{raw: v.raw.Clone(), backend: v.backend}
}

// View returns a non-owning view over this vector's storage.
// The view shares memory with the vector.
func (v *Vector[T]) View() VecView[T] {
	return VecView[T]{raw: v.raw, backend: v.backend}
}

// String returns a human-readable representation of the vector.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector[%s](%d) on %s", v.raw.DType(), v.Len(), v.backend.Name())
}

// VecView is a non-owning vector-shaped view over contiguous memory. It
// carries shape metadata and a backend but no storage lifetime: the
// referenced memory must outlive every use of the view, and must not be
// concurrently written while an operation consumes it. Mutating operations
// applied to a view write through to the viewed memory.
type VecView[T Element] struct {
	raw     *Raw
	backend Backend
}

// ViewVector binds a view to caller-owned data without copying.
// The data must be non-empty.
func ViewVector[T Element](b Backend, data []T) (VecView[T], error) {
	raw, err := RawView(data, Shape{len(data)})
	if err != nil {
		return VecView[T]{}, err
	}
	return VecView[T]{raw: raw, backend: b}, nil
}

// Raw returns the underlying backend representation.
func (v VecView[T]) Raw() *Raw {
	return v.raw
}

// Backend returns the computation backend.
func (v VecView[T]) Backend() Backend {
	return v.backend
}

// Len returns the number of elements.
func (v VecView[T]) Len() int {
	return v.raw.Shape()[0]
}

// Data returns a typed slice view of the referenced memory (zero-copy).
func (v VecView[T]) Data() []T {
	return sliceOf[T](v.raw)
}

// At returns the element at index i.
func (v VecView[T]) At(i int) T {
	return v.Data()[i]
}

// Set sets the element at index i, writing through to the viewed memory.
func (v VecView[T]) Set(value T, i int) {
	v.Data()[i] = value
}

// String returns a human-readable representation of the view.
func (v VecView[T]) String() string {
	return fmt.Sprintf("VecView[%s](%d) on %s", v.raw.DType(), v.Len(), v.backend.Name())
}
