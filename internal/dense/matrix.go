package dense

import "fmt"

// Matrix is a dense 2-dimensional container owning its storage, laid out
// row-major, generic over the element type and carrying the backend it was
// created on.
type Matrix[T Element] struct {
	raw     *Raw
	backend Backend
}

// NewMatrix creates a rows x cols matrix on the given backend, copying data
// in row-major order. The data length must equal rows*cols.
func NewMatrix[T Element](b Backend, rows, cols int, data []T) (*Matrix[T], error) {
	raw, err := RawFromSlice(data, Shape{rows, cols})
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{raw: raw, backend: b}, nil
}

// MatrixFromRaw wraps a backend representation into an owned matrix without
// copying. The raw must be rank 2 with element type T; a mismatch is a
// programmer error and panics.
func MatrixFromRaw[T Element](b Backend, r *Raw) *Matrix[T] {
	if len(r.Shape()) != 2 {
		panic(fmt.Sprintf("matrix from rank %d raw, want rank 2", len(r.Shape())))
	}
	if r.DType() != DataTypeOf[T]() {
		panic(fmt.Sprintf("matrix raw dtype is %s, not %s", r.DType(), DataTypeOf[T]()))
	}
	return &Matrix[T]{raw: r, backend: b}
}

// Raw returns the underlying backend representation.
// Mutations through it are visible to subsequent reads.
func (m *Matrix[T]) Raw() *Raw {
	return m.raw
}

// Backend returns the computation backend.
func (m *Matrix[T]) Backend() Backend {
	return m.backend
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.raw.Shape()[0]
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.raw.Shape()[1]
}

// Data returns a typed row-major slice view of the matrix data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the matrix.
func (m *Matrix[T]) Data() []T {
	return sliceOf[T](m.raw)
}

// At returns the element at row i, column j.
// Panics if an index is out of bounds.
func (m *Matrix[T]) At(i, j int) T {
	return m.Data()[m.index(i, j)]
}

// Set sets the element at row i, column j.
// Panics if an index is out of bounds.
func (m *Matrix[T]) Set(value T, i, j int) {
	m.Data()[m.index(i, j)] = value
}

func (m *Matrix[T]) index(i, j int) int {
	return matrixIndex(m.raw, i, j)
}

// Clone creates a deep copy on the same backend.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{raw: m.raw.Clone(), backend: m.backend}
}

// View returns a non-owning view over this matrix's storage.
// The view shares memory with the matrix.
func (m *Matrix[T]) View() MatView[T] {
	return MatView[T]{raw: m.raw, backend: m.backend}
}

// String returns a human-readable representation of the matrix.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix[%s](%dx%d) on %s", m.raw.DType(), m.Rows(), m.Cols(), m.backend.Name())
}

// MatView is a non-owning matrix-shaped view over contiguous row-major
// memory. Like VecView, it carries no storage lifetime; the caller owns the
// referenced memory and its validity. Mutating operations applied to a view
// write through to the viewed memory.
type MatView[T Element] struct {
	raw     *Raw
	backend Backend
}

// ViewMatrix binds a rows x cols view to caller-owned row-major data without
// copying. The data length must equal rows*cols.
func ViewMatrix[T Element](b Backend, data []T, rows, cols int) (MatView[T], error) {
	raw, err := RawView(data, Shape{rows, cols})
	if err != nil {
		return MatView[T]{}, err
	}
	return MatView[T]{raw: raw, backend: b}, nil
}

// Raw returns the underlying backend representation.
func (m MatView[T]) Raw() *Raw {
	return m.raw
}

// Backend returns the computation backend.
func (m MatView[T]) Backend() Backend {
	return m.backend
}

// Rows returns the number of rows.
func (m MatView[T]) Rows() int {
	return m.raw.Shape()[0]
}

// Cols returns the number of columns.
func (m MatView[T]) Cols() int {
	return m.raw.Shape()[1]
}

// Data returns a typed row-major slice view of the referenced memory
// (zero-copy).
func (m MatView[T]) Data() []T {
	return sliceOf[T](m.raw)
}

// At returns the element at row i, column j.
func (m MatView[T]) At(i, j int) T {
	return m.Data()[matrixIndex(m.raw, i, j)]
}

// Set sets the element at row i, column j, writing through to the viewed
// memory.
func (m MatView[T]) Set(value T, i, j int) {
	m.Data()[matrixIndex(m.raw, i, j)] = value
}

// String returns a human-readable representation of the view.
func (m MatView[T]) String() string {
	return fmt.Sprintf("MatView[%s](%dx%d) on %s", m.raw.DType(), m.Rows(), m.Cols(), m.backend.Name())
}

// matrixIndex maps (i, j) to the row-major flat index, checking each axis so
// an out-of-range column cannot silently land in the next row.
func matrixIndex(r *Raw, i, j int) int {
	rows, cols := r.Shape()[0], r.Shape()[1]
	if i < 0 || i >= rows {
		panic(fmt.Sprintf("row index %d out of bounds (rows %d)", i, rows))
	}
	if j < 0 || j >= cols {
		panic(fmt.Sprintf("column index %d out of bounds (cols %d)", j, cols))
	}
	return i*cols + j
}
