// Package algebra implements the operator layer over dense containers.
//
// Every operator is a free function generic over the element type, taking
// operands through the dense.VectorOperand and dense.MatrixOperand
// interfaces, so owned containers and views enter the same implementation.
// The operator validates shape compatibility and returns a wrapped sentinel
// error when the operands cannot combine; the backend of the left (or only)
// operand then executes the kernel on the raw buffers. Results are always
// owned containers wrapped on the executing backend.
//
// Mutating operators (the *Assign forms and Normalize) write through the
// operand's raw buffer; applied to a view, the writes land in the caller's
// memory.
package algebra

import (
	"fmt"

	"github.com/matra-math/matra/internal/dense"
)

// sameLen returns ErrDimensionMismatch when two vector operands differ in
// length.
func sameLen[T dense.Element](op string, a, b dense.VectorOperand[T]) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%s: %w (len %d vs %d)", op, dense.ErrDimensionMismatch, a.Len(), b.Len())
	}
	return nil
}

// sameDims returns ErrDimensionMismatch when two matrix operands differ in
// either dimension.
func sameDims[T dense.Element](op string, a, b dense.MatrixOperand[T]) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%s: %w ([%d,%d] vs [%d,%d])",
			op, dense.ErrDimensionMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	return nil
}
