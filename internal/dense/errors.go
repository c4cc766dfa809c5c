package dense

import "errors"

// Sentinel errors shared by the containers and the operator layer built on
// them. Call sites wrap these with operation context via fmt.Errorf("%s: %w",
// op, err); callers match with errors.Is.
var (
	// ErrDimensionMismatch is returned when operand shapes are incompatible
	// with the requested operation.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare is returned when a square-only operation receives a
	// rectangular matrix.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrSingular is returned when a matrix has no multiplicative inverse.
	ErrSingular = errors.New("dense: singular matrix")

	// ErrZeroNorm is returned when normalizing a vector whose norm is
	// exactly zero.
	ErrZeroNorm = errors.New("dense: zero-norm vector")

	// ErrBadShape is returned when constructing a container with invalid
	// dimensions or a data length that does not match them.
	ErrBadShape = errors.New("dense: invalid shape")
)
