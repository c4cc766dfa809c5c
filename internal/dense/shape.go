package dense

import "fmt"

// Shape represents the dimensions of a container: one entry for vectors,
// two (rows, cols) for matrices.
type Shape []int

// NumElements returns the total number of elements in the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank 1 or 2 and all dimensions > 0.
func (s Shape) Validate() error {
	if len(s) != 1 && len(s) != 2 {
		return fmt.Errorf("%w: rank %d, want 1 or 2", ErrBadShape, len(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d, must be > 0", ErrBadShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}
