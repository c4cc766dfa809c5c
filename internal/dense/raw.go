package dense

import (
	"fmt"
	"unsafe"
)

// Raw is the backend representation of a dense container: a contiguous
// row-major buffer plus shape and runtime type information. It is the single
// source of truth for a container's data; everything above it reads and
// writes through this buffer.
//
// A Raw either owns its buffer or is a view over caller memory. Views carry
// no storage lifetime: the referenced memory must stay valid, and must not be
// concurrently written, for the duration of every operation consuming the
// view.
type Raw struct {
	data  []byte
	shape Shape
	dtype DataType
	view  bool
}

// NewRaw creates an owned Raw with the given shape and type.
// The buffer is allocated zero-filled.
func NewRaw(shape Shape, dtype DataType) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Raw{
		data:  make([]byte, shape.NumElements()*dtype.Size()),
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// RawFromSlice creates an owned Raw with the given shape, copying data.
// The data length must match the shape's element count.
func RawFromSlice[T Element](data []T, shape Shape) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrBadShape, len(data), shape)
	}
	r := &Raw{
		data:  make([]byte, len(data)*DataTypeOf[T]().Size()),
		shape: shape.Clone(),
		dtype: DataTypeOf[T](),
	}
	copy(r.data, bytesOf(data))
	return r, nil
}

// RawView creates a Raw whose buffer aliases data without copying.
// Writes through the Raw are visible in data and vice versa. The data length
// must match the shape's element count.
func RawView[T Element](data []T, shape Shape) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrBadShape, len(data), shape)
	}
	return &Raw{
		data:  bytesOf(data),
		shape: shape.Clone(),
		dtype: DataTypeOf[T](),
		view:  true,
	}, nil
}

// Shape returns the container dimensions.
func (r *Raw) Shape() Shape {
	return r.shape
}

// DType returns the element data type.
func (r *Raw) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *Raw) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total buffer size in bytes.
func (r *Raw) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsView reports whether the buffer aliases caller-owned memory.
func (r *Raw) IsView() bool {
	return r.view
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *Raw) Data() []byte {
	return r.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the dtype is not Float32.
func (r *Raw) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("raw dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the dtype is not Float64.
func (r *Raw) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("raw dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Clone returns a deep copy. The copy owns its buffer even when the source
// is a view.
func (r *Raw) Clone() *Raw {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &Raw{
		data:  data,
		shape: r.shape.Clone(),
		dtype: r.dtype,
	}
}

// bytesOf reinterprets a typed element slice as its backing bytes without
// copying. The slice must be non-empty; shape validation upstream guarantees
// this.
func bytesOf[T Element](data []T) []byte {
	//nolint:gosec // unsafe.Slice for zero-copy views, length derived from the source slice
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(data[0])))
}

// sliceOf reinterprets the raw buffer as a typed element slice sharing the
// same memory.
func sliceOf[T Element](r *Raw) []T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	default:
		panic("dense: unsupported element type")
	}
}
