package dense

import "fmt"

// ZerosVector creates a zero-filled vector of length n.
// Panics when n <= 0; sizing a container is a programmer decision.
//
// Example:
//
//	backend := cpu.New()
//	v := dense.ZerosVector[float32](backend, 4)
func ZerosVector[T Element](b Backend, n int) *Vector[T] {
	raw, err := NewRaw(Shape{n}, DataTypeOf[T]())
	if err != nil {
		panic(fmt.Sprintf("zeros vector: %v", err))
	}
	// Data is already zero-initialized by make()
	return &Vector[T]{raw: raw, backend: b}
}

// OnesVector creates a vector of length n filled with ones.
func OnesVector[T Element](b Backend, n int) *Vector[T] {
	return FullVector(b, n, T(1))
}

// FullVector creates a vector of length n filled with value.
func FullVector[T Element](b Backend, n int, value T) *Vector[T] {
	v := ZerosVector[T](b, n)
	data := v.Data()
	for i := range data {
		data[i] = value
	}
	return v
}

// ZerosMatrix creates a zero-filled rows x cols matrix.
// Panics when a dimension is not positive.
func ZerosMatrix[T Element](b Backend, rows, cols int) *Matrix[T] {
	raw, err := NewRaw(Shape{rows, cols}, DataTypeOf[T]())
	if err != nil {
		panic(fmt.Sprintf("zeros matrix: %v", err))
	}
	return &Matrix[T]{raw: raw, backend: b}
}

// OnesMatrix creates a rows x cols matrix filled with ones.
func OnesMatrix[T Element](b Backend, rows, cols int) *Matrix[T] {
	return FullMatrix(b, rows, cols, T(1))
}

// FullMatrix creates a rows x cols matrix filled with value.
func FullMatrix[T Element](b Backend, rows, cols int, value T) *Matrix[T] {
	m := ZerosMatrix[T](b, rows, cols)
	data := m.Data()
	for i := range data {
		data[i] = value
	}
	return m
}

// Eye creates an n x n identity matrix.
//
// Example:
//
//	m := dense.Eye[float64](backend, 3) // 3x3 identity matrix
func Eye[T Element](b Backend, n int) *Matrix[T] {
	m := ZerosMatrix[T](b, n, n)
	for i := 0; i < n; i++ {
		m.Set(T(1), i, i)
	}
	return m
}
