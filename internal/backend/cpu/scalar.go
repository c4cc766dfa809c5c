package cpu

import (
	"github.com/matra-math/matra/internal/dense"
)

// Scalar operations - element-wise operations with a scalar value.
// The scalar arrives as float64 and is converted to the operand's element
// type before the kernel runs, so float32 operands see a float32 constant.

// Scale multiplies each element by k: result = x * k.
func (cpu *CPUBackend) Scale(x *dense.Raw, k float64) *dense.Raw {
	result := newRaw(x.Shape(), x.DType(), "scale")
	switch x.DType() {
	case dense.Float32:
		scaleFloat32(result.AsFloat32(), x.AsFloat32(), float32(k))
	case dense.Float64:
		scaleFloat64(result.AsFloat64(), x.AsFloat64(), k)
	default:
		panic("scale: unsupported dtype")
	}
	return result
}

// DivScalar divides each element by k: result = x / k.
// A zero k produces IEEE Inf/NaN values.
func (cpu *CPUBackend) DivScalar(x *dense.Raw, k float64) *dense.Raw {
	result := newRaw(x.Shape(), x.DType(), "divscalar")
	switch x.DType() {
	case dense.Float32:
		divScalarFloat32(result.AsFloat32(), x.AsFloat32(), float32(k))
	case dense.Float64:
		divScalarFloat64(result.AsFloat64(), x.AsFloat64(), k)
	default:
		panic("divscalar: unsupported dtype")
	}
	return result
}

// ScaleAssign multiplies each element by k in place.
func (cpu *CPUBackend) ScaleAssign(x *dense.Raw, k float64) {
	switch x.DType() {
	case dense.Float32:
		scaleAssignFloat32(x.AsFloat32(), float32(k))
	case dense.Float64:
		scaleAssignFloat64(x.AsFloat64(), k)
	default:
		panic("scaleassign: unsupported dtype")
	}
}

// DivScalarAssign divides each element by k in place.
func (cpu *CPUBackend) DivScalarAssign(x *dense.Raw, k float64) {
	switch x.DType() {
	case dense.Float32:
		divScalarAssignFloat32(x.AsFloat32(), float32(k))
	case dense.Float64:
		divScalarAssignFloat64(x.AsFloat64(), k)
	default:
		panic("divscalarassign: unsupported dtype")
	}
}

// Apply32 applies f to each float32 element: result[i] = f(x[i]).
func (cpu *CPUBackend) Apply32(x *dense.Raw, f func(float32) float32) *dense.Raw {
	result := newRaw(x.Shape(), x.DType(), "apply")
	dst, src := result.AsFloat32(), x.AsFloat32()
	for i, v := range src {
		dst[i] = f(v)
	}
	return result
}

// Apply64 applies f to each float64 element: result[i] = f(x[i]).
func (cpu *CPUBackend) Apply64(x *dense.Raw, f func(float64) float64) *dense.Raw {
	result := newRaw(x.Shape(), x.DType(), "apply")
	dst, src := result.AsFloat64(), x.AsFloat64()
	for i, v := range src {
		dst[i] = f(v)
	}
	return result
}
