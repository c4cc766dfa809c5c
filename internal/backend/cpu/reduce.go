package cpu

import (
	"fmt"
	"math"

	"github.com/matra-math/matra/internal/dense"
)

// Reduction operations. Results cross the dtype-erased boundary as float64.

// Dot computes the inner product of two equal-length vectors.
func (cpu *CPUBackend) Dot(a, b *dense.Raw) float64 {
	switch a.DType() {
	case dense.Float32:
		return dotFloat32(a.AsFloat32(), b.AsFloat32())
	case dense.Float64:
		return dotFloat64(a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("dot: unsupported dtype %s", a.DType()))
	}
}

// Sum computes the sum of all elements.
func (cpu *CPUBackend) Sum(x *dense.Raw) float64 {
	switch x.DType() {
	case dense.Float32:
		return sumFloat32(x.AsFloat32())
	case dense.Float64:
		return sumFloat64(x.AsFloat64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
}

// Norm computes the Euclidean norm over all elements. For a rank-2 operand
// this is the Frobenius norm of the matrix.
func (cpu *CPUBackend) Norm(x *dense.Raw) float64 {
	switch x.DType() {
	case dense.Float32:
		return normFloat32(x.AsFloat32())
	case dense.Float64:
		return normFloat64(x.AsFloat64())
	default:
		panic(fmt.Sprintf("norm: unsupported dtype %s", x.DType()))
	}
}

// LpNorm computes the generalized p-norm (sum |x_i|^p)^(1/p) over all
// elements. p must be >= 1 or +Inf; the operator layer enforces this.
func (cpu *CPUBackend) LpNorm(x *dense.Raw, p float64) float64 {
	if p < 1 || math.IsNaN(p) {
		panic(fmt.Sprintf("lpnorm: invalid exponent %v", p))
	}
	switch x.DType() {
	case dense.Float32:
		return lpNormFloat32(x.AsFloat32(), p)
	case dense.Float64:
		return lpNormFloat64(x.AsFloat64(), p)
	default:
		panic(fmt.Sprintf("lpnorm: unsupported dtype %s", x.DType()))
	}
}
