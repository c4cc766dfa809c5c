// Package gonum implements a compute backend on the gonum numeric libraries.
//
// Element-wise kernels run through gonum/floats and matrix products through
// blas64. Inversion goes through gonum/mat for its LU factorization and
// condition estimate. The backend carries float64 kernels only; a float32
// operand is an unsupported dtype and panics.
package gonum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/matra-math/matra/internal/dense"
)

// GonumBackend executes dense operations through gonum. Like the cpu backend
// it assumes the operator layer validated operand shapes before dispatch; a
// violated precondition is a programmer error and panics.
type GonumBackend struct{}

// New creates a new gonum backend.
func New() *GonumBackend {
	return &GonumBackend{}
}

// Name returns the backend name.
func (g *GonumBackend) Name() string {
	return "gonum"
}

// check64 panics unless every operand holds float64 data. The gonum backend
// has no float32 kernels.
func check64(op string, raws ...*dense.Raw) {
	for _, r := range raws {
		if r.DType() != dense.Float64 {
			panic(fmt.Sprintf("%s: unsupported dtype %s", op, r.DType()))
		}
	}
}

// newRaw allocates an owned float64 result buffer. Allocation only fails on
// an invalid shape, which validated operands cannot produce.
func newRaw(shape dense.Shape, op string) *dense.Raw {
	result, err := dense.NewRaw(shape, dense.Float64)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return result
}

// Add performs element-wise addition: result = a + b.
func (g *GonumBackend) Add(a, b *dense.Raw) *dense.Raw {
	check64("add", a, b)
	result := newRaw(a.Shape(), "add")
	floats.AddTo(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	return result
}

// Sub performs element-wise subtraction: result = a - b.
func (g *GonumBackend) Sub(a, b *dense.Raw) *dense.Raw {
	check64("sub", a, b)
	result := newRaw(a.Shape(), "sub")
	floats.SubTo(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	return result
}

// Mul performs the element-wise (Hadamard) product: result = a * b.
func (g *GonumBackend) Mul(a, b *dense.Raw) *dense.Raw {
	check64("mul", a, b)
	result := newRaw(a.Shape(), "mul")
	floats.MulTo(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	return result
}

// Div performs the element-wise quotient: result = a / b.
// Zero divisors produce IEEE Inf/NaN values.
func (g *GonumBackend) Div(a, b *dense.Raw) *dense.Raw {
	check64("div", a, b)
	result := newRaw(a.Shape(), "div")
	floats.DivTo(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	return result
}

// AddAssign performs in-place addition: dst += src.
func (g *GonumBackend) AddAssign(dst, src *dense.Raw) {
	check64("addassign", dst, src)
	floats.Add(dst.AsFloat64(), src.AsFloat64())
}

// SubAssign performs in-place subtraction: dst -= src.
func (g *GonumBackend) SubAssign(dst, src *dense.Raw) {
	check64("subassign", dst, src)
	floats.Sub(dst.AsFloat64(), src.AsFloat64())
}

// Scale performs scalar multiplication: result = x * k.
func (g *GonumBackend) Scale(x *dense.Raw, k float64) *dense.Raw {
	check64("scale", x)
	result := newRaw(x.Shape(), "scale")
	floats.ScaleTo(result.AsFloat64(), k, x.AsFloat64())
	return result
}

// DivScalar performs scalar division: result = x / k.
// Divides per element; does not multiply by the reciprocal.
func (g *GonumBackend) DivScalar(x *dense.Raw, k float64) *dense.Raw {
	check64("divscalar", x)
	result := newRaw(x.Shape(), "divscalar")
	src, dst := x.AsFloat64(), result.AsFloat64()
	for i, v := range src {
		dst[i] = v / k
	}
	return result
}

// ScaleAssign performs in-place scalar multiplication: x *= k.
func (g *GonumBackend) ScaleAssign(x *dense.Raw, k float64) {
	check64("scaleassign", x)
	floats.Scale(k, x.AsFloat64())
}

// DivScalarAssign performs in-place scalar division: x /= k.
func (g *GonumBackend) DivScalarAssign(x *dense.Raw, k float64) {
	check64("divscalarassign", x)
	data := x.AsFloat64()
	for i := range data {
		data[i] /= k
	}
}

// Apply32 is not implemented: the gonum backend has no float32 kernels.
func (g *GonumBackend) Apply32(x *dense.Raw, f func(float32) float32) *dense.Raw {
	panic("apply32: unsupported dtype float32")
}

// Apply64 maps f over every element: result[i] = f(x[i]).
func (g *GonumBackend) Apply64(x *dense.Raw, f func(float64) float64) *dense.Raw {
	check64("apply64", x)
	result := newRaw(x.Shape(), "apply64")
	src, dst := x.AsFloat64(), result.AsFloat64()
	for i, v := range src {
		dst[i] = f(v)
	}
	return result
}
