package gonum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/matra-math/matra/internal/dense"
)

// Dot computes the inner product of two equal-length vectors.
func (g *GonumBackend) Dot(a, b *dense.Raw) float64 {
	check64("dot", a, b)
	return floats.Dot(a.AsFloat64(), b.AsFloat64())
}

// Sum computes the sum of all elements.
func (g *GonumBackend) Sum(x *dense.Raw) float64 {
	check64("sum", x)
	return floats.Sum(x.AsFloat64())
}

// Norm computes the Euclidean norm over all elements. For a rank-2 operand
// this is the Frobenius norm of the matrix. floats.Norm accumulates the
// 2-norm with math.Hypot, so very large entries do not overflow the squares.
func (g *GonumBackend) Norm(x *dense.Raw) float64 {
	check64("norm", x)
	return floats.Norm(x.AsFloat64(), 2)
}

// LpNorm computes the generalized p-norm (sum |x_i|^p)^(1/p) over all
// elements. p must be >= 1 or +Inf; the operator layer enforces this.
func (g *GonumBackend) LpNorm(x *dense.Raw, p float64) float64 {
	if p < 1 || math.IsNaN(p) {
		panic(fmt.Sprintf("lpnorm: invalid exponent %v", p))
	}
	check64("lpnorm", x)
	return floats.Norm(x.AsFloat64(), p)
}
