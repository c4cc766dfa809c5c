package gonum

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/matra-math/matra/internal/dense"
)

// general wraps a raw buffer in a row-major blas64 matrix header without
// copying.
func general(r *dense.Raw, rows, cols int) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: r.AsFloat64()}
}

// vec wraps a raw buffer in a unit-stride blas64 vector header without
// copying.
func vec(r *dense.Raw) blas64.Vector {
	return blas64.Vector{N: r.NumElements(), Inc: 1, Data: r.AsFloat64()}
}

// MatMul performs matrix multiplication: [m,k] x [k,n] -> [m,n].
func (g *GonumBackend) MatMul(a, b *dense.Raw) *dense.Raw {
	check64("matmul", a, b)
	m, k := a.Shape()[0], a.Shape()[1]
	kAlt, n := b.Shape()[0], b.Shape()[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] x [%d,%d]", m, k, kAlt, n))
	}
	result := newRaw(dense.Shape{m, n}, "matmul")
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, general(a, m, k), general(b, kAlt, n), 0, general(result, m, n))
	return result
}

// MatVec performs a matrix-vector product: [r,c] x [c] -> [r].
func (g *GonumBackend) MatVec(m, v *dense.Raw) *dense.Raw {
	check64("matvec", m, v)
	rows, cols := m.Shape()[0], m.Shape()[1]
	if cols != v.Shape()[0] {
		panic(fmt.Sprintf("matvec: shape mismatch [%d,%d] x [%d]", rows, cols, v.Shape()[0]))
	}
	result := newRaw(dense.Shape{rows}, "matvec")
	blas64.Gemv(blas.NoTrans, 1, general(m, rows, cols), vec(v), 0, vec(result))
	return result
}

// VecMat performs a row-vector times matrix product: [r] x [r,c] -> [c].
// Gemv on the transposed matrix computes it without materializing the
// transpose.
func (g *GonumBackend) VecMat(v, m *dense.Raw) *dense.Raw {
	check64("vecmat", v, m)
	rows, cols := m.Shape()[0], m.Shape()[1]
	if v.Shape()[0] != rows {
		panic(fmt.Sprintf("vecmat: shape mismatch [%d] x [%d,%d]", v.Shape()[0], rows, cols))
	}
	result := newRaw(dense.Shape{cols}, "vecmat")
	blas64.Gemv(blas.Trans, 1, general(m, rows, cols), vec(v), 0, vec(result))
	return result
}

// Transpose returns a new [c,r] matrix from a [r,c] input.
func (g *GonumBackend) Transpose(m *dense.Raw) *dense.Raw {
	check64("transpose", m)
	rows, cols := m.Shape()[0], m.Shape()[1]
	result := newRaw(dense.Shape{cols, rows}, "transpose")
	src, dst := m.AsFloat64(), result.AsFloat64()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
	return result
}

// Inverse computes the multiplicative inverse of a square matrix through
// mat.Dense, which factorizes with LU and estimates the condition number.
// Returns ErrSingular for singular and numerically near-singular inputs.
func (g *GonumBackend) Inverse(m *dense.Raw) (*dense.Raw, error) {
	check64("inverse", m)
	n := m.Shape()[0]
	if m.Shape()[1] != n {
		panic(fmt.Sprintf("inverse: non-square shape [%d,%d]", n, m.Shape()[1]))
	}
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(n, n, m.AsFloat64())); err != nil {
		return nil, fmt.Errorf("%w: %v", dense.ErrSingular, err)
	}
	result := newRaw(dense.Shape{n, n}, "inverse")
	copy(result.AsFloat64(), inv.RawMatrix().Data)
	return result, nil
}
