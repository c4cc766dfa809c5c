package cpu

import (
	"fmt"

	"github.com/matra-math/matra/internal/dense"
	"github.com/matra-math/matra/internal/parallel"
)

// MatMul performs matrix multiplication: [m,k] x [k,n] -> [m,n].
// Rows of the result are computed in parallel for large inputs.
func (cpu *CPUBackend) MatMul(a, b *dense.Raw) *dense.Raw {
	m, k := a.Shape()[0], a.Shape()[1]
	kAlt, n := b.Shape()[0], b.Shape()[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] x [%d,%d]", m, k, kAlt, n))
	}

	result := newRaw(dense.Shape{m, n}, a.DType(), "matmul")
	switch a.DType() {
	case dense.Float32:
		matmulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.cfg)
	case dense.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.cfg)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}
	return result
}

// MatVec performs a matrix-vector product: [r,c] x [c] -> [r].
func (cpu *CPUBackend) MatVec(m, v *dense.Raw) *dense.Raw {
	rows, cols := m.Shape()[0], m.Shape()[1]
	if cols != v.Shape()[0] {
		panic(fmt.Sprintf("matvec: shape mismatch [%d,%d] x [%d]", rows, cols, v.Shape()[0]))
	}

	result := newRaw(dense.Shape{rows}, m.DType(), "matvec")
	switch m.DType() {
	case dense.Float32:
		matVecFloat32(result.AsFloat32(), m.AsFloat32(), v.AsFloat32(), rows, cols, cpu.cfg)
	case dense.Float64:
		matVecFloat64(result.AsFloat64(), m.AsFloat64(), v.AsFloat64(), rows, cols, cpu.cfg)
	default:
		panic(fmt.Sprintf("matvec: unsupported dtype %s", m.DType()))
	}
	return result
}

// VecMat performs a row-vector times matrix product: [r] x [r,c] -> [c].
func (cpu *CPUBackend) VecMat(v, m *dense.Raw) *dense.Raw {
	rows, cols := m.Shape()[0], m.Shape()[1]
	if v.Shape()[0] != rows {
		panic(fmt.Sprintf("vecmat: shape mismatch [%d] x [%d,%d]", v.Shape()[0], rows, cols))
	}

	result := newRaw(dense.Shape{cols}, m.DType(), "vecmat")
	switch m.DType() {
	case dense.Float32:
		vecMatFloat32(result.AsFloat32(), v.AsFloat32(), m.AsFloat32(), rows, cols)
	case dense.Float64:
		vecMatFloat64(result.AsFloat64(), v.AsFloat64(), m.AsFloat64(), rows, cols)
	default:
		panic(fmt.Sprintf("vecmat: unsupported dtype %s", m.DType()))
	}
	return result
}

// Transpose returns a new [c,r] matrix from a [r,c] input.
func (cpu *CPUBackend) Transpose(m *dense.Raw) *dense.Raw {
	rows, cols := m.Shape()[0], m.Shape()[1]
	result := newRaw(dense.Shape{cols, rows}, m.DType(), "transpose")
	switch m.DType() {
	case dense.Float32:
		transposeFloat32(result.AsFloat32(), m.AsFloat32(), rows, cols)
	case dense.Float64:
		transposeFloat64(result.AsFloat64(), m.AsFloat64(), rows, cols)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", m.DType()))
	}
	return result
}

// matmulFloat32 computes C[i,j] = sum_k A[i,k] * B[k,j], one result row per
// work item.
func matmulFloat32(c, a, b []float32, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		row := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			sum := float32(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += row[kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}, cfg)
}

func matmulFloat64(c, a, b []float64, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		row := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += row[kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}, cfg)
}

// matVecFloat32 computes dst[i] = row_i . v.
func matVecFloat32(dst, m, v []float32, rows, cols int, cfg parallel.Config) {
	parallel.For(rows, func(i int) {
		row := m[i*cols : (i+1)*cols]
		var sum float32
		for j, x := range row {
			sum += x * v[j]
		}
		dst[i] = sum
	}, cfg)
}

func matVecFloat64(dst, m, v []float64, rows, cols int, cfg parallel.Config) {
	parallel.For(rows, func(i int) {
		row := m[i*cols : (i+1)*cols]
		var sum float64
		for j, x := range row {
			sum += x * v[j]
		}
		dst[i] = sum
	}, cfg)
}

// vecMatFloat32 accumulates dst += v[i] * row_i, walking the matrix once in
// row order. dst starts zeroed.
func vecMatFloat32(dst, v, m []float32, rows, cols int) {
	for i := 0; i < rows; i++ {
		vi := v[i]
		row := m[i*cols : (i+1)*cols]
		for j, x := range row {
			dst[j] += vi * x
		}
	}
}

func vecMatFloat64(dst, v, m []float64, rows, cols int) {
	for i := 0; i < rows; i++ {
		vi := v[i]
		row := m[i*cols : (i+1)*cols]
		for j, x := range row {
			dst[j] += vi * x
		}
	}
}

func transposeFloat32(dst, src []float32, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
}

func transposeFloat64(dst, src []float64, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
}
