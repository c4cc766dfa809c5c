package cpu

import (
	"fmt"
	"math"

	"github.com/matra-math/matra/internal/dense"
)

// Inverse computes the multiplicative inverse of a square matrix by
// Gauss-Jordan elimination with partial pivoting. Returns ErrSingular when
// elimination hits a zero pivot; near-singular inputs pass through with
// whatever precision the arithmetic leaves them.
func (cpu *CPUBackend) Inverse(m *dense.Raw) (*dense.Raw, error) {
	n := m.Shape()[0]
	if m.Shape()[1] != n {
		panic(fmt.Sprintf("inverse: non-square shape [%d,%d]", n, m.Shape()[1]))
	}

	result := newRaw(dense.Shape{n, n}, m.DType(), "inverse")
	switch m.DType() {
	case dense.Float32:
		if err := inverseFloat32(result.AsFloat32(), m.AsFloat32(), n); err != nil {
			return nil, err
		}
	case dense.Float64:
		if err := inverseFloat64(result.AsFloat64(), m.AsFloat64(), n); err != nil {
			return nil, err
		}
	default:
		panic(fmt.Sprintf("inverse: unsupported dtype %s", m.DType()))
	}
	return result, nil
}

// inverseFloat64 reduces the augmented matrix [A | I] until the left block is
// the identity; the right block is then A^-1.
func inverseFloat64(dst, a []float64, n int) error {
	w := 2 * n
	aug := make([]float64, n*w)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], a[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: swap in the largest remaining entry of this column.
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(aug[r*w+col]) > math.Abs(aug[pivot*w+col]) {
				pivot = r
			}
		}
		if aug[pivot*w+col] == 0 {
			return dense.ErrSingular
		}
		if pivot != col {
			swapRowsFloat64(aug, pivot, col, w)
		}

		p := aug[col*w+col]
		for j := 0; j < w; j++ {
			aug[col*w+j] /= p
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := aug[r*w+col]
			if f == 0 {
				continue
			}
			for j := 0; j < w; j++ {
				aug[r*w+j] -= f * aug[col*w+j]
			}
		}
	}

	for i := 0; i < n; i++ {
		copy(dst[i*n:(i+1)*n], aug[i*w+n:i*w+w])
	}
	return nil
}

func inverseFloat32(dst, a []float32, n int) error {
	w := 2 * n
	aug := make([]float32, n*w)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], a[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(float64(aug[r*w+col])) > math.Abs(float64(aug[pivot*w+col])) {
				pivot = r
			}
		}
		if aug[pivot*w+col] == 0 {
			return dense.ErrSingular
		}
		if pivot != col {
			swapRowsFloat32(aug, pivot, col, w)
		}

		p := aug[col*w+col]
		for j := 0; j < w; j++ {
			aug[col*w+j] /= p
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := aug[r*w+col]
			if f == 0 {
				continue
			}
			for j := 0; j < w; j++ {
				aug[r*w+j] -= f * aug[col*w+j]
			}
		}
	}

	for i := 0; i < n; i++ {
		copy(dst[i*n:(i+1)*n], aug[i*w+n:i*w+w])
	}
	return nil
}

func swapRowsFloat64(m []float64, r1, r2, w int) {
	for j := 0; j < w; j++ {
		m[r1*w+j], m[r2*w+j] = m[r2*w+j], m[r1*w+j]
	}
}

func swapRowsFloat32(m []float32, r1, r2, w int) {
	for j := 0; j < w; j++ {
		m[r1*w+j], m[r2*w+j] = m[r2*w+j], m[r1*w+j]
	}
}
