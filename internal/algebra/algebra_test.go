package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matra-math/matra/internal/backend/cpu"
	"github.com/matra-math/matra/internal/backend/gonum"
	"github.com/matra-math/matra/internal/dense"
)

// runBackends runs fn once per backend that can execute the element type.
// The gonum backend carries float64 kernels only.
func runBackends[T dense.Element](t *testing.T, fn func(t *testing.T, backend dense.Backend)) {
	t.Run("cpu", func(t *testing.T) { fn(t, cpu.New()) })
	if dense.DataTypeOf[T]() == dense.Float64 {
		t.Run("gonum", func(t *testing.T) { fn(t, gonum.New()) })
	}
}

// tol returns a comparison tolerance matched to the element precision.
func tol[T dense.Element]() float64 {
	if dense.DataTypeOf[T]() == dense.Float32 {
		return 1e-5
	}
	return 1e-12
}

func vecOf[T dense.Element](t *testing.T, backend dense.Backend, data ...T) *dense.Vector[T] {
	t.Helper()
	v, err := dense.NewVector(backend, data)
	require.NoError(t, err)
	return v
}

func matOf[T dense.Element](t *testing.T, backend dense.Backend, rows, cols int, data ...T) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.NewMatrix(backend, rows, cols, data)
	require.NoError(t, err)
	return m
}

func viewOf[T dense.Element](t *testing.T, backend dense.Backend, data []T) dense.VecView[T] {
	t.Helper()
	v, err := dense.ViewVector(backend, data)
	require.NoError(t, err)
	return v
}

func matViewOf[T dense.Element](t *testing.T, backend dense.Backend, data []T, rows, cols int) dense.MatView[T] {
	t.Helper()
	m, err := dense.ViewMatrix(backend, data, rows, cols)
	require.NoError(t, err)
	return m
}
