package cpu

import (
	"errors"
	"math"
	"testing"

	"github.com/matra-math/matra/internal/dense"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// Helpers to build raw operands from literal data.
func rawVec32(data ...float32) *dense.Raw {
	r, _ := dense.RawFromSlice(data, dense.Shape{len(data)})
	return r
}

func rawVec64(data ...float64) *dense.Raw {
	r, _ := dense.RawFromSlice(data, dense.Shape{len(data)})
	return r
}

func rawMat32(rows, cols int, data ...float32) *dense.Raw {
	r, _ := dense.RawFromSlice(data, dense.Shape{rows, cols})
	return r
}

func rawMat64(rows, cols int, data ...float64) *dense.Raw {
	r, _ := dense.RawFromSlice(data, dense.Shape{rows, cols})
	return r
}

// Helper to check float32 slices are equal within epsilon.
func float32SliceEqual(a, b []float32) bool {
	const epsilon = 1e-6
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// Helper to check float64 slices are equal within epsilon.
func float64SliceEqual(a, b []float64) bool {
	const epsilon = 1e-12
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// TestCPUBackend_New tests backend creation and options.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "cpu" {
		t.Errorf("Expected name 'cpu', got '%s'", backend.Name())
	}

	t.Run("WithWorkers", func(t *testing.T) {
		b := New(WithWorkers(2))
		if b.cfg.NumWorkers != 2 {
			t.Errorf("Expected 2 workers, got %d", b.cfg.NumWorkers)
		}
	})

	t.Run("WithMinParallel", func(t *testing.T) {
		b := New(WithMinParallel(8))
		if b.cfg.MinChunkSize != 8 {
			t.Errorf("Expected threshold 8, got %d", b.cfg.MinChunkSize)
		}
	})

	t.Run("WithoutParallel", func(t *testing.T) {
		b := New(WithoutParallel())
		if b.cfg.Enabled {
			t.Error("Expected parallelism disabled")
		}
	})

	t.Run("InvalidWorkers", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("WithWorkers(0) should panic")
			}
		}()
		New(WithWorkers(0))
	})
}

// TestCPUBackend_Elementwise tests element-wise binary operations.
func TestCPUBackend_Elementwise(t *testing.T) {
	backend := newTestBackend()

	t.Run("Add", func(t *testing.T) {
		result := backend.Add(rawVec32(1, 2, 3), rawVec32(10, 20, 30))
		expected := []float32{11, 22, 33}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Add failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		result := backend.Sub(rawVec32(10, 20, 30), rawVec32(1, 2, 3))
		expected := []float32{9, 18, 27}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Sub failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		result := backend.Mul(rawVec32(1, 2, 3), rawVec32(4, 5, 6))
		expected := []float32{4, 10, 18}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Mul failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("Div", func(t *testing.T) {
		result := backend.Div(rawVec32(20, 30, 40), rawVec32(2, 3, 4))
		expected := []float32{10, 10, 10}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Div failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("OperandsUnchanged", func(t *testing.T) {
		a := rawVec32(1, 2, 3)
		b := rawVec32(10, 20, 30)
		_ = backend.Add(a, b)
		if !float32SliceEqual(a.AsFloat32(), []float32{1, 2, 3}) {
			t.Errorf("Add modified operand a: %v", a.AsFloat32())
		}
		if !float32SliceEqual(b.AsFloat32(), []float32{10, 20, 30}) {
			t.Errorf("Add modified operand b: %v", b.AsFloat32())
		}
	})

	t.Run("Float64", func(t *testing.T) {
		result := backend.Add(rawVec64(1.5, 2.5, 3.5), rawVec64(0.5, 0.5, 0.5))
		expected := []float64{2.0, 3.0, 4.0}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("Float64 add failed: got %v, expected %v", result.AsFloat64(), expected)
		}
	})
}

// TestCPUBackend_Assign tests in-place element-wise updates.
func TestCPUBackend_Assign(t *testing.T) {
	backend := newTestBackend()

	t.Run("AddAssign", func(t *testing.T) {
		dst := rawVec32(1, 2, 3)
		backend.AddAssign(dst, rawVec32(10, 20, 30))
		expected := []float32{11, 22, 33}
		if !float32SliceEqual(dst.AsFloat32(), expected) {
			t.Errorf("AddAssign failed: got %v, expected %v", dst.AsFloat32(), expected)
		}
	})

	t.Run("SubAssign", func(t *testing.T) {
		dst := rawVec64(10, 20, 30)
		backend.SubAssign(dst, rawVec64(1, 2, 3))
		expected := []float64{9, 18, 27}
		if !float64SliceEqual(dst.AsFloat64(), expected) {
			t.Errorf("SubAssign failed: got %v, expected %v", dst.AsFloat64(), expected)
		}
	})
}

// TestCPUBackend_Scalar tests scalar operations.
func TestCPUBackend_Scalar(t *testing.T) {
	backend := newTestBackend()

	t.Run("Scale", func(t *testing.T) {
		result := backend.Scale(rawVec32(1, 2, 3), 2.5)
		expected := []float32{2.5, 5, 7.5}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Scale failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("DivScalar", func(t *testing.T) {
		result := backend.DivScalar(rawVec64(2, 4, 6), 2)
		expected := []float64{1, 2, 3}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("DivScalar failed: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("ScaleAssign", func(t *testing.T) {
		x := rawVec32(1, 2, 3)
		backend.ScaleAssign(x, 10)
		expected := []float32{10, 20, 30}
		if !float32SliceEqual(x.AsFloat32(), expected) {
			t.Errorf("ScaleAssign failed: got %v, expected %v", x.AsFloat32(), expected)
		}
	})

	t.Run("DivScalarAssign", func(t *testing.T) {
		x := rawVec64(10, 20, 30)
		backend.DivScalarAssign(x, 10)
		expected := []float64{1, 2, 3}
		if !float64SliceEqual(x.AsFloat64(), expected) {
			t.Errorf("DivScalarAssign failed: got %v, expected %v", x.AsFloat64(), expected)
		}
	})
}

// TestCPUBackend_Apply tests the element-wise map.
func TestCPUBackend_Apply(t *testing.T) {
	backend := newTestBackend()

	t.Run("Apply32", func(t *testing.T) {
		result := backend.Apply32(rawVec32(1, 4, 9), func(x float32) float32 {
			return float32(math.Sqrt(float64(x)))
		})
		expected := []float32{1, 2, 3}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Apply32 failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("Apply64", func(t *testing.T) {
		result := backend.Apply64(rawVec64(1, 2, 3), func(x float64) float64 {
			return x * x
		})
		expected := []float64{1, 4, 9}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("Apply64 failed: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("SourceUnchanged", func(t *testing.T) {
		src := rawVec64(1, 2, 3)
		_ = backend.Apply64(src, func(x float64) float64 { return -x })
		if !float64SliceEqual(src.AsFloat64(), []float64{1, 2, 3}) {
			t.Errorf("Apply64 modified its source: %v", src.AsFloat64())
		}
	})
}

// TestCPUBackend_Reductions tests dot, sum and the norm family.
func TestCPUBackend_Reductions(t *testing.T) {
	backend := newTestBackend()

	t.Run("Dot", func(t *testing.T) {
		// 1*4 + 2*5 + 3*6 = 32
		got := backend.Dot(rawVec32(1, 2, 3), rawVec32(4, 5, 6))
		if got != 32 {
			t.Errorf("Dot failed: got %v, expected 32", got)
		}
	})

	t.Run("Sum", func(t *testing.T) {
		got := backend.Sum(rawVec64(1, 2, 3))
		if got != 6 {
			t.Errorf("Sum failed: got %v, expected 6", got)
		}
	})

	t.Run("Norm", func(t *testing.T) {
		// sqrt(9 + 16) = 5
		got := backend.Norm(rawVec64(3, 4))
		if math.Abs(got-5) > 1e-12 {
			t.Errorf("Norm failed: got %v, expected 5", got)
		}
	})

	t.Run("NormMatrix", func(t *testing.T) {
		// Frobenius norm treats entries as one flattened vector.
		got := backend.Norm(rawMat64(2, 2, 1, 2, 3, 4))
		want := math.Sqrt(1 + 4 + 9 + 16)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("Matrix norm failed: got %v, expected %v", got, want)
		}
	})

	t.Run("LpNorm_P1", func(t *testing.T) {
		got := backend.LpNorm(rawVec64(-1, 2, -3), 1)
		if math.Abs(got-6) > 1e-12 {
			t.Errorf("L1 norm failed: got %v, expected 6", got)
		}
	})

	t.Run("LpNorm_P2_MatchesNorm", func(t *testing.T) {
		x := rawVec64(1, -2, 3.5)
		if got, want := backend.LpNorm(x, 2), backend.Norm(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("L2 norm mismatch: LpNorm=%v Norm=%v", got, want)
		}
	})

	t.Run("LpNorm_P3", func(t *testing.T) {
		// (1 + 8 + 27)^(1/3) = 36^(1/3)
		got := backend.LpNorm(rawVec64(1, 2, 3), 3)
		want := math.Pow(36, 1.0/3.0)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("L3 norm failed: got %v, expected %v", got, want)
		}
	})

	t.Run("LpNorm_Inf", func(t *testing.T) {
		got := backend.LpNorm(rawVec64(1, -7, 3), math.Inf(1))
		if got != 7 {
			t.Errorf("Inf norm failed: got %v, expected 7", got)
		}
	})

	t.Run("LpNorm_InvalidP", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("LpNorm with p < 1 should panic")
			}
		}()
		backend.LpNorm(rawVec64(1, 2), 0.5)
	})
}

// TestCPUBackend_MatMul tests matrix multiplication.
func TestCPUBackend_MatMul(t *testing.T) {
	backend := newTestBackend()

	t.Run("2x3_matmul_3x2", func(t *testing.T) {
		// A = [[1, 2, 3],
		//      [4, 5, 6]]
		a := rawMat32(2, 3, 1, 2, 3, 4, 5, 6)
		// B = [[1, 2],
		//      [3, 4],
		//      [5, 6]]
		b := rawMat32(3, 2, 1, 2, 3, 4, 5, 6)

		result := backend.MatMul(a, b)

		if !result.Shape().Equal(dense.Shape{2, 2}) {
			t.Fatalf("Expected shape [2, 2], got %v", result.Shape())
		}

		// [1*1 + 2*3 + 3*5, 1*2 + 2*4 + 3*6] = [22, 28]
		// [4*1 + 5*3 + 6*5, 4*2 + 5*4 + 6*6] = [49, 64]
		expected := []float32{22, 28, 49, 64}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("MatMul failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("IdentityMatrix", func(t *testing.T) {
		a := rawMat64(2, 2, 1, 2, 3, 4)
		identity := rawMat64(2, 2, 1, 0, 0, 1)

		result := backend.MatMul(a, identity)

		expected := []float64{1, 2, 3, 4}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("MatMul with identity failed: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("ParallelMatchesSequential", func(t *testing.T) {
		// Force the parallel path with a threshold of 1 work item and
		// compare against the sequential result.
		par := New(WithMinParallel(1), WithWorkers(4))
		seq := New(WithoutParallel())

		n := 17
		data := make([]float64, n*n)
		for i := range data {
			data[i] = float64(i%7) - 3
		}
		a := rawMat64(n, n, data...)
		b := rawMat64(n, n, data...)

		got := par.MatMul(a, b)
		want := seq.MatMul(a, b)
		if !float64SliceEqual(got.AsFloat64(), want.AsFloat64()) {
			t.Error("Parallel MatMul differs from sequential result")
		}
	})
}

// TestCPUBackend_MatVec tests matrix-vector products in both orders.
func TestCPUBackend_MatVec(t *testing.T) {
	backend := newTestBackend()

	t.Run("MatVec", func(t *testing.T) {
		// [[1, 2],    [5]   [1*5 + 2*6]   [17]
		//  [3, 4]] x  [6] = [3*5 + 4*6] = [39]
		m := rawMat64(2, 2, 1, 2, 3, 4)
		v := rawVec64(5, 6)

		result := backend.MatVec(m, v)

		if !result.Shape().Equal(dense.Shape{2}) {
			t.Fatalf("Expected shape [2], got %v", result.Shape())
		}
		expected := []float64{17, 39}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("MatVec failed: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("MatVecRectangular", func(t *testing.T) {
		m := rawMat32(2, 3, 1, 2, 3, 4, 5, 6)
		v := rawVec32(1, 1, 1)

		result := backend.MatVec(m, v)

		expected := []float32{6, 15}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("MatVec failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("VecMat", func(t *testing.T) {
		// [5, 6] x [[1, 2],   = [5*1 + 6*3, 5*2 + 6*4] = [23, 34]
		//           [3, 4]]
		v := rawVec64(5, 6)
		m := rawMat64(2, 2, 1, 2, 3, 4)

		result := backend.VecMat(v, m)

		expected := []float64{23, 34}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("VecMat failed: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("VecMatRectangular", func(t *testing.T) {
		v := rawVec32(1, 2)
		m := rawMat32(2, 3, 1, 2, 3, 4, 5, 6)

		result := backend.VecMat(v, m)

		// [1*1 + 2*4, 1*2 + 2*5, 1*3 + 2*6] = [9, 12, 15]
		expected := []float32{9, 12, 15}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("VecMat failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})
}

// TestCPUBackend_Transpose tests the transpose operation.
func TestCPUBackend_Transpose(t *testing.T) {
	backend := newTestBackend()

	t.Run("2x3_transpose", func(t *testing.T) {
		// [[1, 2, 3],
		//  [4, 5, 6]]
		a := rawMat32(2, 3, 1, 2, 3, 4, 5, 6)

		result := backend.Transpose(a)

		if !result.Shape().Equal(dense.Shape{3, 2}) {
			t.Fatalf("Expected shape [3, 2], got %v", result.Shape())
		}

		// [[1, 4],
		//  [2, 5],
		//  [3, 6]]
		expected := []float32{1, 4, 2, 5, 3, 6}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Transpose failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("DoubleTransposeRestores", func(t *testing.T) {
		a := rawMat64(3, 2, 1, 2, 3, 4, 5, 6)
		result := backend.Transpose(backend.Transpose(a))

		if !result.Shape().Equal(a.Shape()) {
			t.Fatalf("Expected shape %v, got %v", a.Shape(), result.Shape())
		}
		if !float64SliceEqual(result.AsFloat64(), a.AsFloat64()) {
			t.Errorf("Double transpose failed: got %v, expected %v", result.AsFloat64(), a.AsFloat64())
		}
	})
}

// TestCPUBackend_Inverse tests matrix inversion.
func TestCPUBackend_Inverse(t *testing.T) {
	backend := newTestBackend()

	t.Run("2x2_known", func(t *testing.T) {
		// [[1, 2],      [[-2,   1],
		//  [3, 4]]  ->   [1.5, -0.5]]
		m := rawMat64(2, 2, 1, 2, 3, 4)

		result, err := backend.Inverse(m)
		if err != nil {
			t.Fatalf("Inverse failed: %v", err)
		}

		expected := []float64{-2, 1, 1.5, -0.5}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("Inverse failed: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("ProductIsIdentity", func(t *testing.T) {
		m := rawMat64(3, 3, 4, 7, 2, 3, 6, 1, 2, 5, 3)

		inv, err := backend.Inverse(m)
		if err != nil {
			t.Fatalf("Inverse failed: %v", err)
		}

		product := backend.MatMul(m, inv)
		data := product.AsFloat64()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(data[i*3+j]-want) > 1e-9 {
					t.Errorf("M * inv(M) not identity at (%d,%d): got %v", i, j, data[i*3+j])
				}
			}
		}
	})

	t.Run("PivotRequired", func(t *testing.T) {
		// Leading zero forces a row swap before elimination can proceed.
		m := rawMat64(2, 2, 0, 1, 1, 0)

		inv, err := backend.Inverse(m)
		if err != nil {
			t.Fatalf("Inverse failed: %v", err)
		}

		// The permutation matrix is its own inverse.
		expected := []float64{0, 1, 1, 0}
		if !float64SliceEqual(inv.AsFloat64(), expected) {
			t.Errorf("Inverse failed: got %v, expected %v", inv.AsFloat64(), expected)
		}
	})

	t.Run("Singular", func(t *testing.T) {
		// Second row is twice the first.
		m := rawMat64(2, 2, 1, 2, 2, 4)

		_, err := backend.Inverse(m)
		if !errors.Is(err, dense.ErrSingular) {
			t.Errorf("Expected ErrSingular, got %v", err)
		}
	})

	t.Run("Float32", func(t *testing.T) {
		m := rawMat32(2, 2, 2, 0, 0, 4)

		inv, err := backend.Inverse(m)
		if err != nil {
			t.Fatalf("Inverse failed: %v", err)
		}

		expected := []float32{0.5, 0, 0, 0.25}
		if !float32SliceEqual(inv.AsFloat32(), expected) {
			t.Errorf("Float32 inverse failed: got %v, expected %v", inv.AsFloat32(), expected)
		}
	})
}
