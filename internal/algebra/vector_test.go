package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matra-math/matra/internal/dense"
)

func TestAdd(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testAdd[float32](t) })
	t.Run("Float64", func(t *testing.T) { testAdd[float64](t) })
}

func testAdd[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		a := vecOf[T](t, backend, 1, 2, 3)
		b := vecOf[T](t, backend, 10, 20, 30)

		sum, err := Add(a, b)
		require.NoError(t, err)
		assert.Equal(t, []T{11, 22, 33}, sum.Data())
		assert.False(t, sum.Raw().IsView(), "results are always owned")

		t.Run("OperandsUnchanged", func(t *testing.T) {
			assert.Equal(t, []T{1, 2, 3}, a.Data())
			assert.Equal(t, []T{10, 20, 30}, b.Data())
		})

		t.Run("LengthMismatch", func(t *testing.T) {
			short := vecOf[T](t, backend, 1, 2)
			_, err := Add(a, short)
			require.Error(t, err)
			assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
			assert.ErrorContains(t, err, "add:")
		})

		t.Run("ViewOperands", func(t *testing.T) {
			av := viewOf[T](t, backend, []T{1, 2, 3})
			bv := viewOf[T](t, backend, []T{10, 20, 30})

			for _, operands := range []struct {
				name string
				a, b dense.VectorOperand[T]
			}{
				{"OwnedView", a, bv},
				{"ViewOwned", av, b},
				{"ViewView", av, bv},
			} {
				got, err := Add(operands.a, operands.b)
				require.NoError(t, err, operands.name)
				assert.Equal(t, sum.Data(), got.Data(), operands.name)
				assert.False(t, got.Raw().IsView(), operands.name)
			}
		})
	})
}

func TestSub(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testSub[float32](t) })
	t.Run("Float64", func(t *testing.T) { testSub[float64](t) })
}

func testSub[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		a := vecOf[T](t, backend, 10, 20, 30)
		b := vecOf[T](t, backend, 1, 2, 3)

		diff, err := Sub(a, b)
		require.NoError(t, err)
		assert.Equal(t, []T{9, 18, 27}, diff.Data())

		t.Run("AddThenSubRestores", func(t *testing.T) {
			x := vecOf[T](t, backend, 0.5, -1.25, 3.75)
			y := vecOf[T](t, backend, 2.5, 0.125, -4.5)

			sum, err := Add(x, y)
			require.NoError(t, err)
			back, err := Sub(sum, y)
			require.NoError(t, err)
			assert.InDeltaSlice(t, x.Data(), back.Data(), tol[T]())
		})

		t.Run("LengthMismatch", func(t *testing.T) {
			_, err := Sub(a, vecOf[T](t, backend, 1, 2))
			assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
		})
	})
}

func TestAddAssign(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testAddAssign[float32](t) })
	t.Run("Float64", func(t *testing.T) { testAddAssign[float64](t) })
}

func testAddAssign[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		dst := vecOf[T](t, backend, 1, 2, 3)
		src := vecOf[T](t, backend, 10, 20, 30)

		require.NoError(t, AddAssign(dst, src))
		assert.Equal(t, []T{11, 22, 33}, dst.Data())
		assert.Equal(t, []T{10, 20, 30}, src.Data())

		t.Run("ViewWritesThrough", func(t *testing.T) {
			buffer := []T{1, 2, 3}
			view := viewOf[T](t, backend, buffer)

			require.NoError(t, AddAssign(view, src))
			assert.Equal(t, []T{11, 22, 33}, buffer, "update lands in the caller's buffer")
		})

		t.Run("MismatchLeavesDstUnchanged", func(t *testing.T) {
			x := vecOf[T](t, backend, 5, 5, 5)
			err := AddAssign(x, vecOf[T](t, backend, 1, 2))
			assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
			assert.Equal(t, []T{5, 5, 5}, x.Data())
		})
	})
}

func TestSubAssign(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testSubAssign[float32](t) })
	t.Run("Float64", func(t *testing.T) { testSubAssign[float64](t) })
}

func testSubAssign[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		dst := vecOf[T](t, backend, 11, 22, 33)
		require.NoError(t, SubAssign(dst, vecOf[T](t, backend, 1, 2, 3)))
		assert.Equal(t, []T{10, 20, 30}, dst.Data())

		t.Run("ViewWritesThrough", func(t *testing.T) {
			buffer := []T{10, 20, 30}
			view := viewOf[T](t, backend, buffer)

			require.NoError(t, SubAssign(view, vecOf[T](t, backend, 10, 20, 30)))
			assert.Equal(t, []T{0, 0, 0}, buffer)
		})
	})
}

func TestScale(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testScale[float32](t) })
	t.Run("Float64", func(t *testing.T) { testScale[float64](t) })
}

func testScale[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		v := vecOf[T](t, backend, 1, 2, 3)

		assert.Equal(t, []T{2.5, 5, 7.5}, Scale(v, 2.5).Data())
		assert.Equal(t, []T{1, 2, 3}, v.Data(), "source unchanged")
		assert.Equal(t, []T{0, 0, 0}, Scale(v, 0).Data())

		t.Run("OnView", func(t *testing.T) {
			view := viewOf[T](t, backend, []T{1, 2, 3})
			assert.Equal(t, []T{2, 4, 6}, Scale(view, 2).Data())
		})
	})
}

func TestDivScalar(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testDivScalar[float32](t) })
	t.Run("Float64", func(t *testing.T) { testDivScalar[float64](t) })
}

func testDivScalar[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		v := vecOf[T](t, backend, 2, 4, 6)
		assert.Equal(t, []T{1, 2, 3}, DivScalar(v, 2).Data())

		t.Run("HalvesAreExact", func(t *testing.T) {
			got := DivScalar(vecOf[T](t, backend, 1, 3, 5), 2)
			assert.Equal(t, []T{0.5, 1.5, 2.5}, got.Data())
		})
	})
}

func TestScaleAssign(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testScaleAssign[float32](t) })
	t.Run("Float64", func(t *testing.T) { testScaleAssign[float64](t) })
}

func testScaleAssign[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		v := vecOf[T](t, backend, 1, 2, 3)
		ScaleAssign(v, 10)
		assert.Equal(t, []T{10, 20, 30}, v.Data())

		t.Run("ViewWritesThrough", func(t *testing.T) {
			buffer := []T{1, 2, 3}
			ScaleAssign(viewOf[T](t, backend, buffer), 3)
			assert.Equal(t, []T{3, 6, 9}, buffer)
		})
	})
}

func TestDivScalarAssign(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testDivScalarAssign[float32](t) })
	t.Run("Float64", func(t *testing.T) { testDivScalarAssign[float64](t) })
}

func testDivScalarAssign[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		v := vecOf[T](t, backend, 10, 20, 30)
		DivScalarAssign(v, 10)
		assert.Equal(t, []T{1, 2, 3}, v.Data())
	})
}

func TestDot(t *testing.T) {
	t.Run("Float32", func(t *testing.T) { testDot[float32](t) })
	t.Run("Float64", func(t *testing.T) { testDot[float64](t) })
}

func testDot[T dense.Element](t *testing.T) {
	runBackends[T](t, func(t *testing.T, backend dense.Backend) {
		// [1, 2, 3] . [4, 5, 6] = 4 + 10 + 18 = 32
		a := vecOf[T](t, backend, 1, 2, 3)
		b := vecOf[T](t, backend, 4, 5, 6)

		got, err := Dot(a, b)
		require.NoError(t, err)
		assert.Equal(t, T(32), got)

		t.Run("Commutes", func(t *testing.T) {
			flipped, err := Dot(b, a)
			require.NoError(t, err)
			assert.Equal(t, got, flipped)
		})

		t.Run("ViewOperands", func(t *testing.T) {
			av := viewOf[T](t, backend, []T{1, 2, 3})
			bv := viewOf[T](t, backend, []T{4, 5, 6})
			fromViews, err := Dot(av, bv)
			require.NoError(t, err)
			assert.Equal(t, got, fromViews)
		})

		t.Run("LengthMismatch", func(t *testing.T) {
			_, err := Dot(a, vecOf[T](t, backend, 1, 2))
			require.Error(t, err)
			assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
			assert.ErrorContains(t, err, "dot:")
		})
	})
}
