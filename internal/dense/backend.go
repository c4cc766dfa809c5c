package dense

// Backend defines the interface the operator layer dispatches to for the
// actual dense numerics. Backends never validate operand compatibility: the
// operator layer checks shapes and dtypes before every call, so a violated
// precondition inside a backend is a programmer error and may panic.
//
// Scalars and reduction results cross the dtype-erased boundary as float64,
// which holds every float32 and float64 value exactly; elementwise kernels
// still compute at the operand's native element precision.
//
// Implementations:
//   - cpu: pure Go kernels, optionally parallelized
//   - gonum: delegates to gonum floats/blas64/mat, float64 only
type Backend interface {
	// Element-wise binary operations. The result is a new owned Raw of the
	// operands' shape; operands are never modified.
	Add(a, b *Raw) *Raw
	Sub(a, b *Raw) *Raw
	Mul(a, b *Raw) *Raw // Hadamard product
	Div(a, b *Raw) *Raw // elementwise quotient, IEEE semantics on zero divisors

	// In-place element-wise updates of dst.
	AddAssign(dst, src *Raw)
	SubAssign(dst, src *Raw)

	// Scalar operations (element-wise with scalar).
	Scale(x *Raw, k float64) *Raw     // multiply by scalar
	DivScalar(x *Raw, k float64) *Raw // divide by scalar
	ScaleAssign(x *Raw, k float64)
	DivScalarAssign(x *Raw, k float64)

	// Element-wise map with a caller-supplied function. The function must be
	// pure; evaluation order is unspecified.
	Apply32(x *Raw, f func(float32) float32) *Raw
	Apply64(x *Raw, f func(float64) float64) *Raw

	// Reduction operations.
	Dot(a, b *Raw) float64             // inner product of two vectors
	Sum(x *Raw) float64                // total sum of all elements
	Norm(x *Raw) float64               // Euclidean norm over all elements
	LpNorm(x *Raw, p float64) float64  // generalized p-norm, p >= 1 or +Inf

	// Linear algebra.
	MatMul(a, b *Raw) *Raw // [m,k] x [k,n] -> [m,n]
	MatVec(m, v *Raw) *Raw // [r,c] x [c] -> [r]
	VecMat(v, m *Raw) *Raw // [r] x [r,c] -> [c], vector taken as a row
	Transpose(m *Raw) *Raw
	Inverse(m *Raw) (*Raw, error) // ErrSingular when no inverse exists

	// Metadata
	Name() string
}
