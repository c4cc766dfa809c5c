package dense

// VectorOperand is the operand contract shared by owned vectors and vector
// views. Every vector operation accepts its operands through this interface
// and resolves them to the backend representation, so one algorithm serves
// each owned/view combination instead of per-combination variants.
//
// The Data method anchors the element type: VectorOperand[float32] and
// VectorOperand[float64] are distinct types, keeping mixed-type expressions
// out at compile time.
type VectorOperand[T Element] interface {
	Raw() *Raw
	Backend() Backend
	Len() int
	Data() []T
}

// MatrixOperand is the operand contract shared by owned matrices and matrix
// views.
type MatrixOperand[T Element] interface {
	Raw() *Raw
	Backend() Backend
	Rows() int
	Cols() int
	Data() []T
}

// Interface conformance checks.
var (
	_ VectorOperand[float32] = (*Vector[float32])(nil)
	_ VectorOperand[float64] = VecView[float64]{}
	_ MatrixOperand[float32] = (*Matrix[float32])(nil)
	_ MatrixOperand[float64] = MatView[float64]{}
)
