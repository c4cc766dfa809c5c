// Package cpu implements the pure Go compute backend.
package cpu

import (
	"fmt"

	"github.com/matra-math/matra/internal/dense"
	"github.com/matra-math/matra/internal/parallel"
)

// CPUBackend implements dense operations in pure Go, parallelizing large
// kernels across goroutines. Operand shapes and dtypes are validated by the
// operator layer before dispatch; a violated precondition here is a
// programmer error and panics.
type CPUBackend struct {
	cfg parallel.Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithWorkers sets the number of goroutines used by parallel kernels.
// Panics when n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("cpu: invalid worker count %d", n))
	}
	return func(cpu *CPUBackend) {
		cpu.cfg.NumWorkers = n
		cpu.cfg.Enabled = n > 1
	}
}

// WithMinParallel sets the minimum work-item count before a kernel goes
// parallel. Panics when n <= 0.
func WithMinParallel(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("cpu: invalid parallel threshold %d", n))
	}
	return func(cpu *CPUBackend) {
		cpu.cfg.MinChunkSize = n
	}
}

// WithoutParallel forces sequential execution of all kernels.
func WithoutParallel() Option {
	return func(cpu *CPUBackend) {
		cpu.cfg.Enabled = false
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{cfg: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "cpu"
}

// newRaw allocates an owned result buffer. Allocation only fails on an
// invalid shape, which validated operands cannot produce.
func newRaw(shape dense.Shape, dtype dense.DataType, op string) *dense.Raw {
	result, err := dense.NewRaw(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return result
}

// Add performs element-wise addition: result = a + b.
func (cpu *CPUBackend) Add(a, b *dense.Raw) *dense.Raw {
	result := newRaw(a.Shape(), a.DType(), "add")
	switch a.DType() {
	case dense.Float32:
		addFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case dense.Float64:
		addFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic("add: unsupported dtype")
	}
	return result
}

// Sub performs element-wise subtraction: result = a - b.
func (cpu *CPUBackend) Sub(a, b *dense.Raw) *dense.Raw {
	result := newRaw(a.Shape(), a.DType(), "sub")
	switch a.DType() {
	case dense.Float32:
		subFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case dense.Float64:
		subFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic("sub: unsupported dtype")
	}
	return result
}

// Mul performs the element-wise (Hadamard) product: result = a * b.
func (cpu *CPUBackend) Mul(a, b *dense.Raw) *dense.Raw {
	result := newRaw(a.Shape(), a.DType(), "mul")
	switch a.DType() {
	case dense.Float32:
		mulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case dense.Float64:
		mulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic("mul: unsupported dtype")
	}
	return result
}

// Div performs the element-wise quotient: result = a / b.
// Zero divisors produce IEEE Inf/NaN values.
func (cpu *CPUBackend) Div(a, b *dense.Raw) *dense.Raw {
	result := newRaw(a.Shape(), a.DType(), "div")
	switch a.DType() {
	case dense.Float32:
		divFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case dense.Float64:
		divFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic("div: unsupported dtype")
	}
	return result
}

// AddAssign performs in-place addition: dst += src.
func (cpu *CPUBackend) AddAssign(dst, src *dense.Raw) {
	switch dst.DType() {
	case dense.Float32:
		addAssignFloat32(dst.AsFloat32(), src.AsFloat32())
	case dense.Float64:
		addAssignFloat64(dst.AsFloat64(), src.AsFloat64())
	default:
		panic("addassign: unsupported dtype")
	}
}

// SubAssign performs in-place subtraction: dst -= src.
func (cpu *CPUBackend) SubAssign(dst, src *dense.Raw) {
	switch dst.DType() {
	case dense.Float32:
		subAssignFloat32(dst.AsFloat32(), src.AsFloat32())
	case dense.Float64:
		subAssignFloat64(dst.AsFloat64(), src.AsFloat64())
	default:
		panic("subassign: unsupported dtype")
	}
}
