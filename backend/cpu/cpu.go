// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/matra-math/matra/dense"
	internalcpu "github.com/matra-math/matra/internal/backend/cpu"
)

// Backend represents the pure Go CPU backend.
//
// Kernels are hand-written loops with optional data-parallel execution
// over a worker pool for large operands.
type Backend = internalcpu.CPUBackend

// Option configures a Backend at construction.
type Option = internalcpu.Option

// Compile-time check that Backend implements dense.Backend.
var _ dense.Backend = (*Backend)(nil)

// New creates a CPU backend.
//
// Example:
//
//	import (
//	    "github.com/matra-math/matra/backend/cpu"
//	    "github.com/matra-math/matra/dense"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    v := dense.ZerosVector[float64](backend, 3)
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithWorkers sets the number of goroutines used by parallel kernels.
// It panics if n is not positive.
func WithWorkers(n int) Option {
	return internalcpu.WithWorkers(n)
}

// WithMinParallel sets the element count below which kernels stay
// sequential. It panics if n is not positive.
func WithMinParallel(n int) Option {
	return internalcpu.WithMinParallel(n)
}

// WithoutParallel disables the worker pool; every kernel runs on the
// calling goroutine.
func WithoutParallel() Option {
	return internalcpu.WithoutParallel()
}
