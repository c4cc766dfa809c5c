// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for dense containers.
//
// # Overview
//
// This package implements a compute backend with:
//   - Pure Go kernels (no CGO, no assembly)
//   - Float32 and Float64 support
//   - Data-parallel execution over a worker pool for large operands
//   - Partial-pivoting Gauss-Jordan elimination for matrix inversion
//
// # Basic Usage
//
//	import (
//	    "github.com/matra-math/matra/algebra"
//	    "github.com/matra-math/matra/backend/cpu"
//	    "github.com/matra-math/matra/dense"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := dense.NewVector(backend, []float64{1, 2, 3})
//	    b, _ := dense.NewVector(backend, []float64{4, 5, 6})
//	    dot, _ := algebra.Dot(a, b)
//	}
//
// # Parallelism
//
// Kernels run sequentially below a configurable element threshold and
// split across workers above it. Both sides of the threshold compute
// identical results; WithoutParallel pins everything to the calling
// goroutine.
//
// # Thread Safety
//
// The backend holds no mutable state and is safe for concurrent use.
package cpu
