// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum provides a compute backend built on the gonum numeric
// libraries.
//
// # Overview
//
// This package implements a compute backend with:
//   - Element-wise and reduction kernels from gonum.org/v1/gonum/floats
//   - Matrix products through the blas64 reference BLAS
//   - LU-based matrix inversion through gonum.org/v1/gonum/mat
//   - Float64 operands only; float32 panics
//
// # Basic Usage
//
//	import (
//	    "github.com/matra-math/matra/algebra"
//	    "github.com/matra-math/matra/backend/gonum"
//	    "github.com/matra-math/matra/dense"
//	)
//
//	func main() {
//	    backend := gonum.New()
//
//	    m, _ := dense.NewMatrix(backend, 2, 2, []float64{1, 2, 3, 4})
//	    inv, err := algebra.Inverse(m)
//	}
//
// # Choosing a backend
//
// Both shipped backends compute the same results on float64 data. Prefer
// this backend for inversion-heavy or large linear algebra workloads;
// prefer backend/cpu when float32 storage or a dependency-light build
// matters.
//
// # Thread Safety
//
// The backend holds no mutable state and is safe for concurrent use.
package gonum
