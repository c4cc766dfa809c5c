// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dense

import (
	"github.com/matra-math/matra/internal/dense"
)

// Sentinel errors returned by containers and operators. Returned errors
// wrap these, so match with errors.Is.
var (
	// ErrDimensionMismatch reports operand shapes incompatible with the
	// requested operation.
	ErrDimensionMismatch = dense.ErrDimensionMismatch

	// ErrNonSquare reports a rectangular matrix passed to a square-only
	// operation.
	ErrNonSquare = dense.ErrNonSquare

	// ErrSingular reports a matrix with no multiplicative inverse.
	ErrSingular = dense.ErrSingular

	// ErrZeroNorm reports an attempt to normalize a vector whose norm is
	// exactly zero.
	ErrZeroNorm = dense.ErrZeroNorm

	// ErrBadShape reports invalid construction dimensions or a data
	// length that does not match them.
	ErrBadShape = dense.ErrBadShape
)
