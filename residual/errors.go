// SPDX-License-Identifier: MIT

// Package residual: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All boundary
// validators MUST return these sentinels and tests MUST check them via
// errors.Is. An invalid evaluation is NOT one of these errors: it is a
// verdict (bool + diagnostic text), never an error value.

package residual

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "residual: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning them
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match with errors.Is.

var (
	// ErrNilBlock indicates a nil Block was passed where structural metadata
	// is required.
	ErrNilBlock = errors.New("residual: nil residual block")

	// ErrBadShape indicates structurally nonsensical metadata: a negative
	// residual count, a nil parameter block, or a parameter block of size < 1.
	ErrBadShape = errors.New("residual: invalid block shape")

	// ErrDimensionMismatch indicates a buffer whose length disagrees with the
	// block's structural metadata (residual buffer, jacobian pointer array,
	// or an individual jacobian block).
	ErrDimensionMismatch = errors.New("residual: buffer length mismatch")

	// ErrNilCostFunction indicates a nil CostFunction was handed to
	// CheckedEvaluate.
	ErrNilCostFunction = errors.New("residual: nil cost function")
)
