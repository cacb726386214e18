// SPDX-License-Identifier: MIT

// Package residual: the poison / check pair at the untrusted boundary.

package residual

import "github.com/katalvlaran/lvlsq/numarray"

// InvalidateEvaluation poisons a caller-owned buffer set before the cost
// function runs: every slot of cost (when requested), residuals, and each
// non-nil jacobian block is overwritten with numarray.ImpossibleValue.
//
// Must run strictly before the callback for the check to mean anything.
// Nil buffers are skipped ("not requested for this call"); nothing is
// allocated; the only observable effect is the mutation of b's buffers.
//
// b describes the geometry the buffers were validated against (see
// ValidateEvaluation); the slices themselves carry the trusted lengths.
//
// Complexity: O(total buffer size). Safe for unrestricted parallel use over
// disjoint buffer sets.
func InvalidateEvaluation(b Block, cost *float64, residuals []float64, jacobians [][]float64) {
	if cost != nil {
		*cost = numarray.ImpossibleValue
	}
	numarray.Invalidate(residuals)
	for _, jac := range jacobians {
		numarray.Invalidate(jac) // nil entry → no-op (constant / not requested)
	}
}

// IsEvaluationValid reports whether the post-callback buffers honor the
// evaluation contract: every residual entry and every entry of every
// non-nil jacobian block is finite and not the sentinel.
//
// cost is intentionally not scanned here: its health follows from the
// residuals it is derived from. Solvers that compute cost independently of
// the residual vector should check it explicitly with numarray.EntryValid.
//
// Each buffer is scanned in increasing index order with early exit on the
// first invalid entry; blocks whose jacobian entry is nil contribute nothing
// (a constant parameter block can never cause invalidity).
//
// Complexity: O(total buffer size), early-exit on failure.
func IsEvaluationValid(b Block, cost *float64, residuals []float64, jacobians [][]float64) bool {
	if !numarray.ArrayValid(residuals) {
		return false
	}
	for _, jac := range jacobians {
		if !numarray.ArrayValid(jac) { // nil entry is vacuously valid
			return false
		}
	}

	return true
}
