// SPDX-License-Identifier: MIT

// Package residual: boundary validation.
//
// Purpose:
//   - Provide a single, canonical place where buffer lengths are checked
//     against a block's structural metadata, ONCE, at the evaluator boundary.
//   - After ValidateEvaluation succeeds, the scans and formatters in this
//     package trust slice lengths implicitly; a mismatch slipping past the
//     boundary is a caller bug, not something the scans re-detect.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Validation is O(number of parameter blocks); no buffer is scanned.

package residual

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Keeps labeling of boundary violations consistent across the package.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateBlock checks that b carries usable structural metadata: b is
// non-nil, NumResiduals() >= 0, and every parameter block is non-nil with
// Size() >= 1.
//
// Returns ErrNilBlock or ErrBadShape. Complexity: O(num parameter blocks).
func ValidateBlock(b Block) error {
	if b == nil {
		return validatorErrorf("ValidateBlock", ErrNilBlock)
	}
	if b.NumResiduals() < 0 {
		return validatorErrorf("ValidateBlock: residual count", ErrBadShape)
	}
	for i, pb := range b.ParameterBlocks() {
		if pb == nil || pb.Size() < 1 {
			return validatorErrorf(fmt.Sprintf("ValidateBlock: parameter block %d", i), ErrBadShape)
		}
	}

	return nil
}

// ValidateEvaluation checks a full caller-owned buffer set against b's
// metadata: the residual buffer holds exactly NumResiduals() entries, and
// jacobians is either nil (no derivatives requested) or holds one entry per
// parameter block, each entry nil ("not requested" / constant block) or of
// length NumResiduals()*Size().
//
// This is the one-time assertion of buffer geometry; run it before
// the first poison of a buffer set, then reuse the buffers freely.
//
// Returns ErrNilBlock, ErrBadShape or ErrDimensionMismatch.
// Complexity: O(num parameter blocks).
func ValidateEvaluation(b Block, residuals []float64, jacobians [][]float64) error {
	if err := ValidateBlock(b); err != nil {
		return validatorErrorf("ValidateEvaluation", err)
	}
	if len(residuals) != b.NumResiduals() {
		return validatorErrorf("ValidateEvaluation: residuals", ErrDimensionMismatch)
	}
	if jacobians == nil {
		return nil
	}

	params := b.ParameterBlocks()
	if len(jacobians) != len(params) {
		return validatorErrorf("ValidateEvaluation: jacobian count", ErrDimensionMismatch)
	}
	rows := b.NumResiduals()
	for i, jac := range jacobians {
		if jac == nil {
			continue // not requested for this block; a valid signal, not an error
		}
		if len(jac) != rows*params[i].Size() {
			return validatorErrorf(fmt.Sprintf("ValidateEvaluation: jacobian %d", i), ErrDimensionMismatch)
		}
	}

	return nil
}
