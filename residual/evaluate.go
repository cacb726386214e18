// SPDX-License-Identifier: MIT

// Package residual: the whole contract cycle in one call.

package residual

import "fmt"

// CheckedEvaluate runs one complete guarded evaluation: validate the buffer
// geometry once, poison every output slot, invoke the untrusted cost
// function, and check its output.
//
// Return values:
//   - ok=true, report=""  — the contract was honored; buffers hold the result.
//   - ok=false, report≠"" — the output was incomplete or non-finite; report
//     is the full EvaluationErrorReport. What to do about it (reject the
//     step, abort the solve, retry) is the caller's decision.
//   - err≠nil             — the boundary check failed (ErrNilCostFunction,
//     ErrNilBlock, ErrBadShape, ErrDimensionMismatch) or the cost function
//     itself returned an error; buffers are then unspecified and ok=false.
//
// The outcome has no identity beyond this call: nothing is persisted, and
// concurrent calls over disjoint buffer sets need no synchronization.
func CheckedEvaluate(b Block, fn CostFunction, parameters [][]float64, cost *float64, residuals []float64, jacobians [][]float64, opts ...Option) (ok bool, report string, err error) {
	if fn == nil {
		return false, "", ErrNilCostFunction
	}
	if err = ValidateEvaluation(b, residuals, jacobians); err != nil {
		return false, "", err
	}

	InvalidateEvaluation(b, cost, residuals, jacobians)
	if err = fn.Evaluate(parameters, residuals, jacobians); err != nil {
		return false, "", fmt.Errorf("CheckedEvaluate: cost function: %w", err)
	}

	if !IsEvaluationValid(b, cost, residuals, jacobians) {
		return false, EvaluationErrorReport(b, parameters, cost, residuals, jacobians, opts...), nil
	}

	return true, "", nil
}
