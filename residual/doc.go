// SPDX-License-Identifier: MIT

// Package residual verifies the evaluation contract between a least-squares
// solver and a user-supplied cost function.
//
// 🚀 What is the evaluation contract?
//
//	A cost function invoked for a residual block must:
//	  • fill in every residual value,
//	  • fill in every jacobian entry for every non-constant parameter block,
//	  • use only finite (non-Inf, non-NaN) values.
//
//	Because the cost function is arbitrary user code, the solver cannot
//	assume any of this. This package makes violations detectable without
//	re-deriving the math, via poison-and-check:
//
//	  InvalidateEvaluation(...)   // 1. poison every output slot
//	  fn.Evaluate(...)            // 2. untrusted callback writes results
//	  IsEvaluationValid(...)      // 3. everything written, everything finite?
//	  EvaluationErrorReport(...)  // 4. on failure: which entry, and why
//
// ✨ Key pieces:
//
//   - Block / ParameterBlock — tiny read-only interfaces exposing the
//     structural metadata the checks need (counts and sizes, nothing more)
//   - CostFunction / CostFunc — the opaque callback abstraction; this
//     package never inspects an implementation, only its output buffers
//   - ValidateBlock / ValidateEvaluation — one-time boundary assertions so
//     the scans may trust buffer lengths afterwards
//   - EvaluationString — a neutral side-by-side dump of parameters,
//     residuals and jacobians, usable even for broken evaluations
//   - CheckedEvaluate — the whole poison → invoke → check → report cycle
//     in one call
//
// Ownership & concurrency:
//
//	Every function is stateless and pure with respect to process state: it
//	reads and writes only the caller-owned buffers passed to it. Concurrent
//	evaluations over disjoint buffer sets need no synchronization. Nothing
//	here blocks, allocates shared state, or performs I/O.
//
// An invalid evaluation is not an error value: it is reported upward as a
// boolean plus diagnostic text, and the decision of what to do next (reject
// the step, abort the solve, retry) belongs to the calling solver.
package residual
