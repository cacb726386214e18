// SPDX-License-Identifier: MIT

// Package numarray provides the buffer-validity primitives shared by the
// lvlsq evaluation-contract layer: a reserved sentinel value, buffer
// poisoning, finite-value scans, and a uniform row renderer.
//
// 🚀 What is numarray?
//
//	The leaf toolbox underneath residual/:
//	  • ImpossibleValue — a marker no legitimate computation produces
//	  • Invalidate      — poison a buffer before untrusted code writes it
//	  • EntryValid      — finite and actually written?
//	  • ArrayValid      — whole-buffer scan with early exit
//	  • AppendToString  — render a row with unambiguous markers
//
// ✨ Design rules:
//
//   - Pure & deterministic – every function reads/writes only its arguments
//   - Allocation-free scans – validity checks never allocate
//   - nil means "not requested" – a nil buffer is skipped, never an error
//
// Complexity: all operations are single linear passes, O(len) time, O(1) space.
package numarray
