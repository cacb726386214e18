// SPDX-License-Identifier: MIT

// Package lvlsq is the nonlinear least-squares companion to lvlath:
// building blocks for solvers that repeatedly evaluate user-supplied
// cost functions over residual blocks.
//
// 🚀 What is lvlsq?
//
//	A small, thread-safe-by-construction library that brings together:
//		• Array primitives: sentinel poisoning & finite-value scans (numarray/)
//		• Evaluation contracts: poison → evaluate → validate → report (residual/)
//
// ✨ Why choose lvlsq?
//
//   - Untrusted-callback safe – every output slot is poisoned before user
//     code runs, so forgotten writes are detected, not silently solved on
//   - Actionable diagnostics – invalid evaluations are explained entry by
//     entry, with the failing block, row and column named
//   - Pure Go – no cgo, no hidden deps, no I/O
//   - Solver-agnostic – consumes structural metadata through tiny
//     interfaces; owns no buffers and persists nothing
//
// Under the hood, everything is organized under two subpackages:
//
//	numarray/ — sentinel value, buffer poisoning, validity scans, row rendering
//	residual/ — residual-block metadata, cost-function abstraction, the
//	            validity checker and both diagnostic formatters
//
// Quick sketch of one evaluation:
//
//	poison(buffers)          // every slot := sentinel
//	user cost function runs  // fills residuals & jacobians
//	isValid(buffers)?        // finite and fully written?
//	  no → errorReport(...)  // which entry, and why
//
//	go get github.com/katalvlaran/lvlsq/residual
package lvlsq
