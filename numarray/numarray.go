// SPDX-License-Identifier: MIT

// Package numarray: sentinel + scan primitives.
//
// Purpose:
//   - Provide a single, canonical source of truth for "was this slot written,
//     and is it finite?" so the residual package never re-implements guards.
//   - Keep every helper pure, deterministic and allocation-free.
//
// Note:
//   - nil buffers are a valid "not requested" signal everywhere in this
//     package; they are skipped, never dereferenced and never an error.

package numarray

import (
	"fmt"
	"math"
	"strings"
)

// ImpossibleValue is the reserved sentinel written into output buffers before
// untrusted code runs. The value is chosen so that it cannot arise from
// ordinary floating-point arithmetic: any slot still holding it after an
// evaluation was simply never written.
//
// It is a named immutable constant on purpose: sharing it between the
// poisoner and the checker as a pure value avoids process-wide mutable state.
const ImpossibleValue = 1e302

// Row-cell markers used by AppendToString. Fixed widths keep columns aligned
// with the "%12g " rendering of finite values.
const (
	// markerNotComputed renders a cell whose whole buffer was not requested.
	markerNotComputed = "Not Computed  "

	// markerUninitialized renders a cell still holding ImpossibleValue.
	markerUninitialized = "Uninitialized "
)

// notFound is returned by FirstInvalid when every entry is valid.
const notFound = -1

// Invalidate overwrites every element of xs with ImpossibleValue.
//
// A nil (or empty) buffer is a no-op: nil means "not requested for this
// call". Invalidate writes only into caller-owned storage and allocates
// nothing.
//
// Complexity: O(len(xs)) time, O(1) space.
func Invalidate(xs []float64) {
	for i := range xs {
		xs[i] = ImpossibleValue
	}
}

// EntryValid reports whether a single value satisfies the evaluation
// contract: it must be finite (no NaN, no ±Inf) and must differ from
// ImpossibleValue (i.e. it was actually written).
//
// The two failure classes are mutually exclusive: ImpossibleValue is itself
// finite, so a value is never simultaneously "not finite" and "not set".
//
// Complexity: O(1).
func EntryValid(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	return x != ImpossibleValue
}

// ArrayValid reports whether every element of xs is valid per EntryValid.
//
// A nil buffer is vacuously valid ("not requested" contributes nothing to
// invalidity). The scan runs in increasing index order and exits on the
// first invalid entry.
//
// Complexity: O(len(xs)) time, O(1) space.
func ArrayValid(xs []float64) bool {
	for _, x := range xs {
		if !EntryValid(x) {
			return false
		}
	}

	return true
}

// FirstInvalid returns the index of the first entry of xs failing EntryValid,
// or -1 when the whole buffer is valid (including nil buffers).
//
// Complexity: O(len(xs)) time, O(1) space.
func FirstInvalid(xs []float64) int {
	for i, x := range xs {
		if !EntryValid(x) {
			return i
		}
	}

	return notFound
}

// AppendToString renders n cells of xs into sb as one table row.
//
// Rendering is three-way and unambiguous:
//   - xs == nil          → "Not Computed" for each of the n cells
//   - xs[i] is sentinel  → "Uninitialized"
//   - otherwise          → fixed-width decimal ("%12g"; NaN and ±Inf print
//     as their distinct tokens)
//
// The caller guarantees len(xs) >= n when xs is non-nil; n is passed
// explicitly so a nil buffer still renders the correct number of cells.
func AppendToString(sb *strings.Builder, n int, xs []float64) {
	for i := 0; i < n; i++ {
		switch {
		case xs == nil:
			sb.WriteString(markerNotComputed)
		case xs[i] == ImpossibleValue:
			sb.WriteString(markerUninitialized)
		default:
			fmt.Fprintf(sb, "%12g ", xs[i])
		}
	}
}
