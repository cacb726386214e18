// SPDX-License-Identifier: MIT

// Package residual: the error report for invalid evaluations.

package residual

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlsq/numarray"
)

// reportHeader states the three obligations of a correct cost function and
// the meaning of the sentinel. It also tells the reader, honestly, that the
// checker cannot name the block's position within the whole problem: at this
// point in an evaluation that information simply does not exist here, so the
// shape below is what there is to go on.
const reportHeader = "lvlsq found a problem in the values returned by a user-supplied cost function.\n" +
	"\n" +
	"A correct cost function must do the following:\n" +
	"\n" +
	"  (1) Fill in all residual values\n" +
	"  (2) Fill in jacobian values for each non-constant parameter block for each residual\n" +
	"  (3) Fill data in with finite (non-Inf, non-NaN) values\n" +
	"\n" +
	"If you are seeing this report, your cost function is either producing non-finite\n" +
	"values (Infs or NaNs) or is not filling in all the values. Output buffers are\n" +
	"pre-filled with a sentinel value (numarray.ImpossibleValue) to detect entries\n" +
	"that were never written in either the residuals or the jacobians.\n" +
	"\n" +
	"Which residual block is this? The checker cannot identify the block's position\n" +
	"within the whole problem, but here is the block's size information:\n" +
	"\n"

// Per-entry commentary strings. Exactly one applies to each invalid entry:
// the sentinel is itself finite, so the two classes never overlap.
const (
	commentaryNotFinite = "ERROR: Value is not finite"
	commentaryNotSet    = "ERROR: Value was not set by cost function"
	commentaryOK        = "OK"
)

// entryCommentary classifies a single user-supplied value.
func entryCommentary(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return commentaryNotFinite
	}
	if x == numarray.ImpossibleValue {
		return commentaryNotSet
	}

	return commentaryOK
}

// EvaluationErrorReport explains an invalid evaluation entry by entry: the
// header above, the block's shape, then a classified listing of every
// invalid residual entry and every invalid jacobian entry (block, residual
// row and parameter column named for each).
//
// Elision: when the block has DefaultMaxListedResiduals residuals or more
// (override via WithMaxListedResiduals), valid entries are summarized rather
// than listed; invalid entries are always listed in full. The same cutoff
// applies per jacobian block, against the block's entry count.
//
// Precondition: only meaningful after IsEvaluationValid has returned false
// for these buffers. Calling it on a valid evaluation is a precondition
// violation; the output is then unspecified.
//
// cost is accepted for signature symmetry and carries no section of its own;
// parameters are likewise not part of this report (see EvaluationString for
// the side-by-side view).
func EvaluationErrorReport(b Block, parameters [][]float64, cost *float64, residuals []float64, jacobians [][]float64, opts ...Option) string {
	o := gatherOptions(opts...)
	params := b.ParameterBlocks()
	rows := b.NumResiduals()

	var sb strings.Builder
	sb.WriteString(reportHeader)

	// Block shape: the reader's only handle for locating the block.
	sizes := make([]string, len(params))
	for i, pb := range params {
		sizes[i] = fmt.Sprintf("%d", pb.Size())
	}
	fmt.Fprintf(&sb, "  %d parameter blocks; sizes: (%s)\n", len(params), strings.Join(sizes, ", "))
	fmt.Fprintf(&sb, "  %d residuals\n\n", rows)

	// Residual section, only when something in it is wrong.
	if !numarray.ArrayValid(residuals) {
		sb.WriteString("Problem exists in: user-returned residual values (r[N])\n\n")
		listed := 0
		for i, r := range residuals {
			if numarray.EntryValid(r) && rows >= o.maxListedResiduals {
				continue // elide valid entries of large blocks
			}
			fmt.Fprintf(&sb, "  r[%02d] = %-15.4e     %s\n", i, r, entryCommentary(r))
			listed++
		}
		if listed < rows {
			fmt.Fprintf(&sb, "  (%d valid residual values elided)\n", rows-listed)
		}
		sb.WriteString("\n")
	}

	// Jacobian section. Iterate by parameter-block index; nil entries are
	// constant / not-requested blocks and never at fault.
	if jacobians == nil {
		return sb.String()
	}
	wroteJacobianHeader := false
	for i, pb := range params {
		jac := jacobians[i]
		if jac == nil || numarray.ArrayValid(jac) {
			continue
		}
		if !wroteJacobianHeader {
			sb.WriteString("Problem exists in: user-returned jacobian values (d r[N] / d p[M][Q])\n\n")
			wroteJacobianHeader = true
		}

		size := pb.Size()
		fmt.Fprintf(&sb, "  Jacobian values for parameter block %d (p[%d][...], size %d):\n", i, i, size)
		listed, entries := 0, rows*size
		for r := 0; r < rows; r++ {
			for c := 0; c < size; c++ {
				v := jac[r*size+c]
				if numarray.EntryValid(v) && entries >= o.maxListedResiduals {
					continue
				}
				fmt.Fprintf(&sb, "    d r[%02d] / d p[%d][%d] = %-15.4e     %s\n",
					r, i, c, v, entryCommentary(v))
				listed++
			}
		}
		if listed < entries {
			fmt.Fprintf(&sb, "    (%d valid jacobian values elided)\n", entries-listed)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
