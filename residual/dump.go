// SPDX-License-Identifier: MIT

// Package residual: the neutral evaluation dump.

package residual

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsq/numarray"
)

// dumpLegend explains the table once, ahead of the data.
const dumpLegend = "For each parameter block, the value of the parameters is printed in the first column\n" +
	"and the value of the jacobian under the corresponding residual. If a parameter block\n" +
	"was held constant then the corresponding jacobian is printed as 'Not Computed'. If an\n" +
	"entry of the jacobian/residual array was requested but was not written to by user\n" +
	"code, it is indicated by 'Uninitialized'. This is an error. Residual or jacobian\n" +
	"values evaluating to Inf or NaN is also an error.\n\n"

// EvaluationString renders parameters, residuals and jacobians side by side
// as a human-readable table: the residual row first, then one line per
// scalar parameter component showing its current value followed by its
// jacobian column against every residual.
//
// The output is advisory and gates nothing: it is producible for valid and
// invalid evaluations alike, so tooling can render partial or failed
// evaluations for inspection. Three value renderings are distinguished:
// fixed-width decimal (finite), 'Uninitialized' (still the sentinel) and
// 'Not Computed' (whole buffer absent); NaN/±Inf keep their distinct tokens.
//
// cost is accepted for signature symmetry with the other operations and is
// not part of the table. The function is pure: identical buffers yield
// identical text.
func EvaluationString(b Block, parameters [][]float64, cost *float64, residuals []float64, jacobians [][]float64) string {
	params := b.ParameterBlocks()
	rows := b.NumResiduals()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Residual block size: %d parameter blocks x %d residuals\n\n",
		len(params), rows)
	sb.WriteString(dumpLegend)

	sb.WriteString("Residuals:     ")
	numarray.AppendToString(&sb, rows, residuals)
	sb.WriteString("\n\n")

	for i, pb := range params {
		size := pb.Size()
		fmt.Fprintf(&sb, "Parameter Block %d, size: %d\n\n", i, size)

		var vals, jac []float64
		if parameters != nil {
			vals = parameters[i]
		}
		if jacobians != nil {
			jac = jacobians[i]
		}

		for j := 0; j < size; j++ {
			if vals == nil {
				numarray.AppendToString(&sb, 1, nil)
			} else {
				numarray.AppendToString(&sb, 1, vals[j:j+1])
			}
			sb.WriteString("| ")
			for k := 0; k < rows; k++ {
				if jac == nil {
					numarray.AppendToString(&sb, 1, nil)
				} else {
					// row-major: entry (k, j) of block i sits at k*size+j.
					numarray.AppendToString(&sb, 1, jac[k*size+j:k*size+j+1])
				}
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
