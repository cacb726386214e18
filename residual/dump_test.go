// Package residual_test contains unit tests for the neutral dump formatter.
package residual_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlsq/numarray"
	"github.com/katalvlaran/lvlsq/residual"
	"github.com/stretchr/testify/assert"
)

// TestEvaluationStringLayout checks the table skeleton: shape line, legend,
// residual row, and one section per parameter block.
func TestEvaluationStringLayout(t *testing.T) {
	t.Parallel()

	block := residual.NewShape(2, 2, 1)
	parameters := [][]float64{{1.0, 2.0}, {3.0}}
	residuals := []float64{0.5, -0.3}
	jacobians := [][]float64{{1, 2, 3, 4}, {5, 6}}

	out := residual.EvaluationString(block, parameters, nil, residuals, jacobians)

	assert.Contains(t, out, "Residual block size: 2 parameter blocks x 2 residuals")
	assert.Contains(t, out, "Residuals:")
	assert.Contains(t, out, "Parameter Block 0, size: 2")
	assert.Contains(t, out, "Parameter Block 1, size: 1")
	assert.Contains(t, out, "0.5", "residual values must appear")
	assert.Contains(t, out, "| ", "parameter and jacobian columns must be separated")
}

// TestEvaluationStringMarkers verifies the three distinct value renderings.
func TestEvaluationStringMarkers(t *testing.T) {
	t.Parallel()

	block := residual.NewShape(1, 1, 1)
	parameters := [][]float64{{2.0}, {4.0}}
	residuals := []float64{math.Inf(1)}
	// Block 0 requested but never written; block 1 not requested at all.
	jacobians := [][]float64{{numarray.ImpossibleValue}, nil}

	out := residual.EvaluationString(block, parameters, nil, residuals, jacobians)

	// The legend mentions both markers once; count the fixed-width cells.
	assert.Equal(t, 1, strings.Count(out, "Uninitialized "),
		"sentinel entries render as 'Uninitialized' cells")
	assert.Equal(t, 1, strings.Count(out, "Not Computed  "),
		"absent buffers render as 'Not Computed' cells")
	assert.Contains(t, out, "+Inf", "non-finite entries keep their distinct token")
}

// TestEvaluationStringProducibleWhenInvalid confirms the dump is advisory:
// it renders fully poisoned (invalid) buffers without complaint.
func TestEvaluationStringProducibleWhenInvalid(t *testing.T) {
	t.Parallel()

	block := residual.NewShape(2, 2)
	cost, residuals, jacobians := newBuffers(block)
	residual.InvalidateEvaluation(block, cost, residuals, jacobians)

	out := residual.EvaluationString(block, [][]float64{{1, 2}}, cost, residuals, jacobians)
	assert.Equal(t, 2+4, strings.Count(out, "Uninitialized "),
		"every poisoned residual and jacobian cell must render as 'Uninitialized'")
}

// TestEvaluationStringIdempotent: calling the formatter twice on unmodified
// buffers yields byte-identical text.
func TestEvaluationStringIdempotent(t *testing.T) {
	t.Parallel()

	block := residual.NewShape(2, 2)
	parameters := [][]float64{{1.0, 2.0}}
	residuals := []float64{0.5, numarray.ImpossibleValue}
	jacobians := [][]float64{{1, math.NaN(), 3, 4}}

	first := residual.EvaluationString(block, parameters, nil, residuals, jacobians)
	second := residual.EvaluationString(block, parameters, nil, residuals, jacobians)
	assert.Equal(t, first, second)
}
