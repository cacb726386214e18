// Package residual_test contains unit tests for the boundary validators.
package residual_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlsq/residual"
	"github.com/stretchr/testify/require"
)

// TestValidateBlock covers nil blocks, negative residual counts and
// degenerate parameter-block sizes.
func TestValidateBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		block   residual.Block
		wantErr error
	}{
		{"nil block", nil, residual.ErrNilBlock},
		{"negative residual count", residual.NewShape(-1, 2), residual.ErrBadShape},
		{"zero-size parameter block", residual.NewShape(2, 2, 0), residual.ErrBadShape},
		{"nil parameter block", residual.NewShapeOf(2, nil), residual.ErrBadShape},
		{"empty block", residual.NewShape(0), nil},
		{"ordinary block", residual.NewShape(3, 2, 4), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := residual.ValidateBlock(tc.block)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateEvaluation checks every buffer-geometry rule once, the way the
// evaluator boundary is meant to run it.
func TestValidateEvaluation(t *testing.T) {
	t.Parallel()

	block := residual.NewShape(2, 2, 3) // 2 residuals; blocks of size 2 and 3

	tests := []struct {
		name      string
		residuals []float64
		jacobians [][]float64
		wantErr   error
	}{
		{"exact fit", make([]float64, 2), [][]float64{make([]float64, 4), make([]float64, 6)}, nil},
		{"no jacobians requested", make([]float64, 2), nil, nil},
		{"constant block slot", make([]float64, 2), [][]float64{nil, make([]float64, 6)}, nil},
		{"short residuals", make([]float64, 1), nil, residual.ErrDimensionMismatch},
		{"long residuals", make([]float64, 3), nil, residual.ErrDimensionMismatch},
		{"jacobian count mismatch", make([]float64, 2), [][]float64{make([]float64, 4)}, residual.ErrDimensionMismatch},
		{"jacobian block too short", make([]float64, 2), [][]float64{make([]float64, 4), make([]float64, 5)}, residual.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := residual.ValidateEvaluation(block, tc.residuals, tc.jacobians)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateEvaluationNilBlock confirms the block check runs first.
func TestValidateEvaluationNilBlock(t *testing.T) {
	t.Parallel()

	err := residual.ValidateEvaluation(nil, nil, nil)
	require.ErrorIs(t, err, residual.ErrNilBlock)
}
