// SPDX-License-Identifier: MIT

// Package residual: structural metadata and the untrusted-callback type.
package residual

// ParameterBlock exposes the two facts the contract checks need about one
// group of scalar decision variables: how many components it has and whether
// the solver holds it constant. Implementations belong to the surrounding
// solver; this package only reads them.
type ParameterBlock interface {
	// Size returns the number of scalar components in the block (>= 1).
	Size() int

	// IsConstant reports whether the block is held constant. Constant blocks
	// contribute no jacobian: their jacobian buffer entry is nil.
	IsConstant() bool
}

// Block is the structural view of one residual block: an ordered sequence of
// parameter blocks plus the shared residual count.
//
// Every jacobian buffer for parameter block i, if requested, holds exactly
// NumResiduals() * ParameterBlocks()[i].Size() entries, row-major: the
// partial derivative of residual r with respect to component c sits at
// offset r*size+c.
type Block interface {
	// NumResiduals returns the residual count (>= 0), shared by the residual
	// buffer and every requested jacobian block.
	NumResiduals() int

	// ParameterBlocks returns the ordered parameter blocks. The returned
	// slice must not be mutated by callers.
	ParameterBlocks() []ParameterBlock
}

// CostFunction is the opaque user-supplied callback evaluated once per
// residual block per solver iteration. Given the current parameter values it
// writes residuals and, for each non-nil jacobians entry, the corresponding
// jacobian block. Its output is untrusted: callers must wrap invocations
// with InvalidateEvaluation before and IsEvaluationValid after.
//
// A non-nil error means the evaluation itself failed (as opposed to
// producing bad values); the buffers are then unspecified.
type CostFunction interface {
	Evaluate(parameters [][]float64, residuals []float64, jacobians [][]float64) error
}

// CostFunc adapts an ordinary function to the CostFunction interface.
type CostFunc func(parameters [][]float64, residuals []float64, jacobians [][]float64) error

// Evaluate calls f.
func (f CostFunc) Evaluate(parameters [][]float64, residuals []float64, jacobians [][]float64) error {
	return f(parameters, residuals, jacobians)
}

// Param is a ready-made ParameterBlock for solvers and tests that carry no
// richer parameter state of their own.
type Param struct {
	// N is the number of scalar components.
	N int

	// Const marks the block as held constant.
	Const bool
}

// Size returns the component count.
func (p Param) Size() int { return p.N }

// IsConstant reports the constant flag.
func (p Param) IsConstant() bool { return p.Const }

// Shape is a ready-made Block: a residual count plus parameter blocks.
// The zero value is an empty block (0 residuals, no parameters).
type Shape struct {
	residuals int
	params    []ParameterBlock
}

// NewShape builds a Shape with the given residual count and one variable
// (non-constant) parameter block per size entry.
func NewShape(numResiduals int, sizes ...int) Shape {
	params := make([]ParameterBlock, len(sizes))
	for i, n := range sizes {
		params[i] = Param{N: n}
	}

	return Shape{residuals: numResiduals, params: params}
}

// NewShapeOf builds a Shape from explicit parameter blocks, preserving
// constant flags.
func NewShapeOf(numResiduals int, params ...ParameterBlock) Shape {
	return Shape{residuals: numResiduals, params: params}
}

// NumResiduals returns the residual count.
func (s Shape) NumResiduals() int { return s.residuals }

// ParameterBlocks returns the ordered parameter blocks.
func (s Shape) ParameterBlocks() []ParameterBlock { return s.params }
