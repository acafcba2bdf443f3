// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/sketch/lp"
)

// Solve runs the damped Gauss-Newton (or, if Config.UseLinearProgram is
// set, L1-via-linear-program) iteration, up to Config.MaxSteps steps.
// Drag residuals participate for the first
// Config.DragSteps iterations and are suppressed afterwards, letting the
// loop both chase a drag target and settle on the constraint manifold.
// CountedSteps records the number of iterations actually performed,
// whether Solve converged or exhausted its step budget.
func (s *System) Solve() Status {
	s.updateDirty()

	snapshot := make([]float64, len(s.sourceParams))
	for i, p := range s.sourceParams {
		snapshot[i] = p.Value()
	}

	status, steps := s.iterate()
	s.CountedSteps = steps

	if status == StatusDidntConverge && s.Config.RevertWhenNotConverged {
		for i, p := range s.sourceParams {
			p.SetValue(snapshot[i])
		}
		return status
	}
	if status == StatusOkay {
		s.backSubstitute()
	}
	return status
}

func (s *System) iterate() (Status, int) {
	rows := len(s.currentEquations)
	if rows == 0 {
		return StatusOkay, 0 // empty equation list converges trivially
	}

	var solver lp.Solver
	if s.Config.UseLinearProgram {
		solver = lp.New("simplex")
	}

	step := 0
	for ; step < s.Config.MaxSteps; step++ {
		dragActive := step < s.Config.DragSteps

		maxResidual := 0.0
		for i, eq := range s.currentEquations {
			v := eq.Eval()
			suppressed := eq.IsDrag() && !dragActive
			if suppressed {
				v = 0
			}
			s.B[i] = v
			if !suppressed {
				if a := math.Abs(v); a > maxResidual {
					maxResidual = a
				}
			}
		}
		if maxResidual < convergenceEps {
			return StatusOkay, step
		}

		for i, eq := range s.currentEquations {
			suppressed := eq.IsDrag() && !dragActive
			for j, dexpr := range s.jacobian[i] {
				if suppressed {
					s.A[i][j] = 0
					continue
				}
				s.A[i][j] = dexpr.Eval()
			}
		}

		if s.Config.UseLinearProgram {
			X, feasible := solver.SolveL1(s.A, s.B)
			if !feasible {
				io.Pf("eqsys: solve: linear program infeasible, step skipped\n")
				continue // no-op step: parameters are left unchanged
			}
			copy(s.X, X)
		} else {
			s.solveLeastSquares()
		}

		for j, p := range s.currentParams {
			p.SetValue(p.Value() - s.X[j])
		}
	}
	return StatusDidntConverge, step
}

// solveLeastSquares computes the minimum-norm step X solving A.X = B via
// the normal equations A.A^T.Z = B (Gaussian elimination with partial
// pivoting), then recovers X = A^T.Z. This is the default damped
// Gauss-Newton step strategy.
func (s *System) solveLeastSquares() {
	rows := len(s.B)
	cols := len(s.X)
	for i := 0; i < rows; i++ {
		for k := 0; k < rows; k++ {
			sum := 0.0
			for j := 0; j < cols; j++ {
				sum += s.A[i][j] * s.A[k][j]
			}
			s.AAT[i][k] = sum
		}
	}
	gaussianSolve(s.AAT, s.B, s.Z)
	la.MatTrVecMulAdd(zeroOut(s.X), 1, s.A, s.Z)
}

func zeroOut(x []float64) []float64 {
	for i := range x {
		x[i] = 0
	}
	return x
}

// gaussianSolve solves M.z = b for z by Gaussian elimination with
// partial pivoting (pivot threshold rankEps). M and b are not mutated;
// z must be pre-allocated to len(b).
func gaussianSolve(m [][]float64, b []float64, z []float64) {
	n := len(b)
	if n == 0 {
		return
	}
	aug := la.MatAlloc(n, n+1)
	for i := 0; i < n; i++ {
		copy(aug[i], m[i])
		aug[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivotRow := col
		best := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r][col]); v > best {
				best, pivotRow = v, r
			}
		}
		if best < rankEps {
			continue // singular column: leave corresponding z entry at 0
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivot := aug[col][col]
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col] / pivot
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	for i := 0; i < n; i++ {
		if math.Abs(aug[i][i]) < rankEps {
			z[i] = 0
			continue
		}
		z[i] = aug[i][n] / aug[i][i]
	}
}

// TestRank evaluates the current symbolic Jacobian at the current
// parameter values and computes its numerical rank by Gaussian
// elimination (threshold rankEps=1e-10). dof = cols - rank; full is true
// iff rank == rows. Invariant under permutation of equations/parameters
// since rank is a property of the matrix, not of row/column order.
func (s *System) TestRank() (dof int, full bool) {
	s.updateDirty()
	rows := len(s.currentEquations)
	cols := len(s.currentParams)
	if rows == 0 {
		return cols, true
	}
	m := la.MatAlloc(rows, cols)
	for i, row := range s.jacobian {
		for j, d := range row {
			m[i][j] = d.Eval()
		}
	}
	rank := numericalRank(m, rows, cols)
	return cols - rank, rank == rows
}

func numericalRank(m [][]float64, rows, cols int) int {
	work := la.MatAlloc(rows, cols)
	for i := range m {
		copy(work[i], m[i])
	}
	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivotRow := -1
		best := rankEps
		for r := rank; r < rows; r++ {
			if v := math.Abs(work[r][col]); v > best {
				best, pivotRow = v, r
			}
		}
		if pivotRow == -1 {
			continue
		}
		work[rank], work[pivotRow] = work[pivotRow], work[rank]
		pivot := work[rank][col]
		for r := rank + 1; r < rows; r++ {
			factor := work[r][col] / pivot
			if factor == 0 {
				continue
			}
			for c := col; c < cols; c++ {
				work[r][c] -= factor * work[rank][c]
			}
		}
		rank++
	}
	return rank
}
