// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lp

import "math"

// bigM is the Big-M penalty applied to artificial variables; it must be
// large relative to any problem coefficients so the simplex never
// prefers keeping an artificial variable in the basis over an honest
// feasible solution.
const bigM = 1.0e7

// SimplexL1 solves A.(u-v) = B, u,v >= 0, minimize sum(u+v) with a dense
// Big-M primal simplex, recovering X = u - v. This realizes, in-process,
// an opaque L1 minimizer behind the Solver interface.
type SimplexL1 struct{}

// SolveL1 implements Solver.
func (s *SimplexL1) SolveL1(A [][]float64, B []float64) (X []float64, feasible bool) {
	rows := len(A)
	if rows == 0 {
		return nil, true
	}
	cols := len(A[0])

	// decision variables: u_0..u_{cols-1}, v_0..v_{cols-1}, a_0..a_{rows-1}
	nDecision := 2 * cols
	nTotal := nDecision + rows

	// tableau: rows+1 (last is objective) x nTotal+1 (last is RHS)
	tab := make([][]float64, rows+1)
	for i := range tab {
		tab[i] = make([]float64, nTotal+1)
	}

	basis := make([]int, rows) // column index of the basic variable in each row
	for i := 0; i < rows; i++ {
		sign := 1.0
		if B[i] < 0 {
			sign = -1.0
		}
		for j := 0; j < cols; j++ {
			tab[i][j] = sign * A[i][j]         // u_j
			tab[i][cols+j] = -sign * A[i][j]   // v_j
		}
		tab[i][nDecision+i] = 1.0 // a_i
		tab[i][nTotal] = sign * B[i]
		basis[i] = nDecision + i
	}

	// objective row: minimize sum(u)+sum(v)+M*sum(a), expressed as
	// reduced costs after eliminating the (already-basic) artificials.
	for j := 0; j < nDecision; j++ {
		tab[rows][j] = 1.0
	}
	for i := 0; i < rows; i++ {
		tab[rows][nDecision+i] = bigM
	}
	// eliminate artificial columns from the objective row (they start basic)
	for i := 0; i < rows; i++ {
		factor := tab[rows][nDecision+i]
		if factor == 0 {
			continue
		}
		for j := 0; j <= nTotal; j++ {
			tab[rows][j] -= factor * tab[i][j]
		}
	}

	const maxIter = 2000
	for iter := 0; iter < maxIter; iter++ {
		// Bland's rule: pick the smallest-indexed column with a negative
		// reduced cost, guaranteeing termination without cycling.
		enter := -1
		for j := 0; j < nTotal; j++ {
			if tab[rows][j] < -1e-9 {
				enter = j
				break
			}
		}
		if enter == -1 {
			break // optimal
		}

		leave := -1
		best := math.Inf(1)
		for i := 0; i < rows; i++ {
			if tab[i][enter] > 1e-9 {
				ratio := tab[i][nTotal] / tab[i][enter]
				if ratio < best-1e-12 || (ratio < best+1e-12 && (leave == -1 || basis[i] < basis[leave])) {
					best = ratio
					leave = i
				}
			}
		}
		if leave == -1 {
			// unbounded: should not happen since u,v>=0 and cost>=0, but
			// guard defensively and report infeasible rather than loop.
			return make([]float64, cols), false
		}

		pivot := tab[leave][enter]
		for j := 0; j <= nTotal; j++ {
			tab[leave][j] /= pivot
		}
		for i := 0; i <= rows; i++ {
			if i == leave {
				continue
			}
			factor := tab[i][enter]
			if factor == 0 {
				continue
			}
			for j := 0; j <= nTotal; j++ {
				tab[i][j] -= factor * tab[leave][j]
			}
		}
		basis[leave] = enter
	}

	// infeasible if any artificial variable remains basic with a
	// nontrivial value.
	for i := 0; i < rows; i++ {
		if basis[i] >= nDecision && tab[i][nTotal] > 1e-7 {
			return make([]float64, cols), false
		}
	}

	X = make([]float64, cols)
	for i := 0; i < rows; i++ {
		if basis[i] < cols {
			X[basis[i]] += tab[i][nTotal]
		} else if basis[i] < nDecision {
			X[basis[i]-cols] -= tab[i][nTotal]
		}
	}
	return X, true
}
