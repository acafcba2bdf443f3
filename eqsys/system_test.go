// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sketch/expr"
)

func distanceResidual(p0x, p0y, p1x, p1y, d *expr.Parameter) *expr.Expression {
	dx := expr.Sub(expr.Ref(p1x), expr.Ref(p0x))
	dy := expr.Sub(expr.Ref(p1y), expr.Ref(p0y))
	return expr.Sub(expr.Sqrt(expr.Add(expr.Sqr(dx), expr.Sqr(dy))), expr.Ref(d))
}

func Test_single_distance_preserves_direction(tst *testing.T) {
	chk.PrintTitle("single_distance_preserves_direction")

	p0x := expr.NewParameter("p0.x", 0)
	p0y := expr.NewParameter("p0.y", 0)
	p1x := expr.NewParameter("p1.x", 3)
	p1y := expr.NewParameter("p1.y", 4)
	d := expr.NewParameter("d", 10)

	s := New()
	s.Config.DragSteps = 20 // keep the drag-to-origin residual active throughout
	s.AddParameter(p0x)
	s.AddParameter(p0y)
	s.AddParameter(p1x)
	s.AddParameter(p1y)
	// d is a fixed setpoint, not a solver unknown

	s.AddEquation(distanceResidual(p0x, p0y, p1x, p1y, d))
	s.AddEquation(expr.Sub(expr.Drag(p0x), expr.Const(0)))
	s.AddEquation(expr.Sub(expr.Drag(p0y), expr.Const(0)))

	status := s.Solve()
	if status != StatusOkay {
		tst.Fatalf("expected convergence, got %v", status)
	}

	chk.Scalar(tst, "p1.x", 1e-6, p1x.Value(), 6)
	chk.Scalar(tst, "p1.y", 1e-6, p1y.Value(), 8)
}

func Test_horizontal_line_equalizes_y(tst *testing.T) {
	chk.PrintTitle("horizontal_line_equalizes_y")

	ax := expr.NewParameter("a.x", 0)
	ay := expr.NewParameter("a.y", 0)
	bx := expr.NewParameter("b.x", 1)
	by := expr.NewParameter("b.y", 1)

	s := New()
	s.AddParameter(ax)
	s.AddParameter(ay)
	s.AddParameter(bx)
	s.AddParameter(by)
	s.AddEquation(expr.Sub(expr.Ref(ay), expr.Ref(by)))

	status := s.Solve()
	if status != StatusOkay {
		tst.Fatalf("expected convergence, got %v", status)
	}
	chk.Scalar(tst, "a.y vs b.y", 1e-6, ay.Value(), by.Value())
}

func Test_over_constrained_reverts(tst *testing.T) {
	chk.PrintTitle("over_constrained_reverts")

	p0x := expr.NewParameter("p0.x", 0)
	p0y := expr.NewParameter("p0.y", 0)
	p1x := expr.NewParameter("p1.x", 3)
	p1y := expr.NewParameter("p1.y", 4)
	d1 := expr.NewParameter("d1", 5)
	d2 := expr.NewParameter("d2", 10)

	s := New()
	s.AddParameter(p0x)
	s.AddParameter(p0y)
	s.AddParameter(p1x)
	s.AddParameter(p1y)
	// d1 and d2 are fixed setpoints, not solver unknowns
	s.AddEquation(distanceResidual(p0x, p0y, p1x, p1y, d1))
	s.AddEquation(distanceResidual(p0x, p0y, p1x, p1y, d2))

	before := []float64{p0x.Value(), p0y.Value(), p1x.Value(), p1y.Value()}

	status := s.Solve()
	if status != StatusDidntConverge {
		tst.Fatalf("expected DIDNT_CONVERGE for two contradictory distances on the same pair, got %v", status)
	}

	after := []float64{p0x.Value(), p0y.Value(), p1x.Value(), p1y.Value()}
	for i := range before {
		chk.Scalar(tst, "reverted parameter", 1e-15, after[i], before[i])
	}
}

func Test_substitution_collapses_coincident_points(tst *testing.T) {
	chk.PrintTitle("substitution_collapses_coincident_points")

	p0x := expr.NewParameter("p0.x", 3)
	p1x := expr.NewParameter("p1.x", 3)
	p0y := expr.NewParameter("p0.y", -1)
	p1y := expr.NewParameter("p1.y", -1)

	s := New()
	s.AddParameter(p0x)
	s.AddParameter(p1x)
	s.AddParameter(p0y)
	s.AddParameter(p1y)
	s.AddEquation(expr.Sub(expr.Ref(p0x), expr.Ref(p1x)))
	s.AddEquation(expr.Sub(expr.Ref(p0y), expr.Ref(p1y)))

	s.updateDirty()
	if len(s.currentParams) != 2 {
		tst.Fatalf("expected substitution to collapse 4 parameters down to 2, got %d", len(s.currentParams))
	}
	if len(s.currentEquations) != 0 {
		tst.Fatalf("expected both substitution-form equations to be dropped, got %d remaining", len(s.currentEquations))
	}

	// running the pass again (idempotence) must not change the outcome.
	beforeParams := len(s.currentParams)
	s.dirty = true
	s.updateDirty()
	if len(s.currentParams) != beforeParams {
		tst.Fatalf("substitution pass is not idempotent: %d vs %d", len(s.currentParams), beforeParams)
	}

	p0x.SetValue(7)
	s.backSubstitute()
	chk.Scalar(tst, "p1.x follows representative after back-substitution", 1e-15, p1x.Value(), 7)
}

func Test_rank_invariant_under_permutation(tst *testing.T) {
	chk.PrintTitle("rank_invariant_under_permutation")

	x := expr.NewParameter("x", 1)
	y := expr.NewParameter("y", 2)

	s1 := New()
	s1.AddParameter(x)
	s1.AddParameter(y)
	s1.AddEquation(expr.Sub(expr.Ref(x), expr.Const(0)))
	s1.AddEquation(expr.Sub(expr.Ref(y), expr.Const(0)))
	dof1, full1 := s1.TestRank()

	x2 := expr.NewParameter("y", 2)
	y2 := expr.NewParameter("x", 1)
	s2 := New()
	s2.AddParameter(x2)
	s2.AddParameter(y2)
	s2.AddEquation(expr.Sub(expr.Ref(y2), expr.Const(0)))
	s2.AddEquation(expr.Sub(expr.Ref(x2), expr.Const(0)))
	dof2, full2 := s2.TestRank()

	if dof1 != dof2 || full1 != full2 {
		tst.Fatalf("rank test is not permutation-invariant: (%d,%v) vs (%d,%v)", dof1, full1, dof2, full2)
	}
}

func Test_empty_system_converges_trivially(tst *testing.T) {
	chk.PrintTitle("empty_system_converges_trivially")
	s := New()
	status := s.Solve()
	if status != StatusOkay {
		tst.Fatalf("expected an empty equation list to converge trivially, got %v", status)
	}
}
