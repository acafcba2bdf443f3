// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sketch/entity"
)

func Test_coincident_residuals_vanish_when_equal(tst *testing.T) {
	chk.PrintTitle("coincident_residuals_vanish_when_equal")
	p0 := entity.NewPoint("P0", 1, 2, 0)
	p1 := entity.NewPoint("P1", 1, 2, 0)
	c := NewCoincident(p0, p1)
	for _, eq := range c.Equations() {
		chk.Scalar(tst, "residual", 1e-15, eq.Eval(), 0)
	}
}

func Test_midpoint_value_fixed_at_two(tst *testing.T) {
	chk.PrintTitle("midpoint_value_fixed_at_two")
	p0 := entity.NewPoint("P0", 0, 0, 0)
	p1 := entity.NewPoint("P1", 4, 2, 0)
	p2 := entity.NewPoint("P2", 2, 1, 0)
	c := NewMidPoint(p0, p1, p2)
	chk.Scalar(tst, "v", 1e-15, c.Value().Value(), 2)
	for _, eq := range c.Equations() {
		chk.Scalar(tst, "residual", 1e-12, eq.Eval(), 0)
	}
}

func Test_centroid_value_fixed_at_three(tst *testing.T) {
	chk.PrintTitle("centroid_value_fixed_at_three")
	p0 := entity.NewPoint("P0", 0, 0, 0)
	p1 := entity.NewPoint("P1", 3, 0, 0)
	p2 := entity.NewPoint("P2", 0, 3, 0)
	p3 := entity.NewPoint("P3", 1, 1, 0)
	c := NewCentroid(p0, p1, p2, p3)
	chk.Scalar(tst, "v", 1e-15, c.Value().Value(), 3)
	for _, eq := range c.Equations() {
		chk.Scalar(tst, "residual", 1e-12, eq.Eval(), 0)
	}
}

func Test_length_keeps_requested_setpoint(tst *testing.T) {
	chk.PrintTitle("length_keeps_requested_setpoint")
	a := entity.NewPoint("A", 0, 0, 0)
	b := entity.NewPoint("B", 3, 4, 0)
	l := entity.NewLine(a, b)
	c := NewLength(l, 8) // current length is 5; 8 is the requested setpoint
	chk.Scalar(tst, "length", 1e-15, c.Value().Value(), 8)
}

func Test_equal_k_defaults_to_one_when_lines_match(tst *testing.T) {
	chk.PrintTitle("equal_k_defaults_to_one_when_lines_match")
	a0 := entity.NewPoint("A0", 0, 0, 0)
	a1 := entity.NewPoint("A1", 5, 0, 0)
	b0 := entity.NewPoint("B0", 0, 0, 0)
	b1 := entity.NewPoint("B1", 5, 0, 0)
	l0 := entity.NewLine(a0, a1)
	l1 := entity.NewLine(b0, b1)
	c := NewEqual(l0, l1)
	chk.Scalar(tst, "k", 1e-15, c.Value().Value(), 1)
}

func Test_equal_ratio_keeps_requested_factor(tst *testing.T) {
	chk.PrintTitle("equal_ratio_keeps_requested_factor")
	a0 := entity.NewPoint("A0", 0, 0, 0)
	a1 := entity.NewPoint("A1", 5, 0, 0)
	b0 := entity.NewPoint("B0", 0, 0, 0)
	b1 := entity.NewPoint("B1", 5, 0, 0)
	l0 := entity.NewLine(a0, a1)
	l1 := entity.NewLine(b0, b1)
	c := NewEqualRatio(l0, l1, 2) // current lengths match (ratio 1); 2 is requested
	chk.Scalar(tst, "k", 1e-15, c.Value().Value(), 2)
}

func Test_points_distance_keeps_requested_setpoint(tst *testing.T) {
	chk.PrintTitle("points_distance_keeps_requested_setpoint")
	p0 := entity.NewPoint("P0", 0, 0, 0)
	p1 := entity.NewPoint("P1", 3, 4, 0)
	c := NewPointsDistance(p0, p1, 10) // current distance is 5; 10 is requested
	chk.Scalar(tst, "d", 1e-15, c.Value().Value(), 10)
}

func Test_hv_horizontal_residual_is_y_difference(tst *testing.T) {
	chk.PrintTitle("hv_horizontal_residual_is_y_difference")
	p0 := entity.NewPoint("P0", 0, 2, 0)
	p1 := entity.NewPoint("P1", 5, 7, 0)
	c := NewHV(p0, p1, AxisOY)
	chk.Scalar(tst, "residual", 1e-15, c.Equations()[0].Eval(), -5)
}

func Test_parallel_picks_co_for_aligned_lines(tst *testing.T) {
	chk.PrintTitle("parallel_picks_co_for_aligned_lines")
	a0 := entity.NewPoint("A0", 0, 0, 0)
	a1 := entity.NewPoint("A1", 1, 0, 0)
	b0 := entity.NewPoint("B0", 0, 1, 0)
	b1 := entity.NewPoint("B1", 1, 1, 0)
	l0 := entity.NewLine(a0, a1)
	l1 := entity.NewLine(b0, b1)
	c := NewParallel(l0, l1)
	if c.Option() != ParallelCo {
		tst.Fatalf("expected co-directional option for two horizontal lines, got %v", c.Option())
	}
	chk.Scalar(tst, "residual", 1e-12, c.Equations()[0].Eval(), 0)
}

func Test_orthogonal_residual_is_dot_product(tst *testing.T) {
	chk.PrintTitle("orthogonal_residual_is_dot_product")
	a0 := entity.NewPoint("A0", 0, 0, 0)
	a1 := entity.NewPoint("A1", 1, 0, 0)
	b0 := entity.NewPoint("B0", 0, 0, 0)
	b1 := entity.NewPoint("B1", 0, 1, 0)
	l0 := entity.NewLine(a0, a1)
	l1 := entity.NewLine(b0, b1)
	c := NewOrthogonal(l0, l1)
	chk.Scalar(tst, "residual", 1e-15, c.Equations()[0].Eval(), 0)
}

func Test_diameter_keeps_requested_setpoint(tst *testing.T) {
	chk.PrintTitle("diameter_keeps_requested_setpoint")
	center := entity.NewPoint("C", 0, 0, 0)
	circle := entity.NewCircle("c1", center, 3) // current diameter is 6
	c := NewDiameter(circle, 10)
	chk.Scalar(tst, "D", 1e-15, c.Value().Value(), 10)
}

func Test_angle_flips_when_exceeding_half_pi(tst *testing.T) {
	chk.PrintTitle("angle_flips_when_exceeding_half_pi")
	a0 := entity.NewPoint("A0", 0, 0, 0)
	a1 := entity.NewPoint("A1", 1, 0, 0)
	b0 := entity.NewPoint("B0", 0, 0, 0)
	b1 := entity.NewPoint("B1", -1, 1, 0)
	l0 := entity.NewLine(a0, a1)
	l1 := entity.NewLine(b0, b1)
	c := NewAngle(l0, l1, 3*math.Pi/4)
	if !c.Supplementary() {
		tst.Fatalf("expected supplementary flag to be set for theta > pi/2")
	}
	if math.Abs(c.Value().Value()) > math.Pi/2+1e-9 {
		tst.Fatalf("flipped theta should have magnitude <= pi/2, got %v", c.Value().Value())
	}
}

func Test_point_on_line_minimizes_residual_at_midpoint(tst *testing.T) {
	chk.PrintTitle("point_on_line_minimizes_residual_at_midpoint")
	a := entity.NewPoint("A", 0, 0, 0)
	b := entity.NewPoint("B", 10, 0, 0)
	l := entity.NewLine(a, b)
	p := entity.NewPoint("P", 5, 0, 0)
	c := NewPointOn(p, l)
	chk.Scalar(tst, "t", 1e-6, c.Value().Value(), 0.5)
	if !c.Reference() {
		tst.Fatalf("PointOn's t must be a reference-dimension parameter")
	}
}

func Test_tangent_picks_option_minimizing_residual(tst *testing.T) {
	chk.PrintTitle("tangent_picks_option_minimizing_residual")
	center := entity.NewPoint("C", 0, 0, 0)
	circle := entity.NewCircle("c1", center, 2)
	a := entity.NewPoint("A", -5, 2, 0)
	b := entity.NewPoint("B", 5, 2, 0)
	line := entity.NewLine(a, b)
	c := NewTangent(circle, line)
	// whichever option was picked, the coincidence residuals should be
	// small after the local satisfy pass settled t0, t1.
	eqs := c.Equations()
	chk.Scalar(tst, "coincidence x", 1e-3, eqs[1].Eval(), 0)
	chk.Scalar(tst, "coincidence y", 1e-3, eqs[2].Eval(), 0)
}
