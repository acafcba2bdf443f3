// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is a small demonstration driver, not a CLI of record: the
// sketch engine is a library (see the sketch, constraint, entity,
// expr and eqsys packages); this binary just builds one example
// sketch and reports the solve outcome, the way gofem's main.go
// drives one .sim file through fem.Start/fem.Run.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/sketch/constraint"
	"github.com/cpmech/sketch/entity"
	"github.com/cpmech/sketch/sketch"
)

func main() {
	useLP := flag.Bool("lp", false, "use the linear-program step strategy instead of least squares")
	verbose := flag.Bool("v", false, "print parameter values before and after solving")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nsketch -- a 2D geometric constraint solver\n\n")

	sk := sketch.New()
	sk.UseLinearProgram(*useLP)

	// A quadrilateral-ish example: a segment constrained to length 4 and
	// parallel to a second segment. No point is pinned in place.
	a0 := entity.NewPoint("A0", 0, 0, 0)
	a1 := entity.NewPoint("A1", 4, 0.3, 0)
	b0 := entity.NewPoint("B0", 0, 3, 0)
	b1 := entity.NewPoint("B1", 4, 3.2, 0)
	sk.AddEntity(a0)
	sk.AddEntity(a1)
	sk.AddEntity(b0)
	sk.AddEntity(b1)

	l0 := entity.NewLine(a0, a1)
	l1 := entity.NewLine(b0, b1)

	sk.AddConstraint(constraint.NewLength(l0, 4))
	sk.AddConstraint(constraint.NewParallel(l0, l1))

	if *verbose {
		printPoints("before", a0, a1, b0, b1)
	}

	steps := sk.Update()
	io.Pf("solved in %d update step(s)\n", steps)

	if *verbose {
		printPoints("after", a0, a1, b0, b1)
	}
}

func printPoints(label string, pts ...*entity.Entity) {
	io.Pf("%s:\n", label)
	for _, p := range pts {
		io.Pf("  (%v, %v)\n", p.X.Value(), p.Y.Value())
	}
}
