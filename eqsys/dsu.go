// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import "github.com/cpmech/sketch/expr"

// dsu is a union-find disjoint set over parameters, used by the
// substitution pass to collapse parameters linked by an a-b=0 equation
// onto a single representative. Grounded on the union-by-rank /
// path-compression idiom of katalvlaran/lvlath's prim_kruskal.Kruskal,
// generalized from string-keyed graph vertices to *expr.Parameter
// identities (lvlath's own union-find is private to that MST routine
// and not exported, so the idiom is carried over rather than imported).
type dsu struct {
	parent map[*expr.Parameter]*expr.Parameter
	rank   map[*expr.Parameter]int
}

func newDSU() *dsu {
	return &dsu{
		parent: make(map[*expr.Parameter]*expr.Parameter),
		rank:   make(map[*expr.Parameter]int),
	}
}

// find returns the representative of p's set, path-compressing along
// the way. A parameter never seen before is its own representative.
func (d *dsu) find(p *expr.Parameter) *expr.Parameter {
	root, ok := d.parent[p]
	if !ok {
		d.parent[p] = p
		return p
	}
	if root == p {
		return p
	}
	rep := d.find(root)
	d.parent[p] = rep
	return rep
}

// union merges the sets containing a and b, returning the representative
// and whether a merge actually happened (false if they were already in
// the same set).
func (d *dsu) union(a, b *expr.Parameter) (representative *expr.Parameter, merged bool) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return ra, false
	}
	rankA, rankB := d.rank[ra], d.rank[rb]
	switch {
	case rankA < rankB:
		d.parent[ra] = rb
		return rb, true
	case rankA > rankB:
		d.parent[rb] = ra
		return ra, true
	default:
		d.parent[rb] = ra
		d.rank[ra] = rankA + 1
		return ra, true
	}
}

// retired reports whether p has been unioned away from its own set
// (i.e. it is no longer its own representative).
func (d *dsu) retired(p *expr.Parameter) bool {
	return d.find(p) != p
}

// reset clears the union-find state.
func (d *dsu) reset() {
	d.parent = make(map[*expr.Parameter]*expr.Parameter)
	d.rank = make(map[*expr.Parameter]int)
}
