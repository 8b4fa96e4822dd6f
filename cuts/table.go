// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"errors"

	"github.com/go-air/kcut/aig"
)

// NodeNotFound is returned by queries naming a variable that is not
// in the graph.
var NodeNotFound = errors.New("node not in graph")

// Table is the read-only query surface over computed cut sets.  Cut
// sets are implicitly keyed by the k that built them: a query at a
// different k re-runs the enumeration rather than serve stale sets.
type Table struct {
	g    *aig.Graph
	k    int
	sets []Set
}

// NewTable creates an empty table over g.  No enumeration happens
// until the first query.
func NewTable(g *aig.Graph) *Table {
	return &Table{g: g}
}

// CutsForNode returns the cuts retained for v at leaf bound k.  It
// fails with NodeNotFound when v is not in the graph.
func (t *Table) CutsForNode(v aig.Var, k int) ([]Cut, error) {
	if int(v) >= t.g.Len() {
		return nil, NodeNotFound
	}
	t.ensure(k)
	return t.sets[v].Cuts(), nil
}

// ConeCuts computes v's cuts at leaf bound k using only v's
// transitive fanin.  A table already built at k is served as is; a
// cone run never populates or invalidates the cached table.
func (t *Table) ConeCuts(v aig.Var, k int) ([]Cut, error) {
	if int(v) >= t.g.Len() {
		return nil, NodeNotFound
	}
	if t.sets != nil && t.k == k {
		return t.sets[v].Cuts(), nil
	}
	e := NewEnumerator(t.g, k)
	return e.RunCone(v), nil
}

// AllCuts returns every node's retained cuts at leaf bound k, indexed
// by variable.
func (t *Table) AllCuts(k int) [][]Cut {
	t.ensure(k)
	res := make([][]Cut, len(t.sets))
	for i := range t.sets {
		res[i] = t.sets[i].Cuts()
	}
	return res
}

func (t *Table) ensure(k int) {
	if t.sets != nil && t.k == k {
		return
	}
	e := NewEnumerator(t.g, k)
	e.Run()
	t.k = k
	t.sets = e.sets
}
