// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"fmt"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/go-air/kcut/aig"
	"github.com/go-air/kcut/logger"
)

// Enumerator computes the k-feasible cut sets of a graph's nodes in
// one bottom-up pass.  Creation order is topological by construction,
// so a forward sweep over variables visits every node after both of
// its fanins are finalized; no sorting or recursion is needed.
//
// The cross product of the two fanin cut sets dominates the cost.
// The size pre-filter in union and dominance pruning in tryInsert are
// the only blow-up controls: enumeration is exact and cut sets can
// grow large for high k on reconvergent graphs.
type Enumerator struct {
	g    *aig.Graph
	k    int
	sets []Set
}

// NewEnumerator prepares an enumeration of g at leaf bound k.  k must
// be at least 1 so that every node can hold its trivial cut.
func NewEnumerator(g *aig.Graph, k int) *Enumerator {
	if k < 1 {
		panic(fmt.Sprintf("cut bound %d, need at least 1", k))
	}
	return &Enumerator{g: g, k: k, sets: make([]Set, g.Len())}
}

// Run computes and freezes the cut set of every node.
func (e *Enumerator) Run() {
	start := time.Now()
	total := 0
	for i := 0; i < e.g.Len(); i++ {
		e.node(aig.Var(i))
		total += e.sets[i].Len()
	}
	log := logger.Logger()
	log.Debug().
		Int("nodes", e.g.Len()).
		Int("cuts", total).
		Int("k", e.k).
		Dur("in", time.Since(start)).
		Msg("enumerated cuts")
}

// RunCone computes cut sets only for target and its transitive
// fanin, so a single node query does not pay for the whole graph.
// It returns the cuts retained for target.
func (e *Enumerator) RunCone(target aig.Var) []Cut {
	cone := bitset.New(uint(e.g.Len()))
	e.mark(target, cone)
	for i, ok := cone.NextSet(0); ok; i, ok = cone.NextSet(i + 1) {
		e.node(aig.Var(i))
	}
	return e.sets[target].Cuts()
}

// Cuts returns the retained cuts of v.  Valid after Run, or after a
// RunCone whose cone contains v.
func (e *Enumerator) Cuts(v aig.Var) []Cut {
	return e.sets[v].Cuts()
}

// node finalizes v's cut set from the already finalized sets of its
// fanins.
func (e *Enumerator) node(v aig.Var) {
	s := &e.sets[v]
	s.cuts = s.cuts[:0]
	trivial, err := New([]aig.Var{v}, e.k)
	if err != nil {
		// unreachable: k >= 1
		panic(err)
	}
	s.tryInsert(trivial)
	a, b, ok := e.g.Ins(v.Pos())
	if !ok {
		// input or constant, the trivial cut is all there is
		return
	}
	as, bs := &e.sets[a.Var()], &e.sets[b.Var()]
	for _, ca := range as.cuts {
		for _, cb := range bs.cuts {
			c, ok := union(ca, cb, e.k)
			if !ok {
				continue
			}
			s.tryInsert(c)
		}
	}
}

// mark sets the bits of v's transitive fanin cone, v included.
func (e *Enumerator) mark(v aig.Var, cone *bitset.BitSet) {
	if cone.Test(uint(v)) {
		return
	}
	cone.Set(uint(v))
	if a, b, ok := e.g.Ins(v.Pos()); ok {
		e.mark(a.Var(), cone)
		e.mark(b.Var(), cone)
	}
}
