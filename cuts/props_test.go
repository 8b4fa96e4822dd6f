// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	ggen "github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/go-air/kcut/aig"
	"github.com/go-air/kcut/cuts"
	"github.com/go-air/kcut/gen"
)

func randEnum(nIn, nAnd, k int, seed int64) (*aig.Graph, *cuts.Enumerator) {
	gen.Seed(seed)
	g, _ := gen.Rand(nIn, nAnd)
	e := cuts.NewEnumerator(g, k)
	e.Run()
	return g, e
}

// support returns the primary input variables in the transitive fanin
// of every node.
func support(g *aig.Graph) [][]aig.Var {
	res := make([][]aig.Var, g.Len())
	for i := 0; i < g.Len(); i++ {
		m := g.At(i)
		switch g.Kind(m) {
		case aig.Input:
			res[i] = []aig.Var{aig.Var(i)}
		case aig.And:
			a, b, _ := g.Ins(m)
			seen := map[aig.Var]bool{}
			for _, v := range res[a.Var()] {
				seen[v] = true
			}
			var s []aig.Var
			for v := range seen {
				s = append(s, v)
			}
			for _, v := range res[b.Var()] {
				if !seen[v] {
					s = append(s, v)
				}
			}
			res[i] = s
		}
	}
	return res
}

func TestCutProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60

	properties := gopter.NewProperties(parameters)
	nIns := ggen.IntRange(1, 6)
	nAnds := ggen.IntRange(0, 40)
	ks := ggen.IntRange(1, 4)
	seeds := ggen.Int64()

	properties.Property("every node retains its trivial cut", prop.ForAll(
		func(nIn, nAnd, k int, seed int64) bool {
			g, e := randEnum(nIn, nAnd, k, seed)
			for i := 0; i < g.Len(); i++ {
				found := false
				for _, c := range e.Cuts(aig.Var(i)) {
					ls := c.Leaves()
					if len(ls) == 1 && ls[0] == aig.Var(i) {
						found = true
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		nIns, nAnds, ks, seeds,
	))

	properties.Property("cuts respect the bound and are canonical", prop.ForAll(
		func(nIn, nAnd, k int, seed int64) bool {
			g, e := randEnum(nIn, nAnd, k, seed)
			for i := 0; i < g.Len(); i++ {
				for _, c := range e.Cuts(aig.Var(i)) {
					ls := c.Leaves()
					if len(ls) == 0 || len(ls) > k {
						return false
					}
					for j := 1; j < len(ls); j++ {
						if ls[j-1] >= ls[j] {
							return false
						}
					}
				}
			}
			return true
		},
		nIns, nAnds, ks, seeds,
	))

	properties.Property("each cut set is an antichain under inclusion", prop.ForAll(
		func(nIn, nAnd, k int, seed int64) bool {
			g, e := randEnum(nIn, nAnd, k, seed)
			for i := 0; i < g.Len(); i++ {
				cs := e.Cuts(aig.Var(i))
				for x := range cs {
					for y := range cs {
						if x != y && cs[x].Dominates(cs[y]) {
							return false
						}
					}
				}
			}
			return true
		},
		nIns, nAnds, ks, seeds,
	))

	properties.Property("enumeration is idempotent", prop.ForAll(
		func(nIn, nAnd, k int, seed int64) bool {
			g, e1 := randEnum(nIn, nAnd, k, seed)
			e2 := cuts.NewEnumerator(g, k)
			e2.Run()
			for i := 0; i < g.Len(); i++ {
				c1, c2 := e1.Cuts(aig.Var(i)), e2.Cuts(aig.Var(i))
				if len(c1) != len(c2) {
					return false
				}
				for j := range c1 {
					if !c1[j].Equal(c2[j]) {
						return false
					}
				}
			}
			return true
		},
		nIns, nAnds, ks, seeds,
	))

	properties.Property("raising k only adds cuts", prop.ForAll(
		func(nIn, nAnd, k int, seed int64) bool {
			g, e := randEnum(nIn, nAnd, k, seed)
			bigger := cuts.NewEnumerator(g, k+1)
			bigger.Run()
			for i := 0; i < g.Len(); i++ {
				for _, c := range e.Cuts(aig.Var(i)) {
					found := false
					for _, d := range bigger.Cuts(aig.Var(i)) {
						if c.Equal(d) {
							found = true
							break
						}
					}
					if !found {
						return false
					}
				}
			}
			return true
		},
		nIns, nAnds, ks, seeds,
	))

	properties.Property("a feasible primary input cut is always covered", prop.ForAll(
		func(nIn, nAnd, k int, seed int64) bool {
			g, e := randEnum(nIn, nAnd, k, seed)
			sup := support(g)
			for i := 0; i < g.Len(); i++ {
				if g.Kind(g.At(i)) == aig.Const0 {
					continue
				}
				if len(sup[i]) > k {
					continue
				}
				piCut, err := cuts.New(sup[i], len(sup[i]))
				if err != nil {
					return false
				}
				// the all-inputs cut is retained or dominated by a
				// retained cut
				covered := false
				for _, c := range e.Cuts(aig.Var(i)) {
					if c.Dominates(piCut) {
						covered = true
						break
					}
				}
				if !covered {
					return false
				}
			}
			return true
		},
		nIns, nAnds, ks, seeds,
	))

	properties.Property("a node is a function of its support alone", prop.ForAll(
		func(nIn, nAnd int, seed int64) bool {
			gen.Seed(seed)
			g, _ := gen.Rand(nIn, nAnd)
			sup := support(g)
			ins := g.Inputs(nil)
			rnd := rand.New(rand.NewSource(seed))
			base := make([]uint64, g.Len())
			for _, v := range ins {
				base[v] = rnd.Uint64()
			}
			ref := make([]uint64, g.Len())
			copy(ref, base)
			g.Eval64(ref)
			// flipping an input outside a node's support cannot
			// change the node's value
			for _, pi := range ins {
				vs := make([]uint64, g.Len())
				copy(vs, base)
				vs[pi] = ^vs[pi]
				g.Eval64(vs)
				for i := 0; i < g.Len(); i++ {
					inSup := false
					for _, s := range sup[i] {
						if s == pi {
							inSup = true
							break
						}
					}
					if !inSup && vs[i] != ref[i] {
						return false
					}
				}
			}
			return true
		},
		nIns, nAnds, seeds,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
