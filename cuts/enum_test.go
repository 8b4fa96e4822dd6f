// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-air/kcut/aig"
	"github.com/go-air/kcut/cuts"
	"github.com/go-air/kcut/gen"
)

func leaves(cs []cuts.Cut) [][]aig.Var {
	res := make([][]aig.Var, len(cs))
	for i, c := range cs {
		res[i] = c.Leaves()
	}
	return res
}

func TestAndGateCuts(t *testing.T) {
	g := aig.New()
	a, b := g.NewIn(), g.NewIn()
	m, err := g.And(a, b)
	require.NoError(t, err)

	e := cuts.NewEnumerator(g, 2)
	e.Run()
	require.Equal(t,
		[][]aig.Var{{m.Var()}, {a.Var(), b.Var()}},
		leaves(e.Cuts(m.Var())))
}

func TestChainCuts(t *testing.T) {
	g := aig.New()
	a, b, c := g.NewIn(), g.NewIn(), g.NewIn()
	g1, err := g.And(a, b)
	require.NoError(t, err)
	g2, err := g.And(g1, c)
	require.NoError(t, err)

	e := cuts.NewEnumerator(g, 2)
	e.Run()
	require.Equal(t,
		[][]aig.Var{{g2.Var()}, {c.Var(), g1.Var()}},
		leaves(e.Cuts(g2.Var())),
		"the size 3 candidate {a b c} must be excluded at k=2")

	e = cuts.NewEnumerator(g, 3)
	e.Run()
	require.Equal(t,
		[][]aig.Var{{g2.Var()}, {c.Var(), g1.Var()}, {a.Var(), b.Var(), c.Var()}},
		leaves(e.Cuts(g2.Var())))
}

func TestTerminalCuts(t *testing.T) {
	g := aig.New()
	a := g.NewIn()
	e := cuts.NewEnumerator(g, 4)
	e.Run()
	require.Equal(t, [][]aig.Var{{0}}, leaves(e.Cuts(0)), "constant node")
	require.Equal(t, [][]aig.Var{{a.Var()}}, leaves(e.Cuts(a.Var())))
}

func TestTableKChange(t *testing.T) {
	g := aig.New()
	a, b, c := g.NewIn(), g.NewIn(), g.NewIn()
	g1, err := g.And(a, b)
	require.NoError(t, err)
	g2, err := g.And(g1, c)
	require.NoError(t, err)

	tbl := cuts.NewTable(g)
	cs, err := tbl.CutsForNode(g2.Var(), 2)
	require.NoError(t, err)
	require.Len(t, cs, 2)

	// a different k invalidates the cached sets and re-enumerates
	cs, err = tbl.CutsForNode(g2.Var(), 3)
	require.NoError(t, err)
	require.Len(t, cs, 3)

	all := tbl.AllCuts(3)
	require.Len(t, all, g.Len())
	require.Equal(t, leaves(cs), leaves(all[g2.Var()]))
}

func TestTableNodeNotFound(t *testing.T) {
	g := aig.New()
	g.NewIn()
	tbl := cuts.NewTable(g)
	_, err := tbl.CutsForNode(aig.Var(9), 2)
	require.ErrorIs(t, err, cuts.NodeNotFound)
	_, err = tbl.ConeCuts(aig.Var(9), 2)
	require.ErrorIs(t, err, cuts.NodeNotFound)
}

func TestConeMatchesFullRun(t *testing.T) {
	gen.Seed(7)
	g, outs := gen.Rand(6, 40)
	target := outs[0].Var()

	full := cuts.NewEnumerator(g, 3)
	full.Run()
	cone := cuts.NewEnumerator(g, 3)
	got := cone.RunCone(target)

	want := full.Cuts(target)
	require.Equal(t, len(want), len(got))
	for i := range want {
		require.True(t, want[i].Equal(got[i]))
	}
}
