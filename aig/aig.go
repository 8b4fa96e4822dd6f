// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import "errors"

// InvalidReference is returned by And when an operand names a node
// that is not yet in the graph.
var InvalidReference = errors.New("fanin references a node not in the graph")

// Kind discriminates the node kinds of a Graph.
type Kind byte

const (
	Const0 Kind = iota
	Input
	And
)

type node struct {
	a, b Lit    // fanins, and gates only
	n    uint32 // next strash
	kind Kind
}

// Graph is a combinational And-Inverter Graph.  It owns all nodes;
// everything else refers to them by Var or Lit.  Nodes are created in
// topological order: a gate can only reference variables smaller than
// its own, so iterating 0..Len(g) visits every node after its fanins.
type Graph struct {
	nodes  []node
	strash []uint32
	F      Lit // the constant false literal, Var(0).Pos()
	T      Lit
}

// New creates an empty graph holding only the constant node.
func New() *Graph {
	g := &Graph{}
	initGraph(g, 128)
	return g
}

// NewCap creates an empty graph with initial capacity capHint.
func NewCap(capHint int) *Graph {
	g := &Graph{}
	initGraph(g, capHint)
	return g
}

func initGraph(g *Graph, capHint int) {
	if capHint < 2 {
		capHint = 2
	}
	g.nodes = make([]node, 1, capHint)
	g.strash = make([]uint32, capHint)
	g.F = Var(0).Pos()
	g.T = g.F.Not()
}

// Len returns the number of nodes in g, the constant included.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// At returns the i'th node as a positive literal.  Elements from
// 0..Len(g) are in topological order: if i < j then g.At(j) is not in
// the fanin cone of g.At(i).
func (g *Graph) At(i int) Lit {
	return Var(i).Pos()
}

// NewIn appends a primary input node and returns its positive
// literal.
func (g *Graph) NewIn() Lit {
	m, id := g.newNode()
	m.kind = Input
	return Var(id).Pos()
}

// Kind returns the kind of the node underlying m.
func (g *Graph) Kind(m Lit) Kind {
	return g.nodes[m.Var()].kind
}

// Ins returns the two fanin literals of m's node.  ok is false for
// inputs and the constant, which have no fanins.
func (g *Graph) Ins(m Lit) (a, b Lit, ok bool) {
	n := &g.nodes[m.Var()]
	if n.kind != And {
		return 0, 0, false
	}
	return n.a, n.b, true
}

// Inputs returns the variables of all primary inputs in creation
// order.  The result is placed in dst if there is space.
func (g *Graph) Inputs(dst []Var) []Var {
	dst = dst[:0]
	for i := range g.nodes {
		if g.nodes[i].kind == Input {
			dst = append(dst, Var(i))
		}
	}
	return dst
}

// And returns a literal equivalent to "a and b".  A new gate node is
// allocated only when no simplification rule applies and no
// structurally identical gate exists already.  And fails with
// InvalidReference when an operand names a node not yet in the graph,
// leaving g unmodified.
func (g *Graph) And(a, b Lit) (Lit, error) {
	if int(a.Var()) >= len(g.nodes) || int(b.Var()) >= len(g.nodes) {
		return 0, InvalidReference
	}
	if a > b {
		a, b = b, a
	}
	if a == g.F {
		return g.F, nil
	}
	if a == g.T {
		return b, nil
	}
	if a == b {
		return a, nil
	}
	if a == b.Not() {
		return g.F, nil
	}
	c := strashCode(a, b)
	si := g.strash[c%uint32(cap(g.nodes))]
	for si != 0 {
		n := &g.nodes[si]
		if n.kind == And && n.a == a && n.b == b {
			return Var(si).Pos(), nil
		}
		si = n.n
	}
	m, j := g.newNode()
	m.kind = And
	m.a = a
	m.b = b
	// cap may have changed in newNode
	k := c % uint32(cap(g.nodes))
	m.n = g.strash[k]
	g.strash[k] = j
	return Var(j).Pos(), nil
}

// Eval evaluates the graph under the input values in vs, where vs[i]
// holds the value of variable i.  Gate and constant entries of vs are
// overwritten with the computed values.
func (g *Graph) Eval(vs []bool) {
	vs[0] = false
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.kind != And {
			continue
		}
		va, vb := vs[n.a.Var()], vs[n.b.Var()]
		if !n.a.IsPos() {
			va = !va
		}
		if !n.b.IsPos() {
			vb = !vb
		}
		vs[i] = va && vb
	}
}

// Eval64 is like Eval but evaluates 64 different inputs in parallel
// as the bits of a uint64.
func (g *Graph) Eval64(vs []uint64) {
	vs[0] = 0
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.kind != And {
			continue
		}
		va, vb := vs[n.a.Var()], vs[n.b.Var()]
		if !n.a.IsPos() {
			va = ^va
		}
		if !n.b.IsPos() {
			vb = ^vb
		}
		vs[i] = va & vb
	}
}

func (g *Graph) newNode() (*node, uint32) {
	if len(g.nodes) == cap(g.nodes) {
		g.grow()
	}
	id := len(g.nodes)
	g.nodes = g.nodes[:id+1]
	g.nodes[id] = node{}
	return &g.nodes[id], uint32(id)
}

func (g *Graph) grow() {
	newCap := cap(g.nodes) * 2
	nodes := make([]node, len(g.nodes), newCap)
	strash := make([]uint32, newCap)
	copy(nodes, g.nodes)
	ucap := uint32(newCap)
	for i := range nodes {
		n := &nodes[i]
		if n.kind != And {
			continue
		}
		c := strashCode(n.a, n.b)
		j := c % ucap
		n.n = strash[j]
		strash[j] = uint32(i)
	}
	g.nodes = nodes
	g.strash = strash
}

func strashCode(a, b Lit) uint32 {
	return uint32((a << 13) * b)
}
