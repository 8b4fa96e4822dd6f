// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import "fmt"

// Var is the index of a node in a Graph.  Var 0 is the constant
// false node.
type Var uint32

// Lit is a possibly complemented reference to a node, coded AIGER
// style: variable v has positive literal 2v and complemented literal
// 2v+1.
type Lit uint32

// Pos returns the uncomplemented literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the complemented literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1) | 1
}

// Var returns the variable underlying m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// IsPos indicates whether m is uncomplemented.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Not returns the complement of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("x%d", m.Var())
	}
	return fmt.Sprintf("!x%d", m.Var())
}

func (v Var) String() string {
	return fmt.Sprintf("x%d", uint32(v))
}
