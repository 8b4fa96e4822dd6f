// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-air/kcut/aig"
)

// CutTooLarge is returned by New when a cut would exceed the leaf
// bound it was built under.
var CutTooLarge = errors.New("cut exceeds the maximum leaf count")

// Cut is a candidate covering set for one node: a sorted, duplicate
// free list of leaf variables.  Two cuts with the same leaf
// membership are equal regardless of construction order.  The 64 bit
// membership signature screens subset tests.
type Cut struct {
	leaves []aig.Var
	sig    uint64
}

// New builds a canonical cut from leaves, which need not be sorted or
// duplicate free.  It fails with CutTooLarge when the deduplicated
// leaf count exceeds k.
func New(leaves []aig.Var, k int) (Cut, error) {
	ls := make([]aig.Var, len(leaves))
	copy(ls, leaves)
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	w := 0
	for i, v := range ls {
		if i > 0 && v == ls[w-1] {
			continue
		}
		ls[w] = v
		w++
	}
	ls = ls[:w]
	if len(ls) > k {
		return Cut{}, CutTooLarge
	}
	c := Cut{leaves: ls}
	for _, v := range ls {
		c.sig |= 1 << (uint(v) & 63)
	}
	return c, nil
}

// Leaves returns the sorted leaf variables.  The slice is owned by
// the cut and must not be modified.
func (c Cut) Leaves() []aig.Var {
	return c.leaves
}

// Size returns the number of leaves.
func (c Cut) Size() int {
	return len(c.leaves)
}

// Dominates reports whether c's leaf set is a subset of d's.  A
// dominating cut renders the dominated one redundant: a smaller
// covering set is always at least as useful.
func (c Cut) Dominates(d Cut) bool {
	if len(c.leaves) > len(d.leaves) {
		return false
	}
	if c.sig&^d.sig != 0 {
		return false
	}
	i, j := 0, 0
	for i < len(c.leaves) && j < len(d.leaves) {
		if c.leaves[i] < d.leaves[j] {
			return false
		}
		if c.leaves[i] == d.leaves[j] {
			i++
		}
		j++
	}
	return i == len(c.leaves)
}

// Equal reports leaf set equality.
func (c Cut) Equal(d Cut) bool {
	if c.sig != d.sig || len(c.leaves) != len(d.leaves) {
		return false
	}
	for i := range c.leaves {
		if c.leaves[i] != d.leaves[i] {
			return false
		}
	}
	return true
}

func (c Cut) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range c.leaves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// union merges two cuts.  It refuses, without allocating, when the
// merged leaf count would exceed k.
func union(a, b Cut, k int) (Cut, bool) {
	i, j, n := 0, 0, 0
	for i < len(a.leaves) && j < len(b.leaves) {
		switch {
		case a.leaves[i] == b.leaves[j]:
			i++
			j++
		case a.leaves[i] < b.leaves[j]:
			i++
		default:
			j++
		}
		n++
	}
	n += len(a.leaves) - i + len(b.leaves) - j
	if n > k {
		return Cut{}, false
	}
	ls := make([]aig.Var, 0, n)
	i, j = 0, 0
	for i < len(a.leaves) && j < len(b.leaves) {
		switch {
		case a.leaves[i] == b.leaves[j]:
			ls = append(ls, a.leaves[i])
			i++
			j++
		case a.leaves[i] < b.leaves[j]:
			ls = append(ls, a.leaves[i])
			i++
		default:
			ls = append(ls, b.leaves[j])
			j++
		}
	}
	ls = append(ls, a.leaves[i:]...)
	ls = append(ls, b.leaves[j:]...)
	return Cut{leaves: ls, sig: a.sig | b.sig}, true
}
