// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

// Set holds the cuts retained for one node.  Insertion keeps the set
// an antichain under leaf set inclusion: no retained cut's leaves are
// a subset of another's.
type Set struct {
	cuts []Cut
}

// tryInsert adds c unless an existing cut dominates it.  On
// insertion, every cut that c dominates is evicted.  The cost is
// linear in the current set size.
func (s *Set) tryInsert(c Cut) bool {
	for i := range s.cuts {
		if s.cuts[i].Dominates(c) {
			return false
		}
	}
	w := 0
	for i := range s.cuts {
		if c.Dominates(s.cuts[i]) {
			continue
		}
		s.cuts[w] = s.cuts[i]
		w++
	}
	s.cuts = s.cuts[:w]
	s.cuts = append(s.cuts, c)
	return true
}

// Cuts returns the retained cuts.  The slice is owned by the set and
// must be treated as read-only.
func (s *Set) Cuts() []Cut {
	return s.cuts
}

// Len returns the number of retained cuts.
func (s *Set) Len() int {
	return len(s.cuts)
}
