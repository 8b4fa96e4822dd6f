// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates random combinational AIGs for tests and
// benchmarks.
package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/kcut/aig"
)

// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Rand returns a random graph with nIn inputs and up to nAnd gates,
// together with a single output literal.  Gate operands are drawn
// uniformly from all previously created literals with random
// polarity, so simplification and strashing can make the resulting
// graph smaller than nIn+nAnd.
func Rand(nIn, nAnd int) (*aig.Graph, []aig.Lit) {
	mu.Lock() // for package rng
	defer mu.Unlock()
	g := aig.NewCap(1 + nIn + nAnd)
	ms := make([]aig.Lit, 0, nIn+nAnd)
	for i := 0; i < nIn; i++ {
		ms = append(ms, g.NewIn())
	}
	for i := 0; i < nAnd; i++ {
		a := ms[rng.Intn(len(ms))]
		b := ms[rng.Intn(len(ms))]
		if rng.Intn(2) == 1 {
			a = a.Not()
		}
		if rng.Intn(2) == 1 {
			b = b.Not()
		}
		m, err := g.And(a, b)
		if err != nil {
			panic(err)
		}
		ms = append(ms, m)
	}
	return g, []aig.Lit{ms[len(ms)-1]}
}
