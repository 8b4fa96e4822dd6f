// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cuts enumerates the k-feasible cuts of every node of an
// And-Inverter Graph.
//
// A cut for a node is a set of leaf variables whose cones cover the
// logic feeding that node, with at most k leaves.  The enumeration is
// a single bottom-up dynamic program over the graph's creation order,
// merging fanin cut sets by cross product and keeping each node's set
// an antichain under leaf set inclusion.  Fanin polarities do not
// enter the merge: cuts track structural coverage, not logic values.
package cuts
