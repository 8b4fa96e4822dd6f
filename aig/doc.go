// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aig provides an arena backed representation of
// combinational And-Inverter Graphs.
//
// Nodes live in a single owning store and reference one another only
// by variable index, so the structure is acyclic by construction and
// safe to share read-only once built.  Gate construction applies
// constant and idempotence simplification and structural hashing, so
// equivalent And calls return the same literal.
package aig
