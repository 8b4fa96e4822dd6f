// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger reads and writes combinational AIGER files, ascii
// ("aag") and binary ("aig"), backed by an aig.Graph.
//
// Only the combinational subset of the format is supported: files
// declaring latches or the version 1.9 property sections are
// rejected.  Gate simplification in the backing graph means a file
// gate need not allocate a node; readers keep an explicit map from
// file literals to graph literals, and a graph read from a file can
// therefore be smaller than the file's declared counts.
package aiger
