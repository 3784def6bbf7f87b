// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package depgraph orders and propagates changes through a small,
// static dependency graph.
//
// Nodes are dense integer IDs. An edge from a to b means b is
// derived from a, so a change to a invalidates b.
package depgraph

import (
	"bytes"
	"fmt"
)

// Graph is a directed graph with nodes numbered [0, NumNodes()).
type Graph interface {
	// NumNodes returns the number of nodes in this graph.
	NumNodes() int

	// Out returns the successors of node.
	Out(node int) []int
}

// IntGraph is a Graph stored as adjacency lists.
type IntGraph [][]int

func (g IntGraph) NumNodes() int {
	return len(g)
}

func (g IntGraph) Out(node int) []int {
	return g[node]
}

// String prints one line per node in the form "n -> s1 s2".
func (g IntGraph) String() string {
	var buf bytes.Buffer
	for nid := range g {
		fmt.Fprintf(&buf, "%d ->", nid)
		for _, n2 := range g[nid] {
			fmt.Fprintf(&buf, " %d", n2)
		}
		fmt.Fprintf(&buf, "\n")
	}
	return buf.String()
}
