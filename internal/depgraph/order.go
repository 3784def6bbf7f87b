// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package depgraph

// PostOrder returns the nodes of g reachable from roots, visited in
// post-order. Roots are visited in the order given.
func PostOrder(g Graph, roots ...int) []int {
	visited := NewNodeMarks()
	out := []int{}
	var visit func(n int)
	visit = func(n int) {
		visited.Mark(n)
		for _, succ := range g.Out(n) {
			if !visited.Test(succ) {
				visit(succ)
			}
		}
		out = append(out, n)
	}
	for _, root := range roots {
		if !visited.Test(root) {
			visit(root)
		}
	}
	return out
}

// Reverse reverses xs in place and returns the slice. This is useful
// in conjunction with PostOrder to compute reverse post-order.
func Reverse(xs []int) []int {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
	return xs
}

// TopoOrder returns all nodes of g such that every node comes before
// its successors. It panics if g has a cycle.
//
// Roots are visited from the highest ID down, so if every edge already
// goes from a lower to a higher ID the result is 0, 1, 2, ...
func TopoOrder(g Graph) []int {
	roots := make([]int, g.NumNodes())
	for i := range roots {
		roots[i] = len(roots) - 1 - i
	}
	order := Reverse(PostOrder(g, roots...))

	pos := make([]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for n := range order {
		for _, succ := range g.Out(n) {
			if pos[succ] <= pos[n] {
				panic("depgraph: graph has a cycle")
			}
		}
	}
	return order
}

// Reachable marks every node reachable from roots, including the
// roots themselves.
func Reachable(g Graph, roots ...int) *NodeMarks {
	marks := NewNodeMarks()
	var visit func(n int)
	visit = func(n int) {
		marks.Mark(n)
		for _, succ := range g.Out(n) {
			if !marks.Test(succ) {
				visit(succ)
			}
		}
	}
	for _, root := range roots {
		if !marks.Test(root) {
			visit(root)
		}
	}
	return marks
}
