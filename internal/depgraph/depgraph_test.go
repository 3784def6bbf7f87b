// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package depgraph

import (
	"reflect"
	"testing"
)

func TestNodeMarksNext(t *testing.T) {
	tests := [][]int{
		{0},
		{1},
		{0, 4},
		{},       // No marks
		{0, 100}, // Big gap
		{31, 32, 33},
	}

	for _, test := range tests {
		m := NewNodeMarks()
		for _, id := range test {
			m.Mark(id)
		}
		got := []int{}
		for i := m.Next(-1); i >= 0; i = m.Next(i) {
			got = append(got, i)
		}
		if !reflect.DeepEqual(test, got) {
			t.Errorf("want %v, got %v", test, got)
		}
	}
}

func TestNodeMarksUnmark(t *testing.T) {
	m := NewNodeMarks()
	m.Mark(3)
	m.Mark(70)
	m.Unmark(3)
	m.Unmark(1000) // Beyond the end
	if m.Test(3) || !m.Test(70) || m.Test(1000) || m.Test(-1) {
		t.Errorf("marks after unmark: 3=%v 70=%v", m.Test(3), m.Test(70))
	}
}

// A diamond with a tail: 0 -> {1, 2} -> 3 -> 4, and 5 -> 2.
var diamond = IntGraph{
	0: {1, 2},
	1: {3},
	2: {3},
	3: {4},
	4: {},
	5: {2},
}

func TestPostOrder(t *testing.T) {
	got := PostOrder(diamond, 0)
	want := []int{4, 3, 1, 2, 0}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("PostOrder = %v, want %v", got, want)
	}
}

func TestTopoOrder(t *testing.T) {
	order := TopoOrder(diamond)
	if len(order) != diamond.NumNodes() {
		t.Fatalf("TopoOrder = %v, want all %d nodes", order, diamond.NumNodes())
	}
	pos := make(map[int]int)
	for i, n := range order {
		pos[n] = i
	}
	for n := range diamond {
		for _, succ := range diamond.Out(n) {
			if pos[n] >= pos[succ] {
				t.Errorf("node %d ordered after successor %d in %v", n, succ, order)
			}
		}
	}
}

func TestTopoOrderSorted(t *testing.T) {
	g := IntGraph{
		0: {2, 3},
		1: {2},
		2: {3, 4},
		3: {4},
		4: {},
	}
	want := []int{0, 1, 2, 3, 4}
	if got := TopoOrder(g); !reflect.DeepEqual(want, got) {
		t.Errorf("TopoOrder = %v, want %v", got, want)
	}
}

func TestTopoOrderCycle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("TopoOrder on cyclic graph did not panic")
		}
	}()
	TopoOrder(IntGraph{0: {1}, 1: {2}, 2: {0}})
}

func TestReachable(t *testing.T) {
	for _, test := range []struct {
		roots []int
		want  []int
	}{
		{[]int{5}, []int{2, 3, 4, 5}},
		{[]int{1}, []int{1, 3, 4}},
		{[]int{4}, []int{4}},
		{nil, []int{}},
	} {
		m := Reachable(diamond, test.roots...)
		got := []int{}
		for i := m.Next(-1); i >= 0; i = m.Next(i) {
			got = append(got, i)
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("Reachable(%v) = %v, want %v\ngraph:\n%s", test.roots, got, test.want, diamond)
		}
	}
}
