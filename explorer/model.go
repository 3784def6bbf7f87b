// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explorer

import (
	"fmt"
	"log/slog"

	"github.com/aclements/binomsim/internal/depgraph"
	"github.com/aclements/binomsim/series"
)

// A Group is a unit of derived state that is recomputed as a whole.
type Group int

const (
	GroupStatistics Group = iota
	GroupBinomial
	GroupNormal
	GroupRegion

	numGroups
)

var groupNames = [numGroups]string{
	GroupStatistics: "statistics",
	GroupBinomial:   "binomial",
	GroupNormal:     "normal",
	GroupRegion:     "region",
}

func (g Group) String() string {
	if g < 0 || g >= numGroups {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// Groups returns every group in recomputation order.
func Groups() []Group {
	out := make([]Group, 0, numGroups)
	for _, node := range schedule {
		if g, ok := nodeGroup(node); ok {
			out = append(out, g)
		}
	}
	return out
}

// The dependency graph has one node per parameter followed by one
// node per group.
func paramNode(p Param) int { return int(p) }
func groupNode(g Group) int { return int(numParams) + int(g) }

func nodeGroup(node int) (Group, bool) {
	if node < int(numParams) {
		return 0, false
	}
	return Group(node - int(numParams)), true
}

// groupInputs lists the direct inputs of each group.
var groupInputs = [numGroups][]int{
	GroupStatistics: {paramNode(ParamN), paramNode(ParamP), paramNode(ParamSampleSize), paramNode(ParamConfidence)},
	GroupBinomial:   {paramNode(ParamN), paramNode(ParamP), groupNode(GroupStatistics)},
	GroupNormal:     {paramNode(ParamN), groupNode(GroupStatistics)},
	GroupRegion:     {paramNode(ParamConfidence), paramNode(ParamSampleSize), groupNode(GroupStatistics)},
}

var deps = func() depgraph.IntGraph {
	g := make(depgraph.IntGraph, int(numParams)+int(numGroups))
	for to, inputs := range groupInputs {
		for _, from := range inputs {
			g[from] = append(g[from], groupNode(Group(to)))
		}
	}
	return g
}()

var schedule = depgraph.TopoOrder(deps)

// Memo keys. A group is recomputed only when its key changes.
type (
	binomialKey struct {
		n            int
		p            float64
		mean, stdDev float64
	}
	normalKey struct {
		mean, stdDev float64
		n            int
	}
	regionKey struct {
		level      int
		stdDev     float64
		sampleSize int
	}
)

// Model is the reactive holder of a Params value and everything
// derived from it.
//
// Each update replaces the Params wholesale, then visits the groups
// reachable from the changed parameters in dependency order and
// recomputes a group only if the exact tuple of values it depends on
// differs from the last time it was computed.
//
// A Model is not safe for concurrent use.
type Model struct {
	params Params
	snap   Snapshot

	statsKey    Params
	binomialKey binomialKey
	normalKey   normalKey
	regionKey   regionKey

	counts [numGroups]int

	logger   *slog.Logger
	observer func(Group)
}

// An Option configures a Model.
type Option func(*Model)

// WithLogger makes the model log each recomputation at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithObserver registers f to be called after each group is
// recomputed.
func WithObserver(f func(Group)) Option {
	return func(m *Model) { m.observer = f }
}

// New returns a Model for p with every group computed.
func New(p Params, opts ...Option) *Model {
	m := &Model{params: p}
	for _, opt := range opts {
		opt(m)
	}
	m.snap.Params = p
	for _, g := range Groups() {
		m.recompute(g)
	}
	return m
}

// Params returns the current parameters.
func (m *Model) Params() Params {
	return m.params
}

// Snapshot returns the current derived state.
func (m *Model) Snapshot() Snapshot {
	return m.snap
}

// Recomputations returns how many times group g has been computed,
// including the initial computation in New.
func (m *Model) Recomputations(g Group) int {
	return m.counts[g]
}

// Apply applies a single parameter change and returns the groups that
// were recomputed, in the order they were recomputed. The result is
// not validated.
func (m *Model) Apply(c Change) []Group {
	return m.Set(c.Apply(m.params))
}

// Set replaces the parameters with p and returns the groups that were
// recomputed, in the order they were recomputed.
func (m *Model) Set(p Params) []Group {
	old := m.params
	var changed []int
	if p.N != old.N {
		changed = append(changed, paramNode(ParamN))
	}
	if p.P != old.P {
		changed = append(changed, paramNode(ParamP))
	}
	if p.SampleSize != old.SampleSize {
		changed = append(changed, paramNode(ParamSampleSize))
	}
	if p.ConfidenceLevel != old.ConfidenceLevel {
		changed = append(changed, paramNode(ParamConfidence))
	}
	if len(changed) == 0 {
		return nil
	}

	m.params = p
	m.snap.Params = p
	dirty := depgraph.Reachable(deps, changed...)
	var out []Group
	for _, node := range schedule {
		g, ok := nodeGroup(node)
		if !ok || !dirty.Test(node) {
			continue
		}
		if m.recompute(g) {
			out = append(out, g)
		}
	}
	return out
}

// recompute brings group g up to date with m.params and the groups it
// depends on, and reports whether it had to be recomputed.
func (m *Model) recompute(g Group) bool {
	p := m.params
	first := m.counts[g] == 0
	st := &m.snap.Statistics

	switch g {
	case GroupStatistics:
		if !first && m.statsKey == p {
			return false
		}
		m.statsKey = p
		m.snap.Statistics = ComputeStatistics(p)

	case GroupBinomial:
		key := binomialKey{p.N, p.P, st.Mean, st.StdDev}
		if !first && m.binomialKey == key {
			return false
		}
		m.binomialKey = key
		m.snap.Binomial = series.Binomial(p.N, p.P)

	case GroupNormal:
		key := normalKey{st.Mean, st.StdDev, p.N}
		if !first && m.normalKey == key {
			return false
		}
		m.normalKey = key
		m.snap.Normal = series.Normal(p.N, st.Mean, st.StdDev)

	case GroupRegion:
		key := regionKey{p.ConfidenceLevel, st.StdDev, p.SampleSize}
		if !first && m.regionKey == key {
			return false
		}
		m.regionKey = key
		m.snap.Region = series.ConfidenceRegion(p.ConfidenceLevel, st.StdDev, p.SampleSize)

	default:
		panic(fmt.Sprintf("explorer: unknown group %d", int(g)))
	}

	m.counts[g]++
	if m.logger != nil {
		m.logger.Debug("recomputed", "group", g, "n", p.N, "p", p.P, "sample_size", p.SampleSize, "confidence", p.ConfidenceLevel)
	}
	if m.observer != nil {
		m.observer(g)
	}
	return true
}
