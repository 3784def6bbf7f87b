// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explorer

import (
	"bytes"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestComputeStatistics(t *testing.T) {
	st := ComputeStatistics(DefaultParams())
	if math.Abs(st.Mean-38.4) > 1e-9 || math.Abs(st.Variance-7.68) > 1e-9 || math.Abs(st.StdDev-2.7713) > 1e-4 {
		t.Errorf("ComputeStatistics(default) = %+v", st)
	}
	ci := st.ConfidenceInterval
	if ci.Z != 1.96 || math.Abs(ci.Lower-0.7752) > 1e-4 || math.Abs(ci.Upper-0.8248) > 1e-4 {
		t.Errorf("ComputeStatistics(default).ConfidenceInterval = %+v", ci)
	}
}

func TestGroupOrder(t *testing.T) {
	want := []Group{GroupStatistics, GroupBinomial, GroupNormal, GroupRegion}
	if got := Groups(); !reflect.DeepEqual(want, got) {
		t.Errorf("Groups() = %v, want %v", got, want)
	}
}

func TestModelNew(t *testing.T) {
	p := DefaultParams()
	m := New(p)
	if m.Params() != p {
		t.Errorf("Params() = %+v, want %+v", m.Params(), p)
	}
	for _, g := range Groups() {
		if n := m.Recomputations(g); n != 1 {
			t.Errorf("Recomputations(%v) = %d after New, want 1", g, n)
		}
	}
	if want := Compute(p); !reflect.DeepEqual(want, m.Snapshot()) {
		t.Errorf("New(%+v).Snapshot() differs from Compute", p)
	}
}

func TestModelScoped(t *testing.T) {
	tests := []struct {
		change Change
		want   []Group
	}{
		// No-op change.
		{Change{ParamN, 48}, nil},
		// Sample size only affects the interval and the
		// standard error.
		{Change{ParamSampleSize, 2000}, []Group{GroupStatistics, GroupRegion}},
		// Likewise the confidence level.
		{Change{ParamConfidence, 99}, []Group{GroupStatistics, GroupRegion}},
		// Unrecognized levels share 1.645, but the statistics
		// key is the raw level, so both still recompute.
		{Change{ParamConfidence, 92}, []Group{GroupStatistics, GroupRegion}},
		// n and p change the whole distribution.
		{Change{ParamN, 60}, []Group{GroupStatistics, GroupBinomial, GroupNormal, GroupRegion}},
		{Change{ParamP, 0.5}, []Group{GroupStatistics, GroupBinomial, GroupNormal, GroupRegion}},
	}
	m := New(DefaultParams())
	for _, test := range tests {
		got := m.Apply(test.change)
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("Apply(%v) recomputed %v, want %v", test.change, got, test.want)
		}
		if want := Compute(m.Params()); !reflect.DeepEqual(want, m.Snapshot()) {
			t.Errorf("after Apply(%v), snapshot differs from Compute(%+v)", test.change, m.Params())
		}
	}
}

func TestModelMemoByValue(t *testing.T) {
	// B(48, 0.25) and B(48, 0.75) have the same standard deviation
	// (exactly 3), so the region, which depends only on the level,
	// the sample size and σ, is reused.
	m := New(Params{N: 48, P: 0.25, SampleSize: 1000, ConfidenceLevel: 95})
	got := m.Apply(Change{ParamP, 0.75})
	want := []Group{GroupStatistics, GroupBinomial, GroupNormal}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("Apply(p=0.75) recomputed %v, want %v", got, want)
	}
	if m.Recomputations(GroupRegion) != 1 {
		t.Errorf("region recomputed %d times, want 1", m.Recomputations(GroupRegion))
	}
	if want := Compute(m.Params()); !reflect.DeepEqual(want, m.Snapshot()) {
		t.Errorf("snapshot differs from Compute(%+v)", m.Params())
	}
}

func TestModelSetWholesale(t *testing.T) {
	var seen []Group
	m := New(DefaultParams(), WithObserver(func(g Group) { seen = append(seen, g) }))
	seen = nil

	p := Params{N: 20, P: 0.3, SampleSize: 500, ConfidenceLevel: 90}
	got := m.Set(p)
	want := Groups()
	if !reflect.DeepEqual(want, got) || !reflect.DeepEqual(want, seen) {
		t.Errorf("Set(%+v) recomputed %v (observed %v), want %v", p, got, seen, want)
	}
	for _, g := range Groups() {
		if n := m.Recomputations(g); n != 2 {
			t.Errorf("Recomputations(%v) = %d, want 2", g, n)
		}
	}
	if !reflect.DeepEqual(Compute(p), m.Snapshot()) {
		t.Errorf("snapshot differs from Compute(%+v)", p)
	}
}

func TestModelDegenerate(t *testing.T) {
	m := New(DefaultParams())
	m.Apply(Change{ParamP, 1})
	snap := m.Snapshot()
	if snap.Statistics.StdDev != 0 || len(snap.Normal) != 0 || snap.Normal == nil {
		t.Errorf("p=1: stddev %v, normal %#v", snap.Statistics.StdDev, snap.Normal)
	}
	if len(snap.Binomial) != 1 || snap.Binomial[0].K != 48 || snap.Binomial[0].Probability != 1 {
		t.Errorf("p=1: binomial %+v", snap.Binomial)
	}
	if snap.Region.StandardError != 0 {
		t.Errorf("p=1: standard error %v", snap.Region.StandardError)
	}
}

func TestModelLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := New(DefaultParams(), WithLogger(logger))
	m.Apply(Change{ParamSampleSize, 3000})
	out := buf.String()
	if n := strings.Count(out, "msg=recomputed"); n != 6 {
		t.Errorf("logged %d recomputations, want 6:\n%s", n, out)
	}
	if !strings.Contains(out, "group=region") || !strings.Contains(out, "sample_size=3000") {
		t.Errorf("log missing fields:\n%s", out)
	}
}

func TestSnapshotStable(t *testing.T) {
	m := New(DefaultParams())
	before := m.Snapshot()
	m.Apply(Change{ParamN, 30})
	if !reflect.DeepEqual(Compute(DefaultParams()), before) {
		t.Errorf("earlier snapshot changed after Apply")
	}
}
