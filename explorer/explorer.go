// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package explorer derives every statistic and plotting series of a
// binomial experiment from its four input parameters, and keeps them
// consistent as the parameters change.
//
// Compute and ComputeStatistics are the one-shot, pure derivations. A
// Model holds the current parameters and re-derives only the groups
// whose inputs changed after each update.
package explorer // import "github.com/aclements/binomsim/explorer"

import (
	"github.com/aclements/binomsim/series"
	"github.com/aclements/binomsim/stats"
)

// Statistics are the descriptive statistics of B(N, P) together with
// the confidence interval of the sample proportion.
type Statistics struct {
	stats.Summary
	ConfidenceInterval stats.Interval `json:"confidence_interval"`
}

// Snapshot is every derived group for one Params value.
//
// The series slices may be shared between snapshots and must not be
// modified.
type Snapshot struct {
	Params     Params                     `json:"params"`
	Statistics Statistics                 `json:"statistics"`
	Binomial   []series.DistributionPoint `json:"binomial"`
	Normal     []series.NormalPoint       `json:"normal"`
	Region     series.Region              `json:"region"`
}

// ComputeStatistics returns the statistics for p.
func ComputeStatistics(p Params) Statistics {
	sum := stats.Describe(p.N, p.P)
	return Statistics{
		Summary:            sum,
		ConfidenceInterval: stats.ProportionCI(sum.SampleProportion, p.SampleSize, p.ConfidenceLevel),
	}
}

// Compute returns the full snapshot for p.
func Compute(p Params) Snapshot {
	st := ComputeStatistics(p)
	return Snapshot{
		Params:     p,
		Statistics: st,
		Binomial:   series.Binomial(p.N, p.P),
		Normal:     series.Normal(p.N, st.Mean, st.StdDev),
		Region:     series.ConfidenceRegion(p.ConfidenceLevel, st.StdDev, p.SampleSize),
	}
}
