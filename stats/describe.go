// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Summary holds the descriptive statistics of a binomial experiment.
type Summary struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`

	// SampleProportion is Mean/N, the expected fraction of
	// successes.
	SampleProportion float64 `json:"sample_proportion"`
}

// Describe returns the summary of B(n, p). n must be positive.
func Describe(n int, p float64) Summary {
	d := BinomialDist{N: n, P: p}
	mean := d.Mean()
	return Summary{
		Mean:             mean,
		Variance:         d.Variance(),
		StdDev:           d.StdDev(),
		SampleProportion: mean / float64(n),
	}
}
