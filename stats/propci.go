// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Critical values of the standard normal distribution for the
// confidence levels ZCritical recognizes.
const (
	Z90 = 1.645
	Z95 = 1.96
	Z99 = 2.576
)

// ZCritical returns the two-sided standard normal critical value for
// a confidence level given in percent.
//
// Only 95 and 99 are recognized. Every other level, including 90,
// gets Z90. Callers that need the exact quantile for an arbitrary
// level should use StdNormal.InvCDF.
func ZCritical(level int) float64 {
	switch level {
	case 95:
		return Z95
	case 99:
		return Z99
	}
	return Z90
}

// Interval is a confidence interval for a proportion.
type Interval struct {
	// Lower and Upper bound the interval. They are clamped to
	// [0, 1].
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`

	// Margin is the unclamped half-width of the interval.
	Margin float64 `json:"margin"`

	// Z is the critical value the interval was computed with.
	Z float64 `json:"z"`
}

// ProportionCI returns the normal-approximation (Wald) confidence
// interval for proportion observed in a sample of sampleSize trials,
// at the given confidence level in percent. sampleSize must be
// positive.
func ProportionCI(proportion float64, sampleSize, level int) Interval {
	z := ZCritical(level)
	margin := z * math.Sqrt(proportion*(1-proportion)/float64(sampleSize))
	return Interval{
		Lower:  math.Max(0, proportion-margin),
		Upper:  math.Min(1, proportion+margin),
		Margin: margin,
		Z:      z,
	}
}

// CentralArea returns the probability mass of the standard normal
// distribution between -z and z.
func CentralArea(z float64) float64 {
	return StdNormal.CDF(z) - StdNormal.CDF(-z)
}
