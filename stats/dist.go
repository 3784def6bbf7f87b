// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A DiscreteDist is a discrete statistical distribution.
//
// Most discrete distributions are defined only at integral values of
// the random variable. However, some are defined at other intervals,
// so this interface takes a float64 value for the random variable.
// The probability mass function rounds down to the nearest defined
// point.
type DiscreteDist interface {
	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// defined point on the distribution.
	PMF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function Pr[X <= x].
	CDF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

var _ DiscreteDist = BinomialDist{}
