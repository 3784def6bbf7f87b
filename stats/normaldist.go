// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// invSqrt2Pi is 1/sqrt(2π).
var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// PDF returns the density of d at x. It is undefined for Sigma <= 0.
func (d NormalDist) PDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return invSqrt2Pi / d.Sigma * math.Exp(-0.5*z*z)
}

func (d NormalDist) CDF(x float64) float64 {
	return d.gonum().CDF(x)
}

// InvCDF returns the quantile of d at y. y must be in [0, 1]; 0 and
// 1 map to -Inf and +Inf.
func (d NormalDist) InvCDF(y float64) float64 {
	if y < 0 || y > 1 {
		return nan
	}
	if y == 0 {
		return -inf
	}
	if y == 1 {
		return inf
	}
	return d.gonum().Quantile(y)
}

func (d NormalDist) gonum() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
}
