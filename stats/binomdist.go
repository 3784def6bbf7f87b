// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/aclements/binomsim/mathx"
)

// WindowSigmas is the half-width, in standard deviations, of the
// support window returned by BinomialDist.Window.
const WindowSigmas = 4

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
//
// At P=0 or P=1 this relies on math.Pow(0, 0) = 1, so the single
// certain outcome has probability 1.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return mathx.Choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}
	// The regularized incomplete beta is undefined at its
	// endpoints, where the answer is trivial anyway.
	switch d.P {
	case 0:
		return 1
	case 1:
		return 0
	}
	return mathext.RegIncBeta(float64(d.N-ki), k+1, 1-d.P)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

func (d BinomialDist) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Window returns the inclusive range of k within WindowSigmas
// standard deviations of the mean, clipped to [0, d.N]. Tails outside
// the window are dropped.
//
// If lo > hi, the window is empty. That only happens for parameters
// outside the distribution's domain.
func (d BinomialDist) Window() (lo, hi int) {
	mean, sd := d.Mean(), d.StdDev()
	if math.IsNaN(mean) || math.IsNaN(sd) {
		return 0, -1
	}
	lo = int(math.Max(0, math.Floor(mean-WindowSigmas*sd)))
	hi = int(math.Min(float64(d.N), math.Ceil(mean+WindowSigmas*sd)))
	return
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: d.StdDev()}
}
