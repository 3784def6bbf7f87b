// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series generates plotting-ready point sequences for a
// binomial experiment: the binomial PMF over its support window, the
// normal approximation in the same units, and the standard normal
// density partitioned into confidence and critical regions.
//
// Every generator is a pure function of its arguments. The normal and
// region generators walk their domain by repeatedly adding a fixed
// step, so the number and placement of points match other renderers
// that sample the same way.
package series // import "github.com/aclements/binomsim/series"

import (
	"math"

	"github.com/aclements/binomsim/stats"
)

const (
	// NormalStep is the x step of Normal, in counts.
	NormalStep = 0.1

	// RegionStep is the z step of ConfidenceRegion.
	RegionStep = 0.05

	// RegionBound is the largest |z| sampled by ConfidenceRegion.
	RegionBound = 4.0
)

// DistributionPoint is one bar of the binomial PMF.
type DistributionPoint struct {
	K           int     `json:"k"`
	Probability float64 `json:"probability"`
	Percentage  float64 `json:"percentage"` // Probability * 100
}

// Binomial returns the PMF of B(n, p) for each k in the support window
// of stats.BinomialDist.Window, in increasing order of k. The result
// is empty, but not nil, if the window is empty.
func Binomial(n int, p float64) []DistributionPoint {
	d := stats.BinomialDist{N: n, P: p}
	lo, hi := d.Window()
	if lo > hi {
		return []DistributionPoint{}
	}
	pts := make([]DistributionPoint, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		prob := d.PMF(float64(k))
		pts = append(pts, DistributionPoint{
			K:           k,
			Probability: prob,
			Percentage:  prob * 100,
		})
	}
	return pts
}

// WindowMass returns the total probability of B(n, p) inside the
// window plotted by Binomial. 1 - WindowMass is the mass of the
// truncated tails.
func WindowMass(n int, p float64) float64 {
	d := stats.BinomialDist{N: n, P: p}
	lo, hi := d.Window()
	if lo > hi {
		return 0
	}
	return d.CDF(float64(hi)) - d.CDF(float64(lo-1))
}

// NormalPoint is one sample of the normal approximation curve.
type NormalPoint struct {
	// X is the sample position as a proportion of n.
	X float64 `json:"x"`

	// Density is the normal density at X in counts, scaled by
	// n*100 so it shares an axis with DistributionPoint.Percentage.
	Density float64 `json:"density"`
}

// Normal samples the normal approximation N(mean, stdDev²) of a
// binomial distribution with n trials, from mean-4σ to mean+4σ in
// steps of NormalStep.
//
// A degenerate distribution (stdDev not positive and finite) has no
// density to draw, so the result is empty but not nil.
func Normal(n int, mean, stdDev float64) []NormalPoint {
	if !(stdDev > 0) || math.IsInf(stdDev, 0) {
		return []NormalPoint{}
	}
	d := stats.NormalDist{Mu: mean, Sigma: stdDev}
	lo := mean - stats.WindowSigmas*stdDev
	hi := mean + stats.WindowSigmas*stdDev
	scale := float64(n) * 100

	pts := make([]NormalPoint, 0, int((hi-lo)/NormalStep)+2)
	for x := lo; x <= hi; x += NormalStep {
		pts = append(pts, NormalPoint{
			X:       x / float64(n),
			Density: d.PDF(x) * scale,
		})
	}
	return pts
}

// RegionPoint is one sample of the standard normal density. At most
// one of ConfidenceArea, CriticalLeft and CriticalRight is non-zero,
// and that one equals NormalDensity.
type RegionPoint struct {
	Z              float64 `json:"z"`
	NormalDensity  float64 `json:"normal_density"`
	ConfidenceArea float64 `json:"confidence_area"`
	CriticalLeft   float64 `json:"critical_left"`
	CriticalRight  float64 `json:"critical_right"`
}

// Region is the standard normal density split at ±ZCritical, along
// with the scalars that describe the split.
type Region struct {
	ZCritical     float64       `json:"z_critical"`
	StandardError float64       `json:"standard_error"`
	Points        []RegionPoint `json:"points"`

	// ConfidenceAreaPercent is the nominal confidence level and
	// TailPercent is what remains for the two critical tails.
	ConfidenceAreaPercent float64 `json:"confidence_area_percent"`
	TailPercent           float64 `json:"tail_percent"`

	// Coverage is the actual standard normal mass between
	// ±ZCritical, in percent. It differs from
	// ConfidenceAreaPercent for levels stats.ZCritical does not
	// recognize.
	Coverage float64 `json:"coverage"`
}

// ConfidenceRegion samples the standard normal density from
// -RegionBound to RegionBound in steps of RegionStep, assigning each
// sample to the central confidence area (|z| <= zc) or to the left or
// right critical tail, where zc = stats.ZCritical(level).
//
// stdDev and sampleSize only determine StandardError, stdDev/√sampleSize.
func ConfidenceRegion(level int, stdDev float64, sampleSize int) Region {
	zc := stats.ZCritical(level)
	pts := make([]RegionPoint, 0, int(2*RegionBound/RegionStep)+1)
	for z := -RegionBound; z <= RegionBound; z += RegionStep {
		density := stats.StdNormal.PDF(z)
		pt := RegionPoint{Z: z, NormalDensity: density}
		switch {
		case z < -zc:
			pt.CriticalLeft = density
		case z > zc:
			pt.CriticalRight = density
		default:
			pt.ConfidenceArea = density
		}
		pts = append(pts, pt)
	}
	return Region{
		ZCritical:             zc,
		StandardError:         stdDev / math.Sqrt(float64(sampleSize)),
		Points:                pts,
		ConfidenceAreaPercent: float64(level),
		TailPercent:           100 - float64(level),
		Coverage:              stats.CentralArea(zc) * 100,
	}
}
