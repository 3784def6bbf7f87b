// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestZCritical(t *testing.T) {
	want := map[int]float64{
		90: 1.645,
		91: 1.645,
		94: 1.645,
		95: 1.96,
		96: 1.645,
		98: 1.645,
		99: 2.576,
		0:  1.645,
	}
	for level, z := range want {
		if got := ZCritical(level); got != z {
			t.Errorf("ZCritical(%d) = %v, want %v", level, got, z)
		}
	}
}

func TestZCriticalQuantiles(t *testing.T) {
	// The table values are rounded quantiles of the standard
	// normal.
	for level, z := range map[int]float64{90: Z90, 95: Z95, 99: Z99} {
		alpha := 1 - float64(level)/100
		exact := StdNormal.InvCDF(1 - alpha/2)
		if math.Abs(exact-z) > 0.001 {
			t.Errorf("level %d: table z %v, exact %v", level, z, exact)
		}
		if got := CentralArea(z); math.Abs(got-float64(level)/100) > 0.001 {
			t.Errorf("CentralArea(%v) = %v, want %v", z, got, float64(level)/100)
		}
	}
}

func TestProportionCI(t *testing.T) {
	ci := ProportionCI(0.8, 1000, 95)
	margin := 1.96 * math.Sqrt(0.8*0.2/1000)
	if ci.Z != 1.96 || !aeq(margin, ci.Margin) || !aeq(0.8-margin, ci.Lower) || !aeq(0.8+margin, ci.Upper) {
		t.Errorf("ProportionCI(0.8, 1000, 95) = %+v", ci)
	}
	if math.Abs(ci.Margin-0.0248) > 1e-4 || math.Abs(ci.Lower-0.7752) > 1e-4 || math.Abs(ci.Upper-0.8248) > 1e-4 {
		t.Errorf("ProportionCI(0.8, 1000, 95) = %+v, want ≈ [0.7752, 0.8248] ± 0.0248", ci)
	}
}

func TestProportionCIBounds(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 5000} {
		for _, level := range []int{90, 93, 95, 99} {
			for prop := 0.0; prop <= 1; prop += 0.01 {
				ci := ProportionCI(prop, n, level)
				if !(0 <= ci.Lower && ci.Lower <= ci.Upper && ci.Upper <= 1) {
					t.Fatalf("ProportionCI(%v, %d, %d) = %+v out of order", prop, n, level, ci)
				}
			}
		}
	}

	// Clamping at the edges.
	ci := ProportionCI(0.01, 100, 99)
	if ci.Lower != 0 || ci.Margin <= 0.01 {
		t.Errorf("ProportionCI(0.01, 100, 99) = %+v, want lower clamped to 0", ci)
	}
	ci = ProportionCI(0.99, 100, 99)
	if ci.Upper != 1 {
		t.Errorf("ProportionCI(0.99, 100, 99) = %+v, want upper clamped to 1", ci)
	}
}
