// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explorer

import (
	"errors"
	"fmt"
	"math"
)

// Parameter domains accepted by Params.Validate.
const (
	MinN, MaxN                   = 10, 100
	MinSampleSize, MaxSampleSize = 100, 5000
	MinConfidence, MaxConfidence = 90, 99
)

// ErrOutOfDomain is returned by Params.Validate for a parameter
// outside its domain.
var ErrOutOfDomain = errors.New("parameter out of domain")

// Params are the four inputs every derived group is computed from.
//
// Params is a value. Changes replace the whole record so no
// computation can observe a partially updated set of inputs.
type Params struct {
	// N is the number of trials.
	N int `json:"n"`

	// P is the per-trial probability of success.
	P float64 `json:"p"`

	// SampleSize is the number of observations the confidence
	// interval is computed for.
	SampleSize int `json:"sample_size"`

	// ConfidenceLevel is the confidence level in percent.
	ConfidenceLevel int `json:"confidence_level"`
}

// DefaultParams returns the parameters an explorer starts with.
func DefaultParams() Params {
	return Params{N: 48, P: 0.8, SampleSize: 1000, ConfidenceLevel: 95}
}

// Validate reports whether every parameter is inside its domain. The
// computations in this module do not clamp their inputs, so callers
// accepting outside input should check it here first.
func (p Params) Validate() error {
	if p.N < MinN || p.N > MaxN {
		return fmt.Errorf("%w: n=%d not in [%d,%d]", ErrOutOfDomain, p.N, MinN, MaxN)
	}
	if math.IsNaN(p.P) || p.P < 0 || p.P > 1 {
		return fmt.Errorf("%w: p=%v not in [0,1]", ErrOutOfDomain, p.P)
	}
	if p.SampleSize < MinSampleSize || p.SampleSize > MaxSampleSize {
		return fmt.Errorf("%w: sample_size=%d not in [%d,%d]", ErrOutOfDomain, p.SampleSize, MinSampleSize, MaxSampleSize)
	}
	if p.ConfidenceLevel < MinConfidence || p.ConfidenceLevel > MaxConfidence {
		return fmt.Errorf("%w: confidence=%d not in [%d,%d]", ErrOutOfDomain, p.ConfidenceLevel, MinConfidence, MaxConfidence)
	}
	return nil
}
