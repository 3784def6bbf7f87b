// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explorer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Param identifies one of the four input parameters.
type Param int

const (
	ParamN Param = iota
	ParamP
	ParamSampleSize
	ParamConfidence

	numParams
)

var paramNames = [numParams]string{
	ParamN:          "n",
	ParamP:          "p",
	ParamSampleSize: "sample_size",
	ParamConfidence: "confidence",
}

func (p Param) String() string {
	if p < 0 || p >= numParams {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

// ErrUnknownParam is returned by ParseChange for a name that is not a
// parameter.
var ErrUnknownParam = errors.New("unknown parameter")

// A Change is a single parameter-change event: parameter Param takes
// value Value. For the integer parameters n, sample_size and
// confidence, Value holds a whole number.
type Change struct {
	Param Param
	Value float64
}

func (c Change) String() string {
	return fmt.Sprintf("%s=%v", c.Param, c.Value)
}

// Apply returns a copy of p with the change applied.
func (c Change) Apply(p Params) Params {
	switch c.Param {
	case ParamN:
		p.N = int(c.Value)
	case ParamP:
		p.P = c.Value
	case ParamSampleSize:
		p.SampleSize = int(c.Value)
	case ParamConfidence:
		p.ConfidenceLevel = int(c.Value)
	}
	return p
}

// ParseChange parses a change event of the form "name=value", where
// name is one of n, p, sample_size or confidence. A trailing "%" on
// the value is ignored.
func ParseChange(s string) (Change, error) {
	name, val, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return Change{}, fmt.Errorf("change %q: want name=value", s)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	var c Change
	found := false
	for i, pn := range paramNames {
		if name == pn {
			c.Param, found = Param(i), true
			break
		}
	}
	if !found {
		return Change{}, fmt.Errorf("change %q: %w %q", s, ErrUnknownParam, name)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(val), "%"), 64)
	if err != nil {
		return Change{}, fmt.Errorf("change %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Change{}, fmt.Errorf("change %q: %w: %v", s, ErrOutOfDomain, v)
	}
	if c.Param != ParamP && v != math.Trunc(v) {
		return Change{}, fmt.Errorf("change %q: %w: %s must be a whole number", s, ErrOutOfDomain, c.Param)
	}
	c.Value = v
	return c, nil
}
