// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the binomial distribution, its normal
// approximation, and the proportion confidence interval used to
// summarize a binomial experiment.
package stats // import "github.com/aclements/binomsim/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
