// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// Choose returns the binomial coefficient of n and k.
//
// The product is accumulated multiplicatively over the smaller of k
// and n-k, dividing at each step, so the intermediate values stay
// near the magnitude of the result and n! is never formed.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	m := k
	if n-k < m {
		m = n - k
	}
	res := 1.0
	for i := 0; i < m; i++ {
		res = res * float64(n-i) / float64(i+1)
	}
	return res
}
