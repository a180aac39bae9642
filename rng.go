// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import "golang.org/x/exp/rand"

// sampleWithoutReplacement returns at most k indices in [0,n), uniformly
// sampled without replacement, using a partial Fisher-Yates shuffle
// seeded deterministically the same way chisquare.go seeds distuv.ChiSquared
// (rand.NewSource(seed)), so C6's DP candidate cap is reproducible across
// runs given the same Config.RandSeed.
func sampleWithoutReplacement(n, k int, seed int64) []int {
	if k >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	src := rand.New(rand.NewSource(uint64(seed)))
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
