// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// classMembers returns every haplotype index whose class label is rep,
// ascending.
func classMembers(class []int, rep int) []int {
	var out []int
	for hap, r := range class {
		if r == rep {
			out = append(out, hap)
		}
	}
	return out
}

// ExpandFast is C6's fast-variant expansion: two bitsets over all D
// haplotype indices, set where the class label equals left and right
// respectively (spec.md §4.6).
func ExpandFast(class []int, left, right int) (bitset, bitset) {
	return fromClass(class, left), fromClass(class, right)
}

// CombineFast unions ExpandFast's bitsets over every surviving
// candidate in surv, so ties from C5 (spec.md §8 scenario 6) keep all
// their class members available to the stitcher.
func CombineFast(class []int, surv []ScoredPair) (bitset, bitset) {
	n := len(class)
	s1, s2 := newBitset(n), newBitset(n)
	for _, c := range surv {
		b1, b2 := ExpandFast(class, c.Left, c.Right)
		for i := range s1 {
			s1[i] |= b1[i]
			s2[i] |= b2[i]
		}
	}
	return s1, s2
}

// CombineDP unions ExpandDP's cartesian products over every surviving
// candidate, then re-caps the combined list at maxCandidates.
func CombineDP(class []int, surv []ScoredPair, maxCandidates int, seed int64) []CandidatePair {
	var all []CandidatePair
	for _, c := range surv {
		all = append(all, ExpandDP(class, c.Left, c.Right, maxCandidates, seed)...)
	}
	if maxCandidates > 0 && len(all) > maxCandidates {
		idx := sampleWithoutReplacement(len(all), maxCandidates, seed)
		out := make([]CandidatePair, len(idx))
		for i, j := range idx {
			out[i] = all[j]
		}
		return out
	}
	return all
}

// UniqueFast and UniqueDP are the Config.UniqueOnly shortcuts: mosaics
// choose among window representatives directly, without expanding
// equivalence classes (spec.md §6's unique_only option).
func UniqueFast(n int, surv []ScoredPair) (bitset, bitset) {
	s1, s2 := newBitset(n), newBitset(n)
	for _, c := range surv {
		s1.set(c.Left)
		s2.set(c.Right)
	}
	return s1, s2
}

func UniqueDP(surv []ScoredPair) []CandidatePair {
	out := make([]CandidatePair, len(surv))
	for i, c := range surv {
		out[i] = CandidatePair{Left: c.Left, Right: c.Right}
	}
	return out
}

// ExpandDP is C6's DP-variant expansion: the cartesian product of the
// two equivalence classes, truncated to Config.MaxCandidates by uniform
// sampling without replacement when it overflows (spec.md §4.6, §9).
func ExpandDP(class []int, left, right int, maxCandidates int, seed int64) []CandidatePair {
	leftMembers := classMembers(class, left)
	rightMembers := classMembers(class, right)
	pairs := make([]CandidatePair, 0, len(leftMembers)*len(rightMembers))
	for _, l := range leftMembers {
		for _, r := range rightMembers {
			pairs = append(pairs, CandidatePair{Left: l, Right: r})
		}
	}
	if maxCandidates <= 0 || len(pairs) <= maxCandidates {
		return pairs
	}
	idx := sampleWithoutReplacement(len(pairs), maxCandidates, seed)
	out := make([]CandidatePair, len(idx))
	for i, j := range idx {
		out[i] = pairs[j]
	}
	return out
}
