// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// StitchedWindow is one window's finalized per-strand haplotype choice
// plus the breakpoint C8 located against the previous window (nil for
// window 0).
type StitchedWindow struct {
	Strand1, Strand2 int
	Breakpoint       *BreakpointResult
}

// StitchFast is C7's intersection-chain variant (spec.md §4.7). cand1
// and cand2 are per-window bitsets (strand 1 and strand 2
// respectively). The orientation swap and the run-flush rule work on
// copies of these slices; the caller's slices are left unchanged.
func StitchFast(x *TargetMatrix, h *ReferencePanel, windows []Window, cand1, cand2 []bitset, k int) []StitchedWindow {
	nw := len(windows)
	if nw == 0 {
		return nil
	}
	cand := [2][]bitset{
		append([]bitset(nil), cand1...),
		append([]bitset(nil), cand2...),
	}
	surviving := [2]bitset{cand[0][0], cand[1][0]}
	runStart := [2]int{0, 0}

	for w := 1; w < nw; w++ {
		A, B := surviving[0], surviving[1]
		C, D := cand[0][w], cand[1][w]
		crossed := A.and(D).popcount() + B.and(C).popcount()
		direct := A.and(C).popcount() + B.and(D).popcount()
		if crossed > direct {
			cand[0][w], cand[1][w] = cand[1][w], cand[0][w]
			C, D = D, C
		}
		this := [2]bitset{C, D}
		for s := 0; s < 2; s++ {
			next := surviving[s].and(this[s])
			if next.empty() {
				for ww := runStart[s]; ww < w; ww++ {
					cand[s][ww] = surviving[s]
				}
				surviving[s] = this[s]
				runStart[s] = w
			} else {
				surviving[s] = next
			}
		}
	}
	for s := 0; s < 2; s++ {
		for ww := runStart[s]; ww < nw; ww++ {
			cand[s][ww] = surviving[s]
		}
	}

	out := make([]StitchedWindow, nw)
	out[0] = StitchedWindow{Strand1: cand[0][0].firstSet(), Strand2: cand[1][0].firstSet()}
	for w := 1; w < nw; w++ {
		s1 := cand[0][w].firstSet()
		s2 := cand[1][w].firstSet()
		out[w] = StitchedWindow{Strand1: s1, Strand2: s2}
		out[w].Breakpoint = LocateBreakpoint(x, h, windows[w-1], windows[w], k,
			out[w-1].Strand1, out[w-1].Strand2, s1, s2)
	}
	return out
}

func switchCost(a, b, c, d int) int {
	if (a == c && b == d) || (a == d && b == c) {
		return 0
	}
	if a == c || a == d || b == c || b == d {
		return 1
	}
	return 2
}

// StitchDP is C7's dynamic-programming variant (spec.md §4.7): picks
// one CandidatePair per window minimizing total switch cost, ties
// broken toward the lower-index pair within each window's list. lambda
// uniformly scales the per-step cost and does not change the optimum;
// it is kept as an explicit parameter for parity with the source.
func StitchDP(x *TargetMatrix, h *ReferencePanel, windows []Window, lists [][]CandidatePair, lambda float64, k int) []StitchedWindow {
	nw := len(windows)
	if nw == 0 {
		return nil
	}

	dp := make([][]float64, nw)
	back := make([][]int, nw)
	dp[0] = make([]float64, len(lists[0]))
	back[0] = make([]int, len(lists[0]))
	for i := range back[0] {
		back[0][i] = -1
	}

	for w := 1; w < nw; w++ {
		dp[w] = make([]float64, len(lists[w]))
		back[w] = make([]int, len(lists[w]))
		for idx, cur := range lists[w] {
			best := -1.0
			bestPrev := 0
			for prevIdx, prev := range lists[w-1] {
				cost := dp[w-1][prevIdx] + lambda*float64(switchCost(prev.Left, prev.Right, cur.Left, cur.Right))
				if best < 0 || cost < best {
					best = cost
					bestPrev = prevIdx
				}
			}
			dp[w][idx] = best
			back[w][idx] = bestPrev
		}
	}

	last := nw - 1
	bestIdx := 0
	bestCost := dp[last][0]
	for idx, c := range dp[last] {
		if c < bestCost {
			bestCost = c
			bestIdx = idx
		}
	}
	chosen := make([]CandidatePair, nw)
	idx := bestIdx
	for w := last; w >= 0; w-- {
		chosen[w] = lists[w][idx]
		if w > 0 {
			idx = back[w][idx]
		}
	}

	out := make([]StitchedWindow, nw)
	out[0] = StitchedWindow{Strand1: chosen[0].Left, Strand2: chosen[0].Right}
	for w := 1; w < nw; w++ {
		out[w] = StitchedWindow{Strand1: chosen[w].Left, Strand2: chosen[w].Right}
		out[w].Breakpoint = LocateBreakpoint(x, h, windows[w-1], windows[w], k,
			out[w-1].Strand1, out[w-1].Strand2, out[w].Strand1, out[w].Strand2)
	}
	return out
}
