// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// BreakpointResult is C8's verdict for one window join. B1/B2 are the
// 0-based offsets (within the joined [prev.Start, next.End) interval)
// of a switch on strand 1/2 respectively, or -1 when that strand does
// not switch across this join. B1/B2 are labeled by the mosaic slot
// each lands in once BuildMosaicPair applies Crossed's slot toggle,
// not by which of prevS1/prevS2 fed the underlying scan. Crossed
// records that the lower-index orientation required swapping which
// strand is "1" vs "2" going forward; StitchFast/StitchDP store it
// unread, and BuildMosaicPair uses it to keep each mosaic slot on one
// physical strand. An offset landing exactly at the far edge of the interval
// (b==length) is indistinguishable from no switch at all and is
// suppressed: the result collapses to NoSwitch (spec.md §4.8).
type BreakpointResult struct {
	NoSwitch bool
	Crossed  bool
	B1, B2   int
	Err      float64
}

// LocateBreakpoint implements C8 (spec.md §4.8): given the previous and
// next windows' selected haplotype pair, decides whether 0, 1, or 2
// strands switch across the join and locates the switch offset(s).
func LocateBreakpoint(x *TargetMatrix, h *ReferencePanel, prev, next Window, k int, prevS1, prevS2, nextS1, nextS2 int) *BreakpointResult {
	if prevS1 == nextS1 && prevS2 == nextS2 {
		return &BreakpointResult{NoSwitch: true, B1: -1, B2: -1}
	}
	if prevS1 == nextS2 && prevS2 == nextS1 {
		return &BreakpointResult{NoSwitch: true, Crossed: true, B1: -1, B2: -1}
	}

	start := prev.Start
	length := prev.Len() + next.Len()

	switch {
	case prevS1 == nextS1: // strand 1 fixed, strand 2 switches prevS2 -> nextS2
		b, err := bestSingleBreakpoint(x, h, start, length, k, prevS1, prevS2, nextS2)
		if b == length { // offset at the far edge: no switch within the interval (spec.md §4.8)
			return &BreakpointResult{NoSwitch: true, B1: -1, B2: -1, Err: err}
		}
		return &BreakpointResult{B1: -1, B2: b, Err: err}
	case prevS2 == nextS2: // strand 2 fixed, strand 1 switches prevS1 -> nextS1
		b, err := bestSingleBreakpoint(x, h, start, length, k, prevS2, prevS1, nextS1)
		if b == length {
			return &BreakpointResult{NoSwitch: true, B1: -1, B2: -1, Err: err}
		}
		return &BreakpointResult{B1: b, B2: -1, Err: err}
	case prevS1 == nextS2: // crossed: strand 1's haplotype carries over as next's strand 2
		b, err := bestSingleBreakpoint(x, h, start, length, k, prevS1, prevS2, nextS1)
		if b == length {
			return &BreakpointResult{NoSwitch: true, Crossed: true, B1: -1, B2: -1, Err: err}
		}
		// the switching strand (prevS2 -> nextS1) lands in mosaic slot 0 once
		// BuildMosaicPair's Crossed toggle flips which slot strand 1 maps to
		return &BreakpointResult{Crossed: true, B1: b, B2: -1, Err: err}
	case prevS2 == nextS1: // crossed: strand 2's haplotype carries over as next's strand 1
		b, err := bestSingleBreakpoint(x, h, start, length, k, prevS2, prevS1, nextS2)
		if b == length {
			return &BreakpointResult{NoSwitch: true, Crossed: true, B1: -1, B2: -1, Err: err}
		}
		// the switching strand (prevS1 -> nextS2) lands in mosaic slot 1 once
		// BuildMosaicPair's Crossed toggle flips which slot strand 2 maps to
		return &BreakpointResult{Crossed: true, B1: -1, B2: b, Err: err}
	default: // double switch: try both orientations, prefer direct on a tie
		b1d, b2d, errD := bestDoubleBreakpoint(x, h, start, length, k, prevS1, nextS1, prevS2, nextS2)
		b1c, b2c, errC := bestDoubleBreakpoint(x, h, start, length, k, prevS1, nextS2, prevS2, nextS1)
		if errD <= errC {
			if b1d == length && b2d == length {
				return &BreakpointResult{NoSwitch: true, B1: -1, B2: -1, Err: errD}
			}
			return &BreakpointResult{B1: b1d, B2: b2d, Err: errD}
		}
		if b1c == length && b2c == length {
			return &BreakpointResult{NoSwitch: true, Crossed: true, B1: -1, B2: -1, Err: errC}
		}
		// b1c is prevS1->nextS2 (slot 1 post-toggle), b2c is prevS2->nextS1 (slot 0 post-toggle)
		return &BreakpointResult{Crossed: true, B1: b2c, B2: b1c, Err: errC}
	}
}

// bestSingleBreakpoint scans b in [0,length] for the offset minimizing
// Σ(X[p]-H[p,fixed]-switching[p])², switching[p]=oldHap for p<b, newHap
// for p>=b. Positions where oldHap and newHap agree contribute the same
// term for every b and are folded into a constant baseline instead of
// rescanned (spec.md §4.8).
func bestSingleBreakpoint(x *TargetMatrix, h *ReferencePanel, start, length, k, fixedHap, oldHap, newHap int) (int, float64) {
	baseErr := 0.0
	var discPos []int
	for o := 0; o < length; o++ {
		p := start + o
		obs := x.At(p, k)
		if obs == Missing {
			continue
		}
		oldA, newA := h.At(p, oldHap), h.At(p, newHap)
		if oldA == newA {
			d := float64(obs) - float64(h.At(p, fixedHap)) - float64(oldA)
			baseErr += d * d
			continue
		}
		discPos = append(discPos, o)
	}

	bestB, bestErr := 0, -1.0
	for b := 0; b <= length; b++ {
		sum := baseErr
		for _, o := range discPos {
			p := start + o
			obs := x.At(p, k)
			var sw uint8
			if o < b {
				sw = h.At(p, oldHap)
			} else {
				sw = h.At(p, newHap)
			}
			d := float64(obs) - float64(h.At(p, fixedHap)) - float64(sw)
			sum += d * d
		}
		if bestErr < 0 || sum < bestErr {
			bestErr, bestB = sum, b
		}
		if bestErr == 0 {
			break
		}
	}
	return bestB, bestErr
}

// bestDoubleBreakpoint nested-scans (b1,b2) in [0,length]² minimizing
// the joint observed error when both strands switch (oldA->newA on
// strand 1 at b1, oldB->newB on strand 2 at b2).
func bestDoubleBreakpoint(x *TargetMatrix, h *ReferencePanel, start, length, k, oldA, newA, oldB, newB int) (int, int, float64) {
	bestB1, bestB2, bestErr := 0, 0, -1.0
	for b1 := 0; b1 <= length; b1++ {
		for b2 := 0; b2 <= length; b2++ {
			var sum float64
			for o := 0; o < length; o++ {
				p := start + o
				obs := x.At(p, k)
				if obs == Missing {
					continue
				}
				var s1, s2 uint8
				if o < b1 {
					s1 = h.At(p, oldA)
				} else {
					s1 = h.At(p, newA)
				}
				if o < b2 {
					s2 = h.At(p, oldB)
				} else {
					s2 = h.At(p, newB)
				}
				d := float64(obs) - float64(s1) - float64(s2)
				sum += d * d
			}
			if bestErr < 0 || sum < bestErr {
				bestErr, bestB1, bestB2 = sum, b1, b2
			}
			if bestErr == 0 {
				return bestB1, bestB2, 0
			}
		}
	}
	return bestB1, bestB2, bestErr
}
