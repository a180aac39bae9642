// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import "gopkg.in/check.v1"

type stitcherSuite struct{}

var _ = check.Suite(&stitcherSuite{})

func bs(n int, bits ...int) bitset {
	b := newBitset(n)
	for _, i := range bits {
		b.set(i)
	}
	return b
}

func (s *stitcherSuite) TestStitchFastNoSwitchContinuity(c *check.C) {
	h := NewReferencePanel(4, 2)
	x := NewTargetMatrix(4, []string{"ind0"})
	windows := []Window{{Start: 0, End: 2}, {Start: 2, End: 4}}
	cand1 := []bitset{bs(2, 0), bs(2, 0)}
	cand2 := []bitset{bs(2, 1), bs(2, 1)}
	out := StitchFast(x, h, windows, cand1, cand2, 0)
	c.Assert(out, check.HasLen, 2)
	c.Check(out[0].Strand1, check.Equals, 0)
	c.Check(out[0].Strand2, check.Equals, 1)
	c.Check(out[1].Strand1, check.Equals, 0)
	c.Check(out[1].Strand2, check.Equals, 1)
	c.Check(out[1].Breakpoint.NoSwitch, check.Equals, true)
}

// TestStitchFastCorrectsOrientation feeds window 1's candidate sets in
// swapped order; the crossed intersection is larger than the direct
// one, so StitchFast swaps them back and strand labels stay continuous.
func (s *stitcherSuite) TestStitchFastCorrectsOrientation(c *check.C) {
	h := NewReferencePanel(4, 2)
	x := NewTargetMatrix(4, []string{"ind0"})
	windows := []Window{{Start: 0, End: 2}, {Start: 2, End: 4}}
	cand1 := []bitset{bs(2, 0), bs(2, 1)} // swapped: strand 1's continuation sits in cand2
	cand2 := []bitset{bs(2, 1), bs(2, 0)}
	out := StitchFast(x, h, windows, cand1, cand2, 0)
	c.Check(out[1].Strand1, check.Equals, 0)
	c.Check(out[1].Strand2, check.Equals, 1)
	c.Check(out[1].Breakpoint.NoSwitch, check.Equals, true)
	c.Check(out[1].Breakpoint.Crossed, check.Equals, false) // orientation already corrected before LocateBreakpoint sees it
}

// TestStitchFastFlushesOnEmptyIntersection checks that a run of windows
// whose intersection goes empty gets back-filled with the surviving set
// from before the break, not left holding the single candidate that
// caused the break.
func (s *stitcherSuite) TestStitchFastFlushesOnEmptyIntersection(c *check.C) {
	h := NewReferencePanel(6, 6)
	x := NewTargetMatrix(6, []string{"ind0"})
	windows := []Window{{Start: 0, End: 2}, {Start: 2, End: 4}, {Start: 4, End: 6}}
	cand1 := []bitset{bs(6, 0, 1), bs(6, 0, 1), bs(6, 5)}
	cand2 := []bitset{bs(6, 2), bs(6, 2), bs(6, 2)}
	out := StitchFast(x, h, windows, cand1, cand2, 0)
	c.Check(out[0].Strand1, check.Equals, 0)
	c.Check(out[1].Strand1, check.Equals, 0)
	c.Check(out[2].Strand1, check.Equals, 5)
	c.Check(out[2].Strand2, check.Equals, 2)
}

func (s *stitcherSuite) TestStitchDPTieBreaksTowardLowerIndex(c *check.C) {
	h := NewReferencePanel(4, 2)
	x := NewTargetMatrix(4, []string{"ind0"})
	windows := []Window{{Start: 0, End: 2}, {Start: 2, End: 4}}
	lists := [][]CandidatePair{
		{{Left: 0, Right: 1}, {Left: 1, Right: 0}}, // unordered-equivalent, index 0 must win the tie
		{{Left: 0, Right: 1}},
	}
	out := StitchDP(x, h, windows, lists, 1.0, 0)
	c.Assert(out, check.HasLen, 2)
	c.Check(out[0].Strand1, check.Equals, 0)
	c.Check(out[0].Strand2, check.Equals, 1)
}

func (s *stitcherSuite) TestStitchDPPrefersLowerSwitchCost(c *check.C) {
	h := NewReferencePanel(4, 4)
	x := NewTargetMatrix(4, []string{"ind0"})
	windows := []Window{{Start: 0, End: 2}, {Start: 2, End: 4}}
	lists := [][]CandidatePair{
		{{Left: 0, Right: 1}},
		{{Left: 0, Right: 1}, {Left: 2, Right: 3}},
	}
	out := StitchDP(x, h, windows, lists, 1.0, 0)
	c.Check(out[1].Strand1, check.Equals, 0)
	c.Check(out[1].Strand2, check.Equals, 1)
	c.Check(out[1].Breakpoint.NoSwitch, check.Equals, true)
}
