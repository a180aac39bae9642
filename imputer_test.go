// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import "gopkg.in/check.v1"

type imputerSuite struct{}

var _ = check.Suite(&imputerSuite{})

// TestBuildMosaicPairRoutesCrossedSingleSwitch drives a real crossed
// single-switch join (prevS2==nextS1) through LocateBreakpoint and
// BuildMosaicPair together. Haplotype 1 is the strand that carries
// over unchanged (prevS2 -> nextS1); haplotype 0 is the strand that
// actually switches, to haplotype 2, partway through the join.
func (s *imputerSuite) TestBuildMosaicPairRoutesCrossedSingleSwitch(c *check.C) {
	h := refH([]string{"110", "010", "101", "001"}) // columns: hap0=1010, hap1=1100, hap2=0011
	x := NewTargetMatrix(4, []string{"ind0"})
	x.Set(0, 0, Dosage(h.At(0, 0))+Dosage(h.At(0, 1))) // 1+1=2
	x.Set(1, 0, Dosage(h.At(1, 0))+Dosage(h.At(1, 1))) // 0+1=1
	x.Set(2, 0, Dosage(h.At(2, 1))+Dosage(h.At(2, 0))) // 0+1=1, still hap0 before the switch
	x.Set(3, 0, Dosage(h.At(3, 1))+Dosage(h.At(3, 2))) // 0+1=1, switched to hap2

	prev := Window{Start: 0, End: 2}
	next := Window{Start: 2, End: 4}
	bp := LocateBreakpoint(x, h, prev, next, 0, 0, 1, 1, 2)
	c.Assert(bp.NoSwitch, check.Equals, false)
	c.Assert(bp.Crossed, check.Equals, true)
	c.Check(bp.B1, check.Equals, -1)
	c.Check(bp.B2, check.Equals, 1)
	c.Check(bp.Err, check.Equals, 0.0)

	windows := []Window{prev, next}
	stitched := []StitchedWindow{
		{Strand1: 0, Strand2: 1},
		{Strand1: 1, Strand2: 2, Breakpoint: bp},
	}
	pair := BuildMosaicPair(windows, stitched, 0)

	// The strand seeded with haplotype 0 is the one that switches, to
	// haplotype 2; the strand seeded with haplotype 1 carries over
	// untouched, since prevS2==nextS1 means it never actually switched.
	c.Assert(pair[0], check.HasLen, 2)
	c.Check(pair[0][0], check.Equals, MosaicSegment{Start: 1, Hap: 0})
	c.Check(pair[0][1], check.Equals, MosaicSegment{Start: 2, Hap: 2})
	c.Assert(pair[1], check.HasLen, 1)
	c.Check(pair[1][0], check.Equals, MosaicSegment{Start: 1, Hap: 1})
}

// TestBuildMosaicPairRoutesCrossedSingleSwitchOtherOrientation mirrors
// the above with prevS1==nextS2 (the other crossed single-switch
// case), confirming the offset is routed to B1, not B2.
func (s *imputerSuite) TestBuildMosaicPairRoutesCrossedSingleSwitchOtherOrientation(c *check.C) {
	h := refH([]string{"110", "010", "101", "001"}) // columns: hap0=1010, hap1=1100, hap2=0011
	x := NewTargetMatrix(4, []string{"ind0"})
	x.Set(0, 0, Dosage(h.At(0, 1))+Dosage(h.At(0, 0))) // 1+1=2
	x.Set(1, 0, Dosage(h.At(1, 1))+Dosage(h.At(1, 0))) // 1+0=1
	x.Set(2, 0, Dosage(h.At(2, 1))+Dosage(h.At(2, 0))) // 0+1=1, still hap0 before the switch
	x.Set(3, 0, Dosage(h.At(3, 1))+Dosage(h.At(3, 2))) // 0+1=1, switched to hap2

	prev := Window{Start: 0, End: 2}
	next := Window{Start: 2, End: 4}
	bp := LocateBreakpoint(x, h, prev, next, 0, 1, 0, 2, 1)
	c.Assert(bp.NoSwitch, check.Equals, false)
	c.Assert(bp.Crossed, check.Equals, true)
	c.Check(bp.B1, check.Equals, 1)
	c.Check(bp.B2, check.Equals, -1)
	c.Check(bp.Err, check.Equals, 0.0)

	windows := []Window{prev, next}
	stitched := []StitchedWindow{
		{Strand1: 1, Strand2: 0},
		{Strand1: 2, Strand2: 1, Breakpoint: bp},
	}
	pair := BuildMosaicPair(windows, stitched, 0)

	c.Assert(pair[1], check.HasLen, 2)
	c.Check(pair[1][0], check.Equals, MosaicSegment{Start: 1, Hap: 0})
	c.Check(pair[1][1], check.Equals, MosaicSegment{Start: 2, Hap: 2})
	c.Assert(pair[0], check.HasLen, 1)
	c.Check(pair[0][0], check.Equals, MosaicSegment{Start: 1, Hap: 1})
}
