// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import "gopkg.in/check.v1"

type windowSuite struct{}

var _ = check.Suite(&windowSuite{})

func (s *windowSuite) TestWindowsEvenSplit(c *check.C) {
	ws := Windows(10, 5, 0)
	c.Assert(ws, check.HasLen, 2)
	c.Check(ws[0], check.Equals, Window{Start: 0, End: 5, FlankStart: 0, FlankEnd: 5})
	c.Check(ws[1], check.Equals, Window{Start: 5, End: 10, FlankStart: 5, FlankEnd: 10})
}

func (s *windowSuite) TestWindowsLastAbsorbsRemainder(c *check.C) {
	ws := Windows(11, 5, 0)
	c.Assert(ws, check.HasLen, 2)
	c.Check(ws[1].Start, check.Equals, 5)
	c.Check(ws[1].End, check.Equals, 11)
	c.Check(ws[1].Len(), check.Equals, 6)
}

func (s *windowSuite) TestWindowsFlankClipsAtAxisEdges(c *check.C) {
	ws := Windows(10, 5, 2)
	c.Assert(ws, check.HasLen, 2)
	c.Check(ws[0].FlankStart, check.Equals, 0) // clipped, would be -2
	c.Check(ws[0].FlankEnd, check.Equals, 7)
	c.Check(ws[1].FlankStart, check.Equals, 3)
	c.Check(ws[1].FlankEnd, check.Equals, 10) // clipped, would be 12
}

func (s *windowSuite) TestWindowsWidthExceedsMarkerCount(c *check.C) {
	c.Check(Windows(3, 5, 0), check.HasLen, 0)
}

func (s *windowSuite) TestWindowsZeroOrNegativeInputs(c *check.C) {
	c.Check(Windows(0, 5, 0), check.HasLen, 0)
	c.Check(Windows(10, 0, 0), check.HasLen, 0)
	c.Check(Windows(10, -1, 0), check.HasLen, 0)
}
