// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import "gopkg.in/check.v1"

type uniquehapSuite struct{}

var _ = check.Suite(&uniquehapSuite{})

func (s *uniquehapSuite) TestAllDistinctColumnsAreTheirOwnRepresentative(c *check.C) {
	h := refH([]string{"10", "01"})
	uniq := BuildUniqueHaplotypeMap(h, Window{Start: 0, End: 2, FlankStart: 0, FlankEnd: 2})
	c.Check(uniq.Class, check.DeepEquals, []int{0, 1})
	c.Check(uniq.Representatives, check.DeepEquals, []int{0, 1})
}

func (s *uniquehapSuite) TestIdenticalColumnsCollapseToLowestIndex(c *check.C) {
	h := refH([]string{"101", "010", "101"})
	uniq := BuildUniqueHaplotypeMap(h, Window{Start: 0, End: 3, FlankStart: 0, FlankEnd: 3})
	c.Check(uniq.Class, check.DeepEquals, []int{0, 1, 0})
	c.Check(uniq.Representatives, check.DeepEquals, []int{0, 1})
}

func (s *uniquehapSuite) TestEqualityIsScopedToTheFlankedWindow(c *check.C) {
	// Columns 0 and 1 agree on rows 0-1 but diverge on row 2; a window
	// whose flank excludes row 2 must still class them together, and
	// one that includes it must not.
	h := refH([]string{"11", "11", "10"})
	narrow := BuildUniqueHaplotypeMap(h, Window{Start: 0, End: 2, FlankStart: 0, FlankEnd: 2})
	c.Check(narrow.Class, check.DeepEquals, []int{0, 0})

	wide := BuildUniqueHaplotypeMap(h, Window{Start: 0, End: 2, FlankStart: 0, FlankEnd: 3})
	c.Check(wide.Class, check.DeepEquals, []int{0, 1})
}
