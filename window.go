// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// Window is a half-open marker interval [Start, End) plus a symmetric
// flanking range [FlankStart, FlankEnd) used only by C1's equivalence
// test. The first and last windows clip their flank at the marker axis
// boundary instead of padding symmetrically (spec.md §3/§4.1).
type Window struct {
	Start, End           int
	FlankStart, FlankEnd int
}

// Len returns the window's unflanked width.
func (w Window) Len() int { return w.End - w.Start }

// Windows splits [0,p) into ⌊p/width⌋ fixed-width windows, the last one
// absorbing any remainder so every marker belongs to exactly one
// window. Per spec.md §3, zero windows (width > p) is a fatal
// configuration error, surfaced by Phase rather than by this function
// so callers that only want the window list can inspect len(result)==0
// themselves.
func Windows(p, width, flank int) []Window {
	if width <= 0 || p <= 0 {
		return nil
	}
	n := p / width
	if n == 0 {
		return nil
	}
	ws := make([]Window, n)
	for i := 0; i < n; i++ {
		start := i * width
		end := start + width
		if i == n-1 {
			end = p // last window absorbs the remainder
		}
		flankStart := start - flank
		if flankStart < 0 {
			flankStart = 0
		}
		flankEnd := end + flank
		if flankEnd > p {
			flankEnd = p
		}
		ws[i] = Window{Start: start, End: end, FlankStart: flankStart, FlankEnd: flankEnd}
	}
	return ws
}
