// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// BuildMosaicPair walks one individual's per-window stitched choices
// and C8 breakpoints into the finalized HaplotypeMosaicPair (spec.md
// §4.7/§4.8). windows[0]'s choice seeds both strands at marker 1
// (translated by chunkOffset); a join's Crossed flag toggles which
// mosaic slot the window's physical strand-1/strand-2 values attach to,
// so a strand's sequence of segments tracks one continuous lineage
// even across a relabeled join.
func BuildMosaicPair(windows []Window, stitched []StitchedWindow, chunkOffset int) HaplotypeMosaicPair {
	var mosaic [2]HaplotypeMosaic
	flip := false
	slot := func(physical int) int {
		if flip {
			return 1 - physical
		}
		return physical
	}

	start0 := windows[0].Start + 1 + chunkOffset
	mosaic[slot(0)] = append(mosaic[slot(0)], MosaicSegment{Start: start0, Hap: stitched[0].Strand1})
	mosaic[slot(1)] = append(mosaic[slot(1)], MosaicSegment{Start: start0, Hap: stitched[0].Strand2})

	for w := 1; w < len(windows); w++ {
		bp := stitched[w].Breakpoint
		if bp == nil {
			continue
		}
		if bp.Crossed {
			flip = !flip
		}
		if bp.NoSwitch {
			continue
		}
		joinStart := windows[w-1].Start + chunkOffset
		if bp.B1 >= 0 {
			mosaic[slot(0)] = append(mosaic[slot(0)], MosaicSegment{Start: joinStart + bp.B1 + 1, Hap: stitched[w].Strand1})
		}
		if bp.B2 >= 0 {
			mosaic[slot(1)] = append(mosaic[slot(1)], MosaicSegment{Start: joinStart + bp.B2 + 1, Hap: stitched[w].Strand2})
		}
	}
	return HaplotypeMosaicPair{mosaic[0], mosaic[1]}
}

// mosaicHapAt returns the haplotype index in effect at 1-based
// position pos1 (chunk offset included, as in the segments' Start), or
// -1 if pos1 precedes the mosaic's
// first segment.
func mosaicHapAt(m HaplotypeMosaic, pos1 int) int {
	hap := -1
	for _, seg := range m {
		if seg.Start > pos1 {
			break
		}
		hap = seg.Hap
	}
	return hap
}

// Impute is C9: for each individual and marker, sum the two strands'
// haplotype contribution from the finalized mosaic; missing target
// entries receive that sum, observed entries are preserved or
// overwritten per mode (spec.md §4.9).
func Impute(x *TargetMatrix, h *ReferencePanel, mosaics []HaplotypeMosaicPair, chunkOffset int, mode ImputeMode) *TargetMatrix {
	out := NewTargetMatrix(x.Markers, x.Samples)
	copy(out.Data, x.Data)
	for k := range mosaics {
		for p := 0; p < x.Markers; p++ {
			if mode != OverwriteAll && out.At(p, k) != Missing {
				continue
			}
			pos1 := p + 1 + chunkOffset
			h1 := mosaicHapAt(mosaics[k][0], pos1)
			h2 := mosaicHapAt(mosaics[k][1], pos1)
			out.Set(p, k, Dosage(h.At(p, h1))+Dosage(h.At(p, h2)))
		}
	}
	return out
}
