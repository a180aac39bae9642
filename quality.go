// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// ComputeQuality builds the two per-SNP quality scalars of spec.md §6:
// the mean squared residual across observed samples at each typed
// marker (one with at least one observed target entry), and for every
// non-typed marker the average of the two nearest typed markers' score.
func ComputeQuality(x *TargetMatrix, h *ReferencePanel, mosaics []HaplotypeMosaicPair, chunkOffset int) *QualityScores {
	typed := make([]float64, x.Markers)
	isTyped := make([]bool, x.Markers)

	for p := 0; p < x.Markers; p++ {
		var sum float64
		var count int
		for k := 0; k < x.N(); k++ {
			obs := x.At(p, k)
			if obs == Missing {
				continue
			}
			pos1 := p + 1 + chunkOffset
			h1 := mosaicHapAt(mosaics[k][0], pos1)
			h2 := mosaicHapAt(mosaics[k][1], pos1)
			pred := float64(h.At(p, h1)) + float64(h.At(p, h2))
			d := float64(obs) - pred
			sum += d * d
			count++
		}
		if count > 0 {
			typed[p] = sum / float64(count)
			isTyped[p] = true
		}
	}

	imputed := make([]float64, x.Markers)
	for p := 0; p < x.Markers; p++ {
		if isTyped[p] {
			imputed[p] = typed[p]
			continue
		}
		left, right := -1, -1
		for q := p - 1; q >= 0; q-- {
			if isTyped[q] {
				left = q
				break
			}
		}
		for q := p + 1; q < x.Markers; q++ {
			if isTyped[q] {
				right = q
				break
			}
		}
		switch {
		case left >= 0 && right >= 0:
			imputed[p] = (typed[left] + typed[right]) / 2
		case left >= 0:
			imputed[p] = typed[left]
		case right >= 0:
			imputed[p] = typed[right]
		}
	}
	return &QualityScores{Typed: typed, Imputed: imputed}
}
