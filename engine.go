// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// windowState is C1-C6's complete per-window output, the unit of work
// in the first parallel phase.
type windowState struct {
	uniq   *UniqueHaplotypeMap
	result *WindowResult
}

// Phase runs the windowed optimizer (C1-C6) over every window in
// parallel, then the mosaic stitcher and breakpoint locator (C7-C8)
// over every individual in parallel. The imputer (C9) and the quality
// scores run afterwards in a single goroutine over all individuals.
// The two parallel phases follow the throttle-gated
// pattern of slicenumpy.go's throttleMem/throttleCPU split (spec.md
// §5).
func Phase(genoProvider GenotypeProvider, refProvider ReferenceProvider, cfg Config) (*Result, error) {
	x, err := genoProvider.Genotypes()
	if err != nil {
		return nil, err
	}
	h, err := refProvider.Reference()
	if err != nil {
		return nil, err
	}
	if x.Markers != h.Markers {
		return nil, configErrorf("mismatched marker counts: target has %d, reference has %d", x.Markers, h.Markers)
	}
	if h.Haplotypes == 0 {
		return nil, configErrorf("empty reference panel")
	}
	windows := Windows(x.Markers, cfg.Width, cfg.FlankWidth)
	if len(windows) == 0 {
		return nil, configErrorf("zero windows: width %d exceeds marker count %d", cfg.Width, x.Markers)
	}

	policy := PolicyBestSoFarTrail
	states := make([]windowState, len(windows))

	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	windowThrottle := throttle{Max: threads}
	for wi, w := range windows {
		wi, w := wi, w
		windowThrottle.Go(func() error {
			uniq := BuildUniqueHaplotypeMap(h, w)
			result := RefineWindow(x, h, w, uniq.Representatives, policy, cfg)
			states[wi] = windowState{uniq: uniq, result: result}
			return nil
		})
	}
	if err := windowThrottle.Wait(); err != nil {
		return nil, err
	}

	n := x.N()
	mosaics := make([]HaplotypeMosaicPair, n)
	iters := make([]int, n)
	chunkOffset := refProvider.ChunkHint().ChunkOffset

	individualThrottle := throttle{Max: threads}
	for k := 0; k < n; k++ {
		k := k
		individualThrottle.Go(func() error {
			mosaics[k], iters[k] = stitchIndividual(x, h, windows, states, cfg, k, chunkOffset)
			return nil
		})
	}
	if err := individualThrottle.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Mosaics: mosaics, Iters: iters}
	if cfg.EmitImputed {
		result.Imputed = Impute(x, h, mosaics, chunkOffset, cfg.ImputeMode)
	}
	if cfg.EmitQuality {
		result.Quality = ComputeQuality(x, h, mosaics, chunkOffset)
	}
	return result, nil
}

// stitchIndividual builds individual k's per-window candidate structures,
// runs the configured stitcher, and assembles the finalized mosaic.
func stitchIndividual(x *TargetMatrix, h *ReferencePanel, windows []Window, states []windowState, cfg Config, k, chunkOffset int) (HaplotypeMosaicPair, int) {
	maxIter := 0
	for _, st := range states {
		if it := st.result.Iters[k]; it > maxIter {
			maxIter = it
		}
	}

	if len(windows) == 1 {
		surv := states[0].result.Candidates[k]
		if len(surv) == 0 {
			return HaplotypeMosaicPair{}, maxIter
		}
		single := []StitchedWindow{{Strand1: surv[0].Left, Strand2: surv[0].Right}}
		return BuildMosaicPair(windows, single, chunkOffset), maxIter
	}

	var stitched []StitchedWindow
	if cfg.FastMethod {
		cand1 := make([]bitset, len(windows))
		cand2 := make([]bitset, len(windows))
		for wi, st := range states {
			surv := st.result.Candidates[k]
			if cfg.UniqueOnly {
				cand1[wi], cand2[wi] = UniqueFast(h.Haplotypes, surv)
			} else {
				cand1[wi], cand2[wi] = CombineFast(st.uniq.Class, surv)
			}
		}
		stitched = StitchFast(x, h, windows, cand1, cand2, k)
	} else {
		lists := make([][]CandidatePair, len(windows))
		for wi, st := range states {
			surv := st.result.Candidates[k]
			if cfg.UniqueOnly {
				lists[wi] = UniqueDP(surv)
			} else {
				lists[wi] = CombineDP(st.uniq.Class, surv, cfg.MaxCandidates, cfg.RandSeed)
			}
		}
		stitched = StitchDP(x, h, windows, lists, 1.0, k)
	}
	return BuildMosaicPair(windows, stitched, chunkOffset), maxIter
}
