// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// WindowResult is C3-C6's combined per-window, per-individual output:
// the surviving candidate pairs after refinement and observed-error
// rescoring, plus the iteration count each individual actually used.
type WindowResult struct {
	Candidates [][]ScoredPair // per individual, haplotype-index pairs
	Iters      []int
}

// buildXfloat materializes window w's working copy: observed entries
// as-is, missing entries replaced by the per-marker mean dosage across
// observed samples (spec.md §4.4's initialization). Shape is
// rows×samples, the orientation BuildObjective expects.
func buildXfloat(x *TargetMatrix, w Window) *mat.Dense {
	rows := w.Len()
	n := x.N()
	xf := mat.NewDense(rows, n, nil)
	for r := 0; r < rows; r++ {
		p := w.Start + r
		var sum float64
		var count int
		for k := 0; k < n; k++ {
			if v := x.At(p, k); v != Missing {
				sum += float64(v)
				count++
			}
		}
		mean := 0.0
		if count > 0 {
			mean = sum / float64(count)
		}
		for k := 0; k < n; k++ {
			if v := x.At(p, k); v != Missing {
				xf.Set(r, k, float64(v))
			} else {
				xf.Set(r, k, mean)
			}
		}
	}
	return xf
}

// imputedDiscrepancy returns Σ(xfloat-(h[left]+h[right]))² over
// window w's rows at positions missing in x for individual k — the
// "discrepancy" of glossary and §4.4 step 3.
func imputedDiscrepancy(xfloat *mat.Dense, x *TargetMatrix, h *ReferencePanel, w Window, k int, left, right int) float64 {
	rows := w.Len()
	var sum float64
	for r := 0; r < rows; r++ {
		p := w.Start + r
		if x.At(p, k) != Missing {
			continue
		}
		pred := float64(h.At(p, left)) + float64(h.At(p, right))
		d := xfloat.At(r, k) - pred
		sum += d * d
	}
	return sum
}

// applyImputation overwrites xfloat's missing-position entries for
// individual k with the chosen pair's predicted dosage.
func applyImputation(xfloat *mat.Dense, x *TargetMatrix, h *ReferencePanel, w Window, k int, left, right int) {
	rows := w.Len()
	for r := 0; r < rows; r++ {
		p := w.Start + r
		if x.At(p, k) != Missing {
			continue
		}
		xfloat.Set(r, k, float64(h.At(p, left))+float64(h.At(p, right)))
	}
}

// RefineWindow runs C4's bounded refinement loop over window w: build
// the objective against the current Xfloat, search and rescore
// candidates per individual, persist the least-disruptive imputation,
// and repeat until Config.MaxIters or convergence (spec.md §4.4).
func RefineWindow(x *TargetMatrix, h *ReferencePanel, w Window, reps []int, policy PairPolicy, cfg Config) *WindowResult {
	n := x.N()
	xfloat := buildXfloat(x, w)
	result := &WindowResult{Candidates: make([][]ScoredPair, n), Iters: make([]int, n)}
	prevObj := make([]float64, n)
	haveObj := make([]bool, n)

	maxIters := cfg.MaxIters
	if maxIters < 1 {
		maxIters = 1
	}

	for iter := 1; iter <= maxIters; iter++ {
		obj := BuildObjective(h, w, reps, xfloat)
		converged := true
		for k := 0; k < n; k++ {
			trail := SearchPairs(obj, k, policy)
			surv := RescoreObserved(x, h, w, k, trail)
			if len(surv) == 0 {
				continue
			}
			result.Candidates[k] = surv
			result.Iters[k] = iter

			chosen := surv[0]
			minDisc := imputedDiscrepancy(xfloat, x, h, w, k, chosen.Left, chosen.Right)
			for _, c := range surv[1:] {
				d := imputedDiscrepancy(xfloat, x, h, w, k, c.Left, c.Right)
				if d < minDisc {
					minDisc = d
					chosen = c
				}
			}
			applyImputation(xfloat, x, h, w, k, chosen.Left, chosen.Right)

			total := chosen.Score - minDisc
			if haveObj[k] {
				if math.Abs(total-prevObj[k]) >= cfg.TolFun*(math.Abs(prevObj[k])+1) {
					converged = false
				}
			} else {
				converged = false
			}
			prevObj[k] = total
			haveObj[k] = true
		}
		if converged {
			break
		}
	}
	return result
}
