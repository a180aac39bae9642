// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// ObservedError computes Σ_p (X[p,k]-H[p,left]-H[p,right])² over
// observed positions only, within window w's unflanked rows.
func ObservedError(x *TargetMatrix, h *ReferencePanel, w Window, k int, left, right int) float64 {
	var sum float64
	for p := w.Start; p < w.End; p++ {
		obs := x.At(p, k)
		if obs == Missing {
			continue
		}
		d := float64(obs) - float64(h.At(p, left)) - float64(h.At(p, right))
		sum += d * d
	}
	return sum
}

// RescoreObserved is C5: restricts scoring to non-missing target
// positions and keeps only the candidates tying for the minimum
// observed error (spec.md §4.5).
func RescoreObserved(x *TargetMatrix, h *ReferencePanel, w Window, k int, candidates []ScoredPair) []ScoredPair {
	if len(candidates) == 0 {
		return nil
	}
	errs := make([]float64, len(candidates))
	min := -1.0
	for i, c := range candidates {
		e := ObservedError(x, h, w, k, c.Left, c.Right)
		errs[i] = e
		if min < 0 || e < min {
			min = e
		}
	}
	var out []ScoredPair
	for i, c := range candidates {
		if errs[i] == min {
			out = append(out, c)
		}
	}
	return out
}
