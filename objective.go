// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import "gonum.org/v1/gonum/mat"

// Objective holds the dense M (pairwise haplotype cross-terms) and N
// (target-against-haplotype inner products) matrices from spec.md
// §4.2, restricted to one window's representative columns.
//
// score(k,i,j) = M.At(i,j) - N.At(k,i) - N.At(k,j)
//
// is the sum-of-squares error of hypothesizing haplotype pair (i,j) for
// target k, minus the squared norm of target k's Xfloat column (a
// constant for each target that does not depend on (i,j)).
type Objective struct {
	Reps []int // Representatives, in the order rows/cols of M/N are indexed
	M    *mat.SymDense
	N    *mat.Dense // N.At(k, i): samples × len(Reps)
}

// BuildObjective computes M and N for window w's representative
// columns against h and xfloat, the same way pca.go builds a
// mat.Dense from a flat []int16 array before feeding it to gonum.
func BuildObjective(h *ReferencePanel, w Window, reps []int, xfloat *mat.Dense) *Objective {
	rows := w.Len()
	d := len(reps)
	hd := mat.NewDense(rows, d, nil)
	for col, hap := range reps {
		for r := 0; r < rows; r++ {
			hd.Set(r, col, float64(h.At(w.Start+r, hap)))
		}
	}

	// gram[i][j] = h_i . h_j
	var gram mat.Dense
	gram.Mul(hd.T(), hd)

	m := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			if i == j {
				m.SetSym(i, j, 4*gram.At(i, i))
			} else {
				m.SetSym(i, j, gram.At(i, i)+gram.At(j, j)+2*gram.At(i, j))
			}
		}
	}

	var n mat.Dense
	n.Mul(xfloat.T(), hd) // samples × d, N'[k,i] = Xfloat[:,k] . h_i
	n.Scale(2, &n)

	return &Objective{Reps: reps, M: m, N: &n}
}

func (o *Objective) score(k, i, j int) float64 {
	return o.M.At(i, j) - o.N.At(k, i) - o.N.At(k, j)
}
