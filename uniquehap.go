// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import (
	"sort"

	"golang.org/x/crypto/blake2b"
)

// UniqueHaplotypeMap is C1's per-window output: the window's marker
// range, a class-label vector mapping each haplotype column to its
// representative (the smallest column index numerically identical to
// it on this window's flanked rows), and the ordered list of distinct
// representatives.
type UniqueHaplotypeMap struct {
	Window          Window
	Class           []int // Class[hap] == representative column index
	Representatives []int // ascending
}

// BuildUniqueHaplotypeMap groups h's columns into equivalence classes
// by exact equality over w's flanked rows (spec.md §4.1). Columns are
// first bucketed by a blake2b-256 hash of their flanked bytes — the
// same content-addressing trick tilelib.go's getRef uses to avoid an
// O(D²) compare — then an exact byte compare breaks any hash
// collisions before two columns are considered equal.
func BuildUniqueHaplotypeMap(h *ReferencePanel, w Window) *UniqueHaplotypeMap {
	d := h.Haplotypes
	rows := w.FlankEnd - w.FlankStart
	class := make([]int, d)
	for i := range class {
		class[i] = -1
	}

	type bucketEntry struct {
		rep int
		col []uint8
	}
	buckets := make(map[[blake2b.Size256]byte][]bucketEntry, d)

	col := make([]uint8, rows)
	for hap := 0; hap < d; hap++ {
		for r := 0; r < rows; r++ {
			col[r] = h.At(w.FlankStart+r, hap)
		}
		sum := blake2b.Sum256(col)
		bucket := buckets[sum]
		rep := -1
		for _, e := range bucket {
			if bytesEqual(e.col, col) {
				rep = e.rep
				break
			}
		}
		if rep < 0 {
			rep = hap
			stored := make([]uint8, rows)
			copy(stored, col)
			buckets[sum] = append(bucket, bucketEntry{rep: rep, col: stored})
		}
		class[hap] = rep
	}

	reps := make([]int, 0, len(buckets))
	seen := make(map[int]bool, len(buckets))
	for _, rep := range class {
		if !seen[rep] {
			seen[rep] = true
			reps = append(reps, rep)
		}
	}
	sort.Ints(reps)

	return &UniqueHaplotypeMap{Window: w, Class: class, Representatives: reps}
}

func bytesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
