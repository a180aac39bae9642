// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

// Dosage is a target genotype entry: the number of alternate alleles
// carried by an individual at a marker, or Missing if unobserved.
type Dosage int8

// Missing marks an unobserved target entry.
const Missing Dosage = -1

// TargetMatrix is a marker-major P×N matrix of target genotypes with
// entries in {0,1,2,Missing}.
type TargetMatrix struct {
	Markers int
	Samples []string
	Data    []Dosage // Data[marker*N+sample]
}

func NewTargetMatrix(markers int, samples []string) *TargetMatrix {
	return &TargetMatrix{
		Markers: markers,
		Samples: samples,
		Data:    make([]Dosage, markers*len(samples)),
	}
}

func (x *TargetMatrix) N() int { return len(x.Samples) }

func (x *TargetMatrix) At(marker, sample int) Dosage {
	return x.Data[marker*x.N()+sample]
}

func (x *TargetMatrix) Set(marker, sample int, v Dosage) {
	x.Data[marker*x.N()+sample] = v
}

// ReferencePanel is a marker-major P×D panel of phased reference
// haplotypes with entries in {0,1}. The number of haplotypes is twice
// the number of reference individuals.
type ReferencePanel struct {
	Markers    int
	Haplotypes int
	Data       []uint8 // Data[marker*Haplotypes+hap]
}

func NewReferencePanel(markers, haplotypes int) *ReferencePanel {
	return &ReferencePanel{
		Markers:    markers,
		Haplotypes: haplotypes,
		Data:       make([]uint8, markers*haplotypes),
	}
}

func (h *ReferencePanel) At(marker, hap int) uint8 {
	return h.Data[marker*h.Haplotypes+hap]
}

func (h *ReferencePanel) Set(marker, hap int, v uint8) {
	h.Data[marker*h.Haplotypes+hap] = v
}

// MosaicSegment is one run of a haplotype mosaic: from Start (1-based,
// plus the chunk offset) up to (but not including) the next segment's Start,
// the strand's contribution at every marker is haplotype index Hap.
type MosaicSegment struct {
	Start int
	Hap   int
}

// HaplotypeMosaic is a strand's ordered sequence of segments. Start
// values are strictly increasing; the first Start is 1 plus the
// chunk offset.
type HaplotypeMosaic []MosaicSegment

// HaplotypeMosaicPair holds the two strands of one individual. The
// labeling of strand 1 vs strand 2 is an arbitrary convention fixed at
// window 1 (see stitcher.go); callers must not attach maternal/paternal
// meaning to it.
type HaplotypeMosaicPair [2]HaplotypeMosaic

// QualityScores holds the two per-SNP quality scalars from spec.md §6:
// Typed[m] is the mean squared residual at typed marker m, Imputed[m]
// is the average of the two nearest typed scores for a non-typed
// marker.
type QualityScores struct {
	Typed   []float64
	Imputed []float64
}

// CandidatePair is a (left haplotype, right haplotype) tuple proposed
// for one target individual in one window.
type CandidatePair struct {
	Left, Right int
}

// Result is everything Phase() produces for one chunk of markers.
type Result struct {
	Mosaics  []HaplotypeMosaicPair // one per target individual, same order as the target matrix's Samples
	Imputed  *TargetMatrix         // nil unless Config.EmitImputed
	Quality  *QualityScores        // nil unless Config.EmitQuality
	Iters    []int                 // per-individual refinement iteration count actually used (C4)
}
