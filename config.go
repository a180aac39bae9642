// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import "flag"

// ImputeMode selects C9's policy for entries that were already
// observed in the input target matrix.
type ImputeMode int

const (
	// PreserveObserved keeps the caller's observed dosage even when it
	// disagrees with the selected haplotype pair's sum. This is the
	// default (spec.md §4.9).
	PreserveObserved ImputeMode = iota
	// OverwriteAll replaces every entry, observed or missing, with the
	// selected pair's sum.
	OverwriteAll
)

// Config holds every recognized option from spec.md §6.
type Config struct {
	Width         int // window size in markers (default 400)
	FlankWidth    int // symmetric flank for equivalence classification (default ⌊0.1·Width⌋)
	FastMethod    bool // true: intersection-chain stitcher (C7 fast); false: DP stitcher
	UniqueOnly    bool // true: skip redundancy expansion (C6); mosaics choose among representatives directly
	MaxCandidates int // DP candidate list cap per window (default 1000)
	MaxIters      int // C4 refinement round bound (default 1)
	TolFun        float64 // C4 convergence tolerance (default 1e-3)
	ImputeMode    ImputeMode

	RandSeed int64 // seeds C6's capped sampler (spec.md §9 open question)
	Threads  int   // worker pool size for the two parallel phases (spec.md §5)

	EmitImputed bool // populate Result.Imputed
	EmitQuality bool // populate Result.Quality

	Chunk ChunkHint

	overwriteFlag *bool // bound by Flags, resolved by ResolveFlags
}

// DefaultConfig returns the spec.md §6 defaults.
func DefaultConfig() Config {
	return Config{
		Width:         400,
		FlankWidth:    40,
		FastMethod:    false,
		UniqueOnly:    false,
		MaxCandidates: 1000,
		MaxIters:      1,
		TolFun:        1e-3,
		ImputeMode:    PreserveObserved,
		RandSeed:      1,
		Threads:       1,
	}
}

// Flags registers Config's fields on a flag.FlagSet, following the
// teacher's convention of binding flags directly into a command's
// embedded config struct (filter.Flags in filter.go).
func (cfg *Config) Flags(flags *flag.FlagSet) {
	flags.IntVar(&cfg.Width, "width", 400, "window size in markers")
	flags.IntVar(&cfg.FlankWidth, "flankwidth", 40, "symmetric flank width used only for the equivalence test")
	flags.BoolVar(&cfg.FastMethod, "fast-method", false, "use the intersection-chain stitcher instead of the DP stitcher")
	flags.BoolVar(&cfg.UniqueOnly, "unique-only", false, "skip redundancy expansion; stitch among window representatives directly")
	flags.IntVar(&cfg.MaxCandidates, "max-candidates", 1000, "cap on DP candidate-pair list length per window")
	flags.IntVar(&cfg.MaxIters, "max-iters", 1, "maximum C4 refinement rounds")
	flags.Float64Var(&cfg.TolFun, "tolfun", 1e-3, "C4 refinement convergence tolerance")
	overwrite := flags.Bool("overwrite-observed", false, "overwrite observed target entries with the selected pair's sum instead of preserving them")
	flags.Int64Var(&cfg.RandSeed, "rand-seed", 1, "seed for C6's capped candidate sampler")
	flags.IntVar(&cfg.Threads, "threads", 1, "number of worker goroutines for the windowed and per-individual phases")
	flags.BoolVar(&cfg.EmitImputed, "emit-imputed", false, "emit the imputed target matrix")
	flags.BoolVar(&cfg.EmitQuality, "emit-quality", false, "emit per-SNP quality scores")
	cfg.overwriteFlag = overwrite
}

// ResolveFlags finalizes fields that depend on flag.Parse having run
// (mirrors the teacher's practice of post-processing flag pointers into
// struct fields, e.g. cmd.debugTag in slicenumpy.go).
func (cfg *Config) ResolveFlags() {
	if cfg.overwriteFlag != nil && *cfg.overwriteFlag {
		cfg.ImputeMode = OverwriteAll
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
}
