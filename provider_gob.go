// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import (
	"bufio"
	"encoding/gob"
	"io"
	"io/ioutil"

	"github.com/klauspost/pgzip"
)

// providerEntry is one gob-encoded record of a serialized chunk: a
// target matrix and the reference panel it phases against, stored
// together so a chunk's genotypes and haplotypes never drift apart.
// This is the on-disk shape GobGenotypeProvider and GobReferenceProvider
// both read, mirroring the teacher's LibraryEntry streaming record.
type providerEntry struct {
	Target *TargetMatrix
	Panel  *ReferencePanel
	Chunk  ChunkHint
}

// DecodeProviderEntries streams providerEntry records from rdr, gzip
// (pgzip) decompressing first if gz is true, the same shape as the
// teacher's DecodeLibrary.
func DecodeProviderEntries(rdr io.Reader, gz bool, cb func(*providerEntry) error) error {
	zrdr := ioutil.NopCloser(rdr)
	var err error
	if gz {
		zrdr, err = pgzip.NewReader(bufio.NewReaderSize(rdr, 1<<20))
		if err != nil {
			return err
		}
	}
	dec := gob.NewDecoder(zrdr)
	for err == nil {
		var ent providerEntry
		err = dec.Decode(&ent)
		if err == nil {
			err = cb(&ent)
		}
	}
	if err != io.EOF {
		return err
	}
	return zrdr.Close()
}

// EncodeProviderEntry appends one providerEntry to w in gob form, the
// record shape DecodeProviderEntries reads. Nothing in this package
// calls it; Phase consumes GenotypeProvider/ReferenceProvider directly.
func EncodeProviderEntry(w io.Writer, ent *providerEntry) error {
	return gob.NewEncoder(w).Encode(ent)
}

// GobGenotypeProvider adapts a single in-memory TargetMatrix to the
// GenotypeProvider interface. It is the reference implementation named
// in spec.md §6's external interfaces, used by tests and by the CLI
// when reading a whole chunk gob file at once.
type GobGenotypeProvider struct {
	Target *TargetMatrix
}

func (p *GobGenotypeProvider) Genotypes() (*TargetMatrix, error) { return p.Target, nil }

// GobReferenceProvider adapts a single in-memory ReferencePanel to the
// ReferenceProvider interface.
type GobReferenceProvider struct {
	Panel *ReferencePanel
	Hint  ChunkHint
}

func (p *GobReferenceProvider) Reference() (*ReferencePanel, error) { return p.Panel, nil }
func (p *GobReferenceProvider) ChunkHint() ChunkHint                { return p.Hint }

// LoadProviders reads the first providerEntry from rdr and wraps it in
// a matched pair of Gob providers, for the common case of one chunk per
// file.
func LoadProviders(rdr io.Reader, gz bool) (*GobGenotypeProvider, *GobReferenceProvider, error) {
	var found *providerEntry
	err := DecodeProviderEntries(rdr, gz, func(ent *providerEntry) error {
		if found == nil {
			found = ent
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if found == nil {
		return nil, nil, configErrorf("empty provider stream")
	}
	return &GobGenotypeProvider{Target: found.Target},
		&GobReferenceProvider{Panel: found.Panel, Hint: found.Chunk},
		nil
}
