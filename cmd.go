// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import (
	"encoding/gob"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"git.arvados.org/arvados.git/lib/cmd"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

var handler = cmd.Multi(map[string]cmd.Handler{
	"version":   cmd.Version,
	"-version":  cmd.Version,
	"--version": cmd.Version,

	"phase":       &phasecmd{},
	"dump-mosaic": &dumpMosaicCmd{},
})

// Main is phasewright's entry point, dispatched to by cmd/phasewright.
func Main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		log.StandardLogger().Formatter = &log.TextFormatter{DisableTimestamp: true}
	}
	if len(os.Args) >= 2 && !strings.HasSuffix(os.Args[1], "version") {
		cmd.Version.RunCommand("phasewright", nil, nil, os.Stderr, os.Stderr)
	}
	os.Exit(handler.RunCommand(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// phasecmd runs the windowed optimizer and stitcher end to end over a
// provider pair read from gob files, emitting a mosaic file and
// optionally the imputed matrix and quality scores.
type phasecmd struct{}

func (c *phasecmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config = DefaultConfig()
	var genotypesPath, referencePath, mosaicOut, imputedOut, qualityOut, pprofAddr string
	var gz bool
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&genotypesPath, "genotypes", "", "gob file containing the target matrix")
	flags.StringVar(&referencePath, "reference", "", "gob file containing the reference panel")
	flags.BoolVar(&gz, "gz", true, "input files are pgzip-compressed")
	flags.StringVar(&mosaicOut, "out-mosaic", "", "output path for the gob-encoded mosaic list")
	flags.StringVar(&imputedOut, "out-imputed", "", "output path for the imputed matrix (.npy), requires -emit-imputed")
	flags.StringVar(&qualityOut, "out-quality", "", "output path for per-SNP quality scores (.npy), requires -emit-quality")
	flags.StringVar(&pprofAddr, "pprof", "", "serve Go profiling tools at this address")
	cfg.Flags(flags)
	err := flags.Parse(args)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}
	cfg.ResolveFlags()
	if pprofAddr != "" {
		go func() { log.Println(http.ListenAndServe(pprofAddr, nil)) }()
	}
	if genotypesPath == "" || referencePath == "" {
		fmt.Fprintln(stderr, "-genotypes and -reference are required")
		return 2
	}

	genoFile, err := os.Open(genotypesPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer genoFile.Close()
	refFile, err := os.Open(referencePath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer refFile.Close()

	genoProvider, _, err := LoadProviders(genoFile, gz)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	_, refProvider, err := LoadProviders(refFile, gz)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log.Infof("phasing: width=%d flank=%d threads=%d", cfg.Width, cfg.FlankWidth, cfg.Threads)
	result, err := Phase(genoProvider, refProvider, cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if mosaicOut != "" {
		f, err := os.Create(mosaicOut)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer f.Close()
		if err := gob.NewEncoder(f).Encode(result.Mosaics); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if imputedOut != "" && result.Imputed != nil {
		if err := writeTargetMatrixNpy(imputedOut, result.Imputed); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if qualityOut != "" && result.Quality != nil {
		if err := writeQualityNpy(qualityOut, result.Quality); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	log.Infof("done: %d individuals", len(result.Mosaics))
	return 0
}

// dumpMosaicCmd pretty-prints a gob-encoded mosaic list, mirroring the
// teacher's dump.go.
type dumpMosaicCmd struct{}

func (c *dumpMosaicCmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(stderr)
	var path string
	flags.StringVar(&path, "in", "", "gob file containing a []HaplotypeMosaicPair")
	err := flags.Parse(args)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}
	if path == "" {
		fmt.Fprintln(stderr, "-in is required")
		return 2
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer f.Close()
	var mosaics []HaplotypeMosaicPair
	if err := gob.NewDecoder(f).Decode(&mosaics); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for i, pair := range mosaics {
		fmt.Fprintf(stdout, "individual %d\n", i)
		for strand, mosaic := range pair {
			fmt.Fprintf(stdout, "  strand %d:", strand)
			for _, seg := range mosaic {
				fmt.Fprintf(stdout, " %d->hap%d", seg.Start, seg.Hap)
			}
			fmt.Fprintln(stdout)
		}
	}
	return 0
}
