// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/dic"
	"github.com/az-ai-labs/hunspellgo/internal/cliutil"
	"github.com/az-ai-labs/hunspellgo/internal/config"
	"github.com/az-ai-labs/hunspellgo/speller"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] config wordlist\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var repeat = flag.Int("repeat", 1, "number of passes over the word list")

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.MustParseConfig(flag.Arg(0))

	affFile, err := os.Open(cfg.Aff)
	cliutil.ExitIfError("cannot open affix file", err)
	defer affFile.Close()

	a, err := aff.Parse(affFile)
	cliutil.ExitIfError("cannot parse affix file", err)

	dicFile, err := os.Open(cfg.Dic)
	cliutil.ExitIfError("cannot open dictionary file", err)
	defer dicFile.Close()

	d, err := dic.Parse(dicFile)
	cliutil.ExitIfError("cannot parse dictionary file", err)

	sp, err := speller.New(a, d)
	cliutil.ExitIfError("cannot compile speller", err)

	words, err := readWords(flag.Arg(1))
	cliutil.ExitIfError("cannot read word list", err)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		cliutil.ExitIfError("cannot create CPU profile", err)
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	var accepted, rejected uint64
	start := time.Now()

	for pass := 0; pass < *repeat; pass++ {
		for _, w := range words {
			if sp.Lookup(w, true) {
				accepted++
			} else {
				rejected++
			}
		}
	}

	elapsed := time.Since(start)
	total := accepted + rejected

	fmt.Printf("words: %d, accepted: %d, rejected: %d\n", total, accepted, rejected)
	fmt.Printf("elapsed: %s, %.0f lookups/s\n", elapsed, float64(total)/elapsed.Seconds())
}

func readWords(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := scanner.Text(); w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}
