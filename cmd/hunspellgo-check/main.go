// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/dic"
	"github.com/az-ai-labs/hunspellgo/internal/cliutil"
	"github.com/az-ai-labs/hunspellgo/internal/config"
	"github.com/az-ai-labs/hunspellgo/speller"
	"github.com/az-ai-labs/hunspellgo/suggest"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] config [input]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var suggestFlag = flag.Bool("suggest", false, "print suggestions for rejected words")
var nosuggestFlag = flag.Bool("allow-nosuggest", true, "accept NOSUGGEST-flagged entries as correct")

func main() {
	flag.Parse()

	if flag.NArg() == 0 || flag.NArg() > 2 {
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

	var sg *suggest.Suggester
	if *suggestFlag {
		sg = suggest.New(sp, cfg.SuggestionLimit)
	}

	input := fileOrStdin(flag.Args(), 1)
	defer input.Close()

	allowNosuggest := *nosuggestFlag && cfg.AllowNosuggest

	scanner := bufio.NewScanner(input)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		if sp.Lookup(word, allowNosuggest) {
			fmt.Fprintf(writer, "*\n")
			continue
		}

		if sg == nil {
			fmt.Fprintf(writer, "&\n")
			continue
		}

		suggestions := sg.Suggest(word)
		fmt.Fprintf(writer, "& %s\n", joinComma(suggestions))
	}
	cliutil.ExitIfError("error reading input", scanner.Err())
}

func fileOrStdin(args []string, idx int) *os.File {
	if len(args) > idx && args[idx] != "" && args[idx] != "-" {
		f, err := os.Open(args[idx])
		cliutil.ExitIfError("cannot open input", err)
		return f
	}
	return os.Stdin
}

func joinComma(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += ", "
		}
		out += w
	}
	return out
}
