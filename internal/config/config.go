// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the TOML-based configuration shared by the
// hunspellgo command-line tools, in the shape citar's own cmd/common
// configuration layer uses.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/az-ai-labs/hunspellgo/internal/cliutil"
)

// SpellerConfig stores the paths and behavioral switches a hunspellgo
// command needs to build a speller.
type SpellerConfig struct {
	Aff              string
	Dic              string
	AllowNosuggest   bool   `toml:"allow_nosuggest"`
	SuggestionLimit  int    `toml:"suggestion_limit"`
	EncodingOverride string `toml:"encoding"`
}

func defaultConfiguration() *SpellerConfig {
	return &SpellerConfig{
		Aff:             "dictionary.aff",
		Dic:             "dictionary.dic",
		AllowNosuggest:  true,
		SuggestionLimit: 5,
	}
}

// MustParseConfig parses filename or exits the process with a fatal
// error, in the style the rest of the hunspellgo CLI tools use.
func MustParseConfig(filename string) *SpellerConfig {
	f, err := os.Open(filename)
	cliutil.ExitIfError("cannot open configuration file", err)
	defer f.Close()

	config, err := ParseConfig(f)
	cliutil.ExitIfError("cannot parse configuration file", err)

	config.Aff = relToConfig(filename, config.Aff)
	config.Dic = relToConfig(filename, config.Dic)

	return config
}

// ParseConfig decodes a SpellerConfig from reader, starting from
// defaultConfiguration so unset TOML keys keep sane values.
func ParseConfig(reader io.Reader) (*SpellerConfig, error) {
	config := defaultConfiguration()
	if _, err := toml.DecodeReader(reader, config); err != nil {
		return config, err
	}
	return config, nil
}

// relToConfig resolves filePath relative to the directory configPath
// lives in, unless filePath is already absolute.
func relToConfig(configPath, filePath string) string {
	if len(filePath) == 0 {
		return filePath
	}
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(filepath.Dir(configPath), filePath)
}
