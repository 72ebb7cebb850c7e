// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hunspellgo provides a Hunspell-compatible affix/dictionary
// compiler and spellchecking lookup core.
//
// An Aff/Dic pair compiled with the aff and dic packages drives a
// speller.Speller, which recognizes whether a surface word is a valid
// form of a dictionary stem: through affix stripping (package stem),
// compound recognition by flags or by COMPOUNDRULE patterns (package
// compound), and the capitalization/ICONV/BREAK handling the top-level
// recognizer applies before and around that analysis.
package hunspellgo
