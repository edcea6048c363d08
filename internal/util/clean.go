package util

import (
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\uFEFF"

// Scraped text regularly carries Windows-1252 leftovers and typographic
// punctuation that confuse downstream keyword matching.
var charReplacements = map[string]string{
	"\u2018": "'", "\u2019": "'", "\u201C": "\"", "\u201D": "\"",
	"\u2013": "-", "\u2014": "--", "\u2026": "...", "\u00a0": " ",
	"\u0091": "'", "\u0092": "'", "\u0093": "\"", "\u0094": "\"",
	"\u0096": "-", "\u0097": "--",
}

// CleanText normalizes scraped post text: strips a UTF-8 BOM, replaces
// invalid byte sequences, and folds typographic punctuation to ASCII.
func CleanText(s string) string {
	s = strings.TrimPrefix(s, utf8BOM)

	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}

	for bad, good := range charReplacements {
		s = strings.ReplaceAll(s, bad, good)
	}
	return s
}
