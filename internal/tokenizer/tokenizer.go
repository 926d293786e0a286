// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package tokenizer turns raw name text into an ordered token sequence.
// It lower-cases, strips indexing punctuation and honorifics, and splits on
// whitespace and hyphens. It never reorders words: order-insensitivity is
// the assignment solver's job, not the normalizer's.
package tokenizer

import (
	"strings"
	"unicode"
)

// Token is a single word-like unit extracted from a name string.
type Token struct {
	// Position is the 0-based index of the token within its name after
	// normalization. Positions are contiguous.
	Position int

	// Surface is the normalized text of the token.
	Surface string

	// Initial reports whether the token is a single letter, e.g. the "j"
	// in "j smith". Initials are scored specially.
	Initial bool
}

// Honorifics, generational suffixes, and relation words carry no identity
// signal and are dropped during tokenization.
var noiseTokens = map[string]bool{
	"mr": true, "mister": true, "mrs": true, "missus": true, "ms": true,
	"miss": true, "dr": true, "doctor": true, "prof": true, "professor": true,
	"rev": true, "reverend": true, "sir": true, "madam": true,
	"jr": true, "junior": true, "sr": true, "senior": true,
	"ii": true, "iii": true, "iv": true,
	"sister": true, "brother": true, "mother": true, "father": true,
	"the": true,
}

// Tokenize normalizes raw name text into ordered tokens. Any input,
// including empty or punctuation-only strings, yields a (possibly empty)
// token slice; there is no failure path.
func Tokenize(raw string) []Token {
	cleaned := normalize(raw)

	var tokens []Token
	for _, field := range strings.Fields(cleaned) {
		if noiseTokens[field] {
			continue
		}
		tokens = append(tokens, Token{
			Position: len(tokens),
			Surface:  field,
			Initial:  IsInitial(field),
		})
	}
	return tokens
}

// IsInitial reports whether a surface form is a single letter.
func IsInitial(surface string) bool {
	runes := []rune(surface)
	return len(runes) == 1 && unicode.IsLetter(runes[0])
}

// Join renders a token sequence back into a display string.
func Join(tokens []Token) string {
	surfaces := make([]string, len(tokens))
	for i, t := range tokens {
		surfaces[i] = t.Surface
	}
	return strings.Join(surfaces, " ")
}

// normalize lower-cases the input and maps separator punctuation to spaces.
// Apostrophes are removed outright so "o'brien" tokenizes as one word;
// hyphens become token boundaries.
func normalize(raw string) string {
	lowered := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r == '\'' || r == '’':
			// joins the surrounding fragments
		case r == '-' || r == '–':
			b.WriteRune(' ')
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// digits, commas, periods, and other indexing noise
			b.WriteRune(' ')
		}
	}
	return b.String()
}
