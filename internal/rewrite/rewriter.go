// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rewrite implements the heavy token rewriter: an aggressive,
// deliberately lossy normalization used only after literal-spelling
// comparison has failed. It folds diacritics, applies the configured
// letter-substitution rules, and collapses doubled letters, so spelling
// variants like "schmidt"/"smit" or "annelie"/"anneli" converge.
package rewrite

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"namematch/internal/tables"
)

// foldDiacritics strips combining marks: NFD decomposition, mark removal,
// NFC recomposition ("josé" -> "jose", "müller" -> "muller").
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Rewriter applies the heavy normalization. Read-only after construction.
type Rewriter struct {
	rules []tables.RewriteRule
}

// New builds a rewriter over the given substitution rules. Rules fire in
// order; suffix rules only at the end of a token.
func New(rules []tables.RewriteRule) *Rewriter {
	return &Rewriter{rules: rules}
}

// Rewrite produces the heavy form of a token. Single-letter tokens
// (initials) pass through untouched apart from diacritic folding, so the
// initial-matching rule keeps working on the heavy basis.
func (w *Rewriter) Rewrite(token string) string {
	folded, _, err := transform.String(foldDiacritics, token)
	if err != nil {
		folded = token
	}

	if len([]rune(folded)) <= 1 {
		return folded
	}

	out := folded
	for _, rule := range w.rules {
		if rule.Suffix {
			if strings.HasSuffix(out, rule.From) {
				out = out[:len(out)-len(rule.From)] + rule.To
			}
			continue
		}
		out = strings.ReplaceAll(out, rule.From, rule.To)
	}

	out = collapseDoubles(out)
	if out == "" {
		// pathological rule sets must not erase the token entirely
		return folded
	}
	return out
}

// collapseDoubles reduces runs of the same letter to a single letter
// ("connor" -> "conor").
func collapseDoubles(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	for _, r := range s {
		if r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
