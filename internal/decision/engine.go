// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package decision classifies a completed token pairing as match or
// no-match and computes the independent too-generic and too-short flags.
// The match bar relaxes as more tokens participate: three decent pair
// scores are far less likely to be coincidence than a single two-word
// agreement, so the per-pair threshold drops with the token count.
package decision

import (
	"sort"
	"strings"

	"namematch/internal/assign"
	"namematch/internal/tables"
	"namematch/internal/tokenizer"
)

// Bucket is the decision policy for one minTokenCount bucket.
type Bucket struct {
	// SupportScore is the minimum per-pair score for a pair to count as
	// supporting evidence.
	SupportScore int
	// RequiredSupport is how many supporting pairs are needed, capped at
	// the smaller name's token count. Unmatched tokens in the longer name
	// are always tolerated.
	RequiredSupport int
}

// Thresholds is the decision table keyed by the minimum token count of the
// two names. Buckets must relax (equal or lower SupportScore) as the token
// count grows.
type Thresholds struct {
	// PairFloor is the assignment solver's rejection floor: pairings
	// scoring below it are left unmatched.
	PairFloor int
	Single    Bucket // minTokenCount == 1
	Double    Bucket // minTokenCount == 2
	ManyPlus  Bucket // minTokenCount >= 3
}

// DefaultThresholds is the built-in decision table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PairFloor: 1,
		Single:    Bucket{SupportScore: 90, RequiredSupport: 1},
		Double:    Bucket{SupportScore: 81, RequiredSupport: 2},
		ManyPlus:  Bucket{SupportScore: 76, RequiredSupport: 3},
	}
}

// Engine evaluates pairings and flags. Read-only after construction and
// safe for concurrent use.
type Engine struct {
	thresholds Thresholds
	combos     map[string]bool
	common     map[string]bool
}

// NewEngine builds an engine from a threshold table and the generic-name
// lookup data.
func NewEngine(thresholds Thresholds, t *tables.Tables) *Engine {
	combos := make(map[string]bool, len(t.GenericCombinations))
	for _, c := range t.GenericCombinations {
		// stored sorted so lookup is order-insensitive ("garcia maria"
		// and "maria garcia" are the same combination)
		words := strings.Fields(c)
		sort.Strings(words)
		combos[strings.Join(words, " ")] = true
	}
	common := make(map[string]bool, len(t.CommonTokens))
	for _, c := range t.CommonTokens {
		common[c] = true
	}
	return &Engine{thresholds: thresholds, combos: combos, common: common}
}

// PairFloor exposes the solver rejection floor of the active table.
func (e *Engine) PairFloor() int {
	return e.thresholds.PairFloor
}

// Decide reports whether a pairing constitutes a match given the minimum
// token count of the two names. Pairs below the bucket's SupportScore are
// ignored; unmatched tokens of the longer name never count against the
// verdict.
func (e *Engine) Decide(pairs []assign.Pair, minTokenCount int) bool {
	if minTokenCount == 0 || len(pairs) == 0 {
		return false
	}

	bucket := e.bucket(minTokenCount)
	required := bucket.RequiredSupport
	if required > minTokenCount {
		required = minTokenCount
	}

	supported := 0
	for _, p := range pairs {
		if p.Score >= bucket.SupportScore {
			supported++
		}
	}
	return supported >= required
}

func (e *Engine) bucket(minTokenCount int) Bucket {
	switch {
	case minTokenCount <= 1:
		return e.thresholds.Single
	case minTokenCount == 2:
		return e.thresholds.Double
	default:
		return e.thresholds.ManyPlus
	}
}

// TooShort reports whether either token sequence is too thin to carry a
// trustworthy verdict: no tokens at all, or nothing beyond single-letter
// initials. The comparison is still attempted when tokens exist; the flag
// is advisory.
func TooShort(a, b []tokenizer.Token) bool {
	return !hasNonInitial(a) || !hasNonInitial(b)
}

func hasNonInitial(tokens []tokenizer.Token) bool {
	for _, t := range tokens {
		if !t.Initial {
			return true
		}
	}
	return false
}

// TooGeneric reports whether either name's resolved token set is too
// common to be discriminative: its sorted token combination appears in the
// generic-combination list, or every non-initial token is on the
// common-token list.
func (e *Engine) TooGeneric(a, b []tokenizer.Token) bool {
	return e.nameGeneric(a) || e.nameGeneric(b)
}

func (e *Engine) nameGeneric(tokens []tokenizer.Token) bool {
	if len(tokens) == 0 {
		return false
	}

	surfaces := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !t.Initial {
			surfaces = append(surfaces, t.Surface)
		}
	}
	if len(surfaces) == 0 {
		// nothing but initials; tooShort covers the degenerate case, but
		// a pile of initials is also far too common to identify anyone
		return true
	}

	sorted := append([]string(nil), surfaces...)
	sort.Strings(sorted)
	if e.combos[strings.Join(sorted, " ")] {
		return true
	}

	for _, s := range surfaces {
		if !e.common[s] {
			return false
		}
	}
	return true
}
