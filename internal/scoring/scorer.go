// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scoring computes 0-100 similarity scores between two name tokens
// under a selected mode: literal spelling (edit distance) or phonetic
// (pronunciation codes). Single-letter initials are scored by a dedicated
// rule in both modes.
package scoring

import (
	"math"

	"github.com/agnivade/levenshtein"

	"namematch/internal/phonetic"
	"namematch/internal/tokenizer"
)

// Mode selects the similarity strategy.
type Mode int

const (
	// Spelling scores by normalized edit distance between surface forms.
	Spelling Mode = iota
	// Phonetic scores by equality or near-equality of phonetic codes.
	Phonetic
)

const (
	// containmentFloor is the minimum score when one token contains the
	// other and their first letters agree ("chris" in "christian").
	containmentFloor = 85
	// crossCodeScore is the score when primary and secondary phonetic
	// codes agree across tokens but the primaries differ.
	crossCodeScore = 90
	// phoneticResidualCap bounds the edit-distance fallback on phonetic
	// codes; anything short of code equality is at best a weak signal.
	phoneticResidualCap = 75
)

// Scorer scores token pairs. Read-only after construction and safe for
// concurrent use.
type Scorer struct {
	encoder *phonetic.Encoder
}

// New builds a scorer that uses the given phonetic encoder for Phonetic
// mode.
func New(encoder *phonetic.Encoder) *Scorer {
	return &Scorer{encoder: encoder}
}

// Score returns the similarity of two tokens in [0,100] under the given
// mode. It is symmetric in its token arguments.
func (s *Scorer) Score(a, b tokenizer.Token, mode Mode) int {
	// An initial matches on its letter alone, regardless of mode. A
	// matching letter is strong evidence ("j" vs "john"); a mismatched
	// one rules the pair out.
	if a.Initial || b.Initial {
		if firstRune(a.Surface) == firstRune(b.Surface) {
			return 100
		}
		return 0
	}

	switch mode {
	case Phonetic:
		return s.phoneticScore(a.Surface, b.Surface)
	default:
		return spellingScore(a.Surface, b.Surface)
	}
}

// spellingScore scales edit distance by the longer token's length so short
// tokens are not unfairly penalized, and floors the score when one token
// contains the other.
func spellingScore(a, b string) int {
	if a == b {
		return 100
	}

	runesA, runesB := []rune(a), []rune(b)
	longer := len(runesA)
	if len(runesB) > longer {
		longer = len(runesB)
	}
	if longer == 0 {
		return 0
	}

	dist := levenshtein.ComputeDistance(a, b)
	score := int(math.Round(100 * (1 - float64(dist)/float64(longer))))
	if score < 0 {
		score = 0
	}

	// One token extending the other (truncated transcription, compound
	// surname) should not be punished for the extension.
	shorter := len(runesA)
	if len(runesB) < shorter {
		shorter = len(runesB)
	}
	if shorter >= 3 && firstRune(a) == firstRune(b) && score < containmentFloor {
		if contains(runesA, runesB) || contains(runesB, runesA) {
			score = containmentFloor
		}
	}
	return score
}

// phoneticScore compares the pronunciation codes of two tokens. Equal
// primary codes are a full match; primary/secondary agreement is nearly as
// strong; everything else degrades to a capped edit-distance residual so
// "no overlap" lands near zero.
func (s *Scorer) phoneticScore(a, b string) int {
	primA, secA := s.encoder.Encode(a)
	primB, secB := s.encoder.Encode(b)

	if primA == "" || primB == "" {
		return 0
	}
	if primA == primB {
		return 100
	}
	if (secA != "" && secA == primB) || (secB != "" && secB == primA) ||
		(secA != "" && secA == secB) {
		return crossCodeScore
	}

	longer := len(primA)
	if len(primB) > longer {
		longer = len(primB)
	}
	dist := levenshtein.ComputeDistance(primA, primB)
	residual := int(math.Round(float64(phoneticResidualCap) * (1 - float64(dist)/float64(longer))))
	if residual < 0 {
		residual = 0
	}
	return residual
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// contains reports whether needle occurs as a contiguous rune subsequence
// of haystack.
func contains(haystack, needle []rune) bool {
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
