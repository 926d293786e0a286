// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package namematch decides whether two free-text personal names refer to
// the same individual despite nicknames, abbreviations, transliteration
// variance, misspellings, and token-order differences ("Johnny Christians"
// vs "Christian, Jean").
//
// A Comparator loads its lookup tables once at construction; construction
// is the expensive step, so build one Comparator and reuse it for every
// comparison. All lookup data is immutable after construction, which makes
// a shared Comparator safe for concurrent use without synchronization.
//
// Each comparison runs up to four attempts in a fixed fallback order:
// literal spelling on lightly normalized tokens, spelling on heavily
// rewritten tokens, then phonetic comparison on each of those two bases.
// The first matching attempt wins; attempts that never ran are nil in the
// Result, which lets callers distinguish "never tried" from "tried and
// failed".
package namematch

import (
	"fmt"

	"namematch/internal/alias"
	"namematch/internal/assign"
	"namematch/internal/decision"
	"namematch/internal/phonetic"
	"namematch/internal/rewrite"
	"namematch/internal/scoring"
	"namematch/internal/tables"
	"namematch/internal/tokenizer"
)

// ScoredPair links one token of name A with one token of name B. Indices
// are token positions within each normalized name; Score is in [0,100].
type ScoredPair struct {
	IndexA int
	IndexB int
	Score  int
}

// Attempt records the evidence of one executed pipeline pass: the
// normalized (or phonetically encoded) forms of both names and the optimal
// token pairing found between them.
type Attempt struct {
	NormalizedA string
	NormalizedB string
	Pairs       []ScoredPair
}

// Result is the full verdict of a comparison. TooGeneric and TooShort are
// computed once, independent of which attempt (if any) matched. A nil
// attempt was never executed.
type Result struct {
	Match      bool
	TooGeneric bool
	TooShort   bool
	Attempt1   *Attempt
	Attempt2   *Attempt
	Attempt3   *Attempt
	Attempt4   *Attempt
}

// Comparator compares personal names. Build one with New and reuse it; it
// is immutable and safe for concurrent use.
type Comparator struct {
	tables   *tables.Tables
	aliases  *alias.Resolver
	rewriter *rewrite.Rewriter
	encoder  *phonetic.Encoder
	scorer   *scoring.Scorer
	engine   *decision.Engine
}

// New constructs a Comparator, loading the embedded lookup tables (or a
// caller-provided tables file) and compiling the derived lookups. The only
// error paths are a missing or malformed custom tables file.
func New(opts ...Option) (*Comparator, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	var t *tables.Tables
	var err error
	if s.tablesPath != "" {
		t, err = tables.LoadFile(s.tablesPath)
	} else {
		t, err = tables.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lookup tables: %w", err)
	}

	thresholds := decision.DefaultThresholds()
	if s.thresholds != nil {
		thresholds = s.thresholds.toDecision()
	}

	encoder := phonetic.New(t.PhoneticOverrides)
	return &Comparator{
		tables:   t,
		aliases:  alias.New(t.NicknameSets),
		rewriter: rewrite.New(t.RewriteRules),
		encoder:  encoder,
		scorer:   scoring.New(encoder),
		engine:   decision.NewEngine(thresholds, t),
	}, nil
}

// attemptSpec pairs a token basis with a scoring mode. The four attempts
// are evaluated lazily and in order; the heavy basis is only built if
// attempt 1 fails.
type attemptSpec struct {
	heavyBasis bool
	mode       scoring.Mode
}

var attemptOrder = [4]attemptSpec{
	{heavyBasis: false, mode: scoring.Spelling},
	{heavyBasis: true, mode: scoring.Spelling},
	{heavyBasis: false, mode: scoring.Phonetic},
	{heavyBasis: true, mode: scoring.Phonetic},
}

// CompareTwoNames compares two names and returns the structured verdict
// plus the per-attempt evidence. It is deterministic and never fails:
// empty or degenerate inputs produce TooShort with no attempts executed.
func (c *Comparator) CompareTwoNames(nameA, nameB string) Result {
	var res Result

	lightA := c.resolveAll(tokenizer.Tokenize(nameA))
	lightB := c.resolveAll(tokenizer.Tokenize(nameB))

	res.TooShort = decision.TooShort(lightA, lightB)
	res.TooGeneric = c.engine.TooGeneric(lightA, lightB)

	if len(lightA) == 0 || len(lightB) == 0 {
		return res
	}

	minTokenCount := len(lightA)
	if len(lightB) < minTokenCount {
		minTokenCount = len(lightB)
	}

	var heavyA, heavyB []tokenizer.Token
	attempts := [4]**Attempt{&res.Attempt1, &res.Attempt2, &res.Attempt3, &res.Attempt4}

	for i, spec := range attemptOrder {
		tokensA, tokensB := lightA, lightB
		if spec.heavyBasis {
			if heavyA == nil {
				heavyA = c.rewriteAll(lightA)
				heavyB = c.rewriteAll(lightB)
			}
			tokensA, tokensB = heavyA, heavyB
		}

		pairs, attempt := c.runAttempt(tokensA, tokensB, spec.mode)
		*attempts[i] = attempt

		if c.engine.Decide(pairs, minTokenCount) {
			res.Match = true
			return res
		}

		// A wrong-letter initial cannot be rescued by respelling or
		// phonetics; with few tokens in play the comparison is hopeless
		// and the remaining attempts stay unexecuted.
		if i == 0 && hopeless(tokensA, tokensB, pairs) {
			return res
		}
	}
	return res
}

// runAttempt scores and optimally pairs two token sequences under a mode.
func (c *Comparator) runAttempt(tokensA, tokensB []tokenizer.Token, mode scoring.Mode) ([]assign.Pair, *Attempt) {
	pairs := assign.Solve(len(tokensA), len(tokensB), func(a, b int) int {
		return c.scorer.Score(tokensA[a], tokensB[b], mode)
	}, c.engine.PairFloor())

	attempt := &Attempt{
		NormalizedA: c.render(tokensA, mode),
		NormalizedB: c.render(tokensB, mode),
		Pairs:       make([]ScoredPair, len(pairs)),
	}
	for i, p := range pairs {
		attempt.Pairs[i] = ScoredPair{IndexA: p.A, IndexB: p.B, Score: p.Score}
	}
	return pairs, attempt
}

// render shows the basis a pairing was computed on: surface forms for
// spelling attempts, primary phonetic codes for phonetic attempts.
func (c *Comparator) render(tokens []tokenizer.Token, mode scoring.Mode) string {
	if mode != scoring.Phonetic {
		return tokenizer.Join(tokens)
	}
	encoded := make([]tokenizer.Token, len(tokens))
	for i, t := range tokens {
		code := t.Surface
		if !t.Initial {
			code, _ = c.encoder.Encode(t.Surface)
		}
		encoded[i] = tokenizer.Token{Position: t.Position, Surface: code}
	}
	return tokenizer.Join(encoded)
}

// resolveAll applies the alias resolver independently to every token.
func (c *Comparator) resolveAll(tokens []tokenizer.Token) []tokenizer.Token {
	resolved := make([]tokenizer.Token, len(tokens))
	for i, t := range tokens {
		surface := c.aliases.Resolve(t.Surface)
		resolved[i] = tokenizer.Token{
			Position: t.Position,
			Surface:  surface,
			Initial:  tokenizer.IsInitial(surface),
		}
	}
	return resolved
}

// rewriteAll produces the heavy token basis.
func (c *Comparator) rewriteAll(tokens []tokenizer.Token) []tokenizer.Token {
	rewritten := make([]tokenizer.Token, len(tokens))
	for i, t := range tokens {
		surface := c.rewriter.Rewrite(t.Surface)
		rewritten[i] = tokenizer.Token{
			Position: t.Position,
			Surface:  surface,
			Initial:  tokenizer.IsInitial(surface),
		}
	}
	return rewritten
}

// hopeless reports whether a failed first attempt rules out the later
// ones: an initial in the smaller name that paired with nothing means its
// letter matched no opposing token, and no rewrite or phonetic encoding
// changes an initial's letter. Only short comparisons are cut off this
// way; with four or more pairs the other tokens may still carry a match.
func hopeless(tokensA, tokensB []tokenizer.Token, pairs []assign.Pair) bool {
	minTokenCount := len(tokensA)
	if len(tokensB) < minTokenCount {
		minTokenCount = len(tokensB)
	}
	if minTokenCount > 3 || len(pairs) >= minTokenCount {
		return false
	}

	matchedA := make(map[int]bool, len(pairs))
	matchedB := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		matchedA[p.A] = true
		matchedB[p.B] = true
	}

	if len(tokensA) <= len(tokensB) {
		for _, t := range tokensA {
			if t.Initial && !matchedA[t.Position] {
				return true
			}
		}
	}
	if len(tokensB) <= len(tokensA) {
		for _, t := range tokensB {
			if t.Initial && !matchedB[t.Position] {
				return true
			}
		}
	}
	return false
}
