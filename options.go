// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package namematch

import "namematch/internal/decision"

// Bucket configures the decision policy for one token-count bucket: the
// minimum per-pair score that counts as supporting evidence, and how many
// supporting pairs are required (capped at the smaller name's token count).
type Bucket struct {
	SupportScore    int
	RequiredSupport int
}

// Thresholds is the decision table keyed by the minimum token count of the
// two names. The bar should only relax as the token count grows: with more
// token pairs in agreement, a coincidental match is far less likely.
type Thresholds struct {
	// PairFloor rejects pairings outright: the assignment solver leaves
	// tokens unmatched rather than pair them below this score.
	PairFloor int
	Single    Bucket // names where min token count is 1
	Double    Bucket // min token count 2
	ManyPlus  Bucket // min token count 3 or more
}

// DefaultThresholds returns the built-in decision table.
func DefaultThresholds() Thresholds {
	return fromDecision(decision.DefaultThresholds())
}

func (t Thresholds) toDecision() decision.Thresholds {
	return decision.Thresholds{
		PairFloor: t.PairFloor,
		Single:    decision.Bucket(t.Single),
		Double:    decision.Bucket(t.Double),
		ManyPlus:  decision.Bucket(t.ManyPlus),
	}
}

func fromDecision(t decision.Thresholds) Thresholds {
	return Thresholds{
		PairFloor: t.PairFloor,
		Single:    Bucket(t.Single),
		Double:    Bucket(t.Double),
		ManyPlus:  Bucket(t.ManyPlus),
	}
}

// settings collects construction options.
type settings struct {
	tablesPath string
	thresholds *Thresholds
}

// Option configures a Comparator at construction time.
type Option func(*settings)

// WithTablesFile loads the lookup tables (nickname sets, generic-name
// lists, rewrite rules, phonetic overrides) from a YAML file instead of
// the embedded defaults. Sections missing from the file keep their
// embedded values.
func WithTablesFile(path string) Option {
	return func(s *settings) {
		s.tablesPath = path
	}
}

// WithThresholds overrides the decision threshold table.
func WithThresholds(t Thresholds) Option {
	return func(s *settings) {
		thresholds := t
		s.thresholds = &thresholds
	}
}
