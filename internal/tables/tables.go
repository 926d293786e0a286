// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package tables

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Embedded default lookup data. The file ships inside the binary so a
// comparator is usable with zero external configuration.
//
//go:embed data/tables.yaml
var embeddedTablesYAML []byte

// RewriteRule is a single aggressive-normalization substitution. Rules are
// applied in file order. A rule with Suffix set only fires at the end of a
// token.
type RewriteRule struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Suffix bool   `yaml:"suffix,omitempty"`
}

// Tables holds the read-only lookup data backing a comparator: nickname
// sets, the generic-name lists, the heavy-rewrite rules, and phonetic code
// overrides. A Tables value is never mutated after Load; concurrent readers
// need no synchronization.
type Tables struct {
	// NicknameSets groups interchangeable given-name forms. The first
	// entry of each set is the canonical form the others resolve to.
	NicknameSets [][]string `yaml:"nickname_sets"`

	// GenericCombinations lists full token combinations (sorted, space
	// joined) too common to be discriminative, e.g. "john smith".
	GenericCombinations []string `yaml:"generic_combinations"`

	// CommonTokens lists individual tokens (very common given names and
	// high-frequency surnames) that carry little identifying weight.
	CommonTokens []string `yaml:"common_tokens"`

	// RewriteRules drive the heavy rewriter's letter substitutions.
	RewriteRules []RewriteRule `yaml:"rewrite_rules"`

	// PhoneticOverrides maps tokens the generic phonetic algorithm
	// mishandles to a fixed code, e.g. Irish names with silent clusters.
	PhoneticOverrides map[string]string `yaml:"phonetic_overrides"`
}

var (
	embeddedTables *Tables
	loadOnce       sync.Once
	loadError      error
)

// Load parses and returns the embedded default tables. Parsing happens once
// per process; subsequent calls return the shared instance.
func Load() (*Tables, error) {
	loadOnce.Do(func() {
		embeddedTables, loadError = parse(embeddedTablesYAML)
	})
	return embeddedTables, loadError
}

// LoadFile loads lookup tables from a caller-provided YAML file with the
// same schema as the embedded data. Sections absent from the file fall back
// to the embedded defaults, so a file may override just the nickname sets
// or just the generic lists.
func LoadFile(path string) (*Tables, error) {
	defaults, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	custom, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tables file %s: %w", path, err)
	}

	merged := *custom
	if merged.NicknameSets == nil {
		merged.NicknameSets = defaults.NicknameSets
	}
	if merged.GenericCombinations == nil {
		merged.GenericCombinations = defaults.GenericCombinations
	}
	if merged.CommonTokens == nil {
		merged.CommonTokens = defaults.CommonTokens
	}
	if merged.RewriteRules == nil {
		merged.RewriteRules = defaults.RewriteRules
	}
	if merged.PhoneticOverrides == nil {
		merged.PhoneticOverrides = defaults.PhoneticOverrides
	}
	return &merged, nil
}

// parse unmarshals and validates a tables document.
func parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("invalid tables data: %w", err)
	}

	for i, set := range t.NicknameSets {
		if len(set) < 2 {
			return nil, fmt.Errorf("nickname set %d has fewer than two entries", i)
		}
		for j, name := range set {
			t.NicknameSets[i][j] = strings.ToLower(strings.TrimSpace(name))
		}
	}
	for i, combo := range t.GenericCombinations {
		t.GenericCombinations[i] = strings.ToLower(strings.TrimSpace(combo))
	}
	for i, tok := range t.CommonTokens {
		t.CommonTokens[i] = strings.ToLower(strings.TrimSpace(tok))
	}
	for i, rule := range t.RewriteRules {
		if rule.From == "" {
			return nil, fmt.Errorf("rewrite rule %d has an empty pattern", i)
		}
	}
	return &t, nil
}
