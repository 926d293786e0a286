// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rewrite

import (
	"testing"

	"namematch/internal/tables"
)

func defaultRewriter(t *testing.T) *Rewriter {
	t.Helper()
	tbl, err := tables.Load()
	if err != nil {
		t.Fatalf("loading bundled tables: %v", err)
	}
	return New(tbl.RewriteRules)
}

func TestRewrite(t *testing.T) {
	w := defaultRewriter(t)

	tests := []struct {
		token string
		want  string
	}{
		{"phillip", "filip"},
		{"philip", "filip"},
		{"schmidt", "shmit"},
		{"smith", "smit"},
		{"smyth", "smyt"},
		{"maurice", "moric"},
		{"morris", "moris"},
		{"müller", "muler"},
		{"josé", "jos"},
		{"annie", "any"},
		{"katherine", "katerin"},
		{"connor", "conor"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := w.Rewrite(tt.token); got != tt.want {
			t.Errorf("Rewrite(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

// Variant spellings should converge on the same heavy form.
func TestRewriteConvergence(t *testing.T) {
	w := defaultRewriter(t)

	pairs := [][2]string{
		{"phillip", "philip"},
		{"ann", "anne"},
		{"lee", "li"},
	}
	for _, p := range pairs {
		a, b := w.Rewrite(p[0]), w.Rewrite(p[1])
		if a != b {
			t.Errorf("Rewrite(%q) = %q, Rewrite(%q) = %q; want convergence", p[0], a, p[1], b)
		}
	}
}

// Single letters only get diacritic folding, never substitution rules, so
// initials survive the heavy pass intact.
func TestRewriteKeepsInitials(t *testing.T) {
	w := defaultRewriter(t)

	if got := w.Rewrite("e"); got != "e" {
		t.Errorf("Rewrite(e) = %q, want e", got)
	}
	if got := w.Rewrite("é"); got != "e" {
		t.Errorf("Rewrite(é) = %q, want e", got)
	}
}

func TestRewriteSuffixRulesOnlyAtEnd(t *testing.T) {
	w := New([]tables.RewriteRule{{From: "e", To: "", Suffix: true}})

	if got := w.Rewrite("edge"); got != "edg" {
		t.Errorf("Rewrite(edge) = %q, want edg", got)
	}
}

func TestRewriteEmptyRuleSet(t *testing.T) {
	w := New(nil)
	if got := w.Rewrite("müller"); got != "muler" {
		t.Errorf("Rewrite with no rules = %q, want muler (fold + collapse only)", got)
	}
}
