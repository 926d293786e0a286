// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package alias

import (
	"testing"

	"namematch/internal/tables"
)

func TestResolve(t *testing.T) {
	r := New([][]string{
		{"john", "johnny", "jon", "jack"},
		{"elizabeth", "liz", "beth", "betty"},
	})

	tests := []struct {
		token string
		want  string
	}{
		{"johnny", "john"},
		{"jon", "john"},
		{"john", "john"},
		{"Johnny", "john"},
		{"liz", "elizabeth"},
		{"jón", "john"},
		{"smith", "smith"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.token); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestResolveFirstSetWins(t *testing.T) {
	r := New([][]string{
		{"margaret", "peggy"},
		{"patricia", "peggy"},
	})
	if got := r.Resolve("peggy"); got != "margaret" {
		t.Errorf("Resolve(peggy) = %q, want margaret", got)
	}
}

func TestResolveEmptySets(t *testing.T) {
	r := New([][]string{{}, nil})
	if got := r.Resolve("john"); got != "john" {
		t.Errorf("Resolve with empty sets = %q, want passthrough", got)
	}
}

func TestResolveBundledSets(t *testing.T) {
	tbl, err := tables.Load()
	if err != nil {
		t.Fatalf("loading bundled tables: %v", err)
	}
	r := New(tbl.NicknameSets)

	// a handful of spot checks against the bundled data
	tests := []struct {
		token string
		want  string
	}{
		{"johnny", "john"},
		{"jean", "john"},
		{"bill", "william"},
		{"peggy", "margaret"},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.token); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}
