// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package alias resolves nickname and alternate-form tokens to a canonical
// form, e.g. "johnny" -> "john". Resolution is a pure lookup: a miss returns
// the input unchanged.
package alias

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lookup keys are diacritic-folded so "José" reaches the same set as
// "Jose".
var foldKey = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Resolver maps alternate token forms to their canonical form. It is
// read-only after construction and safe for concurrent use.
type Resolver struct {
	canonical map[string]string
}

// New builds a resolver from nickname sets. The first entry of each set is
// the canonical form; every other entry resolves to it. When a token
// appears in more than one set, the first set wins.
func New(sets [][]string) *Resolver {
	canonical := make(map[string]string)
	for _, set := range sets {
		if len(set) == 0 {
			continue
		}
		head := set[0]
		for _, name := range set {
			key := fold(strings.ToLower(name))
			if _, seen := canonical[key]; !seen {
				canonical[key] = head
			}
		}
	}
	return &Resolver{canonical: canonical}
}

// Resolve returns the canonical form of a token, or the token itself when
// no alias is known. Lookup ignores case and diacritics.
func (r *Resolver) Resolve(token string) string {
	if c, ok := r.canonical[fold(strings.ToLower(token))]; ok {
		return c
	}
	return token
}

func fold(s string) string {
	folded, _, err := transform.String(foldKey, s)
	if err != nil {
		return s
	}
	return folded
}
