// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phonetic converts tokens into codes that capture approximate
// pronunciation rather than spelling, so "maurice" and "morris" compare
// equal even though their spellings are far apart. Encoding is Double
// Metaphone with a small override table for names whose pronunciation the
// generic algorithm gets wrong (silent clusters in Irish names, mostly).
package phonetic

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Encoder produces phonetic codes for tokens. Read-only after
// construction and safe for concurrent use.
type Encoder struct {
	overrides map[string]string
}

// New builds an encoder with the given token -> code overrides. A nil map
// is allowed.
func New(overrides map[string]string) *Encoder {
	return &Encoder{overrides: overrides}
}

// Encode returns the primary and secondary phonetic codes for a token.
// The secondary code captures an alternate pronunciation and may be empty
// or equal to the primary. Overridden tokens have no secondary code.
func (e *Encoder) Encode(token string) (primary, secondary string) {
	lowered := strings.ToLower(token)
	if lowered == "" {
		return "", ""
	}
	if code, ok := e.overrides[lowered]; ok {
		return code, ""
	}
	return matchr.DoubleMetaphone(lowered)
}
