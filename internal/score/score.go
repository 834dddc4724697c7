// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package score

import (
	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/value"
)

// Similarity scores how alike two documents are under order-insensitive
// rules, in [0.0, 1.0]. Order-equivalent documents score exactly 1.0. For
// everything else the score is the Jaccard index of the overlapping byte
// bigrams of the two canonical serializations: a cheap heuristic proxy for
// overlap, not an edit distance, and not a metric (no triangle inequality).
func Similarity(a, b value.Value) (float64, error) {
	return SimilarityMemo(canon.NewMemo(), a, b)
}

// SimilarityMemo is Similarity with a caller-owned canonicalization memo.
func SimilarityMemo(m *canon.Memo, a, b value.Value) (float64, error) {
	fa, err := m.Fingerprint(a)
	if err != nil {
		return 0, err
	}
	fb, err := m.Fingerprint(b)
	if err != nil {
		return 0, err
	}

	// Short-circuit the approximate path entirely when the values are truly
	// order-equivalent.
	if fa == fb {
		return 1.0, nil
	}

	ga := bigrams(fa)
	gb := bigrams(fb)
	if len(ga) == 0 && len(gb) == 0 {
		return 1.0, nil
	}
	if len(ga) == 0 || len(gb) == 0 {
		return 0.0, nil
	}

	inter := 0
	for g := range ga {
		if _, ok := gb[g]; ok {
			inter++
		}
	}
	union := len(ga) + len(gb) - inter
	if union == 0 {
		return 0.0, nil
	}
	return float64(inter) / float64(union), nil
}

// bigrams returns the set of length-2 contiguous byte windows of s. Strings
// shorter than two bytes contribute the whole run as a single window so the
// set is never empty for non-empty input.
func bigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	if len(s) == 0 {
		return set
	}
	if len(s) < 2 {
		set[s] = struct{}{}
		return set
	}
	for i := 0; i+2 <= len(s); i++ {
		set[s[i:i+2]] = struct{}{}
	}
	return set
}
