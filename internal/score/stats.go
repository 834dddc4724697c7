// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package score

import (
	"github.com/dustin/go-humanize"

	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/differ"
	"github.com/jcmp/jcmp/internal/matcher"
	"github.com/jcmp/jcmp/internal/value"
)

// Stats holds the summary metadata for one comparison.
type Stats struct {
	OnlyInA  int `json:"onlyInA"`  // records present only on the left
	OnlyInB  int `json:"onlyInB"`  // records present only on the right
	Modified int `json:"modified"` // records changed in place
	Common   int `json:"common"`   // node count of the shared structure

	Similarity float64 `json:"similarity"` // 0.0 .. 1.0

	LeftBytes  int `json:"leftBytes"`  // canonical serialization size, left
	RightBytes int `json:"rightBytes"` // canonical serialization size, right
}

// Equivalent reports whether the two documents were order-equivalent.
func (s Stats) Equivalent() bool {
	return s.OnlyInA == 0 && s.OnlyInB == 0 && s.Modified == 0
}

// LeftSize renders the left canonical size for display.
func (s Stats) LeftSize() string { return humanize.Bytes(uint64(s.LeftBytes)) }

// RightSize renders the right canonical size for display.
func (s Stats) RightSize() string { return humanize.Bytes(uint64(s.RightBytes)) }

// Collect runs the full comparison pipeline over a and b with one shared
// memo and assembles the summary stats.
func Collect(m *canon.Memo, a, b value.Value) (Stats, *differ.Result, value.Value, bool, error) {
	res, err := differ.DiffMemo(m, a, b)
	if err != nil {
		return Stats{}, nil, value.Value{}, false, err
	}

	common, ok, err := matcher.IntersectMemo(m, a, b)
	if err != nil {
		return Stats{}, nil, value.Value{}, false, err
	}

	sim, err := SimilarityMemo(m, a, b)
	if err != nil {
		return Stats{}, nil, value.Value{}, false, err
	}

	fa, err := m.Fingerprint(a)
	if err != nil {
		return Stats{}, nil, value.Value{}, false, err
	}
	fb, err := m.Fingerprint(b)
	if err != nil {
		return Stats{}, nil, value.Value{}, false, err
	}

	st := Stats{
		OnlyInA:    len(res.OnlyInA),
		OnlyInB:    len(res.OnlyInB),
		Modified:   len(res.Modified),
		Similarity: sim,
		LeftBytes:  len(fa),
		RightBytes: len(fb),
	}
	if ok {
		st.Common = matcher.CountNodes(common)
	}

	return st, res, common, ok, nil
}
