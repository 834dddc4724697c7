// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"sort"

	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/value"
)

// RootPath is the address of the document root in diff entries.
const RootPath = "$"

// Entry reports structure present on one side only. Count is the number of
// excess occurrences when the entry comes from array multiset comparison;
// it is 1 for object-key entries.
type Entry struct {
	Path  string
	Value value.Value
	Count int
}

// Change reports a shared location whose values differ.
type Change struct {
	Path string
	A    value.Value
	B    value.Value
}

// Result is a structured diff: what exists only in A, only in B, and what
// was modified in place. Results are produced fresh per comparison and never
// mutated afterward.
type Result struct {
	OnlyInA  []Entry
	OnlyInB  []Entry
	Modified []Change
}

// Empty reports whether the two documents are order-equivalent.
func (r *Result) Empty() bool {
	return len(r.OnlyInA) == 0 && len(r.OnlyInB) == 0 && len(r.Modified) == 0
}

// Len returns the total number of diff records.
func (r *Result) Len() int {
	return len(r.OnlyInA) + len(r.OnlyInB) + len(r.Modified)
}

func (r *Result) splice(sub *Result) {
	r.OnlyInA = append(r.OnlyInA, sub.OnlyInA...)
	r.OnlyInB = append(r.OnlyInB, sub.OnlyInB...)
	r.Modified = append(r.Modified, sub.Modified...)
}

// Diff computes the path-addressed structural diff of a and b under
// order-insensitive equality. Object keys are compared as sets; arrays are
// compared as multisets of canonical forms, so array differences are
// reported at the array's own path ("$.items[]") with a representative value
// and an excess count rather than per index, since there is no positional
// correspondence to attribute.
func Diff(a, b value.Value) (*Result, error) {
	return DiffMemo(canon.NewMemo(), a, b)
}

// DiffMemo is Diff with a caller-owned canonicalization memo, for use inside
// a comparison session that also runs the matcher and scorer.
func DiffMemo(m *canon.Memo, a, b value.Value) (*Result, error) {
	return diff(m, a, b, RootPath, 0)
}

func diff(m *canon.Memo, a, b value.Value, path string, depth int) (*Result, error) {
	if depth > m.MaxDepth {
		return nil, canon.ErrDepthExceeded
	}

	res := &Result{}

	if a.Kind() == value.KindObject && b.Kind() == value.KindObject {
		for _, k := range a.Keys() {
			if _, ok := b.Lookup(k); !ok {
				av, _ := a.Lookup(k)
				res.OnlyInA = append(res.OnlyInA, Entry{Path: path + "." + k, Value: av, Count: 1})
			}
		}
		for _, k := range b.Keys() {
			if _, ok := a.Lookup(k); !ok {
				bv, _ := b.Lookup(k)
				res.OnlyInB = append(res.OnlyInB, Entry{Path: path + "." + k, Value: bv, Count: 1})
			}
		}
		for _, k := range a.Keys() {
			av, _ := a.Lookup(k)
			bv, ok := b.Lookup(k)
			if !ok {
				continue
			}
			if av.IsComposite() || bv.IsComposite() {
				sub, err := diff(m, av, bv, path+"."+k, depth+1)
				if err != nil {
					return nil, err
				}
				res.splice(sub)
				continue
			}
			eq, err := m.OrderEquivalent(av, bv)
			if err != nil {
				return nil, err
			}
			if !eq {
				res.Modified = append(res.Modified, Change{Path: path + "." + k, A: av, B: bv})
			}
		}
		return res, nil
	}

	if a.Kind() == value.KindArray && b.Kind() == value.KindArray {
		countsA, err := multisetCounts(m, a.Elems())
		if err != nil {
			return nil, err
		}
		countsB, err := multisetCounts(m, b.Elems())
		if err != nil {
			return nil, err
		}

		// Excess occurrences on either side, reported at the array's path in
		// first-occurrence order. Arrays never produce Modified entries;
		// element-level changes only surface inside shared object keys.
		for _, fp := range countsA.order {
			if extra := countsA.counts[fp] - countsB.counts[fp]; extra > 0 {
				res.OnlyInA = append(res.OnlyInA, Entry{
					Path:  path + "[]",
					Value: countsA.reps[fp],
					Count: extra,
				})
			}
		}
		for _, fp := range countsB.order {
			if extra := countsB.counts[fp] - countsA.counts[fp]; extra > 0 {
				res.OnlyInB = append(res.OnlyInB, Entry{
					Path:  path + "[]",
					Value: countsB.reps[fp],
					Count: extra,
				})
			}
		}
		return res, nil
	}

	// Differing kinds or scalar pair: a data-level Modified at this path,
	// never a type error.
	eq, err := m.OrderEquivalent(a, b)
	if err != nil {
		return nil, err
	}
	if !eq {
		res.Modified = append(res.Modified, Change{Path: path, A: a, B: b})
	}
	return res, nil
}

// multiset tracks occurrence counts per canonical fingerprint, the first
// original element seen for each fingerprint as its decoded representative,
// and first-occurrence order for deterministic reporting.
type multiset struct {
	counts map[string]int
	reps   map[string]value.Value
	order  []string
}

func multisetCounts(m *canon.Memo, elems []value.Value) (*multiset, error) {
	ms := &multiset{
		counts: make(map[string]int, len(elems)),
		reps:   make(map[string]value.Value, len(elems)),
	}
	for _, e := range elems {
		fp, err := m.Fingerprint(e)
		if err != nil {
			return nil, err
		}
		if ms.counts[fp] == 0 {
			ms.reps[fp] = e
			ms.order = append(ms.order, fp)
		}
		ms.counts[fp]++
	}
	return ms, nil
}

// SortByPath orders all three record lists by path, then by rendered value,
// giving stable output for fixed inputs regardless of construction order.
func (r *Result) SortByPath() {
	sort.SliceStable(r.OnlyInA, func(i, j int) bool {
		if r.OnlyInA[i].Path != r.OnlyInA[j].Path {
			return r.OnlyInA[i].Path < r.OnlyInA[j].Path
		}
		return r.OnlyInA[i].Value.String() < r.OnlyInA[j].Value.String()
	})
	sort.SliceStable(r.OnlyInB, func(i, j int) bool {
		if r.OnlyInB[i].Path != r.OnlyInB[j].Path {
			return r.OnlyInB[i].Path < r.OnlyInB[j].Path
		}
		return r.OnlyInB[i].Value.String() < r.OnlyInB[j].Value.String()
	})
	sort.SliceStable(r.Modified, func(i, j int) bool {
		return r.Modified[i].Path < r.Modified[j].Path
	})
}
